// Package fsutil provides the small set of cross-platform path and
// file helpers the driver needs: mkdir -p, dirname, stdin-aware
// read-all, and best-effort atomic write.
//
// Grounded on btouchard/gmx's cmd/gmx/build.go and compile.go, which
// already do ad hoc versions of each of these (os.MkdirAll before
// writing a binary, os.ReadFile for the source, filepath.Dir/Base for
// naming); this package pulls that pattern out into reusable,
// testable functions and adds the "-" stdin sentinel spec.md requires.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinSentinel is the path value meaning "read standard input".
const StdinSentinel = "-"

// ReadAll reads the whole file at path, or all of os.Stdin to EOF when
// path is StdinSentinel. Standard input is read into an initial 16 KiB
// buffer that doubles whenever it fills (spec.md §4.1); regular files
// go through os.ReadFile, which sizes its buffer from the file's stat.
func ReadAll(path string) ([]byte, error) {
	if path == StdinSentinel {
		return readAllGrowing(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func readAllGrowing(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, 16*1024)
	for {
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), 2*cap(buf))
			copy(grown, buf)
			buf = grown
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
}

// Exists reports whether path names a file or directory that can be
// stat'd successfully.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Dirname returns the directory component of path, "." when path has
// no separator, with any trailing separators stripped first.
func Dirname(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "."
	}
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}
	return dir
}

// MkdirAllP is mkdir -p: it walks path's components and creates any
// that are missing, treating "already exists" as success.
func MkdirAllP(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("mkdir -p %s: %w", path, err)
	}
	return nil
}

// WriteAll creates any missing parent directories and writes data to
// path, replacing any existing file. Writing is open-write-close; no
// partial-file rollback beyond that is attempted, matching spec.md
// §4.6's "best effort" wording.
func WriteAll(path string, data []byte) error {
	if dir := Dirname(path); dir != "." {
		if err := MkdirAllP(dir); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

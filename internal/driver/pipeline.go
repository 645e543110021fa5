package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitte-lang/vitlc/internal/ast"
	"github.com/vitte-lang/vitlc/internal/astparse"
	"github.com/vitte-lang/vitlc/internal/cache"
	"github.com/vitte-lang/vitlc/internal/diag"
	"github.com/vitte-lang/vitlc/internal/fsutil"
	"github.com/vitte-lang/vitlc/internal/ir"
	"github.com/vitte-lang/vitlc/internal/lexer"
	"github.com/vitte-lang/vitlc/internal/logsink"
	"github.com/vitte-lang/vitlc/internal/srcbuf"
	"github.com/vitte-lang/vitlc/internal/token"
)

// Run executes one compilation described by opts, writing diagnostics
// to errw and status/help/version text to outw, and returns the exit
// code spec.md §6 fixes for whatever happened.
func Run(outw, errw io.Writer, opts *Options) int {
	logger := logsink.New(opts.Trace)
	defer logger.Sync()

	for _, w := range opts.Warnings {
		fmt.Fprintf(errw, "warning: %s\n", w)
	}

	if opts.Help {
		fmt.Fprint(outw, helpText)
		return RC_OK
	}
	if opts.Version {
		fmt.Fprintln(outw, Version)
		return RC_OK
	}
	if opts.InputPath == "" {
		fmt.Fprint(errw, usageText)
		return RC_EARGS
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	timings := newTimer(opts.TimeIt)

	sink := diagSinkFor(errw)

	// --- Read ---
	timings.start("read")
	data, err := fsutil.ReadAll(opts.InputPath)
	timings.stop("read")
	if err != nil {
		logger.Debug("read failed", zap.Error(err))
		sink.ReportPlain(err.Error())
		return RC_EIO
	}

	name := opts.InputPath
	if name == fsutil.StdinSentinel {
		name = "<stdin>"
	}
	buf := srcbuf.New(name, data)
	if buf.HasBOM() {
		sink.ReportPlain(fmt.Sprintf("error:%s: source file begins with a UTF-8 byte order mark", name))
		return RC_ELEX
	}

	inputHash := hashBytes(data)

	var cch *cache.Cache
	if !opts.NoCache {
		cch, err = cache.Open(cacheDBPath(opts))
		if err != nil {
			logger.Debug("cache open failed, continuing without cache", zap.Error(err))
			cch = nil
		} else {
			defer cch.Close()
		}
	}

	if cch != nil {
		if run, hit := cch.Lookup(inputHash, opts.OutputPath); hit && run.Phase == "emit" {
			if outputExists(opts.OutputPath) {
				logger.Debug("cache hit", zap.String("output", opts.OutputPath))
				fmt.Fprintf(outw, "ok -> %s (cached)\n", opts.OutputPath)
				return RC_OK
			}
		}
	}

	// --- DumpTokens ---
	if opts.DumpTokens {
		timings.start("dump_tokens")
		dumpTokens(outw, lexer.New(buf), buf)
		timings.stop("dump_tokens")
	}

	// --- Parse ---
	timings.start("parse")
	p := astparse.New(lexer.New(buf), buf)
	file := p.ParseFile()
	timings.stop("parse")

	if lexErrs := p.LexErrors(); len(lexErrs) > 0 {
		first := lexErrs[0]
		sink.Report(buf, first.Start, first.Message)
		recordRun(cch, runID, opts, inputHash, "lex", false, timings.totalMs())
		return RC_ELEX
	}
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		sink.ReportPlain(fmt.Sprintf("error:%s: %s", name, parseErrs[0].Error()))
		recordRun(cch, runID, opts, inputHash, "parse", false, timings.totalMs())
		return RC_EPARSE
	}

	// --- DumpAst ---
	if opts.DumpASTPath != "" {
		timings.start("dump_ast")
		err := ast.DumpToFile(file, opts.DumpASTPath)
		timings.stop("dump_ast")
		if err != nil {
			sink.ReportPlain(err.Error())
			recordRun(cch, runID, opts, inputHash, "dump_ast", false, timings.totalMs())
			return RC_EIO
		}
	}

	// --- Lower ---
	timings.start("lower")
	lowered, err := ir.Lower(file)
	timings.stop("lower")
	if err != nil {
		sink.ReportPlain(err.Error())
		recordRun(cch, runID, opts, inputHash, "lower", false, timings.totalMs())
		return RC_ESEM
	}

	// --- Emit ---
	timings.start("emit")
	if opts.EmitIR {
		err = ir.EmitText(lowered, opts.OutputPath)
	} else {
		err = ir.EmitObject(lowered, opts.OutputPath)
	}
	timings.stop("emit")
	if err != nil {
		sink.ReportPlain(err.Error())
		recordRun(cch, runID, opts, inputHash, "emit", false, timings.totalMs())
		return RC_EGEN
	}

	recordRun(cch, runID, opts, inputHash, "emit", true, timings.totalMs())

	if opts.TimeIt {
		timings.report(errw)
	}
	fmt.Fprintf(outw, "ok -> %s\n", opts.OutputPath)
	return RC_OK
}

func diagSinkFor(w io.Writer) *diag.Sink {
	return diag.NewSinkWriter(w)
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func cacheDBPath(opts *Options) string {
	if opts.CacheDB != "" {
		return opts.CacheDB
	}
	return filepath.Join(fsutil.Dirname(opts.OutputPath), ".vitlc-cache.sqlite")
}

func outputExists(path string) bool {
	return fsutil.Exists(path)
}

func recordRun(cch *cache.Cache, runID string, opts *Options, inputHash, phase string, success bool, durMs int64) {
	if cch == nil {
		return
	}
	_ = cch.Record(cache.Run{
		RunID:      runID,
		InputPath:  opts.InputPath,
		InputHash:  inputHash,
		OutputPath: opts.OutputPath,
		Phase:      phase,
		Success:    success,
		DurationMs: durMs,
	})
}

// dumpTokens implements spec.md §6's token dump format: one line per
// token, numeric payload appended for INT/FLOAT/BOOL.
func dumpTokens(w io.Writer, lex *lexer.Lexer, buf *srcbuf.Buffer) {
	for {
		t := lex.Next()
		raw := t.Raw(buf.Bytes())
		line := fmt.Sprintf("%-8s @%d:%d  lex=%q", t.Kind.String(), t.Pos.Line, t.Pos.Column, raw)
		switch t.Kind {
		case token.INT:
			line += fmt.Sprintf("  val=%d", t.IntVal)
		case token.FLOAT:
			line += fmt.Sprintf("  val=%g", t.FloatVal)
		case token.BOOL:
			line += fmt.Sprintf("  val=%t", t.BoolVal)
		}
		fmt.Fprintln(w, line)
		if t.Kind == token.EOF {
			return
		}
	}
}

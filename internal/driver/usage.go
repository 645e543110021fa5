package driver

const helpText = `vitlc - Vitte/Vitl compiler driver

Usage:
  vitlc <path>|- [flags]

Flags:
  -o <path>          output path (default out/a.out)
  -I <dir>           append an include directory (max 32)
  -O0 -O1 -O2 -O3    optimization level (stored, no effect on the core)
  -emit-ir           write IR as text instead of a binary object
  --dump-tokens      print every token the lexer produces
  --dump-ast=<file>  write a textual AST dump after parsing
  --trace            enable verbose phase tracing
  --time             report per-phase and total timings
  --no-cache         skip the build-history cache
  --cache-db <path>  cache database location (default <output dir>/.vitlc-cache.sqlite)
  -v, --version      print the version and exit
  -h, --help         print this message and exit
`

const usageText = `usage: vitlc <path>|- [flags]
`

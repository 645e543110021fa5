// Package driver sequences one compilation: Read -> (DumpTokens?) ->
// Parse -> (DumpAst?) -> Lower -> Emit, mapping every failure kind to
// the exit code spec.md §4.5/§6 fixes.
//
// The phase-by-phase shape, the Options record, and the CLI argument
// loop are grounded on btouchard/gmx's cmd/gmx/build.go and run.go,
// which drive a comparable Read -> Parse -> Generate -> Write pipeline
// over a manual flag scan rather than the stdlib flag package — gmx
// needs that because its own flags ("-o", bare positional paths) are
// already hand-parsed; this driver needs it because spec.md's "-" and
// "-O0".."-O3" invocations interleave a positional stdin marker with
// flags in either order, which flag.FlagSet's parse-until-first-
// positional-arg behaviour cannot express.
package driver

// IncludeDirsCap is the maximum number of -I entries retained. Extra
// entries beyond this produce a warning and are dropped, per spec.md
// §4.5.
const IncludeDirsCap = 32

// Options is the Driver Options record from spec.md §3: every
// recognized CLI flag's effect, plus the cache/trace knobs
// SPEC_FULL.md adds on top.
type Options struct {
	InputPath  string
	OutputPath string

	IncludeDirs []string

	OptimizeLevel int
	EmitIR        bool
	DumpTokens    bool
	DumpASTPath   string
	Trace         bool
	TimeIt        bool

	Help    bool
	Version bool

	NoCache bool
	CacheDB string

	// Warnings collects non-fatal parse notices (dropped -I entries,
	// unrecognized flags, extra positional arguments) the CLI prints to
	// stderr but does not fail on.
	Warnings []string
}

// DefaultOutputPath is used when -o is not given.
const DefaultOutputPath = "out/a.out"

// Version is the driver's self-reported version string, printed by -v/--version.
const Version = "vitlc 0.2.0"

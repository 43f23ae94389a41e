package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify release failures. Every failure is fatal and
// terminates the pipeline; the tags exist so the CLI layer can report
// which class of condition was violated.
var (
	// ErrTagInfra marks failures of the tooling itself (a delegated
	// binary missing, a subprocess that could not be started).
	ErrTagInfra = goerr.NewTag("infrastructure")

	// ErrTagPrecondition marks violated release preconditions: dirty
	// working tree, unsynced branch, invalid or non-monotonic version,
	// tag collision, pre-existing staging directory, missing credential.
	ErrTagPrecondition = goerr.NewTag("precondition")

	// ErrTagNoopRewrite marks a manifest rewrite that matched nothing.
	// Treated as a correctness bug, not a transient fault.
	ErrTagNoopRewrite = goerr.NewTag("noop_rewrite")

	// ErrTagUpload marks artifact upload failures.
	ErrTagUpload = goerr.NewTag("upload")
)

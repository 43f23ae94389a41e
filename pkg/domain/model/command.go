package model

// CommandResult holds the outcome of a single external command
// invocation. It is owned by the call that produced it and consumed
// immediately by the calling policy.
type CommandResult struct {
	ExitCode int
	Output   string // Combined stdout and stderr
}

package model

// RepositoryState is a validation snapshot of the working copy.
// It is computed fresh on every validation call and never cached
// across orchestrator steps.
type RepositoryState struct {
	Branch           string // Current symbolic branch name
	Remote           string // Remote the branch was compared against
	WorktreeClean    bool   // No unstaged changes
	IndexClean       bool   // No uncommitted staged changes
	InSyncWithRemote bool   // Local tip equals <remote>/<branch>
}

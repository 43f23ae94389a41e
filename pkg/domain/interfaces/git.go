package interfaces

import "context"

// GitClient defines the version-control operations the release process
// depends on. The production implementation shells out to the git CLI;
// tests substitute a mock.
type GitClient interface {
	// Status refreshes and checks the repository status. An error here
	// means git itself is broken, not that the tree is dirty.
	Status(ctx context.Context) error

	// DiffFilesClean reports whether the working tree matches the index.
	DiffFilesClean(ctx context.Context) (bool, error)

	// DiffIndexClean reports whether the index matches HEAD.
	DiffIndexClean(ctx context.Context) (bool, error)

	// CurrentBranch returns the symbolic branch name, or "" when HEAD
	// is detached.
	CurrentBranch(ctx context.Context) (string, error)

	// Fetch updates remote-tracking refs from the named remote.
	Fetch(ctx context.Context, remote string) error

	// TipsMatch reports whether the local branch tip equals
	// <remote>/<branch>.
	TipsMatch(ctx context.Context, remote, branch string) (bool, error)

	// Describe returns the raw output of git describe, optionally
	// restricted to tags matching matchTag.
	Describe(ctx context.Context, matchTag string) (string, error)

	// RemoteTagExists reports whether the remote already carries a tag
	// with the given name.
	RemoteTagExists(ctx context.Context, remote, tag string) (bool, error)

	Add(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, name, message string) error
	Push(ctx context.Context, remote, ref string) error

	// Remove removes a tracked file from the index and working tree.
	Remove(ctx context.Context, path string) error
}

package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

type cleanup struct {
	git    interfaces.GitClient
	pm     interfaces.PackageManager
	remote string
}

// NewCleanup creates the post-release cleanup use case.
func NewCleanup(git interfaces.GitClient, pm interfaces.PackageManager, remote string) interfaces.CleanupUseCase {
	return &cleanup{git: git, pm: pm, remote: remote}
}

// Cleanup removes the dependency lockfile from version control and
// pushes the removal, keeping the tracked lockfile state minimal
// between releases.
func (uc *cleanup) Cleanup(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	branch, err := uc.git.CurrentBranch(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve branch")
	}
	if branch == "" {
		return goerr.New("HEAD is detached, cleanup must run on a named branch",
			goerr.T(types.ErrTagPrecondition))
	}

	lockfile := uc.pm.LockfilePath()
	if err := uc.git.Remove(ctx, lockfile); err != nil {
		return goerr.Wrap(err, "failed to remove lockfile from version control",
			goerr.V("path", lockfile))
	}
	if err := uc.git.Commit(ctx, fmt.Sprintf("Remove %s after release", lockfile)); err != nil {
		return goerr.Wrap(err, "failed to commit lockfile removal")
	}
	if err := uc.git.Push(ctx, uc.remote, branch); err != nil {
		return goerr.Wrap(err, "failed to push lockfile removal")
	}

	logger.Info("Lockfile removed from version control",
		"lockfile", lockfile,
		"branch", branch,
	)
	return nil
}

package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

type validator struct {
	git interfaces.GitClient
}

// NewValidator creates a RepositoryValidator.
func NewValidator(git interfaces.GitClient) interfaces.RepositoryValidator {
	return &validator{git: git}
}

// Validate asserts the working copy is safe to release from. The
// snapshot is computed fresh on every call; failures name the violated
// condition and are never retried here.
func (v *validator) Validate(ctx context.Context, remote string) (*model.RepositoryState, error) {
	logger := ctxlog.From(ctx)

	if err := v.git.Status(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to read repository status")
	}

	worktreeClean, err := v.git.DiffFilesClean(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check working tree")
	}
	if !worktreeClean {
		return nil, goerr.New("working tree has unstaged changes, commit or stash them before releasing",
			goerr.T(types.ErrTagPrecondition))
	}

	indexClean, err := v.git.DiffIndexClean(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check index")
	}
	if !indexClean {
		return nil, goerr.New("index has uncommitted staged changes, commit them before releasing",
			goerr.T(types.ErrTagPrecondition))
	}

	branch, err := v.git.CurrentBranch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve branch")
	}
	if branch == "" {
		return nil, goerr.New("HEAD is detached, releases must be cut from a named branch",
			goerr.T(types.ErrTagPrecondition))
	}

	logger.Debug("Fetching from remote", "remote", remote, "branch", branch)
	if err := v.git.Fetch(ctx, remote); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch from remote",
			goerr.V("remote", remote))
	}

	inSync, err := v.git.TipsMatch(ctx, remote, branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compare branch with remote")
	}
	if !inSync {
		return nil, goerr.New("local branch and remote have diverged, push or pull before releasing",
			goerr.V("remote", remote),
			goerr.V("branch", branch),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	state := &model.RepositoryState{
		Branch:           branch,
		Remote:           remote,
		WorktreeClean:    true,
		IndexClean:       true,
		InSyncWithRemote: true,
	}

	logger.Info("Repository validated", "branch", branch, "remote", remote)
	return state, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
)

type bump struct {
	git       interfaces.GitClient
	pm        interfaces.PackageManager
	validator interfaces.RepositoryValidator
	resolver  interfaces.VersionResolver
	manifest  *ManifestEditor
	remote    string
}

// NewBump creates the version-bump use case.
func NewBump(
	git interfaces.GitClient,
	pm interfaces.PackageManager,
	validator interfaces.RepositoryValidator,
	resolver interfaces.VersionResolver,
	manifest *ManifestEditor,
	remote string,
) interfaces.BumpUseCase {
	return &bump{
		git:       git,
		pm:        pm,
		validator: validator,
		resolver:  resolver,
		manifest:  manifest,
		remote:    remote,
	}
}

// Bump runs the version-bump stages in order, early-returning on the
// first failure: repository validation, manifest load, target
// validation, manifest rewrite, lockfile freeze, then commit, tag and
// push. Nothing is mutated before all validation gates pass.
func (uc *bump) Bump(ctx context.Context, targetVersion string) (*model.ReleaseTarget, error) {
	logger := ctxlog.From(ctx)

	state, err := uc.validator.Validate(ctx, uc.remote)
	if err != nil {
		return nil, goerr.Wrap(err, "repository is not in a releasable state")
	}

	manifest, err := uc.manifest.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load package manifest")
	}

	target, err := uc.resolver.ValidateTarget(ctx, manifest.Version, targetVersion, uc.remote)
	if err != nil {
		return nil, goerr.Wrap(err, "target version was rejected")
	}

	logger.Info("Bumping version",
		"from", target.CurrentVersion,
		"to", target.TargetVersion,
		"branch", state.Branch,
	)

	if err := uc.manifest.RewriteVersion(target.CurrentVersion, target.TargetVersion); err != nil {
		return nil, goerr.Wrap(err, "failed to rewrite manifest version")
	}

	if err := uc.pm.Freeze(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to freeze dependency versions")
	}

	message := fmt.Sprintf("Release %s", target.TargetVersion)

	for _, path := range []string{uc.manifest.Path(), uc.pm.LockfilePath()} {
		if err := uc.git.Add(ctx, path); err != nil {
			return nil, goerr.Wrap(err, "failed to stage release files")
		}
	}
	if err := uc.git.Commit(ctx, message); err != nil {
		return nil, goerr.Wrap(err, "failed to commit version bump")
	}
	if err := uc.git.Tag(ctx, target.TargetVersion, message); err != nil {
		return nil, goerr.Wrap(err, "failed to tag version bump")
	}
	if err := uc.git.Push(ctx, uc.remote, state.Branch); err != nil {
		return nil, goerr.Wrap(err, "failed to push release commit")
	}
	if err := uc.git.Push(ctx, uc.remote, target.TargetVersion); err != nil {
		return nil, goerr.Wrap(err, "failed to push release tag")
	}

	logger.Info("Version bump complete",
		"version", target.TargetVersion,
		"remote", uc.remote,
	)
	return target, nil
}

package interfaces

import (
	"context"

	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
)

// RepositoryValidator asserts that the working copy is safe to release
// from: clean, on a named branch, and synchronized with the remote.
type RepositoryValidator interface {
	Validate(ctx context.Context, remote string) (*model.RepositoryState, error)
}

// VersionResolver derives versions from describe output and gates
// proposed target versions.
type VersionResolver interface {
	// ParseDescribe parses raw describe output. When expectTag is
	// non-empty, a resolved tag that differs from it is an error.
	ParseDescribe(raw, expectTag string) (*model.VersionDescriptor, error)

	// ValidateTarget checks that target is valid semver, strictly
	// greater than current, and not already tagged on the remote.
	ValidateTarget(ctx context.Context, current, target, remote string) (*model.ReleaseTarget, error)
}

// BumpUseCase runs the version-bump stages: validation, manifest
// rewrite, lockfile freeze, commit, tag and push.
type BumpUseCase interface {
	Bump(ctx context.Context, targetVersion string) (*model.ReleaseTarget, error)
}

// PackageUseCase assembles the staging directory and produces the
// tarball and checksum artifacts.
type PackageUseCase interface {
	Package(ctx context.Context) (*model.PackageResult, error)
}

// UploadUseCase uploads release artifacts to the object store under a
// major.minor-bucketed key.
type UploadUseCase interface {
	Upload(ctx context.Context, tarballPath, checksumPath string) (*model.UploadResult, error)
}

// CleanupUseCase removes the dependency lockfile from version control
// after a release and pushes the removal.
type CleanupUseCase interface {
	Cleanup(ctx context.Context) error
}

package interfaces

import (
	"context"

	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
)

// CommandRunner executes an external command as an argument vector and
// captures its combined output. A non-zero exit returns both the result
// and an error describing the failure.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*model.CommandResult, error)
}

// PackageManager covers the package-manager operations delegated by the
// release process: freezing resolved dependency versions and reporting
// the runtime version recorded in build provenance.
type PackageManager interface {
	// Freeze captures exact resolved dependency versions into a lockfile.
	Freeze(ctx context.Context) error

	// LockfilePath returns the path of the lockfile Freeze writes.
	LockfilePath() string

	// ToolVersion returns the runtime version string (e.g. "v18.17.0").
	ToolVersion(ctx context.Context) (string, error)
}

// Archiver assembles a compressed tarball from a directory tree.
type Archiver interface {
	CreateTarGz(ctx context.Context, sourceDir, destPath string) error
}

// Checksummer computes file digests for release artifacts.
type Checksummer interface {
	// SHA1File returns the hex SHA-1 digest of the file at path.
	SHA1File(ctx context.Context, path string) (string, error)
}

// ObjectStore uploads release artifacts to a remote bucket.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key, localPath string) error
}

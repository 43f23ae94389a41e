package usecase

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
	"github.com/oaeproject/oae-release-tools/pkg/infra/archive"
)

// BuildInfoFile is the provenance sidecar written into the staging
// directory.
const BuildInfoFile = "build-info.json"

// PackConfig configures the packaging stage.
type PackConfig struct {
	AppName    string
	StagingDir string
	DistDir    string
	// Include lists the top-level files and directories copied into
	// the staging directory.
	Include []string
	// ExpectTag pins packaging to a base tag; describe resolving to a
	// different tag aborts the stage.
	ExpectTag string
}

type pack struct {
	git      interfaces.GitClient
	pm       interfaces.PackageManager
	resolver interfaces.VersionResolver
	archiver interfaces.Archiver
	checksum interfaces.Checksummer
	cfg      PackConfig
}

// NewPack creates the packaging use case.
func NewPack(
	git interfaces.GitClient,
	pm interfaces.PackageManager,
	resolver interfaces.VersionResolver,
	archiver interfaces.Archiver,
	checksum interfaces.Checksummer,
	cfg PackConfig,
) interfaces.PackageUseCase {
	return &pack{
		git:      git,
		pm:       pm,
		resolver: resolver,
		archiver: archiver,
		checksum: checksum,
		cfg:      cfg,
	}
}

// Package assembles the staging directory, strips non-deployed files
// from the dependency tree, records build provenance, archives the
// result and writes the checksum sidecar.
func (uc *pack) Package(ctx context.Context) (*model.PackageResult, error) {
	logger := ctxlog.From(ctx)

	raw, err := uc.git.Describe(ctx, uc.cfg.ExpectTag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve release version")
	}
	descriptor, err := uc.resolver.ParseDescribe(raw, uc.cfg.ExpectTag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse describe output")
	}
	version := descriptor.String()

	// A pre-existing staging directory would silently merge with stale
	// content from an earlier run.
	if _, err := os.Stat(uc.cfg.StagingDir); err == nil {
		return nil, goerr.New("staging directory already exists, remove it before packaging",
			goerr.V("path", uc.cfg.StagingDir),
			goerr.T(types.ErrTagPrecondition),
		)
	} else if !os.IsNotExist(err) {
		return nil, goerr.Wrap(err, "failed to check staging directory",
			goerr.V("path", uc.cfg.StagingDir))
	}

	if err := os.MkdirAll(uc.cfg.StagingDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create staging directory",
			goerr.V("path", uc.cfg.StagingDir))
	}

	logger.Info("Assembling staging directory",
		"version", version,
		"staging_dir", uc.cfg.StagingDir,
	)

	for _, entry := range uc.cfg.Include {
		if err := copyTree(entry, filepath.Join(uc.cfg.StagingDir, entry)); err != nil {
			return nil, goerr.Wrap(err, "failed to copy release files into staging directory",
				goerr.V("entry", entry))
		}
	}

	stripped, err := uc.stripArtifacts(ctx, filepath.Join(uc.cfg.StagingDir, "node_modules"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to strip non-deployed files from dependency tree")
	}
	logger.Debug("Stripped non-deployed files", "count", stripped)

	if err := uc.writeBuildInfo(ctx, version); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(uc.cfg.DistDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create dist directory",
			goerr.V("path", uc.cfg.DistDir))
	}

	tarballPath := filepath.Join(uc.cfg.DistDir, archive.TarballName(uc.cfg.AppName, version))
	if err := uc.archiver.CreateTarGz(ctx, uc.cfg.StagingDir, tarballPath); err != nil {
		return nil, goerr.Wrap(err, "failed to create release tarball")
	}

	checksumPath, err := archive.WriteChecksum(ctx, uc.checksum, tarballPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write tarball checksum")
	}

	logger.Info("Packaging complete",
		"tarball", tarballPath,
		"checksum", checksumPath,
	)

	return &model.PackageResult{
		Version:      version,
		StagingDir:   uc.cfg.StagingDir,
		TarballPath:  tarballPath,
		ChecksumPath: checksumPath,
	}, nil
}

// writeBuildInfo records build provenance as a pretty-printed JSON
// document with a trailing newline.
func (uc *pack) writeBuildInfo(ctx context.Context, version string) error {
	toolVersion, err := uc.pm.ToolVersion(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve tool version for build info")
	}

	info := model.BuildInfo{
		Version:     version,
		ToolVersion: toolVersion,
		Platform:    runtime.GOOS + "-" + runtime.GOARCH,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal build info")
	}
	data = append(data, '\n')

	path := filepath.Join(uc.cfg.StagingDir, BuildInfoFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write build info", goerr.V("path", path))
	}
	return nil
}

// stripArtifacts removes editor and patch leftovers and test
// directories from the staged dependency tree. Shipping them only
// inflates the package.
func (uc *pack) stripArtifacts(ctx context.Context, root string) (int, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return 0, nil
	}

	var doomed []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := info.Name()
		if info.IsDir() {
			if name == "test" || name == "tests" {
				doomed = append(doomed, path)
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".orig") || strings.HasSuffix(name, ".rej") ||
			strings.HasSuffix(name, "~") || strings.HasPrefix(name, ".#") {
			doomed = append(doomed, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, path := range doomed {
		if err := os.RemoveAll(path); err != nil {
			return 0, goerr.Wrap(err, "failed to remove non-deployed file", goerr.V("path", path))
		}
	}
	return len(doomed), nil
}

// copyTree copies a file or directory tree, preserving modes and
// symlinks.
func copyTree(src, dest string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		link, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(link, dest)

	case info.IsDir():
		if err := os.MkdirAll(dest, info.Mode()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		return copyFile(src, dest, info.Mode())
	}
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

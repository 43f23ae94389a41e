// Package archive assembles release tarballs and computes artifact
// checksums.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
)

type archiver struct{}

// NewArchiver creates a tar.gz Archiver.
func NewArchiver() interfaces.Archiver {
	return &archiver{}
}

// CreateTarGz archives sourceDir into a gzip-compressed tarball at
// destPath. Entries are stored relative to the parent of sourceDir so
// the archive unpacks into a single top-level directory.
func (a *archiver) CreateTarGz(ctx context.Context, sourceDir, destPath string) error {
	src := filepath.Clean(sourceDir)
	base := filepath.Dir(src)

	out, err := os.Create(destPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create archive file", goerr.V("path", destPath))
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	walkErr := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		header, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		return goerr.Wrap(walkErr, "failed to archive staging directory",
			goerr.V("source", sourceDir),
			goerr.V("dest", destPath),
		)
	}

	if err := tw.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize tar stream")
	}
	if err := gz.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize gzip stream")
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close archive file")
	}
	return nil
}

// TarballName returns the conventional artifact filename for an
// application at a given version.
func TarballName(appName, version string) string {
	return strings.ToLower(appName) + "-" + version + ".tar.gz"
}

package archive

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
)

type checksummer struct{}

// NewChecksummer creates a SHA-1 Checksummer.
func NewChecksummer() interfaces.Checksummer {
	return &checksummer{}
}

func (c *checksummer) SHA1File(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file for checksum", goerr.V("path", path))
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", goerr.Wrap(err, "failed to read file for checksum", goerr.V("path", path))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumPath returns the sidecar filename for a package path.
func ChecksumPath(packagePath string) string {
	return packagePath + ".sha1.txt"
}

// WriteChecksum computes the SHA-1 digest of packagePath and persists
// it to the sidecar file, returning the sidecar path.
func WriteChecksum(ctx context.Context, c interfaces.Checksummer, packagePath string) (string, error) {
	digest, err := c.SHA1File(ctx, packagePath)
	if err != nil {
		return "", err
	}
	sidecar := ChecksumPath(packagePath)
	if err := os.WriteFile(sidecar, []byte(digest+"\n"), 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write checksum file", goerr.V("path", sidecar))
	}
	return sidecar, nil
}

// Package npm implements the package-manager collaborator for a
// Node-based application: lockfile freezing via npm shrinkwrap and the
// node runtime version recorded in build provenance.
package npm

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
)

// Lockfile is the file npm shrinkwrap writes.
const Lockfile = "npm-shrinkwrap.json"

type client struct {
	runner interfaces.CommandRunner
}

// New creates a PackageManager backed by the npm and node CLIs.
func New(runner interfaces.CommandRunner) interfaces.PackageManager {
	return &client{runner: runner}
}

func (c *client) Freeze(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "npm", "shrinkwrap"); err != nil {
		return goerr.Wrap(err, "failed to freeze dependency versions")
	}
	return nil
}

func (c *client) LockfilePath() string {
	return Lockfile
}

func (c *client) ToolVersion(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, "node", "--version")
	if err != nil {
		return "", goerr.Wrap(err, "failed to read node version")
	}
	return strings.TrimSpace(result.Output), nil
}

package config

import (
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// Release holds packaging configuration
type Release struct {
	ManifestPath string
	AppName      string
	StagingDir   string
	DistDir      string
	Include      []string
	ExpectTag    string
}

// defaultInclude lists the top-level entries shipped in a release
// package.
var defaultInclude = []string{
	"package.json",
	"npm-shrinkwrap.json",
	"app.js",
	"config.js",
	"node_modules",
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to the package manifest",
			Value:       types.DefaultManifestPath,
			Destination: &c.ManifestPath,
			Sources:     cli.EnvVars("OAE_RELEASE_MANIFEST"),
		},
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Application name the manifest must declare",
			Value:       types.DefaultAppName,
			Destination: &c.AppName,
			Sources:     cli.EnvVars("OAE_RELEASE_APP_NAME"),
		},
		&cli.StringFlag{
			Name:        "staging-dir",
			Usage:       "Directory release files are assembled into",
			Value:       types.DefaultStagingDir,
			Destination: &c.StagingDir,
			Sources:     cli.EnvVars("OAE_RELEASE_STAGING_DIR"),
		},
		&cli.StringFlag{
			Name:        "dist-dir",
			Usage:       "Directory the tarball and checksum are written to",
			Value:       types.DefaultDistDir,
			Destination: &c.DistDir,
			Sources:     cli.EnvVars("OAE_RELEASE_DIST_DIR"),
		},
		&cli.StringSliceFlag{
			Name:        "include",
			Usage:       "Top-level files and directories shipped in the package",
			Value:       defaultInclude,
			Destination: &c.Include,
		},
		&cli.StringFlag{
			Name:        "expect-tag",
			Usage:       "Abort if describe resolves to a different base tag",
			Destination: &c.ExpectTag,
			Sources:     cli.EnvVars("OAE_RELEASE_EXPECT_TAG"),
		},
	}
}

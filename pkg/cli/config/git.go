package config

import (
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// Git holds version-control configuration
type Git struct {
	Remote string
}

// Flags returns CLI flags for git configuration
func (c *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Git remote releases are validated against and pushed to",
			Value:       types.DefaultRemote,
			Destination: &c.Remote,
			Sources:     cli.EnvVars("OAE_RELEASE_REMOTE"),
		},
	}
}

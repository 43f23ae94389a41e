package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func cmdCleanup() *cli.Command {
	var gitCfg config.Git

	return &cli.Command{
		Name:  "cleanup",
		Usage: "Remove the dependency lockfile from version control and push the removal",
		Flags: gitCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			fileCfg.ApplyGit(&gitCfg)

			d := newDeps()
			if err := usecase.NewCleanup(d.git, d.npm, gitCfg.Remote).Cleanup(ctx); err != nil {
				return err
			}

			color.New(color.FgGreen).Println("Lockfile removed from version control")
			return nil
		},
	}
}

package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func cmdVerify() *cli.Command {
	var gitCfg config.Git

	return &cli.Command{
		Name:    "verify",
		Aliases: []string{"v"},
		Usage:   "Validate that the repository is safe to release from",
		Flags:   gitCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			fileCfg.ApplyGit(&gitCfg)

			d := newDeps()
			state, err := usecase.NewValidator(d.git).Validate(ctx, gitCfg.Remote)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Repository on branch %q is clean and in sync with %s\n",
				state.Branch, state.Remote)
			return nil
		},
	}
}

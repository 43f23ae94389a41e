package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func cmdBump() *cli.Command {
	var (
		gitCfg     config.Git
		releaseCfg config.Release
	)

	flags := append(gitCfg.Flags(), releaseCfg.Flags()...)

	return &cli.Command{
		Name:      "bump",
		Usage:     "Validate the repository, bump the manifest version, commit, tag and push",
		ArgsUsage: "<target-version>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			target := c.Args().First()
			if target == "" {
				return goerr.New("target version argument is required")
			}

			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			fileCfg.ApplyGit(&gitCfg)
			fileCfg.ApplyRelease(&releaseCfg)

			d := newDeps()
			uc := usecase.NewBump(
				d.git,
				d.npm,
				usecase.NewValidator(d.git),
				usecase.NewVersionResolver(d.git),
				usecase.NewManifestEditor(releaseCfg.ManifestPath, releaseCfg.AppName),
				gitCfg.Remote,
			)

			result, err := uc.Bump(ctx, target)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Released %s\n", result.TargetVersion)
			return nil
		},
	}
}

package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/infra/archive"
	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func cmdPackage() *cli.Command {
	var releaseCfg config.Release

	return &cli.Command{
		Name:    "package",
		Aliases: []string{"p"},
		Usage:   "Assemble the staging directory and produce the tarball and checksum",
		Flags:   releaseCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			fileCfg.ApplyRelease(&releaseCfg)

			d := newDeps()
			uc := usecase.NewPack(
				d.git,
				d.npm,
				usecase.NewVersionResolver(d.git),
				archive.NewArchiver(),
				archive.NewChecksummer(),
				usecase.PackConfig{
					AppName:    releaseCfg.AppName,
					StagingDir: releaseCfg.StagingDir,
					DistDir:    releaseCfg.DistDir,
					Include:    releaseCfg.Include,
					ExpectTag:  releaseCfg.ExpectTag,
				},
			)

			result, err := uc.Package(ctx)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Packaged %s\n", result.TarballPath)
			return nil
		},
	}
}

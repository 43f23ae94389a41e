package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
	"github.com/oaeproject/oae-release-tools/pkg/infra/archive"
	"github.com/oaeproject/oae-release-tools/pkg/infra/storage"
	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

// cmdRun composes the bump, package and upload stages into one
// invocation. Each stage's precondition is the previous stage's
// postcondition, so a failure anywhere stops the pipeline where it
// stands; there is no rollback.
func cmdRun() *cli.Command {
	var (
		gitCfg     config.Git
		releaseCfg config.Release
		awsCfg     config.AWS
	)

	flags := append(gitCfg.Flags(), releaseCfg.Flags()...)
	flags = append(flags, awsCfg.Flags()...)

	return &cli.Command{
		Name:      "run",
		Usage:     "Run the full release pipeline: bump, package, upload",
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
			fileCfg.ApplyAWS(&awsCfg)

			if awsCfg.Bucket == "" {
				return goerr.New("artifact bucket is not configured",
					goerr.T(types.ErrTagPrecondition))
			}

			// The credential precondition is checked before any
			// destructive stage runs, not just before the upload.
			store, err := storage.New(ctx, awsCfg.Region, awsCfg.AccessKeyID, awsCfg.SecretAccessKey)
			if err != nil {
				return err
			}

			logger := ctxlog.From(ctx)
			d := newDeps()
			resolver := usecase.NewVersionResolver(d.git)

			bumpUC := usecase.NewBump(
				d.git,
				d.npm,
				usecase.NewValidator(d.git),
				resolver,
				usecase.NewManifestEditor(releaseCfg.ManifestPath, releaseCfg.AppName),
				gitCfg.Remote,
			)
			released, err := bumpUC.Bump(ctx, target)
			if err != nil {
				return err
			}
			logger.Info("Bump stage complete", "version", released.TargetVersion)

			packUC := usecase.NewPack(
				d.git,
				d.npm,
				resolver,
				archive.NewArchiver(),
				archive.NewChecksummer(),
				usecase.PackConfig{
					AppName:    releaseCfg.AppName,
					StagingDir: releaseCfg.StagingDir,
					DistDir:    releaseCfg.DistDir,
					Include:    releaseCfg.Include,
					ExpectTag:  released.TargetVersion,
				},
			)
			packaged, err := packUC.Package(ctx)
			if err != nil {
				return err
			}
			logger.Info("Package stage complete", "tarball", packaged.TarballPath)

			uploadUC := usecase.NewUpload(
				d.git,
				resolver,
				store,
				usecase.UploadConfig{
					Bucket:    awsCfg.Bucket,
					ExpectTag: released.TargetVersion,
				},
			)
			uploaded, err := uploadUC.Upload(ctx, packaged.TarballPath, packaged.ChecksumPath)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			green.Printf("Release %s complete\n", released.TargetVersion)
			for _, key := range uploaded.Keys {
				green.Printf("  s3://%s/%s\n", uploaded.Bucket, key)
			}
			return nil
		},
	}
}

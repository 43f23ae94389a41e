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

func cmdUpload() *cli.Command {
	var (
		releaseCfg config.Release
		awsCfg     config.AWS
	)

	flags := append(releaseCfg.Flags(), awsCfg.Flags()...)

	return &cli.Command{
		Name:      "upload",
		Aliases:   []string{"u"},
		Usage:     "Upload the tarball and checksum to the artifact bucket",
		ArgsUsage: "<tarball>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			tarball := c.Args().First()
			if tarball == "" {
				return goerr.New("tarball argument is required")
			}

			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			fileCfg.ApplyRelease(&releaseCfg)
			fileCfg.ApplyAWS(&awsCfg)

			if awsCfg.Bucket == "" {
				return goerr.New("artifact bucket is not configured",
					goerr.T(types.ErrTagPrecondition))
			}

			ctxlog.From(ctx).Debug("Object store configuration", "aws", awsCfg)

			store, err := storage.New(ctx, awsCfg.Region, awsCfg.AccessKeyID, awsCfg.SecretAccessKey)
			if err != nil {
				return err
			}

			d := newDeps()
			uc := usecase.NewUpload(
				d.git,
				usecase.NewVersionResolver(d.git),
				store,
				usecase.UploadConfig{
					Bucket:    awsCfg.Bucket,
					ExpectTag: releaseCfg.ExpectTag,
				},
			)

			result, err := uc.Upload(ctx, tarball, archive.ChecksumPath(tarball))
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			for _, key := range result.Keys {
				green.Printf("Uploaded s3://%s/%s\n", result.Bucket, key)
			}
			return nil
		},
	}
}

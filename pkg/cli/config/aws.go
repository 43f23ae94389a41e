package config

import (
	"github.com/urfave/cli/v3"

	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// AWS holds object-store configuration. The secret is tagged for masq
// so it never reaches log output.
type AWS struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string `masq:"secret"`
}

// Flags returns CLI flags for object-store configuration
func (c *AWS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region of the artifact bucket",
			Value:       "us-east-1",
			Destination: &c.Region,
			Sources:     cli.EnvVars("AWS_REGION"),
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "S3 bucket release artifacts are uploaded to",
			Destination: &c.Bucket,
			Sources:     cli.EnvVars("OAE_RELEASE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "aws-access-key-id",
			Usage:       "Object store access key id",
			Destination: &c.AccessKeyID,
			Sources:     cli.EnvVars(types.EnvAWSAccessKeyID),
		},
		&cli.StringFlag{
			Name:        "aws-secret-access-key",
			Usage:       "Object store secret access key",
			Destination: &c.SecretAccessKey,
			Sources:     cli.EnvVars(types.EnvAWSSecretAccessKey),
		},
	}
}

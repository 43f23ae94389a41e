// Package storage implements the object-store collaborator on Amazon
// S3 using the AWS SDK v2.
package storage

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

type client struct {
	s3Client *s3.Client
}

// New creates an S3-backed ObjectStore using a static credential pair.
// Missing credentials are a precondition failure; no upload is
// attempted without them.
func New(ctx context.Context, region, accessKeyID, secretAccessKey string) (interfaces.ObjectStore, error) {
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, goerr.New("object store credentials are not set",
			goerr.V("required_env", []string{types.EnvAWSAccessKeyID, types.EnvAWSSecretAccessKey}),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS configuration", goerr.T(types.ErrTagInfra))
	}

	return &client{s3Client: s3.NewFromConfig(cfg)}, nil
}

func (c *client) Put(ctx context.Context, bucket, key, localPath string) error {
	logger := ctxlog.From(ctx)

	f, err := os.Open(localPath)
	if err != nil {
		return goerr.Wrap(err, "failed to open artifact for upload",
			goerr.V("path", localPath),
			goerr.T(types.ErrTagUpload),
		)
	}
	defer f.Close()

	logger.Info("Uploading artifact",
		"bucket", bucket,
		"key", key,
		"path", localPath,
	)

	_, err = c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to upload artifact",
			goerr.V("bucket", bucket),
			goerr.V("key", key),
			goerr.T(types.ErrTagUpload),
		)
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
	"github.com/oaeproject/oae-release-tools/pkg/utils/async"
)

// UploadConfig configures the artifact upload stage.
type UploadConfig struct {
	Bucket    string
	ExpectTag string
}

type upload struct {
	git      interfaces.GitClient
	resolver interfaces.VersionResolver
	store    interfaces.ObjectStore
	cfg      UploadConfig
}

// NewUpload creates the artifact-upload use case.
func NewUpload(
	git interfaces.GitClient,
	resolver interfaces.VersionResolver,
	store interfaces.ObjectStore,
	cfg UploadConfig,
) interfaces.UploadUseCase {
	return &upload{
		git:      git,
		resolver: resolver,
		store:    store,
		cfg:      cfg,
	}
}

// Upload stores the tarball and its checksum sidecar under a key
// derived from the major.minor portion of the resolved tag, so patch
// releases share a directory. The upload is the one asynchronous
// boundary of the pipeline: each transfer is dispatched and awaited to
// completion before the stage is considered done.
func (uc *upload) Upload(ctx context.Context, tarballPath, checksumPath string) (*model.UploadResult, error) {
	logger := ctxlog.From(ctx)

	raw, err := uc.git.Describe(ctx, uc.cfg.ExpectTag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve release version")
	}
	descriptor, err := uc.resolver.ParseDescribe(raw, uc.cfg.ExpectTag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse describe output")
	}

	tag, err := semver.NewVersion(descriptor.Tag)
	if err != nil {
		return nil, goerr.Wrap(err, "resolved tag is not a version",
			goerr.V("tag", descriptor.Tag),
			goerr.T(types.ErrTagPrecondition),
		)
	}
	prefix := fmt.Sprintf("%d.%d", tag.Major(), tag.Minor())

	result := &model.UploadResult{Bucket: uc.cfg.Bucket}
	for _, path := range []string{tarballPath, checksumPath} {
		key := prefix + "/" + filepath.Base(path)

		done := async.Await(ctx, func(ctx context.Context) error {
			return uc.store.Put(ctx, uc.cfg.Bucket, key, path)
		})
		if err := <-done; err != nil {
			return nil, goerr.Wrap(err, "artifact upload failed",
				goerr.V("key", key),
				goerr.T(types.ErrTagUpload),
			)
		}

		result.Keys = append(result.Keys, key)
		logger.Info("Artifact uploaded", "bucket", uc.cfg.Bucket, "key", key)
	}

	return result, nil
}

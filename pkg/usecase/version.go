package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// describeSuffix matches the "-<commits>-g<hash>" suffix git describe
// appends when the working copy is past the nearest tag.
var describeSuffix = regexp.MustCompile(`-(\d+)-g([0-9a-f]+)$`)

type versionResolver struct {
	git interfaces.GitClient
}

// NewVersionResolver creates a VersionResolver.
func NewVersionResolver(git interfaces.GitClient) interfaces.VersionResolver {
	return &versionResolver{git: git}
}

// ParseDescribe parses raw describe output of the form
// <tag>[-<commits>-g<hash>]. The suffix is matched from the right so
// tags containing hyphens resolve correctly; a tag that itself ends in
// "-<n>-g<hex>" is indistinguishable from describe output and will
// mis-parse.
func (r *versionResolver) ParseDescribe(raw, expectTag string) (*model.VersionDescriptor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, goerr.New("describe output is empty")
	}

	descriptor := &model.VersionDescriptor{Tag: raw}
	if m := describeSuffix.FindStringSubmatch(raw); m != nil {
		commits, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid commit distance in describe output",
				goerr.V("raw", raw))
		}
		descriptor.Tag = raw[:len(raw)-len(m[0])]
		descriptor.CommitsAhead = commits
		descriptor.Hash = m[2]
	}

	if expectTag != "" && descriptor.Tag != expectTag {
		return nil, goerr.New("describe resolved to an unexpected tag",
			goerr.V("expected", expectTag),
			goerr.V("resolved", descriptor.Tag),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	return descriptor, nil
}

// ValidateTarget gates a proposed target version: it must be valid
// semver, strictly greater than current, and not yet tagged on the
// remote. No mutation occurs on success.
func (r *versionResolver) ValidateTarget(ctx context.Context, current, target, remote string) (*model.ReleaseTarget, error) {
	logger := ctxlog.From(ctx)

	targetVersion, err := semver.StrictNewVersion(target)
	if err != nil {
		return nil, goerr.Wrap(err, "target version is not valid semver",
			goerr.V("target", target),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	currentVersion, err := semver.StrictNewVersion(current)
	if err != nil {
		return nil, goerr.Wrap(err, "current version is not valid semver",
			goerr.V("current", current),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	if !targetVersion.GreaterThan(currentVersion) {
		return nil, goerr.New("target version must be strictly greater than the current version",
			goerr.V("current", current),
			goerr.V("target", target),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	exists, err := r.git.RemoteTagExists(ctx, remote, target)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check remote for existing tag",
			goerr.V("remote", remote),
			goerr.V("tag", target),
		)
	}
	if exists {
		return nil, goerr.New("remote already carries a tag for the target version",
			goerr.V("remote", remote),
			goerr.V("tag", target),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	logger.Info("Target version validated",
		"current", current,
		"target", target,
		"remote", remote,
	)

	return &model.ReleaseTarget{
		CurrentVersion: current,
		TargetVersion:  target,
		RemoteName:     remote,
	}, nil
}

// Package git implements the GitClient interface by shelling out to
// the git CLI through the command runner.
package git

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

type client struct {
	runner interfaces.CommandRunner
}

// New creates a GitClient backed by the git CLI.
func New(runner interfaces.CommandRunner) interfaces.GitClient {
	return &client{runner: runner}
}

func (c *client) git(ctx context.Context, args ...string) (*model.CommandResult, error) {
	return c.runner.Run(ctx, "git", args...)
}

// mustGit runs a git command where any non-zero exit is a failure.
func (c *client) mustGit(ctx context.Context, msg string, args ...string) (string, error) {
	result, err := c.git(ctx, args...)
	if err != nil {
		return "", goerr.Wrap(err, msg)
	}
	return strings.TrimSpace(result.Output), nil
}

// boolGit runs a git command whose exit code 1 is an answer rather
// than a failure (the --quiet diff family). It returns true on exit 0,
// false on exit 1, and an error otherwise.
func (c *client) boolGit(ctx context.Context, msg string, args ...string) (bool, error) {
	result, err := c.git(ctx, args...)
	if err == nil {
		return true, nil
	}
	if result != nil && result.ExitCode == 1 {
		return false, nil
	}
	return false, goerr.Wrap(err, msg)
}

func (c *client) Status(ctx context.Context) error {
	// Refreshes the cached stat information so the diff checks below
	// see the current working tree.
	if _, err := c.git(ctx, "status", "--porcelain"); err != nil {
		return goerr.Wrap(err, "git status failed", goerr.T(types.ErrTagInfra))
	}
	return nil
}

func (c *client) DiffFilesClean(ctx context.Context) (bool, error) {
	return c.boolGit(ctx, "failed to diff working tree against index", "diff-files", "--quiet")
}

func (c *client) DiffIndexClean(ctx context.Context) (bool, error) {
	return c.boolGit(ctx, "failed to diff index against HEAD", "diff-index", "--quiet", "HEAD")
}

func (c *client) CurrentBranch(ctx context.Context) (string, error) {
	result, err := c.git(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		// Exit 1 means no symbolic ref resolves, i.e. detached HEAD.
		if result != nil && result.ExitCode == 1 {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to resolve current branch")
	}
	return strings.TrimSpace(result.Output), nil
}

func (c *client) Fetch(ctx context.Context, remote string) error {
	if _, err := c.git(ctx, "fetch", remote); err != nil {
		return goerr.Wrap(err, "failed to fetch from remote", goerr.V("remote", remote))
	}
	return nil
}

func (c *client) TipsMatch(ctx context.Context, remote, branch string) (bool, error) {
	local, err := c.mustGit(ctx, "failed to resolve local branch tip", "rev-parse", branch)
	if err != nil {
		return false, err
	}
	tracked, err := c.mustGit(ctx, "failed to resolve remote branch tip", "rev-parse", remote+"/"+branch)
	if err != nil {
		return false, err
	}
	return local == tracked, nil
}

func (c *client) Describe(ctx context.Context, matchTag string) (string, error) {
	args := []string{"describe"}
	if matchTag != "" {
		args = append(args, "--match", matchTag)
	}
	return c.mustGit(ctx, "failed to describe working copy", args...)
}

func (c *client) RemoteTagExists(ctx context.Context, remote, tag string) (bool, error) {
	out, err := c.mustGit(ctx, "failed to list remote tags",
		"ls-remote", "--tags", remote, "refs/tags/"+tag)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (c *client) Add(ctx context.Context, path string) error {
	_, err := c.mustGit(ctx, "failed to stage file", "add", path)
	return err
}

func (c *client) Commit(ctx context.Context, message string) error {
	_, err := c.mustGit(ctx, "failed to commit", "commit", "-m", message)
	return err
}

func (c *client) Tag(ctx context.Context, name, message string) error {
	_, err := c.mustGit(ctx, "failed to create tag", "tag", "-a", name, "-m", message)
	return err
}

func (c *client) Push(ctx context.Context, remote, ref string) error {
	_, err := c.mustGit(ctx, "failed to push", "push", remote, ref)
	return err
}

func (c *client) Remove(ctx context.Context, path string) error {
	_, err := c.mustGit(ctx, "failed to remove file from version control", "rm", path)
	return err
}

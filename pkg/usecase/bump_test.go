package usecase_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func TestBump_HappyPath(t *testing.T) {
	ctx := context.Background()

	path := writeManifest(t, `{
  "name": "Hilary",
  "version": "3.2.0"
}
`)
	mockGit := &MockGitClient{}
	mockPM := &MockPackageManager{}
	editor := usecase.NewManifestEditor(path, "Hilary")

	uc := usecase.NewBump(
		mockGit,
		mockPM,
		usecase.NewValidator(mockGit),
		usecase.NewVersionResolver(mockGit),
		editor,
		"origin",
	)

	result, err := uc.Bump(ctx, "3.3.0")
	gt.NoError(t, err)
	gt.Equal(t, result.CurrentVersion, "3.2.0")
	gt.Equal(t, result.TargetVersion, "3.3.0")

	// Manifest was rewritten on disk.
	content, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.String(t, string(content)).Contains(`"version": "3.3.0"`)

	// Lockfile was frozen once.
	gt.Equal(t, mockPM.FreezeCalls, 1)

	// Mutating git operations ran in order: validation fetch, staging,
	// commit, tag, branch push, tag push.
	gt.Equal(t, mockGit.Calls, []string{
		"status",
		"fetch origin",
		"add " + path,
		"add npm-shrinkwrap.json",
		"commit Release 3.3.0",
		"tag 3.3.0",
		"push origin release",
		"push origin 3.3.0",
	})
}

func TestBump_DirtyWorktreeAbortsBeforeMutation(t *testing.T) {
	ctx := context.Background()

	original := `{
  "name": "Hilary",
  "version": "3.2.0"
}
`
	path := writeManifest(t, original)
	mockGit := &MockGitClient{
		DiffFilesCleanFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	mockPM := &MockPackageManager{}

	uc := usecase.NewBump(
		mockGit,
		mockPM,
		usecase.NewValidator(mockGit),
		usecase.NewVersionResolver(mockGit),
		usecase.NewManifestEditor(path, "Hilary"),
		"origin",
	)

	_, err := uc.Bump(ctx, "3.3.0")
	gt.Error(t, err)

	// The pipeline aborted before any manifest mutation.
	content, readErr := os.ReadFile(path)
	gt.NoError(t, readErr)
	gt.Equal(t, string(content), original)
	gt.Equal(t, mockPM.FreezeCalls, 0)
}

func TestBump_TagCollisionAbortsBeforeMutation(t *testing.T) {
	ctx := context.Background()

	original := `{
  "name": "Hilary",
  "version": "3.2.0"
}
`
	path := writeManifest(t, original)
	mockGit := &MockGitClient{
		RemoteTagExistsFunc: func(ctx context.Context, remote, tag string) (bool, error) {
			return true, nil
		},
	}

	uc := usecase.NewBump(
		mockGit,
		&MockPackageManager{},
		usecase.NewValidator(mockGit),
		usecase.NewVersionResolver(mockGit),
		usecase.NewManifestEditor(path, "Hilary"),
		"origin",
	)

	_, err := uc.Bump(ctx, "3.3.0")
	gt.Error(t, err)

	content, readErr := os.ReadFile(path)
	gt.NoError(t, readErr)
	gt.Equal(t, string(content), original)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func TestValidator_CleanRepository(t *testing.T) {
	ctx := context.Background()
	mockGit := &MockGitClient{}

	state, err := usecase.NewValidator(mockGit).Validate(ctx, "origin")
	gt.NoError(t, err)
	gt.Equal(t, state.Branch, "release")
	gt.Equal(t, state.Remote, "origin")
	gt.True(t, state.WorktreeClean)
	gt.True(t, state.IndexClean)
	gt.True(t, state.InSyncWithRemote)

	// The remote was actually fetched before comparing tips.
	gt.Equal(t, mockGit.Calls, []string{"status", "fetch origin"})
}

func TestValidator_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		mock *MockGitClient
	}{
		{
			name: "Git itself broken",
			mock: &MockGitClient{
				StatusFunc: func(ctx context.Context) error {
					return errors.New("not a git repository")
				},
			},
		},
		{
			name: "Unstaged changes",
			mock: &MockGitClient{
				DiffFilesCleanFunc: func(ctx context.Context) (bool, error) {
					return false, nil
				},
			},
		},
		{
			name: "Staged but uncommitted changes",
			mock: &MockGitClient{
				DiffIndexCleanFunc: func(ctx context.Context) (bool, error) {
					return false, nil
				},
			},
		},
		{
			name: "Detached HEAD",
			mock: &MockGitClient{
				CurrentBranchFunc: func(ctx context.Context) (string, error) {
					return "", nil
				},
			},
		},
		{
			name: "Remote unreachable",
			mock: &MockGitClient{
				FetchFunc: func(ctx context.Context, remote string) error {
					return errors.New("could not resolve host")
				},
			},
		},
		{
			name: "Diverged from remote",
			mock: &MockGitClient{
				TipsMatchFunc: func(ctx context.Context, remote, branch string) (bool, error) {
					return false, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := usecase.NewValidator(tt.mock).Validate(ctx, "origin")
			gt.Error(t, err)
			gt.Equal(t, state, nil)
		})
	}
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func TestVersionResolver_ParseDescribe(t *testing.T) {
	resolver := usecase.NewVersionResolver(&MockGitClient{})

	tests := []struct {
		name        string
		raw         string
		expectTag   string
		wantErr     bool
		wantTag     string
		wantCommits int
		wantHash    string
	}{
		{
			name:    "Exact tag",
			raw:     "3.2.0",
			wantTag: "3.2.0",
		},
		{
			name:        "Tag with commits and hash",
			raw:         "3.2.0-14-g2aef91c",
			wantTag:     "3.2.0",
			wantCommits: 14,
			wantHash:    "2aef91c",
		},
		{
			name:        "Hyphenated tag with suffix",
			raw:         "3.2.0-rc1-3-gdeadbee",
			wantTag:     "3.2.0-rc1",
			wantCommits: 3,
			wantHash:    "deadbee",
		},
		{
			name:    "Hyphenated tag without suffix",
			raw:     "3.2.0-rc1",
			wantTag: "3.2.0-rc1",
		},
		{
			name:    "Trailing whitespace trimmed",
			raw:     "3.2.0\n",
			wantTag: "3.2.0",
		},
		{
			name:        "Expected tag matches",
			raw:         "3.3.0-1-gabc1234",
			expectTag:   "3.3.0",
			wantTag:     "3.3.0",
			wantCommits: 1,
			wantHash:    "abc1234",
		},
		{
			name:      "Expected tag mismatch",
			raw:       "3.2.0-1-gabc1234",
			expectTag: "3.3.0",
			wantErr:   true,
		},
		{
			name:    "Empty output",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor, err := resolver.ParseDescribe(tt.raw, tt.expectTag)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, descriptor.Tag, tt.wantTag)
			gt.Equal(t, descriptor.CommitsAhead, tt.wantCommits)
			gt.Equal(t, descriptor.Hash, tt.wantHash)
			gt.Equal(t, descriptor.AtTag(), tt.wantHash == "")
		})
	}
}

func TestVersionResolver_ParseDescribe_Roundtrip(t *testing.T) {
	resolver := usecase.NewVersionResolver(&MockGitClient{})

	for _, raw := range []string{"3.2.0", "3.2.0-14-g2aef91c", "0.1.0-rc2-7-g0012abc"} {
		descriptor, err := resolver.ParseDescribe(raw, "")
		gt.NoError(t, err)
		gt.Equal(t, descriptor.String(), raw)
	}
}

func TestVersionResolver_ValidateTarget(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		current   string
		target    string
		tagExists bool
		wantErr   bool
	}{
		{
			name:    "Valid increment",
			current: "3.2.0",
			target:  "3.3.0",
		},
		{
			name:    "Patch increment",
			current: "3.2.0",
			target:  "3.2.1",
		},
		{
			name:    "Not semver",
			current: "3.2.0",
			target:  "1.2",
			wantErr: true,
		},
		{
			name:    "Garbage target",
			current: "3.2.0",
			target:  "abc",
			wantErr: true,
		},
		{
			name:    "Equal to current",
			current: "2.1.0",
			target:  "2.1.0",
			wantErr: true,
		},
		{
			name:    "Lower than current",
			current: "2.1.0",
			target:  "2.0.9",
			wantErr: true,
		},
		{
			name:    "Pre-release below release",
			current: "2.1.0",
			target:  "2.1.1-alpha.1",
		},
		{
			name:      "Tag collision on remote",
			current:   "3.2.0",
			target:    "3.3.0",
			tagExists: true,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGit := &MockGitClient{
				RemoteTagExistsFunc: func(ctx context.Context, remote, tag string) (bool, error) {
					gt.Equal(t, remote, "origin")
					gt.Equal(t, tag, tt.target)
					return tt.tagExists, nil
				},
			}
			resolver := usecase.NewVersionResolver(mockGit)

			result, err := resolver.ValidateTarget(ctx, tt.current, tt.target, "origin")
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, result.CurrentVersion, tt.current)
			gt.Equal(t, result.TargetVersion, tt.target)
			gt.Equal(t, result.RemoteName, "origin")
		})
	}
}

package usecase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/oaeproject/oae-release-tools/pkg/usecase"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestManifestEditor_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "Valid manifest",
			content: `{"name": "Hilary", "version": "3.2.0"}`,
		},
		{
			name:    "Malformed JSON",
			content: `{"name": "Hilary", "version": `,
			wantErr: true,
		},
		{
			name:    "Name mismatch",
			content: `{"name": "other-app", "version": "3.2.0"}`,
			wantErr: true,
		},
		{
			name:    "Invalid version",
			content: `{"name": "Hilary", "version": "3.2"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			editor := usecase.NewManifestEditor(path, "Hilary")

			manifest, err := editor.Load()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, manifest.Name, "Hilary")
			gt.Equal(t, manifest.Version, "3.2.0")
		})
	}
}

func TestManifestEditor_Load_MissingFile(t *testing.T) {
	editor := usecase.NewManifestEditor(filepath.Join(t.TempDir(), "package.json"), "Hilary")
	_, err := editor.Load()
	gt.Error(t, err)
}

func TestManifestEditor_RewriteVersion(t *testing.T) {
	path := writeManifest(t, `{
  "name": "Hilary",
  "version": "1.0.0",
  "dependencies": {}
}
`)
	editor := usecase.NewManifestEditor(path, "Hilary")

	gt.NoError(t, editor.RewriteVersion("1.0.0", "1.1.0"))

	content, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.String(t, string(content)).Contains(`"version": "1.1.0"`)
	gt.True(t, !strings.Contains(string(content), `"version": "1.0.0"`))
}

func TestManifestEditor_RewriteVersion_NoMatch(t *testing.T) {
	original := `{
  "name": "Hilary",
  "version":"1.0.0"
}
`
	path := writeManifest(t, original)
	editor := usecase.NewManifestEditor(path, "Hilary")

	// The version field uses unexpected formatting, so the textual
	// rewrite must fail rather than silently succeed.
	gt.Error(t, editor.RewriteVersion("1.0.0", "1.1.0"))

	content, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.Equal(t, string(content), original)
}

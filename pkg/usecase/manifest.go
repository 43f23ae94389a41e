package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/model"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// ManifestEditor loads and rewrites the package manifest.
type ManifestEditor struct {
	path    string
	appName string
}

// NewManifestEditor creates a manifest editor for the manifest at path
// that is expected to describe appName.
func NewManifestEditor(path, appName string) *ManifestEditor {
	return &ManifestEditor{path: path, appName: appName}
}

// Load reads and validates the manifest: it must exist, be valid JSON,
// carry the expected application name and a valid semver version.
func (m *ManifestEditor) Load() (*model.Manifest, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read package manifest",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	var manifest model.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, goerr.Wrap(err, "package manifest is not valid JSON",
			goerr.V("path", m.path),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	if manifest.Name != m.appName {
		return nil, goerr.New("package manifest does not describe the expected application",
			goerr.V("expected", m.appName),
			goerr.V("actual", manifest.Name),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	if _, err := semver.StrictNewVersion(manifest.Version); err != nil {
		return nil, goerr.Wrap(err, "package manifest version is not valid semver",
			goerr.V("version", manifest.Version),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	return &manifest, nil
}

// RewriteVersion replaces the manifest's version field in place via a
// textual substitution. A rewrite that matches nothing is a hard
// failure and leaves the file untouched: the source text drifted from
// the expected formatting and silently succeeding would hide it.
func (m *ManifestEditor) RewriteVersion(from, to string) error {
	info, err := os.Stat(m.path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat package manifest", goerr.V("path", m.path))
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read package manifest", goerr.V("path", m.path))
	}

	oldField := fmt.Sprintf("%q: %q", "version", from)
	newField := fmt.Sprintf("%q: %q", "version", to)

	content := string(data)
	if !strings.Contains(content, oldField) {
		return goerr.New("manifest rewrite matched nothing",
			goerr.V("path", m.path),
			goerr.V("expected", oldField),
			goerr.T(types.ErrTagNoopRewrite),
		)
	}

	rewritten := strings.Replace(content, oldField, newField, 1)
	if err := os.WriteFile(m.path, []byte(rewritten), info.Mode()); err != nil {
		return goerr.Wrap(err, "failed to write package manifest", goerr.V("path", m.path))
	}

	return nil
}

// Path returns the manifest location.
func (m *ManifestEditor) Path() string {
	return m.path
}

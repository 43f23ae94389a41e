package cli

import (
	"github.com/oaeproject/oae-release-tools/pkg/cli/config"
	"github.com/oaeproject/oae-release-tools/pkg/domain/interfaces"
	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
	"github.com/oaeproject/oae-release-tools/pkg/infra/exec"
	"github.com/oaeproject/oae-release-tools/pkg/infra/git"
	"github.com/oaeproject/oae-release-tools/pkg/infra/npm"
)

// deps bundles the external collaborators every command builds the
// same way.
type deps struct {
	git interfaces.GitClient
	npm interfaces.PackageManager
}

func newDeps() *deps {
	runner := exec.New()
	return &deps{
		git: git.New(runner),
		npm: npm.New(runner),
	}
}

// loadFileConfig reads the optional repo-local config file.
func loadFileConfig() (*config.File, error) {
	return config.LoadFile(types.DefaultConfigFile)
}

package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/oaeproject/oae-release-tools/pkg/domain/types"
)

// File holds repo-local release defaults read from .release.toml.
// Flags and environment variables take precedence; file values only
// fill in settings left at their zero value or built-in default.
type File struct {
	Remote     string `toml:"remote"`
	Bucket     string `toml:"bucket"`
	Region     string `toml:"region"`
	AppName    string `toml:"app_name"`
	Manifest   string `toml:"manifest"`
	StagingDir string `toml:"staging_dir"`
	DistDir    string `toml:"dist_dir"`
	ExpectTag  string `toml:"expect_tag"`
}

// LoadFile reads the config file at path. A missing file is not an
// error; it yields an empty File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read release config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse release config file", goerr.V("path", path))
	}
	return &f, nil
}

// ApplyGit fills unset (or still-default) git settings from the file.
func (f *File) ApplyGit(gitCfg *Git) {
	if f.Remote != "" && gitCfg.Remote == types.DefaultRemote {
		gitCfg.Remote = f.Remote
	}
}

// ApplyRelease fills unset (or still-default) packaging settings from
// the file.
func (f *File) ApplyRelease(releaseCfg *Release) {
	if f.AppName != "" && releaseCfg.AppName == types.DefaultAppName {
		releaseCfg.AppName = f.AppName
	}
	if f.Manifest != "" && releaseCfg.ManifestPath == types.DefaultManifestPath {
		releaseCfg.ManifestPath = f.Manifest
	}
	if f.StagingDir != "" && releaseCfg.StagingDir == types.DefaultStagingDir {
		releaseCfg.StagingDir = f.StagingDir
	}
	if f.DistDir != "" && releaseCfg.DistDir == types.DefaultDistDir {
		releaseCfg.DistDir = f.DistDir
	}
	if f.ExpectTag != "" && releaseCfg.ExpectTag == "" {
		releaseCfg.ExpectTag = f.ExpectTag
	}
}

// ApplyAWS fills unset object-store settings from the file.
func (f *File) ApplyAWS(awsCfg *AWS) {
	if f.Bucket != "" && awsCfg.Bucket == "" {
		awsCfg.Bucket = f.Bucket
	}
	if f.Region != "" && awsCfg.Region == "us-east-1" {
		awsCfg.Region = f.Region
	}
}

package model

// PackageResult describes the artifacts produced by the packaging
// stage.
type PackageResult struct {
	Version      string // Describe-derived version the artifacts were built from
	StagingDir   string
	TarballPath  string
	ChecksumPath string
}

// UploadResult describes where the release artifacts were stored.
type UploadResult struct {
	Bucket string
	Keys   []string
}

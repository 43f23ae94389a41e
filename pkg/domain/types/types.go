package types

// Version is the oae-release tool version
const Version = "0.3.0"

// Environment variable names for the object store credential pair
const (
	EnvAWSAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
)

// Defaults for release configuration
const (
	DefaultRemote       = "origin"
	DefaultManifestPath = "package.json"
	DefaultAppName      = "Hilary"
	DefaultStagingDir   = "dist/oae"
	DefaultDistDir      = "dist"
	DefaultConfigFile   = ".release.toml"
)

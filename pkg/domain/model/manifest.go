package model

// Manifest is the subset of the package manifest the release process
// cares about.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

package model

// BuildInfo is the provenance record written alongside the staged
// release files as build-info.json.
type BuildInfo struct {
	Version     string `json:"version"`
	ToolVersion string `json:"toolVersion"`
	Platform    string `json:"platform"`
}

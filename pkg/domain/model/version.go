package model

import (
	"fmt"
	"strconv"
)

// VersionDescriptor is the parsed form of a git-describe result.
// The working copy is either exactly at Tag, or CommitsAhead commits
// past it at the abbreviated commit Hash (leading "g" stripped).
type VersionDescriptor struct {
	Tag          string
	CommitsAhead int
	Hash         string
}

// AtTag reports whether the working copy is exactly at the tag.
func (d *VersionDescriptor) AtTag() bool {
	return d.Hash == ""
}

// String reconstructs the describe form of the descriptor.
func (d *VersionDescriptor) String() string {
	if d.AtTag() {
		return d.Tag
	}
	return d.Tag + "-" + strconv.Itoa(d.CommitsAhead) + "-g" + d.Hash
}

// ReleaseTarget is a validated version transition: TargetVersion is
// strictly greater than CurrentVersion and does not yet exist as a tag
// on RemoteName.
type ReleaseTarget struct {
	CurrentVersion string
	TargetVersion  string
	RemoteName     string
}

func (t *ReleaseTarget) String() string {
	return fmt.Sprintf("%s -> %s (remote %s)", t.CurrentVersion, t.TargetVersion, t.RemoteName)
}

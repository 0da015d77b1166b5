// Package gutterpad carries the module version. The editor component lives
// in the editor package and the document model in buffer.
package gutterpad

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the SemVer string from the VERSION file, without "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Build describes the running binary.
type Build struct {
	Version   string
	Revision  string
	Dirty     bool
	GoVersion string
}

// String formats b for `gutterpad version`, e.g. "v0.1.0 (abc1234, dirty) go1.25.7".
func (b Build) String() string {
	var sb strings.Builder
	sb.WriteString("v" + b.Version)
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		sb.WriteString(" (" + rev)
		if b.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	if b.GoVersion != "" {
		sb.WriteString(" " + b.GoVersion)
	}
	return sb.String()
}

// BuildInfo combines Version with the VCS stamp the Go toolchain embeds,
// when present.
func BuildInfo() Build {
	b := Build{Version: Version()}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	return b
}

package installer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SanitizeBaseName derives a filesystem-safe base name from a project
// name: every run of characters outside [A-Za-z0-9_-] collapses into a
// single underscore. An empty or fully-unsafe name falls back to
// "installer".
func SanitizeBaseName(name string) string {
	base := unsafeNameChars.ReplaceAllString(name, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		return "installer"
	}
	return base
}

// ArtifactFileName builds the suggested download name:
// <sanitizedName>-<version>-installer.<ext>.
func ArtifactFileName(name, version string, platform Platform) string {
	return fmt.Sprintf("%s-%s-installer%s", SanitizeBaseName(name), version, platform.Extension())
}

// NewArtifactID mints an artifact identifier from the current time and a
// random suffix. Not cryptographically unique; collisions are not
// expected under reasonable concurrent load, which is enough for scratch
// files.
func NewArtifactID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

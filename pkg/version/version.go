package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build variables to be set via ldflags during compilation:
// -X 'github.com/anvilbuild/anvil/pkg/version.Version=v1.0.0'
// -X 'github.com/anvilbuild/anvil/pkg/version.CommitHash=abc123'
// -X 'github.com/anvilbuild/anvil/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	// Version is the semantic version of the binary (e.g., "1.0.0")
	Version = "0.0.0-dev"
	// CommitHash is the git commit hash used to build the binary
	CommitHash = "unknown"
	// BuildDate is the timestamp when the binary was built (RFC3339 format)
	BuildDate = "unknown"
)

// Info returns build information in a structured format
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

// GetVersion returns just the version string
func GetVersion() string {
	return Version
}

// Satisfies reports whether the running tool version satisfies the given
// minimum version requirement. Prerelease builds (running from source)
// satisfy every requirement. An unparsable requirement is an error; the
// caller decides whether that is fatal.
func Satisfies(minVersion string) (bool, error) {
	if minVersion == "" {
		return true, nil
	}
	minimum, err := semver.NewVersion(minVersion)
	if err != nil {
		return false, fmt.Errorf("invalid min_version %q: %w", minVersion, err)
	}
	current, err := semver.NewVersion(Version)
	if err != nil {
		// ldflags were not applied; treat the build as unversioned.
		return true, nil
	}
	if current.Prerelease() != "" {
		return true, nil
	}
	return !current.LessThan(minimum), nil
}

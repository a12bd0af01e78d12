package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCLIVersion enforces the manifest's min_cli_version gate against
// the running build. Dev builds (non-semver versions such as "dev")
// bypass the gate.
func CheckCLIVersion(m *Manifest, cliVersion string) error {
	if m.MinCLIVersion == "" {
		return nil
	}

	current, err := parseSemver(cliVersion)
	if err != nil {
		return nil // dev build, no meaningful version to compare
	}

	required, err := parseSemver(m.MinCLIVersion)
	if err != nil {
		return fmt.Errorf("manifest %s has invalid min_cli_version %q: %w", m.Name, m.MinCLIVersion, err)
	}

	if current.LessThan(required) {
		return fmt.Errorf("kit %s requires CLI version %s or newer (have %s)", m.Name, m.MinCLIVersion, cliVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}

package suppress

import "scagate/cli/internal/erruser"

// Policy selects the behavior when the suppression file does not exist.
type Policy string

const (
	// PolicyPass bypasses matching entirely: every diagnostic line is
	// echoed unchanged and the run always succeeds. An escape hatch for
	// targets nobody has curated a suppression file for yet.
	PolicyPass Policy = "pass"
	// PolicyEmpty proceeds with an empty pattern sequence, so every
	// diagnostic line is a new finding.
	PolicyEmpty Policy = "empty"
	// PolicyError aborts the run before any diagnostics are read.
	PolicyError Policy = "error"
)

// ParsePolicy validates s as a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyPass, PolicyEmpty, PolicyError:
		return Policy(s), nil
	}
	return "", erruser.New("Invalid file-not-found policy; use pass, empty, or error.", nil)
}

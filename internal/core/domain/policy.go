package domain

import (
	"math"
	"strings"

	"go.trai.ch/zerr"
)

// Policy selects how a file's modification time is compared against a checkpoint.
// It is a property of the host file system and is chosen once at startup.
type Policy uint8

const (
	// PolicyDefault treats a file as newer when mtime >= checkpoint.
	PolicyDefault Policy = iota
	// PolicyCoarse is used on file systems that store whole-second modification times.
	// The mtime is rounded up and the checkpoint rounded down before comparing.
	PolicyCoarse
)

// Policy names accepted in configuration.
const (
	PolicyNameAuto    = "auto"
	PolicyNameDefault = "default"
	PolicyNameCoarse  = "coarse"
)

// IsNewer reports whether a file modified at mtime must be considered changed since checkpoint.
// Ties count as changed: reprocessing an unchanged file is preferred over missing a change.
func (p Policy) IsNewer(mtime, checkpoint Timestamp) bool {
	if p == PolicyCoarse {
		return math.Ceil(float64(mtime)) >= math.Floor(float64(checkpoint))
	}
	return mtime >= checkpoint
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyCoarse:
		return PolicyNameCoarse
	default:
		return PolicyNameDefault
	}
}

// ParsePolicy resolves a configured policy name. "auto" (or an empty name) picks the
// policy suited to the given GOOS.
func ParsePolicy(name, goos string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyNameAuto:
		return DetectPolicy(goos), nil
	case PolicyNameDefault:
		return PolicyDefault, nil
	case PolicyNameCoarse:
		return PolicyCoarse, nil
	default:
		return PolicyDefault, zerr.With(ErrInvalidPolicy, "policy", name)
	}
}

// DetectPolicy returns the policy for the host operating system. macOS volumes may be
// HFS+, which truncates modification times to whole seconds.
func DetectPolicy(goos string) Policy {
	if goos == "darwin" {
		return PolicyCoarse
	}
	return PolicyDefault
}

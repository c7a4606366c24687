// Package version reports build information and checks the nomenclature
// version against semantic version constraints.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/nomenclature"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash   string `json:"commit_hash" yaml:"commit_hash" toml:"commit_hash"`
	BuildTime    string `json:"build_time" yaml:"build_time" toml:"build_time"`
	Version      string `json:"version" yaml:"version" toml:"version"`
	Nomenclature string `json:"nomenclature" yaml:"nomenclature" toml:"nomenclature"`
	GoVersion    string `json:"go_version" yaml:"go_version" toml:"go_version"`
	Platform     string `json:"platform" yaml:"platform" toml:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash:   CommitHash,
		BuildTime:    BuildTime,
		Version:      Version,
		Nomenclature: nomenclature.Version,
		GoVersion:    runtime.Version(),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("can %s (nomenclature %s, commit %s, built %s)", i.Version, i.Nomenclature, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("can dev (nomenclature %s, commit %s, built %s)", i.Nomenclature, i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// CheckNomenclature returns an error unless the nomenclature version
// satisfies constraint, e.g. "^1.0" or ">= 1.0.0, < 2".
func CheckNomenclature(constraint string) error {
	return check(nomenclature.Version, constraint)
}

func check(current, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "invalid version constraint %q: %v", constraint, err),
			"use a constraint like '^1.0' or '>= 1.0.0, < 2'")
	}

	v, err := semver.StrictNewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "nomenclature version %q is not semver", current)
	}

	if ok, reasons := c.Validate(v); !ok {
		err := errors.Newf("nomenclature %s does not satisfy %q", v, constraint)
		for _, r := range reasons {
			err = errors.WithDetail(err, r.Error())
		}
		return err
	}
	return nil
}

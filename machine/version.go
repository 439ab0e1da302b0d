// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

const KernelVersion = "0.3.1"

// BannerVersion formats v for the boot banner: the release triple, with
// "-pre" for prerelease builds.
func BannerVersion(v string) (string, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("kernel version %q: %w", v, err)
	}
	s := fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
	if sv.Prerelease() != "" {
		s += "-pre"
	}
	return s, nil
}

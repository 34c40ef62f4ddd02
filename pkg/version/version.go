// Package version parses the "major.minor" version strings found in audio
// policy configuration files and packs HAL versions into a single integer.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigVersion is the audioPolicyConfiguration document version this
// library understands.
const ConfigVersion = "1.0"

// DefaultHAL is assumed for modules that declare no usable HAL version.
var DefaultHAL = Version{Major: 2, Minor: 0}

// Version represents a parsed "major.minor" version.
type Version struct {
	Major uint8
	Minor uint8
}

// Parse parses a "major.minor" version string.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || parts[0] == "" {
		return Version{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || parts[1] == "" {
		return Version{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major
}

// Encode packs the version the way HAL device API versions are packed:
// major in bits 24-31, minor in bits 16-23.
func (v Version) Encode() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16
}

// Decode unpacks a value produced by Encode.
func Decode(packed uint32) Version {
	return Version{Major: uint8(packed >> 24), Minor: uint8(packed >> 16)}
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

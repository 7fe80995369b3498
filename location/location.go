// Package location models abstract dungeon locations as directory-like
// paths anchored at the hero's home, and the distance between them.
// Translating real filesystem paths into these values is the job of the
// surrounding command layer; the engine only compares and walks them.
package location

import (
	"fmt"
	"strings"
)

// DataDirName is the game's own data directory under home. The easter-egg
// spawn triggers there.
const DataDirName = ".dirquest"

// Location is a canonical path relative to home. Leading ".." components
// represent locations above the home directory.
type Location struct {
	parts []string
}

// Home returns the home location.
func Home() Location {
	return Location{}
}

// Parse builds a location from a "~"-anchored path string, e.g. "~",
// "~/dungeon/crypt" or "~/../tmp".
func Parse(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return Location{}, fmt.Errorf("location must be anchored at home: %q", s)
	}
	loc := Location{}
	for _, part := range strings.Split(strings.TrimPrefix(s, "~"), "/") {
		if part == "" || part == "." {
			continue
		}
		loc = loc.child(part)
	}
	return loc, nil
}

// Navigate resolves a destination string against the current location.
// "~"-anchored strings are absolute; everything else is walked relative
// to the receiver, one component at a time.
func (l Location) Navigate(dest string) (Location, error) {
	dest = strings.TrimSpace(dest)
	if dest == "" || dest == "~" || strings.HasPrefix(dest, "~/") {
		if dest == "" {
			dest = "~"
		}
		return Parse(dest)
	}
	out := l
	for _, part := range strings.Split(dest, "/") {
		if part == "" || part == "." {
			continue
		}
		out = out.child(part)
	}
	return out, nil
}

// child appends one path component, canonicalizing "..".
func (l Location) child(part string) Location {
	parts := append([]string(nil), l.parts...)
	if part == ".." {
		// ".." cancels a named component, or stacks above home.
		if n := len(parts); n > 0 && parts[n-1] != ".." {
			parts = parts[:n-1]
		} else {
			parts = append(parts, "..")
		}
	} else {
		parts = append(parts, part)
	}
	return Location{parts: parts}
}

// Towards returns the location one step closer to dest. Walking first
// ascends out of components not shared with dest, then descends into it.
func (l Location) Towards(dest Location) Location {
	if l.Equal(dest) {
		return l
	}
	common := 0
	for common < len(l.parts) && common < len(dest.parts) && l.parts[common] == dest.parts[common] {
		common++
	}
	if len(l.parts) > common {
		return Location{parts: append([]string(nil), l.parts[:len(l.parts)-1]...)}
	}
	return Location{parts: append(append([]string(nil), l.parts...), dest.parts[common])}
}

// Equal reports whether two locations denote the same place.
func (l Location) Equal(other Location) bool {
	if len(l.parts) != len(other.parts) {
		return false
	}
	for i := range l.parts {
		if l.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// IsHome reports whether this is the home location.
func (l Location) IsHome() bool {
	return len(l.parts) == 0
}

// IsDataDir reports whether this is the game's own data directory.
func (l Location) IsDataDir() bool {
	return len(l.parts) == 1 && l.parts[0] == DataDirName
}

// DistanceFromHome returns how far this location is from home.
func (l Location) DistanceFromHome() Distance {
	return Distance{steps: len(l.parts)}
}

// String renders the canonical "~"-anchored path.
func (l Location) String() string {
	if l.IsHome() {
		return "~"
	}
	return "~/" + strings.Join(l.parts, "/")
}

// Distance is an ordered magnitude: the number of directory steps
// separating a location from home.
type Distance struct {
	steps int
}

// DistanceOf builds a distance directly from a step count. Used by tests
// and by callers that compute remoteness themselves.
func DistanceOf(steps int) Distance {
	if steps < 0 {
		steps = 0
	}
	return Distance{steps: steps}
}

// Len returns the distance as an integer step count.
func (d Distance) Len() int {
	return d.steps
}

// Less reports whether d is strictly closer to home than other.
func (d Distance) Less(other Distance) bool {
	return d.steps < other.steps
}

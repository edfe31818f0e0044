package geomat

import (
	"fmt"
	"strings"
)

// Face selects one of the six sides of an axis-aligned box.
type Face int

// Box faces.
const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// Faces lists every face in declaration order.
var Faces = [...]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

var faceNames = [...]string{"front", "back", "left", "right", "top", "bottom"}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceFront && f <= FaceBottom
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace converts a face name (case-insensitive) to a Face.
func ParseFace(name string) (Face, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range faceNames {
		if n == lower {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown face %q", ErrInvalidParameter, name)
}

package geomat

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestParseFace(t *testing.T) {
	for _, f := range Faces {
		got, err := ParseFace(f.String())
		if err != nil {
			t.Fatalf("ParseFace(%q) failed: %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFace(%q) = %v, want %v", f.String(), got, f)
		}
	}

	if got, err := ParseFace(" TOP "); err != nil || got != FaceTop {
		t.Errorf("ParseFace should ignore case and spaces, got %v, %v", got, err)
	}

	if _, err := ParseFace("diagonal"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestFaceString(t *testing.T) {
	if FaceLeft.String() != "left" {
		t.Errorf("expected left, got %s", FaceLeft.String())
	}
	if Face(42).String() != "Face(42)" {
		t.Errorf("unexpected string for invalid face: %s", Face(42).String())
	}
}

func TestBuildFaceMatrix_Corners(t *testing.T) {
	const w, h = 4.0, 3.0
	o := [3]float64{1, 2, 5}

	tests := []struct {
		face Face
		// Images of shape corners (0,0), (1,0), (0,1).
		want [3][3]float64
	}{
		{FaceFront, [3][3]float64{{1, 2, 5}, {2, 2, 5}, {1, 3, 5}}},
		{FaceBack, [3][3]float64{{5, 2, 5}, {4, 2, 5}, {5, 3, 5}}},
		{FaceBottom, [3][3]float64{{1, 2, 5}, {2, 2, 5}, {1, 2, 6}}},
		{FaceTop, [3][3]float64{{1, 2, 8}, {2, 2, 8}, {1, 2, 7}}},
		{FaceLeft, [3][3]float64{{1, 2, 5}, {1, 2, 6}, {1, 3, 5}}},
		{FaceRight, [3][3]float64{{1, 2, 9}, {1, 2, 8}, {1, 3, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			m, err := BuildFaceMatrix(tt.face, w, h, o)
			if err != nil {
				t.Fatalf("BuildFaceMatrix failed: %v", err)
			}

			corners := [3][2]float64{{0, 0}, {1, 0}, {0, 1}}
			for i, c := range corners {
				x, y, z := m.Apply(c[0], c[1], 0)
				got := [3]float64{x, y, z}
				if got != tt.want[i] {
					t.Errorf("corner %v: got %v, want %v", c, got, tt.want[i])
				}
			}
		})
	}
}

func TestBuildFaceMatrix_FullRectangle(t *testing.T) {
	// A w x h shape on the front face covers [ox, ox+w] x [oy, oy+h].
	m, err := BuildFaceMatrix(FaceFront, 10, 6, [3]float64{0, 0, 0})
	if err != nil {
		t.Fatalf("BuildFaceMatrix failed: %v", err)
	}
	x, y, z := m.Apply(10, 6, 0)
	if x != 10 || y != 6 || z != 0 {
		t.Errorf("far corner: got (%v, %v, %v), want (10, 6, 0)", x, y, z)
	}

	// The back face runs from x = w down to x = 0.
	m, _ = BuildFaceMatrix(FaceBack, 10, 6, [3]float64{0, 0, 0})
	x, _, _ = m.Apply(10, 0, 0)
	if x != 0 {
		t.Errorf("back face far edge: got x=%v, want 0", x)
	}
}

func TestBuildFaceMatrix_Normals(t *testing.T) {
	want := map[Face][3]float64{
		FaceFront:  {0, 0, 1},
		FaceBack:   {0, 0, -1},
		FaceLeft:   {-1, 0, 0},
		FaceRight:  {1, 0, 0},
		FaceTop:    {0, 1, 0},
		FaceBottom: {0, -1, 0},
	}

	for face, n := range want {
		m, err := BuildFaceMatrix(face, 2, 2, [3]float64{3, 4, 5})
		if err != nil {
			t.Fatalf("%v: BuildFaceMatrix failed: %v", face, err)
		}
		if got := m.Normal(); got != n {
			t.Errorf("%v: normal %v, want %v", face, got, n)
		}
	}
}

// The shape's counter-clockwise winding must appear counter-clockwise when
// viewed from outside, i.e. (dx x dy) points along the normal.
func TestBuildFaceMatrix_Orientation(t *testing.T) {
	for _, face := range Faces {
		m, _ := BuildFaceMatrix(face, 1, 1, [3]float64{})
		c := m.Coefficients()
		dx := [3]float64{c[0], c[4], c[8]}
		dy := [3]float64{c[1], c[5], c[9]}
		cross := [3]float64{
			dx[1]*dy[2] - dx[2]*dy[1],
			dx[2]*dy[0] - dx[0]*dy[2],
			dx[0]*dy[1] - dx[1]*dy[0],
		}
		if cross != m.Normal() {
			t.Errorf("%v: dx*dy = %v, normal = %v", face, cross, m.Normal())
		}
	}
}

func TestBuildFaceMatrix_Invalid(t *testing.T) {
	tests := []struct {
		name string
		face Face
		w, h float64
	}{
		{"zero width", FaceFront, 0, 1},
		{"negative height", FaceTop, 1, -2},
		{"nan", FaceLeft, math.NaN(), 1},
		{"inf", FaceLeft, 1, math.Inf(1)},
		{"bad face", Face(9), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFaceMatrix(tt.face, tt.w, tt.h, [3]float64{})
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestFaceMatrixCoefficients(t *testing.T) {
	m, _ := BuildFaceMatrix(FaceBack, 7, 1, [3]float64{1, 2, 3})
	want := [12]float64{
		-1, 0, 0, 8,
		0, 1, 0, 2,
		0, 0, -1, 3,
	}
	if got := m.Coefficients(); got != want {
		t.Errorf("coefficients: got %v, want %v", got, want)
	}
}

func TestIdentityUV(t *testing.T) {
	u, v := IdentityUV().Apply(0.25, 0.75)
	if u != 0.25 || v != 0.75 {
		t.Errorf("identity: got (%v, %v)", u, v)
	}
}

func TestBuildUVMatrix_Rot0(t *testing.T) {
	m, err := BuildUVMatrix([4]float64{0.5, 0.25, 1, 0.75}, Rot0, false)
	if err != nil {
		t.Fatalf("BuildUVMatrix failed: %v", err)
	}
	want := [6]float64{0.5, 0, 0.5, 0, 0.5, 0.25}
	if got := m.Coefficients(); got != want {
		t.Errorf("coefficients: got %v, want %v", got, want)
	}

	u, v := m.Apply(1, 1)
	if u != 1 || v != 0.75 {
		t.Errorf("(1,1) -> (%v, %v), want (1, 0.75)", u, v)
	}
}

func TestBuildUVMatrix_RotationGroup(t *testing.T) {
	r1, _ := BuildUVMatrix(UnitBounds, Rot90, false)

	// Quarter turn: direction (1,0) becomes (0,1).
	c := r1.Coefficients()
	if c[0] != 0 || c[3] != 1 {
		t.Errorf("rot90 linear part maps (1,0) to (%v, %v), want (0, 1)", c[0], c[3])
	}

	acc := IdentityUV()
	rots := []Rotation{Rot0, Rot90, Rot180, Rot270}
	for k, rot := range rots {
		m, err := BuildUVMatrix(UnitBounds, rot, false)
		if err != nil {
			t.Fatalf("rotation %d: %v", k, err)
		}
		got, want := m.Coefficients(), acc.Coefficients()
		for i := range got {
			if !near(got[i], want[i]) {
				t.Errorf("rotation %d: got %v, want rot90^%d = %v", k, got, k, want)
				break
			}
		}
		acc = r1.Mul(acc)
	}

	// Four quarter turns are the identity.
	got := acc.Coefficients()
	id := IdentityUV().Coefficients()
	for i := range got {
		if !near(got[i], id[i]) {
			t.Fatalf("rot90^4 = %v, want identity", got)
		}
	}
}

func TestBuildUVMatrix_Rot90Corners(t *testing.T) {
	m, err := BuildUVMatrix([4]float64{0.25, 0.5, 0.75, 1}, Rot90, false)
	if err != nil {
		t.Fatalf("BuildUVMatrix failed: %v", err)
	}

	tests := []struct {
		in, want [2]float64
	}{
		{[2]float64{0, 0}, [2]float64{0.75, 0.5}},
		{[2]float64{1, 0}, [2]float64{0.75, 1}},
		{[2]float64{1, 1}, [2]float64{0.25, 1}},
		{[2]float64{0, 1}, [2]float64{0.25, 0.5}},
	}
	for _, tt := range tests {
		u, v := m.Apply(tt.in[0], tt.in[1])
		if !near(u, tt.want[0]) || !near(v, tt.want[1]) {
			t.Errorf("%v -> (%v, %v), want %v", tt.in, u, v, tt.want)
		}
	}
}

func TestBuildUVMatrix_StaysInBounds(t *testing.T) {
	bounds := [4]float64{0.25, 0.5, 0.75, 1}
	corners := map[[2]float64]bool{
		{0.25, 0.5}: true, {0.75, 0.5}: true,
		{0.25, 1}: true, {0.75, 1}: true,
	}

	for _, rot := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
		for _, flip := range []bool{false, true} {
			m, err := BuildUVMatrix(bounds, rot, flip)
			if err != nil {
				t.Fatalf("BuildUVMatrix(%d, %v) failed: %v", rot, flip, err)
			}
			seen := map[[2]float64]bool{}
			for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				u, v := m.Apply(p[0], p[1])
				if !corners[[2]float64{u, v}] {
					t.Errorf("rot %d flip %v: %v -> (%v, %v) is not a bounds corner", rot, flip, p, u, v)
				}
				seen[[2]float64{u, v}] = true
			}
			if len(seen) != 4 {
				t.Errorf("rot %d flip %v: corners not a permutation, got %v", rot, flip, seen)
			}
		}
	}
}

func TestBuildUVMatrix_Flip(t *testing.T) {
	m, _ := BuildUVMatrix(UnitBounds, Rot0, true)
	u, v := m.Apply(0, 0)
	if u != 1 || v != 0 {
		t.Errorf("flip (0,0) -> (%v, %v), want (1, 0)", u, v)
	}
	u, v = m.Apply(0.25, 0.5)
	if u != 0.75 || v != 0.5 {
		t.Errorf("flip (0.25,0.5) -> (%v, %v), want (0.75, 0.5)", u, v)
	}

	// Mirroring happens inside the bounds.
	m, _ = BuildUVMatrix([4]float64{0.5, 0, 1, 1}, Rot0, true)
	u, _ = m.Apply(0, 0)
	if u != 1 {
		t.Errorf("bounded flip (0,0) -> u=%v, want 1", u)
	}
	u, _ = m.Apply(1, 0)
	if u != 0.5 {
		t.Errorf("bounded flip (1,0) -> u=%v, want 0.5", u)
	}
}

func TestBuildUVMatrix_InvalidRotation(t *testing.T) {
	for _, rot := range []Rotation{-1, 4, 90} {
		if _, err := BuildUVMatrix(UnitBounds, rot, false); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("rotation %d: expected ErrInvalidParameter, got %v", rot, err)
		}
	}
}

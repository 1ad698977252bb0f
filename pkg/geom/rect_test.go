package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func rectNear(a, b Rect) bool {
	return math.Abs(a.Left-b.Left) < tol && math.Abs(a.Right-b.Right) < tol &&
		math.Abs(a.Bottom-b.Bottom) < tol && math.Abs(a.Top-b.Top) < tol
}

func TestRectRelativeTo(t *testing.T) {
	tests := []struct {
		name  string
		child Rect
		ref   Rect
		want  Rect
	}{
		{
			name:  "unit reference is identity",
			child: NewRect(0.25, 0.75, 0.1, 0.9),
			ref:   Unit(),
			want:  NewRect(0.25, 0.75, 0.1, 0.9),
		},
		{
			name:  "pixel reference",
			child: NewRect(0.1, 0.9, 0.1, 0.9),
			ref:   NewRect(0, 800, 0, 600),
			want:  NewRect(80, 720, 60, 540),
		},
		{
			name:  "offset reference",
			child: NewRect(0, 0.5, 0.5, 1),
			ref:   NewRect(100, 300, 50, 150),
			want:  NewRect(100, 200, 100, 150),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.child.RelativeTo(tt.ref); !rectNear(got, tt.want) {
				t.Errorf("RelativeTo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectRelativeToComposition(t *testing.T) {
	child := NewRect(0.25, 0.75, 0.25, 0.75)
	grandparent := NewRect(0, 100, 0, 200)

	parents := []Rect{
		Unit(),
		NewRect(0.1, 0.6, 0.3, 0.9),
	}
	for _, parent := range parents {
		stepwise := child.RelativeTo(parent).RelativeTo(grandparent)
		combined := child.RelativeTo(parent.RelativeTo(grandparent))
		if !rectNear(stepwise, combined) {
			t.Errorf("parent %+v: stepwise %+v != combined %+v", parent, stepwise, combined)
		}
	}

	got := child.RelativeTo(Unit()).RelativeTo(grandparent)
	if want := NewRect(25, 75, 50, 150); !rectNear(got, want) {
		t.Errorf("resolved = %+v, want %+v", got, want)
	}
}

func TestRectRelativeToKeepsFlags(t *testing.T) {
	r := Unit()
	r.SetLeft(0.2)
	got := r.RelativeTo(NewRect(0, 10, 0, 10))
	if !got.LeftSet || got.RightSet {
		t.Errorf("flags not preserved: %+v", got)
	}
}

func TestRectDiagLen(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want float64
	}{
		{"3-4-5", NewRect(0, 3, 0, 4), 5},
		{"800x600", NewRect(0, 800, 0, 600), 1000},
		{"degenerate", NewRect(3, 3, 3, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.DiagLen(); math.Abs(got-tt.want) > tol {
				t.Errorf("DiagLen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 10, 0, 5)
	b := NewRect(-2, 8, 1, 20)
	if got, want := a.Union(b), NewRect(-2, 10, 0, 20); !rectNear(got, want) {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := Unbounded().Union(a); !rectNear(got, a) {
		t.Errorf("Unbounded().Union(a) = %+v, want %+v", got, a)
	}
}

func TestRectOverride(t *testing.T) {
	base := NewRect(-2, 10, 0, 20)

	var user Rect
	user.SetLeft(0)
	got := base.Override(user)
	if want := NewRect(0, 10, 0, 20); !rectNear(got, want) {
		t.Errorf("Override(left) = %+v, want %+v", got, want)
	}

	user = Rect{}
	user.SetTop(3)
	user.SetBottom(-1)
	got = base.Override(user)
	if want := NewRect(-2, 10, -1, 3); !rectNear(got, want) {
		t.Errorf("Override(bottom,top) = %+v, want %+v", got, want)
	}

	if got := base.Override(Rect{Left: 99}); !rectNear(got, base) {
		t.Errorf("unset side must not override: %+v", got)
	}
}

func TestRectSpans(t *testing.T) {
	r := NewRect(10, 50, 20, 80)
	if r.Width() != 40 || r.Height() != 60 {
		t.Errorf("Width/Height = %v/%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != C(30, 50) {
		t.Errorf("Center() = %+v", c)
	}
	if !r.Contains(C(10, 80)) || r.Contains(C(9, 50)) {
		t.Error("Contains() boundary handling wrong")
	}
	if len(r.Corners()) != 4 {
		t.Error("Corners() should return 4 points")
	}
}

package axis

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestNiceMarks(t *testing.T) {
	tests := []struct {
		name   string
		min    float64
		max    float64
		target int
		want   []float64
	}{
		{"mixed sign", -5.2345, 8.41234, 6, []float64{-6, -4, -2, 0, 2, 4, 6, 8, 10}},
		{"unit", 0, 1, 6, []float64{0, 0.2, 0.4, 0.6, 0.8, 1, 1.2}},
		{"hundreds", 120, 980, 5, []float64{0, 200, 400, 600, 800, 1000}},
		{"step of five", 0, 23, 6, []float64{0, 5, 10, 15, 20, 25}},
		{"reversed", 8.41234, -5.2345, 6, []float64{-6, -4, -2, 0, 2, 4, 6, 8, 10}},
		{"point", 3, 3, 6, []float64{3}},
		{"two marks", 0, 10, 2, []float64{0, 10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NiceMarks(tt.min, tt.max, tt.target)
			if err != nil {
				t.Fatalf("NiceMarks() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("NiceMarks() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("NiceMarks() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestNiceMarksCoverRange(t *testing.T) {
	ranges := [][2]float64{
		{-5.2345, 8.41234},
		{0.0013, 0.0171},
		{-1e6, -3},
		{17, 17.5},
		{-0.5, 0.5},
		{1, 1e9},
		{-1e307, 1e307},
		{-2.945, 2.355},
		{-0.031000000000000003, 0.5},
	}
	for _, r := range ranges {
		for target := 2; target <= 12; target++ {
			got, err := NiceMarks(r[0], r[1], target)
			if err != nil {
				t.Fatalf("NiceMarks(%v, %d) error: %v", r, target, err)
			}
			first, last := got[0], got[len(got)-1]
			if first > r[0] || last <= r[1] {
				t.Errorf("NiceMarks(%v, %d) = [%v .. %v] does not cover range", r, target, first, last)
			}
			if !slices.IsSorted(got) {
				t.Errorf("NiceMarks(%v, %d) not increasing: %v", r, target, got)
			}
		}
	}
}

func TestNiceMarksErrors(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		target   int
		code     errors.Code
	}{
		{"single mark", 0, 1, 1, errors.ErrCodeInvalidInput},
		{"zero marks", 0, 1, 0, errors.ErrCodeInvalidInput},
		{"nan", math.NaN(), 1, 6, errors.ErrCodeInvalidData},
		{"inf", 0, math.Inf(1), 6, errors.ErrCodeInvalidData},
		{"width overflows", -1e308, 1e308, 6, errors.ErrCodeInvalidData},
		{"tick span overflows", -8.9e307, 8.9e307, 6, errors.ErrCodeInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NiceMarks(tt.min, tt.max, tt.target)
			if !errors.Is(err, tt.code) {
				t.Errorf("NiceMarks() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestComputeMarksOverwritesRange(t *testing.T) {
	a := Horizontal(-5.2345, 8.41234)
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	if a.Range != [2]float64{-6, 10} {
		t.Errorf("Range = %v, want [-6 10]", a.Range)
	}
	if len(a.Marks) != 9 {
		t.Fatalf("len(Marks) = %d, want 9", len(a.Marks))
	}

	first, last := a.Marks[0], a.Marks[8]
	if first.Local != geom.C(0, 0) || last.Local != geom.C(1, 0) {
		t.Errorf("end marks at %v and %v", first.Local, last.Local)
	}
	if !near(a.Marks[3].Local.X, 6.0/16) {
		t.Errorf("mark 0 at %v, want x=0.375", a.Marks[3].Local)
	}
	if first.Label != "-6.00" || a.Marks[4].Label != "2.00" {
		t.Errorf("labels %q, %q", first.Label, a.Marks[4].Label)
	}
}

func TestComputeMarksVertical(t *testing.T) {
	a := Vertical(0, 1)
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	for _, m := range a.Marks {
		if m.Local.X != 0 {
			t.Errorf("vertical mark off axis: %v", m.Local)
		}
	}
	if last := a.Marks[len(a.Marks)-1]; last.Local.Y != 1 {
		t.Errorf("last mark at %v", last.Local)
	}
}

func TestComputeMarksZeroTargetUsesDefault(t *testing.T) {
	a := Horizontal(-5.2345, 8.41234)
	a.TargetMarks = 0
	if err := a.ComputeMarks(); err != nil {
		t.Fatalf("ComputeMarks() error: %v", err)
	}
	if len(a.Marks) != 9 {
		t.Errorf("len(Marks) = %d", len(a.Marks))
	}

	a.TargetMarks = 1
	if err := a.ComputeMarks(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("TargetMarks=1 error = %v", err)
	}
}

func TestSinglePointUsesMidpoint(t *testing.T) {
	a := Horizontal(3, 3)
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	if len(a.Marks) != 1 {
		t.Fatalf("len(Marks) = %d", len(a.Marks))
	}
	if got := a.Marks[0].Local; got != geom.C(0.5, 0) {
		t.Errorf("single mark at %v, want (0.5, 0)", got)
	}
	a.Fit(geom.NewRect(100, 300, 50, 150), 1000)
	if got := a.Marks[0].Global; got != geom.C(200, 50) {
		t.Errorf("single mark global = %v", got)
	}
}

func TestFit(t *testing.T) {
	a := Vertical(0, 10)
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	parent := geom.NewRect(100, 500, 50, 450)
	a.Fit(parent, 1000)

	if a.GlobalStart != geom.C(100, 50) || a.GlobalEnd != geom.C(100, 450) {
		t.Errorf("global segment %v -> %v", a.GlobalStart, a.GlobalEnd)
	}
	if a.Direction != geom.C(0, 1) {
		t.Errorf("Direction = %v", a.Direction)
	}
	if a.Scale != 1000 {
		t.Errorf("Scale = %v", a.Scale)
	}
	for _, m := range a.Marks {
		want := a.Project(m.Value)
		if !near(m.Global.X, want.X) || !near(m.Global.Y, want.Y) {
			t.Errorf("mark %v at %v, Project gives %v", m.Value, m.Global, want)
		}
	}
}

func TestNormal(t *testing.T) {
	if got := Horizontal(0, 1).Normal(); got != geom.C(0, -1) {
		t.Errorf("horizontal Normal() = %v, want below", got)
	}
	if got := Vertical(0, 1).Normal(); got != geom.C(-1, 0) {
		t.Errorf("vertical Normal() = %v, want left", got)
	}
	a := Horizontal(0, 1)
	a.Style.Side = SideLeft
	if got := a.Normal(); got != geom.C(0, 1) {
		t.Errorf("flipped Normal() = %v, want above", got)
	}
}

func TestDraw(t *testing.T) {
	a := Horizontal(0, 1)
	a.Style.Title = "time"
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	a.Fit(geom.NewRect(0, 800, 0, 600), 1000)

	rec := render.NewRecorder(800, 600)
	a.Draw(rec)

	// axis line plus one tick per mark
	if got, want := rec.Count(render.OpPolyline), 1+len(a.Marks); got != want {
		t.Errorf("polylines = %d, want %d", got, want)
	}
	texts := rec.Texts()
	if len(texts) != len(a.Marks)+1 || texts[len(texts)-1] != "time" {
		t.Errorf("texts = %v", texts)
	}

	tick := rec.Ops[1]
	if !near(tick.Stroke.Width, 1.5) {
		t.Errorf("tick width = %v, want 1.5px", tick.Stroke.Width)
	}
	if d := tick.Points[1].Sub(tick.Points[0]); !near(d.X, 0) || !near(d.Y, -8) {
		t.Errorf("tick vector = %v, want 8px down", d)
	}
	for _, op := range rec.Ops {
		if op.Kind == render.OpText && op.Text != "time" && op.Style.AlignY != 1 {
			t.Errorf("label %q should hang below its anchor", op.Text)
		}
	}
}

func TestDrawVerticalTitleRotated(t *testing.T) {
	a := Vertical(0, 1)
	a.Style.Title = "value"
	if err := a.ComputeMarks(); err != nil {
		t.Fatal(err)
	}
	a.Fit(geom.NewRect(100, 700, 100, 500), 1000)

	rec := render.NewRecorder(800, 600)
	a.Draw(rec)
	title := rec.Ops[len(rec.Ops)-1]
	if title.Text != "value" {
		t.Fatalf("last op = %+v", title)
	}
	if !near(title.Style.Rotate, math.Pi/2) {
		t.Errorf("title rotation = %v", title.Style.Rotate)
	}
	if !near(title.Style.AlignY, 0) {
		t.Errorf("title AlignY = %v, want 0", title.Style.AlignY)
	}
	if title.Points[0].X >= 100 {
		t.Errorf("title at x=%v, want left of the axis", title.Points[0].X)
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestArcRadians(t *testing.T) {
	tests := []struct {
		start, end, expected float64
	}{
		{0, 1, 1},
		{1, 0, 2*math.Pi - 1},
		{0.4537856055185257, -5.6579300304337625, 0.17146967122729784},
		{0, 2 * math.Pi, 0},
		{-1, 7, math.Mod(8, 2*math.Pi)},
	}

	for _, tt := range tests {
		got := ArcRadians(tt.start, tt.end)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("ArcRadians(%v, %v): expected %v, got %v", tt.start, tt.end, tt.expected, got)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("ArcRadians(%v, %v) = %v is outside [0, 2π)", tt.start, tt.end, got)
		}
	}
}

func TestArcEndpoints(t *testing.T) {
	a := Arc{Center: NewPoint(10, 10), Radius: 2, StartAngle: 0, EndAngle: math.Pi / 2}

	if Distance(a.Start(), NewPoint(12, 10)) > 1e-10 {
		t.Errorf("Start failed: got %v", a.Start())
	}
	if Distance(a.End(), NewPoint(10, 12)) > 1e-10 {
		t.Errorf("End failed: got %v", a.End())
	}
	if math.Abs(a.Length()-math.Pi) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", math.Pi, a.Length())
	}
}

func TestArcWithEndDoesNotMutate(t *testing.T) {
	a := Arc{Radius: 1, StartAngle: 0, EndAngle: 1}
	b := a.WithEnd(2).WithStart(0.5)

	if a.EndAngle != 1 || a.StartAngle != 0 {
		t.Errorf("original arc changed: %+v", a)
	}
	if b.EndAngle != 2 || b.StartAngle != 0.5 {
		t.Errorf("copy not updated: %+v", b)
	}
}

func TestArcSweepFullCircle(t *testing.T) {
	a := Arc{Radius: 5, StartAngle: 0, EndAngle: 2 * math.Pi}

	if a.Span() != 0 {
		t.Errorf("expected Span 0 for a full turn, got %v", a.Span())
	}
	if a.Sweep() != 2*math.Pi {
		t.Errorf("expected Sweep 2π for a full turn, got %v", a.Sweep())
	}
}

func TestArcSample(t *testing.T) {
	a := Arc{Center: NewPoint(0, 0), Radius: 3, StartAngle: 0, EndAngle: math.Pi}
	points := a.Sample(4)

	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	for _, p := range points {
		if math.Abs(Distance(p, a.Center)-a.Radius) > 1e-10 {
			t.Errorf("sample %v is not on the arc", p)
		}
	}
	if Distance(points[4], a.End()) > 1e-10 {
		t.Errorf("last sample %v is not the arc end %v", points[4], a.End())
	}
}

func TestArcFinite(t *testing.T) {
	a := Arc{Center: NewPoint(0, 0), Radius: 1, EndAngle: 1}
	if !a.Finite() {
		t.Error("expected finite arc")
	}
	if a.WithEnd(math.NaN()).Finite() {
		t.Error("expected NaN end angle to be non-finite")
	}
}

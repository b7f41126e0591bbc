package geometry

import (
	"math"
	"testing"
)

func TestFindIntersectionPrefersLargerSum(t *testing.T) {
	c1 := Circle{Center: NewPoint(0, 0), Radius: 5}
	c2 := Circle{Center: NewPoint(6, 0), Radius: 5}

	p, ok := FindIntersection(c1, c2)
	if !ok {
		t.Fatal("expected an intersection")
	}

	expected := NewPoint(3, 4)
	if Distance(p, expected) > 1e-10 {
		t.Errorf("FindIntersection failed: expected %v, got %v", expected, p)
	}
}

func TestFindIntersectionIsSymmetric(t *testing.T) {
	c1 := Circle{Center: NewPoint(0, 0), Radius: 5}
	c2 := Circle{Center: NewPoint(6, 0), Radius: 5}

	p, _ := FindIntersection(c1, c2)
	q, _ := FindIntersection(c2, c1)
	if Distance(p, q) > 1e-10 {
		t.Errorf("expected argument order not to matter: %v vs %v", p, q)
	}
}

func TestFindIntersectionTieBreaksOnX(t *testing.T) {
	// Candidates (0, 0) and (1, -1) have the same x + y.
	c1 := Circle{Center: NewPoint(0, -1), Radius: 1}
	c2 := Circle{Center: NewPoint(1, 0), Radius: 1}

	p, ok := FindIntersection(c1, c2)
	if !ok {
		t.Fatal("expected an intersection")
	}

	expected := NewPoint(1, -1)
	if Distance(p, expected) > 1e-10 {
		t.Errorf("FindIntersection tie failed: expected %v, got %v", expected, p)
	}
}

func TestFindIntersectionPointsLieOnBothCircles(t *testing.T) {
	c1 := Circle{Center: NewPoint(160, 129), Radius: 150}
	c2 := Circle{Center: NewPoint(162, 163), Radius: 130.5}

	p, ok := FindIntersection(c1, c2)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(Distance(p, c1.Center)-c1.Radius) > 1e-9 {
		t.Errorf("point %v is not on first circle", p)
	}
	if math.Abs(Distance(p, c2.Center)-c2.Radius) > 1e-9 {
		t.Errorf("point %v is not on second circle", p)
	}
}

func TestFindIntersectionNoSolution(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Circle
	}{
		{"too far apart", Circle{NewPoint(0, 0), 1}, Circle{NewPoint(5, 0), 1}},
		{"contained", Circle{NewPoint(0, 0), 10}, Circle{NewPoint(1, 0), 2}},
		{"concentric", Circle{NewPoint(2, 2), 3}, Circle{NewPoint(2, 2), 3}},
	}

	for _, tt := range tests {
		if p, ok := FindIntersection(tt.c1, tt.c2); ok {
			t.Errorf("%s: expected no intersection, got %v", tt.name, p)
		}
	}
}

func TestFindIntersectionTouching(t *testing.T) {
	c1 := Circle{Center: NewPoint(0, 0), Radius: 2}
	c2 := Circle{Center: NewPoint(4, 0), Radius: 2}

	p, ok := FindIntersection(c1, c2)
	if !ok {
		t.Fatal("expected touching circles to intersect")
	}
	if Distance(p, NewPoint(2, 0)) > 1e-10 {
		t.Errorf("expected (2, 0), got %v", p)
	}
}

func TestTangentAngle(t *testing.T) {
	at := NewPoint(0, 0)
	c1 := Circle{Center: NewPoint(1, 0), Radius: 1}
	c2 := Circle{Center: NewPoint(0, 1), Radius: 1}

	angle := TangentAngle(at, c1, c2)
	if math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("TangentAngle failed: expected %v, got %v", math.Pi/2, angle)
	}
}

func TestCircleInflateContains(t *testing.T) {
	c := Circle{Center: NewPoint(0, 0), Radius: 1}
	p := NewPoint(1.5, 0)

	if c.Contains(p) {
		t.Error("expected point outside unit circle")
	}
	if !c.Inflate(1).Contains(p) {
		t.Error("expected point inside inflated circle")
	}
}

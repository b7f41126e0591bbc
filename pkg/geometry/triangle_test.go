package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 4))

	area := tri.Area()
	expected := 6.0
	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 3))

	center := tri.Center()
	expected := NewPoint(1, 1)
	if Distance(center, expected) > 1e-10 {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTooth(t *testing.T) {
	tooth := Tooth(NewPoint(300, 200), 10)

	if tooth.V1 != NewPoint(300, 200) {
		t.Errorf("expected apex at the tip, got %v", tooth.V1)
	}
	if !tooth.Contains(NewPoint(308, 200)) {
		t.Error("expected point inside the tooth")
	}
	if tooth.Contains(NewPoint(295, 200)) {
		t.Error("expected point behind the apex to be outside")
	}

	lower := Tooth(NewPoint(275, 200), -10)
	if !lower.Contains(NewPoint(268, 200)) {
		t.Error("expected negative height to point the tooth the other way")
	}
}

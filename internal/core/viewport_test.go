package core

import "testing"

func TestFitViewportTallTerminal(t *testing.T) {
	v := FitViewport(80, 24, 1, 320, 512)

	want := NewRect(25, 1, 29, 23)
	if v.Area != want {
		t.Fatalf("Area = %+v, expected %+v", v.Area, want)
	}

	if x, y := v.ToCell(Vec2{X: -160, Y: 256}); x != 25 || y != 1 {
		t.Errorf("top-left world corner mapped to (%d, %d), expected (25, 1)", x, y)
	}
	if x, y := v.ToCell(Vec2{}); x != 39 || y != 12 {
		t.Errorf("origin mapped to (%d, %d), expected (39, 12)", x, y)
	}
}

func TestFitViewportNarrowTerminal(t *testing.T) {
	v := FitViewport(20, 41, 1, 320, 512)

	want := NewRect(0, 1, 20, 16)
	if v.Area != want {
		t.Errorf("Area = %+v, expected %+v", v.Area, want)
	}
}

func TestBoxToRectMinimumSize(t *testing.T) {
	v := FitViewport(80, 24, 0, 320, 512)
	r := v.BoxToRect(Box{HalfX: 0.1, HalfY: 0.1}, Vec2{})

	if r.W < 1 || r.H < 1 {
		t.Errorf("BoxToRect should cover at least one cell, got %+v", r)
	}
}

func TestViewportVisible(t *testing.T) {
	v := FitViewport(80, 24, 1, 320, 512)

	x, y := v.ToCell(Vec2{X: 0, Y: 300})
	if v.Visible(x, y) {
		t.Error("points above the world should not be visible")
	}
	x, y = v.ToCell(Vec2{X: 0, Y: -100})
	if !v.Visible(x, y) {
		t.Error("points inside the world should be visible")
	}
}

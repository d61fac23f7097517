package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 0},  // right edge wraps to left
		{-1, 10, 9},  // left edge wraps to right
		{-11, 10, 9}, // more than one lap
		{25, 10, 5},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestWrapPoint(t *testing.T) {
	got := WrapPoint(Point{X: -1, Y: 90}, 120, 90)
	if got != (Point{X: 119, Y: 0}) {
		t.Errorf("WrapPoint() = %+v, expected {119 0}", got)
	}
}

func TestPointAdd(t *testing.T) {
	if got := (Point{X: 1, Y: 2}).Add(Point{X: 3, Y: -4}); got != (Point{X: 4, Y: -2}) {
		t.Errorf("Add() = %+v, expected {4 -2}", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		w, h int
	}{
		{"empty", nil, 0, 0},
		{"single", []Point{{X: 5, Y: 5}}, 1, 1},
		{"glider", []Point{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}, 3, 3},
		{"row", []Point{{0, 0}, {1, 0}, {2, 0}}, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := Bounds(tc.pts)
			if w != tc.w || h != tc.h {
				t.Errorf("Bounds() = %dx%d, expected %dx%d", w, h, tc.w, tc.h)
			}
		})
	}
}

func TestGridFit(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 81, ScreenH: 24, CellWidth: 2, CellHeight: 1}
	w, h := cfg.GridFit(2)
	if w != 40 || h != 22 {
		t.Errorf("GridFit(2) = %dx%d, expected 40x22", w, h)
	}

	tiny := RuntimeConfig{ScreenW: 1, ScreenH: 1}
	w, h = tiny.GridFit(2)
	if w != 1 || h != 1 {
		t.Errorf("GridFit on tiny screen = %dx%d, expected 1x1", w, h)
	}
}

func TestActionString(t *testing.T) {
	if ActionTogglePause.String() != "TogglePause" {
		t.Errorf("ActionTogglePause.String() = %q", ActionTogglePause.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

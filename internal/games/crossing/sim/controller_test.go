package sim

import (
	"errors"
	"testing"
)

func TestNewControllerSpawn(t *testing.T) {
	tests := []struct {
		name          string
		height, width float64
		wantX, wantY  float64
	}{
		{"standard playfield", 410, 650, 300, 355},
		{"spawn snaps to the step grid", 400, 650, 300, 305},
		{"spare height below the grid is unused", 420, 650, 300, 355},
		{"narrow", 410, 300, 125, 355},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewController(tc.height, tc.width)
			if err != nil {
				t.Fatalf("NewController() error = %v", err)
			}
			a := c.Actor()
			if a.X != tc.wantX || a.Y != tc.wantY {
				t.Errorf("actor at (%v, %v), expected (%v, %v)", a.X, a.Y, tc.wantX, tc.wantY)
			}
			if a.Frozen() {
				t.Error("new actor should not be frozen")
			}
		})
	}
}

func TestNewControllerInvalid(t *testing.T) {
	tests := []struct {
		name          string
		height, width float64
	}{
		{"zero height", 0, 650},
		{"negative width", 410, -1},
		{"too short", 100, 650},
		{"too narrow", 410, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewController(tc.height, tc.width); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewController() error = %v, expected ErrInvalidArgument", err)
			}
		})
	}
}

func TestControllerBounds(t *testing.T) {
	tests := []struct {
		name  string
		move  func(*Controller) bool
		steps int
		wantX float64
		wantY float64
	}{
		{"left edge", (*Controller).MoveLeft, 6, 0, 355},
		{"right edge", (*Controller).MoveRight, 6, 600, 355},
		{"top row", (*Controller).MoveUp, 6, 300, TopRow},
		{"already at bottom", (*Controller).MoveDown, 0, 300, 355},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewController(410, 650)
			if err != nil {
				t.Fatal(err)
			}
			for i := range tc.steps {
				if !tc.move(c) {
					t.Fatalf("move %d was denied", i+1)
				}
			}
			if tc.move(c) {
				t.Error("move past the boundary should be denied")
			}
			a := c.Actor()
			if a.X != tc.wantX || a.Y != tc.wantY {
				t.Errorf("actor at (%v, %v), expected (%v, %v)", a.X, a.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestControllerTopRowAndRespawn(t *testing.T) {
	c, err := NewController(410, 650)
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		c.MoveUp()
	}
	if c.AtTopRow() {
		t.Fatal("actor one row below the top should not be at the top row")
	}
	c.MoveUp()
	c.MoveRight()
	if !c.AtTopRow() {
		t.Fatal("actor should be at the top row")
	}

	c.CenterAtBottom()
	x, y := c.Spawn()
	if a := c.Actor(); a.X != x || a.Y != y {
		t.Errorf("CenterAtBottom() put actor at (%v, %v), expected (%v, %v)", a.X, a.Y, x, y)
	}
}

func TestControllerFreeze(t *testing.T) {
	c, err := NewController(410, 650)
	if err != nil {
		t.Fatal(err)
	}

	c.Freeze()
	if a := c.Actor(); a.SpeedX != 0 || a.SpeedY != 0 {
		t.Errorf("frozen actor speed = (%v, %v), expected 0", a.SpeedX, a.SpeedY)
	}
	if c.MoveLeft() || c.MoveUp() {
		t.Error("frozen actor should not move")
	}

	c.Unfreeze()
	if !c.MoveLeft() {
		t.Error("unfrozen actor should move")
	}
	if a := c.Actor(); a.X != 250 {
		t.Errorf("X = %v, expected 250", a.X)
	}
}

package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "one unit gap",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(51, 0, 50, 50),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(25, 50, 50, 50),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	moved := r.Translate(-5, 5)
	if moved.X != 0 || moved.Y != 15 || moved.W != 20 || moved.H != 15 {
		t.Errorf("Translate() = %+v", moved)
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{OriginX: 1, OriginY: 2, UnitsPerCol: 10, UnitsPerRow: 25}

	tests := []struct {
		name string
		r    Rect
		want CellRect
	}{
		{"aligned", NewRect(0, 0, 50, 50), NewCellRect(1, 2, 5, 2)},
		{"offset", NewRect(300, 355, 50, 50), NewCellRect(31, 16, 5, 2)},
		{"rounds to nearest cell", NewRect(5, 10, 10, 20), NewCellRect(2, 2, 1, 1)},
		{"fractional position keeps width", NewRect(97.5, 0, 50, 50), NewCellRect(11, 2, 5, 2)},
		{"tiny rect still visible", NewRect(3, 3, 1, 1), NewCellRect(1, 2, 1, 1)},
		{"negative x", NewRect(-50, 0, 50, 50), NewCellRect(-4, 2, 5, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Project(tc.r); got != tc.want {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.r, got, tc.want)
			}
		})
	}

	cols, rows := v.Cells(650, 410)
	if cols != 65 || rows != 17 {
		t.Errorf("Cells(650, 410) = (%d, %d), expected (65, 17)", cols, rows)
	}
}

func TestCellRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b CellRect
		want CellRect
	}{
		{"overlap", NewCellRect(0, 0, 10, 5), NewCellRect(5, 2, 10, 10), NewCellRect(5, 2, 5, 3)},
		{"contained", NewCellRect(0, 0, 10, 10), NewCellRect(2, 2, 3, 3), NewCellRect(2, 2, 3, 3)},
		{"clipped left", NewCellRect(-4, 3, 5, 2), NewCellRect(0, 0, 65, 17), NewCellRect(0, 3, 1, 2)},
		{"disjoint", NewCellRect(0, 0, 5, 5), NewCellRect(5, 0, 5, 5), CellRect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			if got != tc.want {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.want)
			}
			if got.Empty() != (tc.want == CellRect{}) {
				t.Errorf("Empty() = %v", got.Empty())
			}
		})
	}
}

package ui

import "testing"

func TestBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		want                string
	}{
		{0, 8, 8, "[--------]"},
		{4, 8, 8, "[####----]"},
		{12, 8, 8, "[########]"},
		{-1, 8, 4, "[----]"},
		{1, 0, 4, "[####]"},
	}
	for _, tc := range cases {
		if got := Bar(tc.value, tc.total, tc.width); got != tc.want {
			t.Fatalf("Bar(%d, %d, %d)=%q, want %q", tc.value, tc.total, tc.width, got, tc.want)
		}
	}
}

func TestPlots(t *testing.T) {
	if got := Plots([]bool{true, false}); got != IconGarden+" "+IconSprout {
		t.Fatalf("Plots=%q", got)
	}
}

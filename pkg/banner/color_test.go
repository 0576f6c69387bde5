package banner

import "testing"

func TestRGB_ANSI(t *testing.T) {
	c := RGB{63, 81, 181}
	if got, want := c.ANSI(), "\x1b[38;2;63;81;181m"; got != want {
		t.Errorf("ANSI() = %q, want %q", got, want)
	}
	if got, want := c.Block(), "\x1b[38;2;63;81;181m██\x1b[0m"; got != want {
		t.Errorf("Block() = %q, want %q", got, want)
	}
}

func TestRainbow_Palette(t *testing.T) {
	if len(Rainbow) != 10 {
		t.Fatalf("expected 10 rainbow stops, got %d", len(Rainbow))
	}
	if Rainbow[0] != (RGB{63, 81, 181}) {
		t.Errorf("first stop = %v, want indigo", Rainbow[0])
	}
	if Rainbow[9] != (RGB{244, 67, 54}) {
		t.Errorf("last stop = %v, want red", Rainbow[9])
	}
}

func TestBlockColor(t *testing.T) {
	tests := []struct {
		name     string
		row, i, n int
		want     RGB
	}{
		{"first block", 0, 0, 1000, Base},
		{"just before rainbow", 0, 749, 1000, Base},
		{"rainbow start", 0, 750, 1000, Rainbow[0]},
		{"early rainbow", 0, 760, 1000, Rainbow[0]},
		{"mid rainbow", 0, 880, 1000, Rainbow[5]},
		{"last block", 0, 999, 1000, Rainbow[9]},
		{"row 3 still base", 3, 880, 1000, Base},
		{"row 3 rainbow", 3, 905, 1000, Rainbow[0]},
		{"row 3 last block", 3, 999, 1000, Rainbow[9]},
		{"single block", 0, 0, 1, Base},
		{"no blocks", 0, 0, 0, Base},
		{"negative index", 0, -1, 10, Base},
		{"row past drip range", 5, 999, 1000, Base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockColor(tt.row, tt.i, tt.n); got != tt.want {
				t.Errorf("BlockColor(%d, %d, %d) = %v, want %v", tt.row, tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestBlockColor_Drip(t *testing.T) {
	// Same position, later rows stay base longer.
	if BlockColor(0, 800, 1000) == Base {
		t.Error("row 0 at 80% should be in the rainbow")
	}
	if BlockColor(3, 800, 1000) != Base {
		t.Error("row 3 at 80% should still be base")
	}
}

func TestBlockColor_MonotonicAlongRow(t *testing.T) {
	index := func(c RGB) int {
		for i, r := range Rainbow {
			if r == c {
				return i
			}
		}
		return -1
	}
	for row := 0; row < 4; row++ {
		prev := -1
		for i := 0; i < 200; i++ {
			idx := index(BlockColor(row, i, 200))
			if idx < prev {
				t.Fatalf("row %d: color index went backwards at block %d", row, i)
			}
			prev = idx
		}
	}
}

func TestBlockColor_ShortRowsStayBase(t *testing.T) {
	// i/n < 0.75 for every block of a row with four or fewer blocks.
	for n := 1; n <= 4; n++ {
		for i := 0; i < n; i++ {
			if got := BlockColor(0, i, n); got != Base {
				t.Errorf("BlockColor(0, %d, %d) = %v, want Base", i, n, got)
			}
		}
	}
	if BlockColor(0, 4, 5) == Base {
		t.Error("the last of five blocks should reach the rainbow")
	}
}

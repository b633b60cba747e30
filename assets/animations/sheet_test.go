package animations

import (
	"image"
	"testing"
)

func TestCellDecode(t *testing.T) {
	s := Sheet{Columns: 8, Rows: 10, FrameWidth: 64, FrameHeight: 64}
	cases := []struct {
		index    int
		row, col int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{32, 4, 0},
		{37, 4, 5},
		{79, 9, 7},
	}
	for _, c := range cases {
		row, col := s.Cell(c.index)
		if row != c.row || col != c.col {
			t.Errorf("Cell(%d) = (%d, %d), want (%d, %d)", c.index, row, col, c.row, c.col)
		}
	}
}

func TestUVRoundTrip(t *testing.T) {
	for _, s := range []Sheet{
		{Columns: 8, Rows: 10},
		{Columns: 4, Rows: 4},
		{Columns: 2, Rows: 2},
		{Columns: 1, Rows: 1},
	} {
		for index := 0; index < s.Columns*s.Rows; index++ {
			uv := s.UV(index)
			row, col := s.Cell(index)
			wantX := float64(col) / float64(s.Columns)
			wantY := 1 - float64(row+1)/float64(s.Rows)
			if uv.OffsetX != wantX || uv.OffsetY != wantY {
				t.Errorf("%dx%d sheet, index %d: offset = (%v, %v), want (%v, %v)",
					s.Columns, s.Rows, index, uv.OffsetX, uv.OffsetY, wantX, wantY)
			}
			if uv.OffsetX < 0 || uv.OffsetX >= 1 || uv.OffsetY < 0 || uv.OffsetY >= 1 {
				t.Errorf("offset (%v, %v) outside [0, 1)", uv.OffsetX, uv.OffsetY)
			}
			if uv.RepeatX != 1/float64(s.Columns) || uv.RepeatY != 1/float64(s.Rows) {
				t.Errorf("repeat = (%v, %v), want (%v, %v)",
					uv.RepeatX, uv.RepeatY, 1/float64(s.Columns), 1/float64(s.Rows))
			}
		}
	}
}

func TestSrcRect(t *testing.T) {
	s := Sheet{Columns: 8, Rows: 10, FrameWidth: 64, FrameHeight: 64}
	if got, want := s.SrcRect(32), image.Rect(0, 256, 64, 320); got != want {
		t.Errorf("SrcRect(32) = %v, want %v", got, want)
	}
	if got, want := s.SrcRect(37), image.Rect(320, 256, 384, 320); got != want {
		t.Errorf("SrcRect(37) = %v, want %v", got, want)
	}
}

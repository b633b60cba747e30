package animations

import "image"

// Sheet describes a spritesheet grid. Cells are numbered row-major from the
// top-left of the image.
type Sheet struct {
	Columns     int
	Rows        int
	FrameWidth  int
	FrameHeight int
}

// Cell decodes a sheet index into its (row, col) position.
func (s Sheet) Cell(index int) (row, col int) {
	return index / s.Columns, index % s.Columns
}

// UV holds texture-sampling parameters selecting one cell of the sheet, in
// normalized [0, 1) coordinates with a bottom-left origin.
type UV struct {
	OffsetX, OffsetY float64
	RepeatX, RepeatY float64
}

// UV returns the offset/repeat pair for a cell. The Y offset is flipped
// because the texture origin sits at the bottom-left while cells are
// numbered from the top.
func (s Sheet) UV(index int) UV {
	row, col := s.Cell(index)
	return UV{
		OffsetX: float64(col) / float64(s.Columns),
		OffsetY: 1 - float64(row+1)/float64(s.Rows),
		RepeatX: 1 / float64(s.Columns),
		RepeatY: 1 / float64(s.Rows),
	}
}

// SrcRect returns the pixel rectangle of a cell, for SubImage slicing.
func (s Sheet) SrcRect(index int) image.Rectangle {
	row, col := s.Cell(index)
	x := col * s.FrameWidth
	y := row * s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}

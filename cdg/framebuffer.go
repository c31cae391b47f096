/*
DESCRIPTION
  framebuffer.go holds the persistent indexed-colour raster state that
  CD+G instructions mutate and the renderer projects through the palette.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cdg

// Grid geometry and tile dimensions, fixed by the CD+G format.
const (
	GridWidth  = 300 // Pixel columns of the full raster, including border.
	GridHeight = 216 // Pixel rows of the full raster, including border.

	tileHeight = 12 // Rows per tile block.
	tileWidth  = 6  // Columns per tile block.

	// The border ring is the outer tileHeight rows / tileWidth columns
	// of the raster. The inner rectangle is rows [borderTop, borderBottom)
	// and columns [borderLeft, borderRight): borderTop/borderLeft are its
	// first row/column and borderBottom/borderRight are the first
	// row/column past its far edge.
	borderTop    = tileHeight
	borderBottom = GridHeight - tileHeight
	borderLeft   = tileWidth
	borderRight  = GridWidth - tileWidth

	maxHOffset = 5  // Largest legal horizontal scroll offset.
	maxVOffset = 11 // Largest legal vertical scroll offset.
)

// buffer is the framebuffer state owned exclusively by an Interpreter:
// the indexed pixel grid, the 16-entry palette, the preset/border/
// transparent colour indices, and the two sub-tile scroll offsets.
type buffer struct {
	pixels  [GridHeight][GridWidth]uint8
	palette [16]uint32

	presetIdx uint8
	borderIdx uint8
	transpIdx uint8

	hOffset int
	vOffset int
}

// reset zero-fills the pixel grid and palette and clears every index
// and offset, as required after construction and after Interpreter.Close.
func (b *buffer) reset() {
	*b = buffer{}
}

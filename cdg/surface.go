/*
DESCRIPTION
  surface.go defines the output surface capability and a reference
  implementation of it.

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

// Surface is the capability the caller supplies for the renderer to
// write into: a function that packs an (r,g,b) triple into the
// caller's 32-bit pixel format, and a grid that receives one pixel
// per cell of the 300x216 output on every RenderAt call.
type Surface interface {
	// PackRGB packs an 8-bit-per-channel colour into a 32-bit pixel.
	PackRGB(r, g, b uint8) uint32

	// Set writes the pixel at (row, col) of the 300x216 output grid.
	Set(row, col int, px uint32)
}

// RGBASurface is a reference Surface that packs colours as 0xRRGGBB and
// stores the output grid in memory, suitable for tests and for callers
// that just want a plain pixel buffer.
type RGBASurface struct {
	Pixels [GridHeight][GridWidth]uint32
}

// NewRGBASurface returns an empty RGBASurface.
func NewRGBASurface() *RGBASurface { return &RGBASurface{} }

// PackRGB packs (r,g,b) as (r<<16)|(g<<8)|b.
func (s *RGBASurface) PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Set implements Surface.
func (s *RGBASurface) Set(row, col int, px uint32) {
	s.Pixels[row][col] = px
}

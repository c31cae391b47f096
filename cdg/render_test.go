/*
DESCRIPTION
  render_test.go tests projecting the indexed framebuffer through the
  palette into a caller-owned surface.

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

import "testing"

func TestRenderBorderAlwaysFromBorderIndex(t *testing.T) {
	var b buffer
	b.borderIdx = 1
	b.palette[1] = 0xABCDEF
	// A pixel cell under the border ring was mutated directly (as a
	// tile blit that reaches into the border legitimately could); the
	// border must still render from borderIdx, not the pixel value.
	b.pixels[0][0] = 9

	surf := &RGBASurface{}
	renderSurface(&b, surf)

	if got, want := surf.Pixels[0][0], uint32(0xABCDEF); got != want {
		t.Errorf("border pixel = %#08x, want %#08x", got, want)
	}
}

func TestRenderInnerRectangleHonoursScrollOffsets(t *testing.T) {
	var b buffer
	b.palette[4] = 0x00112233
	b.hOffset = 2
	b.vOffset = 2
	b.pixels[14][8] = 4

	surf := &RGBASurface{}
	renderSurface(&b, surf)

	// renderSurface writes surf[r][c] = palette[pixels[r+vOffset][c+hOffset]];
	// output cell (12,6) is the inner rectangle's first cell and reads
	// pixels[12+2][6+2] = pixels[14][8].
	if got, want := surf.Pixels[12][6], uint32(0x00112233); got != want {
		t.Errorf("surf.Pixels[12][6] = %#08x, want %#08x", got, want)
	}
}

func TestRenderEveryCellWritten(t *testing.T) {
	var b buffer
	surf := &RGBASurface{}
	// Sentinel so we can tell which cells renderSurface left untouched.
	for r := range surf.Pixels {
		for c := range surf.Pixels[r] {
			surf.Pixels[r][c] = 0xFFFFFFFF
		}
	}
	renderSurface(&b, surf)

	for r := 0; r < GridHeight; r++ {
		for c := 0; c < GridWidth; c++ {
			if surf.Pixels[r][c] == 0xFFFFFFFF {
				t.Fatalf("cell (%d,%d) was never written by renderSurface", r, c)
			}
		}
	}
}

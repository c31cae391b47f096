/*
DESCRIPTION
  render.go projects the indexed framebuffer through its palette into
  the caller's output surface.

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

// renderSurface writes every cell of the 300x216 output grid: the
// border ring always comes from borderIdx, regardless of what the
// underlying pixel cells there hold, and the inner rectangle is read
// through the current scroll offsets.
func renderSurface(b *buffer, surf Surface) {
	borderColour := b.palette[b.borderIdx]
	for r := 0; r < GridHeight; r++ {
		inRow := r >= borderTop && r < borderBottom
		for c := 0; c < GridWidth; c++ {
			if !inRow || c < borderLeft || c >= borderRight {
				surf.Set(r, c, borderColour)
				continue
			}
			idx := b.pixels[r+b.vOffset][c+b.hOffset]
			surf.Set(r, c, b.palette[idx])
		}
	}
}

/*
DESCRIPTION
  interpreter.go applies a decoded CD+G packet stream to a persistent
  framebuffer and drives playback by time.

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

import (
	"errors"
	"io"

	"github.com/ausocean/cdg/cdgsource"
	"github.com/ausocean/utils/logging"
)

// CD+G instruction codes, masked to their low 6 bits before dispatch.
const (
	instMemoryPreset      = 1
	instBorderPreset      = 2
	instTileBlock         = 6
	instScrollPreset      = 20
	instScrollCopy        = 24
	instDefineTransparent = 28
	instLoadPaletteLo     = 30
	instLoadPaletteHi     = 31
	instTileBlockXOR      = 38
)

// Interpreter replays a CD+G subcode stream: it owns a Source for the
// duration of a session, applies every packet to its framebuffer, and
// renders the framebuffer into a caller-owned Surface on request. An
// Interpreter is not safe for concurrent use; RenderAt is synchronous
// and does not yield internally.
type Interpreter struct {
	log logging.Logger

	src  cdgsource.Source
	surf Surface
	buf  buffer
	clk  clock

	opened bool
}

// NewInterpreter returns an Interpreter that logs structural noise and
// stream failures through log.
func NewInterpreter(log logging.Logger) *Interpreter {
	return &Interpreter{log: log}
}

// Open binds src and surf to the interpreter for a playback session,
// resetting all framebuffer and clock state. Duration is computed once
// from src.Size(); if the size is unavailable TotalDurationMs reports 0.
// Any previously open session is closed first.
func (it *Interpreter) Open(src cdgsource.Source, surf Surface) error {
	if src == nil || surf == nil {
		return errors.New("cdg: Open requires a non-nil source and surface")
	}
	it.Close()

	it.src = src
	it.surf = surf
	it.buf.reset()
	it.clk = clock{}

	if size := src.Size(); size > 0 {
		it.clk.durationMs = (size / packetSize) * 1000 / packetsPerSecond
	}
	it.opened = true
	return nil
}

// Close releases the bound Source (closing it if it implements
// io.Closer) and clears all framebuffer and clock state. Close is safe
// to call on an Interpreter that was never opened, and is always
// called by Open before binding a new session.
func (it *Interpreter) Close() {
	if c, ok := it.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			it.logWarning("could not close cdg source", "error", err)
		}
	}
	it.src = nil
	it.surf = nil
	it.buf.reset()
	it.clk = clock{}
	it.opened = false
}

// TotalDurationMs returns the stream's total duration in milliseconds,
// or 0 if it was unavailable at Open.
func (it *Interpreter) TotalDurationMs() int64 { return it.clk.durationMs }

// TransparentIndex returns the colour index most recently declared
// transparent by a define-transparent-colour packet. The interpreter
// and renderer never act on it; it is exposed read-only so an outer
// compositor can key alpha from it.
func (it *Interpreter) TransparentIndex() uint8 { return it.buf.transpIdx }

// RenderAt advances playback to ms and renders the resulting frame into
// the bound Surface. It returns false if ms precedes the current
// position and the source cannot be rewound, if end of stream is
// reached while consuming packets, if a read from the source fails, or
// if the interpreter has no open session. Rewind and read failures are
// also returned as the error; the framebuffer is always left in a consistent state and
// the last successfully rendered frame is never corrupted by a failed
// advance.
func (it *Interpreter) RenderAt(ms int64) (bool, error) {
	if !it.opened {
		return false, nil
	}

	packets, rewind := it.clk.advance(ms)
	if rewind {
		if err := it.src.Rewind(); err != nil {
			it.logWarning("could not rewind cdg source", "error", err)
			renderSurface(&it.buf, it.surf)
			return false, err
		}
	}

	ok := true
	var readErr error
	for i := int64(0); i < packets; i++ {
		pkt, got, err := readPacket(it.src)
		if err != nil {
			it.logWarning("cdg source read failed", "error", err)
			ok = false
			readErr = err
			break
		}
		if !got {
			ok = false
			break
		}
		it.apply(pkt)
	}

	renderSurface(&it.buf, it.surf)
	return ok, readErr
}

// apply dispatches a single decoded packet to the instruction it
// encodes, mutating the framebuffer. Non-command packets and unknown
// instruction codes are silently ignored, per the format's forward
// compatibility rule.
func (it *Interpreter) apply(p Packet) {
	if !p.isCommand() {
		return
	}

	switch p.maskedInstruction() {
	case instMemoryPreset:
		it.memoryPreset(p)
	case instBorderPreset:
		it.borderPreset(p)
	case instTileBlock:
		it.tileBlock(p, false)
	case instTileBlockXOR:
		it.tileBlock(p, true)
	case instScrollPreset:
		it.scroll(p, false)
	case instScrollCopy:
		it.scroll(p, true)
	case instDefineTransparent:
		it.buf.transpIdx = p.Data[0] & 0x0F
	case instLoadPaletteLo:
		it.loadPalette(p, 0)
	case instLoadPaletteHi:
		it.loadPalette(p, 8)
	default:
		it.logDebug("ignoring unknown cdg instruction", "instruction", p.maskedInstruction())
	}
}

// memoryPreset implements instruction 1: set the preset and border
// colour, and on the first instance of a repeated preset (repeat==0),
// fill the entire grid with it.
func (it *Interpreter) memoryPreset(p Packet) {
	colour := p.Data[0] & 0x0F
	repeat := p.Data[1] & 0x0F

	it.buf.presetIdx = colour
	it.buf.borderIdx = colour

	if repeat != 0 {
		return
	}
	for r := range it.buf.pixels {
		row := &it.buf.pixels[r]
		for c := range row {
			row[c] = colour
		}
	}
}

// borderPreset implements instruction 2: paint the border ring with
// colour, leaving the inner rectangle untouched.
func (it *Interpreter) borderPreset(p Packet) {
	colour := p.Data[0] & 0x0F
	it.buf.borderIdx = colour

	for r := 0; r < GridHeight; r++ {
		row := &it.buf.pixels[r]
		for c := 0; c < borderLeft; c++ {
			row[c] = colour
		}
		for c := borderRight; c < GridWidth; c++ {
			row[c] = colour
		}
	}
	for c := borderLeft; c < borderRight; c++ {
		for r := 0; r < borderTop; r++ {
			it.buf.pixels[r][c] = colour
		}
		for r := borderBottom; r < GridHeight; r++ {
			it.buf.pixels[r][c] = colour
		}
	}
}

// tileBlock implements instructions 6 and 38: blit a 12x6 tile of
// colour0/colour1 pixels, either overwriting the grid or XORing the
// 4-bit indices into it. Off-grid tile coordinates are dropped.
func (it *Interpreter) tileBlock(p Packet, xor bool) {
	colour0 := p.Data[0] & 0x0F
	colour1 := p.Data[1] & 0x0F
	row := int(p.Data[2]&0x1F) * tileHeight
	col := int(p.Data[3]&0x3F) * tileWidth

	if row > GridHeight-tileHeight || col > GridWidth-tileWidth {
		it.logDebug("dropping off-grid cdg tile", "row", row, "col", col)
		return
	}

	for i := 0; i < tileHeight; i++ {
		bits := p.Data[4+i] & 0x3F
		for j := 0; j < tileWidth; j++ {
			bit := (bits >> (5 - j)) & 1
			src := colour0
			if bit == 1 {
				src = colour1
			}
			if xor {
				it.buf.pixels[row+i][col+j] ^= src
			} else {
				it.buf.pixels[row+i][col+j] = src
			}
		}
	}
}

// loadPalette implements instructions 30 and 31: decode 8 palette
// entries from the packet's 16 data bytes and pack each through the
// bound Surface, storing the result at offset..offset+7.
func (it *Interpreter) loadPalette(p Packet, offset int) {
	for i := 0; i < 8; i++ {
		high := p.Data[2*i] & 0x3F
		low := p.Data[2*i+1] & 0x3F

		r := (high >> 2) & 0x0F
		g := ((high & 0x03) << 2) | ((low >> 4) & 0x03)
		b := low & 0x0F

		it.buf.palette[offset+i] = it.surf.PackRGB(expand4(r), expand4(g), expand4(b))
	}
}

// expand4 widens a 4-bit colour channel to 8 bits by duplicating the
// nibble (equivalently, multiplying by 17).
func expand4(n uint8) uint8 { return n * 17 }

// scroll implements instructions 20 and 24: update the sub-tile
// display offsets, and if the command also requests a whole-tile
// shift, rotate the pixel grid by that shift (wrapping), overwriting
// the wrapped band with colour unless copy is true.
func (it *Interpreter) scroll(p Packet, copy bool) {
	colour := p.Data[0] & 0x0F
	hScroll := p.Data[1] & 0x3F
	vScroll := p.Data[2] & 0x3F

	hSCmd := (hScroll >> 4) & 0x3
	hOffset := hScroll & 0x07
	vSCmd := (vScroll >> 4) & 0x3
	vOffset := vScroll & 0x0F

	it.buf.hOffset = minInt(int(hOffset), maxHOffset)
	it.buf.vOffset = minInt(int(vOffset), maxVOffset)

	vShift := 0
	switch vSCmd {
	case 2:
		vShift = -tileHeight
	case 1:
		vShift = tileHeight
	}
	hShift := 0
	switch hSCmd {
	case 2:
		hShift = -tileWidth
	case 1:
		hShift = tileWidth
	}
	if vShift == 0 && hShift == 0 {
		return
	}

	var next [GridHeight][GridWidth]uint8
	vInc := vShift + GridHeight
	hInc := hShift + GridWidth
	for r := 0; r < GridHeight; r++ {
		for c := 0; c < GridWidth; c++ {
			next[(r+vInc)%GridHeight][(c+hInc)%GridWidth] = it.buf.pixels[r][c]
		}
	}

	if !copy {
		fillScrollBand(&next, vShift, hShift, colour)
	}
	it.buf.pixels = next
}

// fillScrollBand overwrites the band of next that the scroll-preset
// shift vacated with colour: the rows or columns that wrapped in from
// the opposite edge, per the shift's sign.
func fillScrollBand(next *[GridHeight][GridWidth]uint8, vShift, hShift int, colour uint8) {
	if vShift > 0 {
		for c := 0; c < GridWidth; c++ {
			for r := 0; r < vShift; r++ {
				next[r][c] = colour
			}
		}
	} else if vShift < 0 {
		for c := 0; c < GridWidth; c++ {
			for r := GridHeight + vShift; r < GridHeight; r++ {
				next[r][c] = colour
			}
		}
	}

	if hShift > 0 {
		for c := 0; c < hShift; c++ {
			for r := 0; r < GridHeight; r++ {
				next[r][c] = colour
			}
		}
	} else if hShift < 0 {
		for c := GridWidth + hShift; c < GridWidth; c++ {
			for r := 0; r < GridHeight; r++ {
				next[r][c] = colour
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (it *Interpreter) logDebug(msg string, args ...interface{}) {
	if it.log != nil {
		it.log.Debug(msg, args...)
	}
}

func (it *Interpreter) logWarning(msg string, args ...interface{}) {
	if it.log != nil {
		it.log.Warning(msg, args...)
	}
}

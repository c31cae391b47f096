/*
DESCRIPTION
  clock.go maps a requested playback position in milliseconds to a
  number of CD+G packets to consume, and detects backward seeks.

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

const (
	packetsPerSecond = 300 // 4 packets per sector, 75 sectors per second.
	msPerStride       = 10 // Quantisation stride: 3 packets per 10ms.
	packetsPerStride  = packetsPerSecond * msPerStride / 1000
)

// clock tracks the last rendered playback position and turns a new
// requested position into a whole number of packets to apply, at the
// 10ms/3-packet granularity the format naturally quantises to.
type clock struct {
	positionMs int64
	durationMs int64
}

// advance quantises ms down to the clock's 10ms stride and reports how
// many packets must be consumed to reach it from the current position.
// If ms precedes the current position, rewind is true and the caller
// must rewind the byte source before consuming any packets; the clock
// itself is reset to position 0 in that case.
func (c *clock) advance(ms int64) (packets int64, rewind bool) {
	if ms < c.positionMs {
		rewind = true
		c.positionMs = 0
	}
	delta := ms - c.positionMs
	units := delta / msPerStride
	c.positionMs += units * msPerStride
	return units * packetsPerStride, rewind
}

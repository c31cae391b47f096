/*
DESCRIPTION
  clock_test.go tests the playback clock's time-to-packet quantisation.

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

func TestClockAdvanceQuantisesToTenMillisecondStride(t *testing.T) {
	var c clock
	packets, rewind := c.advance(25)
	if rewind {
		t.Error("unexpected rewind from position 0")
	}
	if got, want := packets, int64(6); got != want { // 25ms -> 2 units of 10ms -> 6 packets.
		t.Errorf("packets = %d, want %d", got, want)
	}
	if got, want := c.positionMs, int64(20); got != want {
		t.Errorf("positionMs = %d, want %d", got, want)
	}
}

func TestClockAdvanceRewindsOnBackwardSeek(t *testing.T) {
	var c clock
	c.advance(100)

	packets, rewind := c.advance(30)
	if !rewind {
		t.Error("expected rewind on a backward seek")
	}
	if got, want := packets, int64(9); got != want { // 30ms from position 0 -> 3 units -> 9 packets.
		t.Errorf("packets = %d, want %d", got, want)
	}
	if got, want := c.positionMs, int64(30); got != want {
		t.Errorf("positionMs = %d, want %d", got, want)
	}
}

func TestClockAdvanceIsCumulative(t *testing.T) {
	var c clock
	c.advance(10)
	packets, rewind := c.advance(25)
	if rewind {
		t.Error("unexpected rewind on a forward-only sequence")
	}
	if got, want := packets, int64(3); got != want { // from positionMs=10 to 20 -> 1 unit -> 3 packets.
		t.Errorf("packets = %d, want %d", got, want)
	}
}

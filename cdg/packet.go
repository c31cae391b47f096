/*
DESCRIPTION
  packet.go decodes the fixed 24-byte CD+G subcode packet.

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
	"io"

	"github.com/ausocean/cdg/cdgsource"
)

const (
	packetSize = 24 // Bytes per CD+G subcode packet.
	cdgMask    = 0x3F
	cdgCommand = 0x09
)

// Packet is a decoded 24-byte CD+G subcode record. ParityQ and ParityP
// are read off the wire but never stored; CD+G does no error
// correction, so they carry nothing an interpreter can use.
type Packet struct {
	Command     byte
	Instruction byte
	Data        [16]byte
}

// maskedInstruction returns the low 6 bits of Instruction, the only
// bits that carry semantic meaning.
func (p Packet) maskedInstruction() byte { return p.Instruction & cdgMask }

// isCommand reports whether p is a CD+G command packet as opposed to
// one of the other subcode packet types that share the channel.
func (p Packet) isCommand() bool { return p.Command&cdgMask == cdgCommand }

// readPacket reads exactly one packet from src. ok is false at a clean
// end of stream, in which case pkt is the zero value. err is non-nil
// only when the underlying read itself failed; a short read at EOF is
// reported via ok, not err, and never partially populates pkt.
func readPacket(src cdgsource.Source) (pkt Packet, ok bool, err error) {
	var buf [packetSize]byte
	n := 0
	for n < packetSize {
		m, rerr := src.Read(buf[n:])
		n += m
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return Packet{}, false, rerr
		}
		if m == 0 {
			break
		}
	}
	if n < packetSize {
		return Packet{}, false, nil
	}

	pkt.Command = buf[0]
	pkt.Instruction = buf[1]
	// buf[2:4] is the Q-channel parity, discarded.
	copy(pkt.Data[:], buf[4:20])
	// buf[20:24] is the P-channel parity, discarded.
	return pkt, true, nil
}

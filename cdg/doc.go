/*
DESCRIPTION
  doc.go provides package documentation for cdg.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cdg implements a CD+G subcode interpreter: it decodes the
// 24-byte packet stream carried alongside karaoke disc audio, applies
// each packet's instruction to a persistent indexed-colour framebuffer,
// and renders that framebuffer through the palette the stream loads
// (packed by a caller-supplied Surface) into a caller-owned RGB surface
// at any requested playback time.
package cdg

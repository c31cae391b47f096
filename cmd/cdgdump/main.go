/*
DESCRIPTION
  Cdgdump is a bare bones program that renders frames from a CD+G
  stream at a list of playback times and writes each as a PPM image.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cdgdump is a bare bones program for dumping rendered CD+G
// frames at a list of playback times, for inspecting a stream by eye.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ausocean/cdg/cdg"
	"github.com/ausocean/cdg/cdgsource"
	"github.com/ausocean/utils/logging"
)

func main() {
	pathPtr := flag.String("in", "", "Path to the .cdg file to read.")
	zipEntryPtr := flag.String("zip-entry", "", "If set, -in is a zip archive and this is the entry name within it.")
	timesPtr := flag.String("ms", "0", "Comma-separated list of playback positions in milliseconds to render.")
	outPtr := flag.String("out", "frame", "Output file prefix; frames are written as <prefix>-<ms>.ppm.")
	flag.Parse()

	if *pathPtr == "" {
		fmt.Fprintln(os.Stderr, "cdgdump: -in is required")
		os.Exit(2)
	}

	log := logging.New(logging.Debug, os.Stderr, true)

	var src cdgsource.Source
	var err error
	if *zipEntryPtr != "" {
		src, err = cdgsource.NewZipEntry(*pathPtr, *zipEntryPtr)
	} else {
		src, err = cdgsource.NewFile(*pathPtr)
	}
	if err != nil {
		log.Fatal("could not open cdg source", "error", err)
	}

	surf := cdg.NewRGBASurface()
	it := cdg.NewInterpreter(log)
	if err := it.Open(src, surf); err != nil {
		log.Fatal("could not open cdg interpreter", "error", err)
	}
	defer it.Close()

	log.Info("opened cdg stream", "duration_ms", it.TotalDurationMs())

	for _, tok := range strings.Split(*timesPtr, ",") {
		ms, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			log.Error("skipping invalid -ms token", "token", tok, "error", err)
			continue
		}

		ok, err := it.RenderAt(ms)
		if err != nil {
			log.Error("render failed", "ms", ms, "error", err)
			continue
		}
		if !ok {
			log.Warning("reached end of stream before requested position", "ms", ms)
		}

		name := fmt.Sprintf("%s-%d.ppm", *outPtr, ms)
		if err := writePPM(name, surf); err != nil {
			log.Error("could not write frame", "path", name, "error", err)
			continue
		}
		log.Info("wrote frame", "path", name, "ms", ms)
	}
}

// writePPM writes surf as a binary (P6) PPM image.
func writePPM(path string, surf *cdg.RGBASurface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", cdg.GridWidth, cdg.GridHeight)
	for r := 0; r < cdg.GridHeight; r++ {
		for c := 0; c < cdg.GridWidth; c++ {
			px := surf.Pixels[r][c]
			w.Write([]byte{byte(px >> 16), byte(px >> 8), byte(px)})
		}
	}
	return w.Flush()
}

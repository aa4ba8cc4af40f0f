// Package main renders scripted action-sheet walkthroughs to SVG frames.
// Each demo presents a sheet on a headless host, drives it through taps
// and animation steps, and captures the frames it wants to keep. Frames
// land in one directory per demo, numbered in capture order.
//
// Usage:
//
//	showcase [output-dir]
//
// The output directory defaults to "frames".
package main

import (
	"log"
	"os"
	"path/filepath"
)

func main() {
	out := "frames"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	for _, demo := range demos {
		log.Printf("%s: %s", demo.Name, demo.Subtitle)
		if err := runDemo(demo, filepath.Join(out, demo.Name)); err != nil {
			log.Fatalf("%s: %v", demo.Name, err)
		}
	}
	log.Printf("wrote %d demos under %s", len(demos), out)
}

func runDemo(demo Demo, dir string) error {
	rec, err := newRecorder(dir)
	if err != nil {
		return err
	}
	defer rec.Close()
	return demo.Run(rec)
}

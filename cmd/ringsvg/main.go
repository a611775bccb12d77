// Command ringsvg renders one ringframe widget as a standalone SVG document.
//
//	ringsvg -image cat.png -colors '#ff0000,#00ff00' -border lg -scroll 400 -frames 30 > ring.svg
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ringframe/internal/motion"
	"ringframe/internal/widget"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ringsvg: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ringsvg", flag.ContinueOnError)
	var v widget.Values
	fs.StringVar(&v.ID, "id", "ringframe", "element id prefix")
	fs.StringVar(&v.Image, "image", "", "image URL; empty renders the fallback text")
	fs.StringVar(&v.Colors, "colors", "", "1 to 4 comma-separated hex colors")
	fs.StringVar(&v.Border, "border", "md", "border size: sm, md, lg, xl")
	fs.StringVar(&v.Padding, "padding", "md", "padding size: sm, md, lg, none")
	fs.StringVar(&v.Speed, "speed", "1", "rotation speed factor")
	scroll := fs.Float64("scroll", 0, "simulated scroll offset")
	frames := fs.Int("frames", 0, "frames to step towards -scroll before rendering")
	fps := fs.Int("fps", motion.DefaultFPS, "frame rate of the simulation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	p, err := widget.ParseValues(v)
	if err != nil {
		return err
	}
	p = p.WithDefaults()
	if *frames > 0 {
		p.Angles = motion.Simulate(*fps, p.Speed(), *scroll, *frames)
	}

	out := bufio.NewWriter(stdout)
	if err := widget.WriteSVG(out, p); err != nil {
		return err
	}
	return out.Flush()
}

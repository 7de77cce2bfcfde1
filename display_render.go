// display_render.go - renders a Video frame buffer to the terminal
// using ANSI 24-bit truecolor background codes, two scanlines per
// printed row via the half-block character. No GUI toolkit: the
// corpus's GUI/rendering backends (ebiten, Vulkan, GTK4) all target a
// native window this CLI deliberately doesn't open.

package main

import (
	"fmt"
	"io"
	"strings"
)

// RenderFrame writes frame (as produced by Video.Present, packed RGB
// triples row-major at FrameWidth x FrameHeight) to w as one line of
// half-block characters per pair of source scanlines: the foreground
// color paints the top pixel, the background color the bottom one.
func RenderFrame(w io.Writer, frame []byte, width, height int) {
	var b strings.Builder
	b.WriteString("\033[H")

	for y := 0; y+1 < height; y += 2 {
		for x := 0; x < width; x++ {
			topOff := (y*width + x) * 3
			botOff := ((y+1)*width + x) * 3
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀",
				frame[topOff], frame[topOff+1], frame[topOff+2],
				frame[botOff], frame[botOff+1], frame[botOff+2])
		}
		b.WriteString("\033[0m\n")
	}
	io.WriteString(w, b.String())
}

// Package termview renders a palette as truecolor bands in a terminal.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vearutop/firepal"
)

// Draw paints pal across the screen as vertical bands, left to right.
// The bottom row carries the caption when the screen is taller than one row.
// Entries are dropped when the screen is narrower than the palette.
func Draw(s tcell.Screen, pal firepal.Palette, caption string) {
	s.Clear()
	defer s.Show()

	w, h := s.Size()
	if len(pal) == 0 || w <= 0 || h <= 0 {
		return
	}
	bands := h
	if h > 1 {
		bands = h - 1
	}
	for x := 0; x < w; x++ {
		style := Style(pal[x*len(pal)/w])
		for y := 0; y < bands; y++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	if h > 1 {
		for x, r := range []rune(caption) {
			if x >= w {
				break
			}
			s.SetContent(x, h-1, r, nil, tcell.StyleDefault)
		}
	}
}

// Style returns the background style for a palette entry.
func Style(e firepal.Entry) tcell.Style {
	c := e.RGB8()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Run draws pal on s and blocks until a key is pressed, redrawing on resize.
func Run(s tcell.Screen, pal firepal.Palette, caption string) {
	Draw(s, pal, caption)
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			Draw(s, pal, caption)
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}

// Show opens the terminal, runs the viewer and restores the terminal on return.
func Show(pal firepal.Palette, caption string) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer s.Fini()

	Run(s, pal, caption)
	return nil
}

package app

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/crux/internal/mathx/rect"
)

// Layout, in cells.
const (
	listTop   = 2
	listLeft  = 2
	barPad    = 1
	ellipsis  = "…"
	checkbox  = "[ ] "
	checked   = "[x] "
	statusGap = "  "
)

// Draw renders the current state and shows it. Hosts call it from the
// scheduler's frame hook.
func (a *Application) Draw(time.Time) {
	start := time.Now()
	a.draw()
	a.screen.Show()
	a.metrics.RecordDraw(time.Since(start))
}

func (a *Application) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	base := tcell.StyleDefault.Background(tcellColor(a.background))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	barRow := a.rowOf(a.bar)
	barLeft := int(math.Round(a.bar.Left()))
	barRight := int(math.Round(a.bar.Right()))
	barStyle := base.Background(tcellColor(a.barColor))
	styleAt := func(x, y int) tcell.Style {
		if y == barRow && x >= barLeft && x < barRight {
			return barStyle
		}
		return base
	}

	for x := max(barLeft, 0); x < min(barRight, width); x++ {
		a.screen.SetContent(x, barRow, ' ', nil, barStyle)
	}

	a.drawText(listLeft, 0, width-listLeft, a.cfg.Demo.Title, func(int) tcell.Style {
		return base.Bold(true)
	})

	for i, item := range a.items {
		y := listTop + i
		if y >= height-1 {
			break
		}
		label := checkbox + item
		if a.model.IsSelected(item) {
			label = checked + item
		}
		a.drawText(listLeft, y, width-listLeft-barPad, label, func(x int) tcell.Style {
			return styleAt(x, y)
		})
	}

	a.drawText(0, height-1, width, a.statusLine(), func(int) tcell.Style {
		return base.Reverse(true)
	})
}

// drawText writes s from column x, clipped to maxWidth cells.
func (a *Application) drawText(x, y, maxWidth int, s string, style func(x int) tcell.Style) {
	s = truncate(s, maxWidth)
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w == 0 {
			continue
		}
		runes := []rune(cluster)
		a.screen.SetContent(x, y, runes[0], runes[1:], style(x))
		x += w
	}
}

// statusLine summarizes the selection, motion setting and transitions.
func (a *Application) statusLine() string {
	s := a.metrics.Snapshot()
	line := fmt.Sprintf(" %d/%d selected%seasing %s%smotion %s%stransitions %d done %d canceled",
		a.model.Count(), len(a.items), statusGap,
		a.cfg.Animation.Easing, statusGap,
		motionLabel(a.reduced.Load()), statusGap,
		s.Finished, s.Canceled)
	if a.status != "" {
		line += statusGap + a.status
	}
	return line
}

// rowRect is the bar rectangle for row.
func (a *Application) rowRect(row int) rect.Rect {
	width, _ := a.screen.Size()
	w := uniseg.StringWidth(checkbox+a.items[row]) + 2*barPad
	w = max(0, min(w, width-listLeft+barPad))
	return rect.New(float64(listLeft-barPad), float64(listTop+row), float64(w), 1)
}

// rowOf returns the screen row the bar currently covers most.
func (a *Application) rowOf(bar rect.Rect) int {
	return int(math.Round(bar.Top()))
}

// truncate shortens s to at most width cells, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	limit := width - uniseg.StringWidth(ellipsis)
	out := make([]byte, 0, len(s))
	used := 0
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > limit {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + ellipsis
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func motionLabel(reduced bool) string {
	if reduced {
		return "reduced"
	}
	return "full"
}

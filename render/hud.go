package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/event"
	"github.com/lixenwraith/deadchannel/parameter"
)

const (
	trackAnim = parameter.TrackInfoAnimMs * time.Millisecond
	trackHold = parameter.TrackInfoHoldMs * time.Millisecond

	meterWidth = 8
)

// trackBox animates music metadata: slide in, hold, slide out
type trackBox struct {
	lines   []string
	started time.Time
	active  bool
}

// slide returns the visible fraction of the box at now, 0 once finished
func (t *trackBox) slide(now time.Time) float64 {
	if !t.active {
		return 0
	}
	el := now.Sub(t.started)
	switch {
	case el < 0:
		return 0
	case el < trackAnim:
		return float64(el) / float64(trackAnim)
	case el < trackAnim+trackHold:
		return 1
	case el < 2*trackAnim+trackHold:
		return 1 - float64(el-trackAnim-trackHold)/float64(trackAnim)
	default:
		t.active = false
		return 0
	}
}

// trackLines orders title, then artist, then any other keys alphabetically
func trackLines(info map[string][]string) []string {
	var lines []string
	add := func(prefix string, vals []string) {
		for _, v := range vals {
			lines = append(lines, prefix+v)
		}
	}
	add("♪ ", info["title"])
	add("  ", info["artist"])

	var rest []string
	for k := range info {
		if k != "title" && k != "artist" {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		add("  "+k+": ", info[k])
	}
	return lines
}

// HUD draws the status bar, the track box and end-of-run banners
type HUD struct {
	xp        int
	xpText    string
	xpRenders int

	track  trackBox
	banner string
	color  tcell.Color
}

func NewHUD() *HUD {
	return &HUD{xp: -1}
}

// HandleEvent updates HUD state from a drained game event
func (h *HUD) HandleEvent(ev event.GameEvent, now time.Time) {
	switch ev.Type {
	case event.EventTrackStarted:
		p, ok := ev.Payload.(*event.TrackPayload)
		if !ok {
			return
		}
		h.track = trackBox{lines: trackLines(p.Info), started: now, active: true}
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			h.banner = fmt.Sprintf(" GAME OVER  XP %d  FRAME %d ", p.Experience, p.Frame)
			h.color = RgbGameOver
		}
	case event.EventStageCleared:
		if h.banner == "" {
			h.banner = " CHANNEL CLEAR "
			h.color = RgbStageDone
		}
	}
}

// Draw renders the HUD over the top of the play area
func (h *HUD) Draw(s tcell.Screen, w *engine.World, now time.Time) {
	cols, rows := s.Size()
	if rows < 1 {
		return
	}
	h.drawStatus(s, w, cols, rows-1)
	h.drawTrack(s, cols, now)
	if h.banner != "" {
		x := (cols - runewidth.StringWidth(h.banner)) / 2
		drawText(s, x, (rows-1)/2, h.banner, tcell.StyleDefault.Foreground(RgbHUD).Background(h.color).Bold(true))
	}
}

func (h *HUD) drawStatus(s tcell.Screen, w *engine.World, cols, row int) {
	for x := 0; x < cols; x++ {
		s.SetContent(x, row, ' ', nil, styleHUD)
	}

	ship := w.Player()
	x := 1
	for i := 0; i < ship.Combat.MaxLife; i++ {
		style := styleHUD.Foreground(RgbLife)
		if i >= ship.Combat.Life {
			style = styleHUD.Foreground(RgbLifeLost)
		}
		s.SetContent(x, row, parameter.HUDLifeGlyph, nil, style)
		x++
	}
	x++

	if xp := ship.Player.Experience; xp != h.xp {
		h.xp = xp
		h.xpText = fmt.Sprintf("XP %06d", xp)
		h.xpRenders++
	}
	x = drawText(s, x, row, h.xpText, styleHUD.Bold(true))
	x = drawText(s, x, row, " │ ", styleHUD)

	pl := ship.Player
	weapon := pl.Inventory.Current()
	if weapon == nil {
		drawText(s, x, row, "no secondary", styleHUD.Dim(true))
		return
	}
	x = drawText(s, x, row, fmt.Sprintf("%s %d/%d ", weapon.Name, weapon.Ammo, weapon.MaxAmmo), styleHUD)

	heat := 1.0
	if weapon.MaxCooldownMs > 0 {
		heat = float64(weapon.CooldownMs) / float64(weapon.MaxCooldownMs)
	}
	x = drawMeter(s, x, row, heat, styleHUD.Foreground(heatColor(heat)))

	if weapon.Chargeable() {
		x = drawText(s, x, row, " ⚡", styleHUD)
		drawMeter(s, x, row, float64(pl.ChargingMs)/float64(weapon.MaxChargeMs), styleHUD.Foreground(RgbCharge))
	}
}

func (h *HUD) drawTrack(s tcell.Screen, cols int, now time.Time) {
	f := h.track.slide(now)
	if f <= 0 || len(h.track.lines) == 0 {
		return
	}

	inner := 0
	for _, l := range h.track.lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	width := inner + 4
	left := cols - int(float64(width)*f+0.5)
	style := tcell.StyleDefault.Foreground(RgbTrackBox).Background(RgbHUDBg)

	border := strings.Repeat("─", width-2)
	drawText(s, left, 0, "┌"+border+"┐", style)
	for i, l := range h.track.lines {
		pad := strings.Repeat(" ", inner-runewidth.StringWidth(l))
		drawText(s, left, i+1, "│ "+l+pad+" │", style)
	}
	drawText(s, left, len(h.track.lines)+1, "└"+border+"┘", style)
}

// drawText writes str from x, clipping off-screen cells, and returns the next column
func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	cols, rows := s.Size()
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			s.SetContent(x, y, r, nil, style)
		}
		x += max(w, 1)
	}
	return x
}

// drawMeter draws a meterWidth cell bar filled to ratio
func drawMeter(s tcell.Screen, x, y int, ratio float64, style tcell.Style) int {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*meterWidth + 0.5)
	for i := 0; i < meterWidth; i++ {
		r := '▯'
		if i < filled {
			r = '▮'
		}
		s.SetContent(x+i, y, r, nil, style)
	}
	return x + meterWidth
}

package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

// Renderer maps the logical play field onto the terminal grid
// The bottom row is reserved for the status bar
type Renderer struct {
	screen  tcell.Screen
	sprites *SpriteCache
	hud     *HUD
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		sprites: NewSpriteCache(),
		hud:     NewHUD(),
	}
}

func (r *Renderer) HUD() *HUD { return r.hud }

func (r *Renderer) Sprites() *SpriteCache { return r.sprites }

// viewport converts field coordinates to cells
type viewport struct {
	field      vmath.Box
	cols, rows int
	cellW      float64
	cellH      float64
}

func newViewport(field vmath.Box, cols, rows int) viewport {
	return viewport{
		field: field,
		cols:  cols,
		rows:  rows,
		cellW: field.Width() / float64(cols),
		cellH: field.Height() / float64(rows),
	}
}

func (v viewport) cell(p vmath.Vec2) (int, int, bool) {
	x := int(math.Floor((p.X - v.field.Left) / v.cellW))
	y := int(math.Floor((p.Y - v.field.Top) / v.cellH))
	return x, y, x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// Draw renders one frame: background, every group in stable order, then the HUD
func (r *Renderer) Draw(w *engine.World, now time.Time) {
	s := r.screen
	cols, rows := s.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	s.Clear()

	vp := newViewport(w.Field, cols, rows-1)
	r.drawBackground(w, vp)

	for _, g := range w.Groups() {
		g.Each(func(e *engine.Entity) {
			x, y, ok := vp.cell(e.Position)
			if !ok {
				return
			}
			sp := r.sprites.Get(e)
			s.SetContent(x, y, sp.Glyph(e.Heading), nil, sp.Style)
		})
	}

	r.hud.Draw(s, w, now)
	s.Show()
}

// drawBackground textures every other row with the current pattern, scrolled by the backdrop offset
func (r *Renderer) drawBackground(w *engine.World, vp viewport) {
	s := r.screen
	glyph := patternRune(w.Background.Image)
	tile := parameter.BackgroundTileWidth
	span := int(math.Ceil(vp.cellW))

	for y := 0; y < vp.rows; y++ {
		for x := 0; x < vp.cols; x++ {
			ch := ' '
			if y%2 == 0 {
				px := int(float64(x)*vp.cellW) - w.Background.Offset
				if px%tile < span {
					ch = glyph
				}
			}
			s.SetContent(x, y, ch, nil, styleBackground.Foreground(RgbBackgroundPattern))
		}
	}
}

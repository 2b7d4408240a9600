package render

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
)

// Sprite is the terminal appearance of an image name
// Frames holds one glyph per heading sector; single-frame sprites ignore heading
type Sprite struct {
	Frames []rune
	Style  tcell.Style
}

// Glyph returns the frame for heading degrees
func (s Sprite) Glyph(heading int) rune {
	if len(s.Frames) == 0 {
		return '?'
	}
	if len(s.Frames) == 1 {
		return s.Frames[0]
	}
	k := component.Kinetic{Heading: heading}
	return s.Frames[k.SpriteFrame(len(s.Frames))]
}

var (
	playerFrames = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	enemyGlyphs  = []rune{'◄', '◆', '▼', '▲', '■', '●'}
	patternRunes = []rune{'·', '.', ':', '░'}
)

type spriteKey struct {
	kind engine.Kind
	name string
}

// SpriteCache resolves image names to sprites once and keeps them for the session
// Unknown names get a deterministic glyph picked from the kind's set
type SpriteCache struct {
	sprites map[spriteKey]Sprite
	misses  int
}

func NewSpriteCache() *SpriteCache {
	c := &SpriteCache{sprites: make(map[spriteKey]Sprite)}
	c.Register(engine.KindPlayer, "player", Sprite{Frames: playerFrames, Style: styleBackground.Foreground(RgbPlayer).Bold(true)})
	c.Register(engine.KindProjectile, "player_fire", Sprite{Frames: []rune{'-'}, Style: styleBackground.Foreground(RgbPlayerFire)})
	c.Register(engine.KindProjectile, "enemy_fire", Sprite{Frames: []rune{'∙'}, Style: styleBackground.Foreground(RgbEnemyFire)})
	c.Register(engine.KindProjectile, "pellet", Sprite{Frames: []rune{'•'}, Style: styleBackground.Foreground(RgbPlayerFire)})
	c.Register(engine.KindProjectile, "grenade", Sprite{Frames: []rune{'◉'}, Style: styleBackground.Foreground(RgbPlayerFire)})
	c.Register(engine.KindProjectile, "fragment", Sprite{Frames: []rune{'*'}, Style: styleBackground.Foreground(RgbEnemyFire)})
	c.Register(engine.KindProjectile, "missile", Sprite{Frames: playerFrames, Style: styleBackground.Foreground(RgbPlayerFire).Bold(true)})
	c.Register(engine.KindProjectile, "bolt", Sprite{Frames: []rune{'═'}, Style: styleBackground.Foreground(RgbCharge).Bold(true)})
	return c
}

// Register installs or replaces a sprite
func (c *SpriteCache) Register(kind engine.Kind, name string, s Sprite) {
	c.sprites[spriteKey{kind, name}] = s
}

// Get returns the sprite for e, building and caching it on first use
func (c *SpriteCache) Get(e *engine.Entity) Sprite {
	key := spriteKey{e.Kind, e.Sprite}
	if s, ok := c.sprites[key]; ok {
		return s
	}
	c.misses++
	s := c.derive(e)
	c.sprites[key] = s
	return s
}

// Misses counts sprites built on demand
func (c *SpriteCache) Misses() int {
	return c.misses
}

func (c *SpriteCache) derive(e *engine.Entity) Sprite {
	h := nameHash(e.Sprite)
	switch e.Kind {
	case engine.KindEnemy:
		return Sprite{Frames: []rune{enemyGlyphs[h%uint32(len(enemyGlyphs))]}, Style: styleBackground.Foreground(RgbEnemy)}
	case engine.KindPowerUp:
		if e.PowerUp != nil && e.PowerUp.Kind == component.PowerUpHeal {
			return Sprite{Frames: []rune{'+'}, Style: styleBackground.Foreground(RgbPowerUpHeal).Bold(true)}
		}
		return Sprite{Frames: []rune{'▣'}, Style: styleBackground.Foreground(RgbPowerUpWeapon).Bold(true)}
	case engine.KindPlayer:
		return Sprite{Frames: playerFrames, Style: styleBackground.Foreground(RgbPlayer)}
	default:
		return Sprite{Frames: []rune{'-'}, Style: styleBackground.Foreground(RgbPlayerFire)}
	}
}

// patternRune picks the background texture for a background image name
func patternRune(image string) rune {
	return patternRunes[nameHash(image)%uint32(len(patternRunes))]
}

func nameHash(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

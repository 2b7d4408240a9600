package stage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/vmath"
)

// item is the format-neutral form of one stage entry
// Both the TOML and the XML loaders reduce entries to string fields before validation
type item struct {
	index  int
	fields map[string]string
	attrs  map[string]string
}

func (it *item) errorf(name string, err error) error {
	typ := it.fields["type"]
	if typ == "" {
		typ = "?"
	}
	return fmt.Errorf("item %d (%s) field %q: %w", it.index, typ, name, err)
}

func (it *item) str(name string) (string, error) {
	v, ok := it.fields[name]
	if !ok {
		return "", it.errorf(name, ErrMissingField)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", it.errorf(name, ErrMissingField)
	}
	return v, nil
}

func (it *item) int(name string) (int, error) {
	s, err := it.str(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, it.errorf(name, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s))
	}
	return n, nil
}

func (it *item) float(name string) (float64, error) {
	s, err := it.str(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, it.errorf(name, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s))
	}
	return f, nil
}

// optionalInt returns def when the field is absent
func (it *item) optionalInt(name string, def int) (int, error) {
	if _, ok := it.fields[name]; !ok {
		return def, nil
	}
	return it.int(name)
}

// frame reads the scheduling key; legacy files name it x
func (it *item) frame() (int64, error) {
	name := "frame"
	if _, ok := it.fields[name]; !ok {
		if _, legacy := it.fields["x"]; legacy {
			name = "x"
		}
	}
	n, err := it.int(name)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, it.errorf(name, fmt.Errorf("%w: negative frame %d", ErrInvalidValue, n))
	}
	return int64(n), nil
}

func (it *item) attrInt(name string, minimum int) (int, error) {
	s, ok := it.attrs[name]
	if !ok || strings.TrimSpace(s) == "" {
		return 0, it.errorf("special."+name, ErrMissingField)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, it.errorf("special."+name, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s))
	}
	if n < minimum {
		return 0, it.errorf("special."+name, fmt.Errorf("%w: %d below minimum %d", ErrInvalidValue, n, minimum))
	}
	return n, nil
}

// parseAttributes splits "key=value" pairs separated by commas or semicolons
func parseAttributes(special string) (map[string]string, error) {
	out := make(map[string]string)
	pairs := strings.FieldsFunc(special, func(r rune) bool { return r == ',' || r == ';' })
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q is not key=value", ErrInvalidValue, pair)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

// build validates the item into a typed event
func (it *item) build() (Event, error) {
	typ, err := it.str("type")
	if err != nil {
		return Event{}, err
	}
	frame, err := it.frame()
	if err != nil {
		return Event{}, err
	}
	image, err := it.str("image")
	if err != nil {
		return Event{}, err
	}

	ev := Event{Frame: frame, TypeID: typ}
	switch {
	case typ == "background":
		ev.Kind = KindBackground
		ev.Background = &Background{Image: image}
	case typ == "enemy":
		ev.Kind = KindEnemy
		ev.Enemy, err = it.enemy(image)
	case typ == "first_aid_kit":
		ev.Kind = KindPowerUp
		ev.PowerUp, err = it.powerUp(image, typ)
	default:
		if _, ok := component.WeaponKindFromID(typ); !ok {
			return Event{}, fmt.Errorf("item %d: %w %q", it.index, ErrUnknownKind, typ)
		}
		ev.Kind = KindPowerUp
		ev.PowerUp, err = it.powerUp(image, typ)
	}
	if err != nil {
		return Event{}, err
	}
	return ev, nil
}

// motion reads the fields shared by every spawned entity
func (it *item) motion() (y float64, speed vmath.Vec2, err error) {
	if y, err = it.float("y"); err != nil {
		return
	}
	if speed.X, err = it.float("speed_x"); err != nil {
		return
	}
	speed.Y, err = it.float("speed_y")
	return
}

func (it *item) enemy(image string) (*Enemy, error) {
	y, speed, err := it.motion()
	if err != nil {
		return nil, err
	}
	rot, err := it.int("rot")
	if err != nil {
		return nil, err
	}
	rotSpeed, err := it.int("rotspeed")
	if err != nil {
		return nil, err
	}
	life, err := it.int("life")
	if err != nil {
		return nil, err
	}
	if life < 1 {
		return nil, it.errorf("life", fmt.Errorf("%w: enemy life %d must be positive", ErrInvalidValue, life))
	}
	name, err := it.str("behaviour")
	if err != nil {
		return nil, err
	}
	behavior, ok := component.ParseBehavior(name)
	if !ok {
		return nil, it.errorf("behaviour", fmt.Errorf("%w: unknown behaviour %q", ErrInvalidValue, name))
	}

	return &Enemy{
		Image:       image,
		Y:           y,
		Speed:       speed,
		Heading:     vmath.NormalizeDegrees(rot),
		HeadingRate: rotSpeed,
		Life:        life,
		Behavior:    behavior,
		Special:     it.fields["special"],
	}, nil
}

func (it *item) powerUp(image, typ string) (*PowerUp, error) {
	y, speed, err := it.motion()
	if err != nil {
		return nil, err
	}
	rotSpeed, err := it.optionalInt("rotspeed", 0)
	if err != nil {
		return nil, err
	}
	// life is the pickup lifetime in ms, 0 selects the configured default
	lifetime, err := it.optionalInt("life", 0)
	if err != nil {
		return nil, err
	}
	if lifetime < 0 {
		return nil, it.errorf("life", fmt.Errorf("%w: negative lifetime %d", ErrInvalidValue, lifetime))
	}

	pu := &PowerUp{
		Image:       image,
		Y:           y,
		Speed:       speed,
		HeadingRate: rotSpeed,
		Effect:      component.PowerUp{TypeID: typ, RemainingMs: lifetime},
	}

	if typ == "first_aid_kit" {
		heal, err := it.int("special")
		if err != nil {
			return nil, err
		}
		if heal < 1 {
			return nil, it.errorf("special", fmt.Errorf("%w: heal %d must be positive", ErrInvalidValue, heal))
		}
		pu.Effect.Kind = component.PowerUpHeal
		pu.Effect.Heal = heal
		return pu, nil
	}

	spec, err := it.weapon(typ)
	if err != nil {
		return nil, err
	}
	pu.Effect.Kind = component.PowerUpWeapon
	pu.Effect.Weapon = spec
	return pu, nil
}

func (it *item) weapon(typ string) (*component.WeaponSpec, error) {
	kind, _ := component.WeaponKindFromID(typ)

	if it.attrs == nil {
		special, err := it.str("special")
		if err != nil {
			return nil, err
		}
		attrs, err := parseAttributes(special)
		if err != nil {
			return nil, it.errorf("special", err)
		}
		it.attrs = attrs
	}

	name := strings.TrimSpace(it.attrs["name"])
	if name == "" {
		return nil, it.errorf("special.name", ErrMissingField)
	}

	spec := &component.WeaponSpec{Kind: kind, Name: name}
	var err error
	if spec.Ammo, err = it.attrInt("ammo", 0); err != nil {
		return nil, err
	}
	if spec.MaxAmmo, err = it.attrInt("max_ammo", 1); err != nil {
		return nil, err
	}
	distance, err := it.attrInt("distance", 1)
	if err != nil {
		return nil, err
	}
	spec.TravelDistance = float64(distance)
	if spec.CooldownMs, err = it.attrInt("cooldown", 0); err != nil {
		return nil, err
	}
	if spec.HeatCost, err = it.attrInt("heating", 0); err != nil {
		return nil, err
	}
	if spec.MaxChargeMs, err = it.attrInt("max_charge", 0); err != nil {
		return nil, err
	}

	switch kind {
	case component.WeaponSpread:
		if spec.SpreadAngle, err = it.attrInt("radius", 0); err != nil {
			return nil, err
		}
		if spec.PelletCount, err = it.attrInt("simultaneous_shoots", 1); err != nil {
			return nil, err
		}
	case component.WeaponGrenade:
		if spec.FragmentCount, err = it.attrInt("fragments", 1); err != nil {
			return nil, err
		}
	case component.WeaponCharged:
		if spec.MaxChargeMs < 1 {
			return nil, it.errorf("special.max_charge", fmt.Errorf("%w: charged weapons need a positive max_charge", ErrInvalidValue))
		}
	}

	if spec.HeatCost > spec.CooldownMs {
		return nil, it.errorf("special.heating", fmt.Errorf("%w: heating %d exceeds cooldown %d", ErrInvalidValue, spec.HeatCost, spec.CooldownMs))
	}

	return spec, nil
}

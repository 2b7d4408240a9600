package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space": ' ',
}

// DefaultBindings maps action names to key names
// Special keys use tcell names (Up, Tab, Esc, Ctrl-C), printable keys are single characters
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"up":                       {"Up", "w"},
		"down":                     {"Down", "s"},
		"left":                     {"Left", "a"},
		"right":                    {"Right", "d"},
		"rotate_clockwise":         {"e"},
		"rotate_counter_clockwise": {"q"},
		"fire":                     {"space"},
		"fire_secondary":           {"x"},
		"next_weapon":              {"Tab", "c"},
		"prev_weapon":              {"z"},
		"mute":                     {"m"},
		"quit":                     {"Esc", "Ctrl-C"},
	}
}

// Mapper converts terminal key events into intents
// Terminals report no key-up, so held actions latch on the first event and release
// after a quiet period; autorepeat events refresh the latch without repeating the press
type Mapper struct {
	keys    map[tcell.Key]Action
	runes   map[rune]Action
	latched map[Action]time.Time
	timeout time.Duration
}

// NewMapper builds a mapper from action-name to key-name bindings
func NewMapper(bindings map[string][]string, timeout time.Duration) (*Mapper, error) {
	m := &Mapper{
		keys:    make(map[tcell.Key]Action),
		runes:   make(map[rune]Action),
		latched: make(map[Action]time.Time),
		timeout: timeout,
	}

	specials := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		specials[strings.ToLower(name)] = k
	}

	// Sorted for deterministic conflict resolution: later actions win
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("binding %q: %w", name, ErrUnknownAction)
		}
		for _, keyName := range bindings[name] {
			if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
				m.runes[r] = action
				continue
			}
			if utf8.RuneCountInString(keyName) == 1 {
				r, _ := utf8.DecodeRuneInString(keyName)
				m.runes[r] = action
				continue
			}
			k, ok := specials[strings.ToLower(keyName)]
			if !ok {
				return nil, fmt.Errorf("binding %q key %q: %w", name, keyName, ErrUnknownKey)
			}
			m.keys[k] = action
		}
	}

	return m, nil
}

// Lookup resolves a key to its bound action
func (m *Mapper) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return m.runes[r]
	}
	return m.keys[key]
}

// HandleEvent maps a tcell key event received at now
func (m *Mapper) HandleEvent(ev *tcell.EventKey, now time.Time) []Intent {
	return m.Key(ev.Key(), ev.Rune(), now)
}

// Key maps a single key occurrence
func (m *Mapper) Key(key tcell.Key, r rune, now time.Time) []Intent {
	action := m.Lookup(key, r)
	if action == ActionNone {
		return nil
	}
	if !action.held() {
		return []Intent{action.intent(true)}
	}
	if _, ok := m.latched[action]; ok {
		m.latched[action] = now
		return nil
	}
	m.latched[action] = now
	return []Intent{action.intent(true)}
}

// Expire releases latched actions quiet for longer than the timeout
func (m *Mapper) Expire(now time.Time) []Intent {
	var out []Intent
	for a := ActionUp; a < actionCount; a++ {
		last, ok := m.latched[a]
		if !ok || now.Sub(last) < m.timeout {
			continue
		}
		delete(m.latched, a)
		out = append(out, a.intent(false))
	}
	return out
}

// ReleaseAll releases every latched action
func (m *Mapper) ReleaseAll() []Intent {
	var out []Intent
	for a := ActionUp; a < actionCount; a++ {
		if _, ok := m.latched[a]; ok {
			delete(m.latched, a)
			out = append(out, a.intent(false))
		}
	}
	return out
}

// Held reports whether an action is currently latched
func (m *Mapper) Held(a Action) bool {
	_, ok := m.latched[a]
	return ok
}

package input

// Action is a bindable game action
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionFire
	ActionFireSecondary
	ActionNextWeapon
	ActionPrevWeapon
	ActionMute
	ActionQuit
	actionCount
)

// actionNames are the binding keys used in preferences
var actionNames = [actionCount]string{
	ActionNone:                   "",
	ActionUp:                     "up",
	ActionDown:                   "down",
	ActionLeft:                   "left",
	ActionRight:                  "right",
	ActionRotateClockwise:        "rotate_clockwise",
	ActionRotateCounterClockwise: "rotate_counter_clockwise",
	ActionFire:                   "fire",
	ActionFireSecondary:          "fire_secondary",
	ActionNextWeapon:             "next_weapon",
	ActionPrevWeapon:             "prev_weapon",
	ActionMute:                   "mute",
	ActionQuit:                   "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a preferences binding key
func ActionByName(name string) (Action, bool) {
	for i := ActionUp; i < actionCount; i++ {
		if actionNames[i] == name {
			return i, true
		}
	}
	return ActionNone, false
}

// held reports whether the action is latched until release
func (a Action) held() bool {
	return a >= ActionUp && a <= ActionFireSecondary
}

// intent builds the press or release intent for the action
func (a Action) intent(pressed bool) Intent {
	switch a {
	case ActionUp:
		return Intent{Type: IntentMove, Pressed: pressed, DY: -1}
	case ActionDown:
		return Intent{Type: IntentMove, Pressed: pressed, DY: 1}
	case ActionLeft:
		return Intent{Type: IntentMove, Pressed: pressed, DX: -1}
	case ActionRight:
		return Intent{Type: IntentMove, Pressed: pressed, DX: 1}
	case ActionRotateClockwise:
		return Intent{Type: IntentRotate, Pressed: pressed, Dir: 1}
	case ActionRotateCounterClockwise:
		return Intent{Type: IntentRotate, Pressed: pressed, Dir: -1}
	case ActionFire:
		return Intent{Type: IntentFirePrimary, Pressed: pressed}
	case ActionFireSecondary:
		return Intent{Type: IntentFireSecondary, Pressed: pressed}
	case ActionNextWeapon:
		return Intent{Type: IntentNextWeapon, Pressed: true}
	case ActionPrevWeapon:
		return Intent{Type: IntentPrevWeapon, Pressed: true}
	case ActionMute:
		return Intent{Type: IntentToggleMute, Pressed: true}
	case ActionQuit:
		return Intent{Type: IntentQuit, Pressed: true}
	default:
		return Intent{}
	}
}

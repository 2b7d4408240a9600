package event

// EventType represents the type of game event
type EventType int

const (
	// === Combat Events ===

	// EventPlayerHit reports damage taken by the player
	// Trigger: CollisionSystem | Payload: *PlayerHitPayload
	EventPlayerHit EventType = iota

	// EventEnemyDestroyed reports an enemy reaching zero life
	// Trigger: CollisionSystem | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed

	// EventExperienceChanged reports a new experience total
	// Trigger: CollisionSystem | Payload: *ExperiencePayload
	EventExperienceChanged

	// EventGameOver is emitted once when the run ends
	// Trigger: Director | Payload: *GameOverPayload
	EventGameOver

	// === Weapon Events ===

	// EventPrimaryFired reports a primary shot
	// Trigger: WeaponSystem | Payload: nil
	EventPrimaryFired

	// EventSecondaryFired reports a successful secondary shot
	// Trigger: WeaponSystem | Payload: *WeaponPayload
	EventSecondaryFired

	// EventWeaponOverheated reports a trigger pulled before cooldown recovered
	// Trigger: WeaponSystem | Payload: *WeaponPayload
	EventWeaponOverheated

	// EventWeaponDropped reports a weapon removed for lack of ammo
	// Trigger: WeaponSystem | Payload: *WeaponPayload
	EventWeaponDropped

	// EventWeaponSelected reports a selection change
	// Trigger: IntentSystem, PowerUp pickup | Payload: *WeaponPayload
	EventWeaponSelected

	// EventFragmentBurst reports a grenade bursting into fragments
	// Trigger: MotionSystem | Payload: nil
	EventFragmentBurst

	// === Pickup Events ===

	// EventPowerUpConsumed reports an accepted pickup
	// Trigger: CollisionSystem | Payload: *PowerUpPayload
	EventPowerUpConsumed

	// EventPowerUpRejected reports a pickup that had no effect
	// Trigger: CollisionSystem | Payload: *PowerUpPayload
	EventPowerUpRejected

	// === Stage Events ===

	// EventBackgroundChanged reports a timeline background switch
	// Trigger: SpawnSystem | Payload: *BackgroundPayload
	EventBackgroundChanged

	// EventStageCleared is emitted when the timeline has no events left and no enemies remain
	// Trigger: SpawnSystem | Payload: nil
	EventStageCleared

	// === Audio Events ===

	// EventTrackStarted reports a new music track
	// Trigger: MusicPlayer (speaker goroutine) | Payload: *TrackPayload
	EventTrackStarted
)

var eventNames = map[EventType]string{
	EventPlayerHit:         "player_hit",
	EventEnemyDestroyed:    "enemy_destroyed",
	EventExperienceChanged: "experience_changed",
	EventGameOver:          "game_over",
	EventPrimaryFired:      "primary_fired",
	EventSecondaryFired:    "secondary_fired",
	EventWeaponOverheated:  "weapon_overheated",
	EventWeaponDropped:     "weapon_dropped",
	EventWeaponSelected:    "weapon_selected",
	EventFragmentBurst:     "fragment_burst",
	EventPowerUpConsumed:   "powerup_consumed",
	EventPowerUpRejected:   "powerup_rejected",
	EventBackgroundChanged: "background_changed",
	EventStageCleared:      "stage_cleared",
	EventTrackStarted:      "track_started",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single notification from the simulation to its observers
type GameEvent struct {
	Type    EventType
	Frame   int64
	Payload any
}

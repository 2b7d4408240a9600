package event

// PlayerHitPayload carries the player's life after a hit
type PlayerHitPayload struct {
	Life int
}

// EnemyDestroyedPayload carries the destroyed enemy's last position
type EnemyDestroyedPayload struct {
	X, Y float64
}

// ExperiencePayload carries the new experience total and its delta
type ExperiencePayload struct {
	Experience int
	Delta      int
}

// GameOverPayload summarizes the finished run
type GameOverPayload struct {
	Frame      int64
	Experience int
}

// WeaponPayload identifies the weapon involved in a weapon event
type WeaponPayload struct {
	Name string
	Ammo int
}

// PowerUpPayload identifies the pickup involved in a pickup event
type PowerUpPayload struct {
	Kind string
}

// BackgroundPayload names the new background layer
type BackgroundPayload struct {
	Image string
}

// TrackPayload carries opaque track metadata for the HUD
type TrackPayload struct {
	Info map[string][]string
}

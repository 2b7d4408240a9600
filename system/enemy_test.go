package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/deadchannel/component"
	"github.com/lixenwraith/deadchannel/engine"
	"github.com/lixenwraith/deadchannel/parameter"
	"github.com/lixenwraith/deadchannel/vmath"
)

func TestZigzagFlipsEveryPeriod(t *testing.T) {
	w := newTestWorld()
	e := addEnemy(w, vmath.V(400, 300), 1, component.BehaviorZigzag)

	var ys []float64
	for range 2 * parameter.EnemyZigzagPeriod {
		steerEnemy(e, w.Player())
		ys = append(ys, e.Velocity.Y)
	}

	// Counter 1..14 down, 15..29 up, 30 down again
	for i, vy := range ys {
		counter := i + 1
		switch {
		case counter < 15:
			assert.Equal(t, float64(parameter.EnemyZigzagSpeedY), vy, "counter %d", counter)
		case counter < 30:
			assert.Equal(t, -float64(parameter.EnemyZigzagSpeedY), vy, "counter %d", counter)
		default:
			assert.Equal(t, float64(parameter.EnemyZigzagSpeedY), vy, "counter %d", counter)
		}
	}
	assert.Equal(t, float64(parameter.EnemyCruiseSpeedX), e.Velocity.X)
}

func TestSeekingStepsTowardPlayer(t *testing.T) {
	w := newTestWorld()
	target := w.Player()

	tests := []struct {
		name   string
		y      float64
		wantVY float64
	}{
		{"above moves down", target.Position.Y - 100, parameter.EnemySeekingSpeedY},
		{"below moves up", target.Position.Y + 100, -parameter.EnemySeekingSpeedY},
		{"level holds", target.Position.Y, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := addEnemy(w, vmath.V(400, tt.y), 1, component.BehaviorSeeking)

			steerEnemy(e, target) // counter 1, odd: horizontal only
			assert.Equal(t, 0.0, e.Velocity.Y)

			steerEnemy(e, target) // counter 2, even: chase
			assert.Equal(t, tt.wantVY, e.Velocity.Y)
			assert.Equal(t, float64(parameter.EnemyCruiseSpeedX), e.Velocity.X)
		})
	}
}

func TestStraightKeepsStageVelocity(t *testing.T) {
	w := newTestWorld()
	e := spawnEnemy(w, "enemy", 300, vmath.V(-9, 2), 1, component.BehaviorStraight)
	for range 10 {
		steerEnemy(e, w.Player())
	}
	assert.Equal(t, vmath.V(-9, 2), e.Velocity)
	assert.Equal(t, w.Field.Right+parameter.EnemyWidth/2, e.Position.X)
}

func TestEnemyBulletDoublesHorizontalSpeed(t *testing.T) {
	w := newTestWorld()
	moving := addEnemy(w, vmath.V(400, 300), 1, component.BehaviorDiagonal)
	fireEnemyBullet(w, moving)

	still := w.Spawn(w.Enemies, engine.NewEnemyEntity(vmath.V(500, 300), vmath.V(10, 10), vmath.Vec2{}, 1, component.BehaviorStraight))
	still.Velocity = vmath.Vec2{}
	fireEnemyBullet(w, still)

	bullets := w.EnemyFire.Live()
	assert.Equal(t, vmath.V(-6, 1), bullets[0].Velocity)
	assert.Equal(t, vmath.V(-parameter.EnemyBulletSpeed, 0), bullets[1].Velocity)
}

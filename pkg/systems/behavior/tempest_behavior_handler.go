package behavior

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// 风暴各状态时长（tick，狂暴后乘以 EnragedCadence）
const (
	TempestIdleTicks            = 50
	TempestRepositionMaxTicks   = 120
	TempestVolleyTelegraphTicks = 40
	TempestVolleyInterval       = 10
	TempestVolleyWaves          = 5
	TempestRainTicks            = 80
	TempestWallTelegraphTicks   = 50
	TempestWallSweepTicks       = 60
	TempestRecoverTicks         = 40
)

// 风暴攻击参数
const (
	TempestFlyFactor      = 2.5 // 位移飞行速度倍率
	TempestWaypointMargin = 150.0
	TempestVolleySpread   = 0.3
	TempestHomingAccel    = 0.08
	TempestHomingMaxSpeed = 4.5
	TempestHomingLifetime = 240
	TempestRainMinions    = 2
	TempestRainStrikes    = 6
	TempestRainSpread     = 250.0
	TempestRainRadius     = 50.0
	TempestRainWarning    = 50
	TempestWallSpeed      = 3.0
	TempestWallGap        = 3 // 墙上留出的缺口段数
)

var tempestAttacks = []components.BossState{
	components.TempestReposition,
	components.TempestVolleyTelegraph,
	components.TempestRain,
}

// updateTempest 风暴状态机
//
//	Idle → {Reposition, VolleyTelegraph → Volley, Rain, WallTelegraph → WallSweep} → Recover → Idle
func (s *BehaviorSystem) updateTempest(id ecs.EntityID, enemy *components.EnemyComponent, boss *components.BossComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	state, _ := boss.State.(components.TempestState)
	enemy.Facing = math.Atan2(tgt.y-pos.Y, tgt.x-pos.X)

	switch state {
	case components.TempestIdle:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, TempestIdleTicks) {
			next := s.chooseAttack(boss, tempestAttacks, components.TempestWallTelegraph)
			enterState(id, boss, next)
			if next == components.TempestReposition {
				s.pickWaypoint(boss)
			}
		}

	case components.TempestReposition:
		steer(enemy, pos, vel, boss.WaypointX, boss.WaypointY, enemy.Speed*TempestFlyFactor)
		arrived := math.Hypot(boss.WaypointX-pos.X, boss.WaypointY-pos.Y) <= enemy.Speed*TempestFlyFactor
		if arrived || boss.StateTimer >= TempestRepositionMaxTicks {
			vel.VX, vel.VY = 0, 0
			enterState(id, boss, components.TempestRecover)
		}

	case components.TempestVolleyTelegraph:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, TempestVolleyTelegraphTicks) {
			enterState(id, boss, components.TempestVolley)
		}

	case components.TempestVolley:
		vel.VX, vel.VY = 0, 0
		if (boss.StateTimer-1)%threshold(boss, TempestVolleyInterval) == 0 {
			base := math.Atan2(tgt.y-pos.Y, tgt.x-pos.X)
			for _, off := range []float64{-TempestVolleySpread, 0, TempestVolleySpread} {
				entities.NewEnemyProjectile(s.entityManager, entities.EnemyShot{
					X:           pos.X,
					Y:           pos.Y,
					Angle:       base + off,
					Damage:      enemy.Damage * 0.5,
					HomingAccel: TempestHomingAccel,
					MaxSpeed:    TempestHomingMaxSpeed,
					Lifetime:    TempestHomingLifetime,
				})
			}
			boss.ShotsFired++
		}
		if boss.ShotsFired >= TempestVolleyWaves {
			enterState(id, boss, components.TempestRecover)
		}

	case components.TempestRain:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer == 1 {
			s.rain(enemy, pos, tgt)
		}
		if boss.StateTimer >= threshold(boss, TempestRainTicks) {
			enterState(id, boss, components.TempestRecover)
		}

	case components.TempestWallTelegraph:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, TempestWallTelegraphTicks) {
			enterState(id, boss, components.TempestWallSweep)
			s.wallSweep(enemy)
		}

	case components.TempestWallSweep:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, TempestWallSweepTicks) {
			enterState(id, boss, components.TempestRecover)
		}

	case components.TempestRecover:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, TempestRecoverTicks) {
			enterState(id, boss, components.TempestIdle)
		}
	}
}

// pickWaypoint 在竞技场上半部分随机选择航点
func (s *BehaviorSystem) pickWaypoint(boss *components.BossComponent) {
	gs := s.gameState
	boss.WaypointX = game.RandRange(s.rng, TempestWaypointMargin, gs.WorldWidth-TempestWaypointMargin)
	boss.WaypointY = game.RandRange(s.rng, TempestWaypointMargin, gs.WorldHeight*0.6)
}

// rain 召唤少量召唤物，并在目标周围落下延迟打击
func (s *BehaviorSystem) rain(enemy *components.EnemyComponent, pos *components.PositionComponent, tgt target) {
	if s.minions != nil {
		for _, a := range ringAngles(TempestRainMinions, 0) {
			s.minions.SpawnMinion(pos.X+math.Cos(a)*60, pos.Y+math.Sin(a)*60)
		}
	}
	for i := 0; i < TempestRainStrikes; i++ {
		angle := game.RandAngle(s.rng)
		r := game.RandRange(s.rng, 0, TempestRainSpread)
		x, y := s.gameState.ClampToWorld(tgt.x+math.Cos(angle)*r, tgt.y+math.Sin(angle)*r, 0)
		entities.NewStrike(s.entityManager, x, y, TempestRainRadius, enemy.Damage, TempestRainWarning)
	}
}

// wallSweep 从左侧或右侧扫过一整面墙，墙上留有一个缺口
func (s *BehaviorSystem) wallSweep(enemy *components.EnemyComponent) []ecs.EntityID {
	gs := s.gameState
	r := config.WallSegmentRadius
	spacing := 2 * r
	count := int(math.Ceil(gs.WorldHeight / spacing))

	gapStart := -1
	if count > TempestWallGap {
		gapStart = s.rng.Intn(count - TempestWallGap + 1)
	}

	x, vx := -r, TempestWallSpeed
	if s.rng.Intn(2) == 1 {
		x, vx = gs.WorldWidth+r, -TempestWallSpeed
	}
	lifetime := int(math.Ceil((gs.WorldWidth+2*r)/TempestWallSpeed)) + 1

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		if gapStart >= 0 && i >= gapStart && i < gapStart+TempestWallGap {
			continue
		}
		y := spacing * (float64(i) + 0.5)
		ids = append(ids, entities.NewWallSegment(s.entityManager, x, y, vx, 0, enemy.Damage, lifetime))
	}
	return ids
}

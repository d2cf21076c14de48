package behavior

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
	"github.com/gonewx/arena/pkg/types"
)

// 巨像各状态时长（tick，狂暴后乘以 EnragedCadence）
const (
	ColossusIdleTicks             = 60
	ColossusChargeTelegraphTicks  = 45
	ColossusChargeMaxTicks        = 60
	ColossusBarrageTelegraphTicks = 40
	ColossusBarrageInterval       = 12
	ColossusBarrageWaves          = 4
	ColossusMeteorTicks           = 70
	ColossusQuakeTelegraphTicks   = 60
	ColossusQuakeTicks            = 30
	ColossusRecoverTicks          = 50
)

// 巨像攻击参数
const (
	ColossusWalkFactor     = 0.6  // 空闲时追击速度倍率
	ColossusChargeSpeed    = 6.0  // 冲锋速度（像素/tick）
	ColossusBarrageShots   = 12   // 每波弹幕数量
	ColossusBarrageTwist   = 0.13 // 每波弹幕的角度偏移
	ColossusMeteorCount    = 5
	ColossusMeteorSpread   = 200.0
	ColossusMeteorRadius   = 60.0
	ColossusMeteorWarning  = 60
	ColossusQuakeRadius    = 260.0
	ColossusQuakeDamage    = 1.5 // 相对接触伤害的倍率
	ColossusQuakeStunTicks = 60
)

var colossusAttacks = []components.BossState{
	components.ColossusChargeTelegraph,
	components.ColossusBarrageTelegraph,
	components.ColossusMeteors,
}

// updateColossus 巨像状态机
//
//	Idle → {ChargeTelegraph → Charging, BarrageTelegraph → Barrage, Meteors, QuakeTelegraph → Quake} → Recover → Idle
func (s *BehaviorSystem) updateColossus(id ecs.EntityID, enemy *components.EnemyComponent, boss *components.BossComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	state, _ := boss.State.(components.ColossusState)

	switch state {
	case components.ColossusIdle:
		steer(enemy, pos, vel, tgt.x, tgt.y, enemy.Speed*ColossusWalkFactor)
		if boss.StateTimer >= threshold(boss, ColossusIdleTicks) {
			vel.VX, vel.VY = 0, 0
			enterState(id, boss, s.chooseAttack(boss, colossusAttacks, components.ColossusQuakeTelegraph))
		}

	case components.ColossusChargeTelegraph:
		vel.VX, vel.VY = 0, 0
		// 预警期间锁定目标位置
		boss.WaypointX, boss.WaypointY = tgt.x, tgt.y
		enemy.Facing = math.Atan2(tgt.y-pos.Y, tgt.x-pos.X)
		if boss.StateTimer >= threshold(boss, ColossusChargeTelegraphTicks) {
			enterState(id, boss, components.ColossusCharging)
			steer(enemy, pos, vel, boss.WaypointX, boss.WaypointY, ColossusChargeSpeed)
		}

	case components.ColossusCharging:
		steer(enemy, pos, vel, boss.WaypointX, boss.WaypointY, ColossusChargeSpeed)
		arrived := math.Hypot(boss.WaypointX-pos.X, boss.WaypointY-pos.Y) <= ColossusChargeSpeed
		if arrived || boss.StateTimer >= ColossusChargeMaxTicks || s.atWorldEdge(pos, id) {
			vel.VX, vel.VY = 0, 0
			enterState(id, boss, components.ColossusRecover)
		}

	case components.ColossusBarrageTelegraph:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, ColossusBarrageTelegraphTicks) {
			enterState(id, boss, components.ColossusBarrage)
		}

	case components.ColossusBarrage:
		vel.VX, vel.VY = 0, 0
		if (boss.StateTimer-1)%threshold(boss, ColossusBarrageInterval) == 0 {
			offset := float64(boss.ShotsFired) * ColossusBarrageTwist
			for _, a := range ringAngles(ColossusBarrageShots, offset) {
				entities.NewEnemyProjectile(s.entityManager, entities.EnemyShot{
					X: pos.X, Y: pos.Y, Angle: a, Damage: enemy.Damage * 0.5,
				})
			}
			boss.ShotsFired++
		}
		if boss.ShotsFired >= ColossusBarrageWaves {
			enterState(id, boss, components.ColossusRecover)
		}

	case components.ColossusMeteors:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer == 1 {
			s.dropMeteors(boss, enemy, tgt)
		}
		if boss.StateTimer >= threshold(boss, ColossusMeteorTicks) {
			enterState(id, boss, components.ColossusRecover)
		}

	case components.ColossusQuakeTelegraph:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, ColossusQuakeTelegraphTicks) {
			enterState(id, boss, components.ColossusQuake)
			s.quake(enemy, pos)
		}

	case components.ColossusQuake:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= ColossusQuakeTicks {
			enterState(id, boss, components.ColossusRecover)
		}

	case components.ColossusRecover:
		vel.VX, vel.VY = 0, 0
		if boss.StateTimer >= threshold(boss, ColossusRecoverTicks) {
			enterState(id, boss, components.ColossusIdle)
		}
	}
}

// dropMeteors 在目标位置及其周围落下延迟打击，狂暴后数量增加
func (s *BehaviorSystem) dropMeteors(boss *components.BossComponent, enemy *components.EnemyComponent, tgt target) {
	count := ColossusMeteorCount
	if boss.Enraged {
		count += 3
	}
	for i := 0; i < count; i++ {
		x, y := tgt.x, tgt.y
		if i > 0 {
			angle := game.RandAngle(s.rng)
			r := game.RandRange(s.rng, ColossusMeteorRadius, ColossusMeteorSpread)
			x += math.Cos(angle) * r
			y += math.Sin(angle) * r
		}
		x, y = s.gameState.ClampToWorld(x, y, 0)
		entities.NewStrike(s.entityManager, x, y, ColossusMeteorRadius, enemy.Damage, ColossusMeteorWarning)
	}
}

// quake 以自身为中心的冲击波：范围伤害并眩晕没有护盾的玩家
func (s *BehaviorSystem) quake(enemy *components.EnemyComponent, pos *components.PositionComponent) {
	em := s.entityManager
	entities.NewBlast(em, pos.X, pos.Y, ColossusQuakeRadius, enemy.Damage*ColossusQuakeDamage, true)
	playerID, ok := systems.FindPlayer(em)
	if !ok {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if math.Hypot(playerPos.X-pos.X, playerPos.Y-pos.Y) <= ColossusQuakeRadius {
		systems.ApplyPlayerStatus(em, playerID, types.StatusStun, ColossusQuakeStunTicks)
	}
}

// atWorldEdge 冲锋撞到世界边界
func (s *BehaviorSystem) atWorldEdge(pos *components.PositionComponent, id ecs.EntityID) bool {
	r := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		r = col.Radius
	}
	gs := s.gameState
	return pos.X <= r || pos.Y <= r || pos.X >= gs.WorldWidth-r || pos.Y >= gs.WorldHeight-r
}

package behavior

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
)

// MinionSpawner 生成召唤物（受数量上限约束）
type MinionSpawner interface {
	SpawnMinion(x, y float64) (ecs.EntityID, bool)
}

// PhaseDirector 播放 Boss 半血转换过场
type PhaseDirector interface {
	StartPhaseShift(bossID ecs.EntityID)
}

// BehaviorSystem 处理敌人的行为逻辑
// 普通敌人按原型专属状态（EnemyComponent.State）分发，Boss 按 BossComponent 的状态机分发
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	ai            config.AITuning
	rng           game.RNG
	minions       MinionSpawner
	director      PhaseDirector
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - gs: GameState 实例（世界边界）
//   - ai: 普通敌人行为参数
//   - rng: 随机数源（Boss 攻击选择、落点）
//   - minions: 召唤物生成器，可以为 nil
//   - director: 半血转换过场，可以为 nil
func NewBehaviorSystem(em *ecs.EntityManager, gs *game.GameState, ai config.AITuning, rng game.RNG, minions MinionSpawner, director PhaseDirector) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		gameState:     gs,
		ai:            ai,
		rng:           rng,
		minions:       minions,
		director:      director,
	}
}

// target 本 tick 解析出的仇恨目标
type target struct {
	ref components.TargetRef
	x   float64
	y   float64
}

// Update 更新所有敌人的行为
func (s *BehaviorSystem) Update() {
	em := s.entityManager

	ref, pos, hasDefault := systems.ResolveTarget(em)
	var fallback target
	if hasDefault {
		fallback = target{ref: ref, x: pos.X, y: pos.Y}
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		epos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		tgt, hasTarget := s.targetFor(enemy, fallback, hasDefault)

		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.IsDepleted() {
			vel.VX, vel.VY = 0, 0
			continue
		}

		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok {
			s.updateBoss(id, enemy, boss, epos, vel, tgt, hasTarget)
			continue
		}

		if !hasTarget || !s.canAct(id) {
			vel.VX, vel.VY = 0, 0
			continue
		}
		enemy.Target = tgt.ref

		// 根据原型状态分发
		switch st := enemy.State.(type) {
		case *components.RangedState:
			s.handleRanged(id, enemy, st, epos, vel, tgt)
		case *components.HealerState:
			s.handleHealer(id, enemy, st, epos, vel, tgt)
		case *components.SummonerState:
			s.handleSummoner(id, enemy, st, epos, vel, tgt)
		default:
			s.handleChase(enemy, epos, vel, tgt)
		}
	}
}

// targetFor 每 tick 重新查找敌人锁定的目标
// 锁定的诱饵仍存在时继续追踪它，否则（诱饵消失或锁定的是玩家）使用本 tick 的默认目标
func (s *BehaviorSystem) targetFor(enemy *components.EnemyComponent, fallback target, ok bool) (target, bool) {
	if enemy.Target.Kind == components.TargetDecoy {
		if pos, found := systems.LookupTarget(s.entityManager, enemy.Target); found {
			return target{ref: enemy.Target, x: pos.X, y: pos.Y}, true
		}
	}
	return fallback, ok
}

// canAct 眩晕的敌人不做任何决策
func (s *BehaviorSystem) canAct(id ecs.EntityID) bool {
	status, ok := ecs.GetComponent[*components.StatusComponent](s.entityManager, id)
	return !ok || status.CanAct()
}

// steer 让实体以 speed 朝 (tx, ty) 移动，并更新朝向
func steer(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tx, ty, speed float64) {
	dx, dy := tx-pos.X, ty-pos.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		vel.VX, vel.VY = 0, 0
		return
	}
	enemy.Facing = math.Atan2(dy, dx)
	vel.VX = dx / d * speed
	vel.VY = dy / d * speed
}

// keepBand 保持与目标的距离在 [minDist, maxDist] 内
// 在区间内时绕目标缓慢侧移（方向由实体ID奇偶决定）
func keepBand(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target, minDist, maxDist float64) float64 {
	d := math.Hypot(tgt.x-pos.X, tgt.y-pos.Y)
	switch {
	case d > maxDist:
		steer(enemy, pos, vel, tgt.x, tgt.y, enemy.Speed)
	case d < minDist:
		steer(enemy, pos, vel, 2*pos.X-tgt.x, 2*pos.Y-tgt.y, enemy.Speed)
		enemy.Facing = math.Atan2(tgt.y-pos.Y, tgt.x-pos.X)
	default:
		if d == 0 {
			vel.VX, vel.VY = 0, 0
			return d
		}
		nx, ny := (tgt.x-pos.X)/d, (tgt.y-pos.Y)/d
		side := 1.0
		if id%2 == 0 {
			side = -1
		}
		enemy.Facing = math.Atan2(ny, nx)
		vel.VX = -ny * side * enemy.Speed * StrafeFactor
		vel.VY = nx * side * enemy.Speed * StrafeFactor
	}
	return d
}

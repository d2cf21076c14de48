package behavior

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
)

// StrafeFactor 远程类敌人在距离区间内侧移的速度倍率
const StrafeFactor = 0.4

// handleChase 追击型（basic、tank、召唤物）：直线冲向目标
func (s *BehaviorSystem) handleChase(enemy *components.EnemyComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	steer(enemy, pos, vel, tgt.x, tgt.y, enemy.Speed)
}

// handleRanged 远程射手：保持距离，冷却结束且目标在射程内时射击
func (s *BehaviorSystem) handleRanged(id ecs.EntityID, enemy *components.EnemyComponent, st *components.RangedState, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	d := keepBand(id, enemy, pos, vel, tgt, s.ai.RangedMin, s.ai.RangedMax)

	if st.FireCooldown > 0 {
		st.FireCooldown--
		return
	}
	if d > s.ai.RangedRange {
		return
	}
	s.fireAt(enemy, pos, tgt, enemy.Damage)
	st.FireCooldown = s.ai.RangedCooldown
}

// fireAt 朝目标发射一发附带主题状态的子弹
func (s *BehaviorSystem) fireAt(enemy *components.EnemyComponent, pos *components.PositionComponent, tgt target, damage float64) ecs.EntityID {
	return entities.NewEnemyProjectile(s.entityManager, entities.EnemyShot{
		X:           pos.X,
		Y:           pos.Y,
		Angle:       math.Atan2(tgt.y-pos.Y, tgt.x-pos.X),
		Damage:      damage,
		Status:      enemy.ContactStatus,
		StatusTicks: enemy.ContactStatusTicks,
	})
}

// handleHealer 治疗者：保持距离，周期性治疗范围内生命比例最低的友军
func (s *BehaviorSystem) handleHealer(id ecs.EntityID, enemy *components.EnemyComponent, st *components.HealerState, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	keepBand(id, enemy, pos, vel, tgt, s.ai.HealerMin, s.ai.HealerMax)

	if st.HealCooldown > 0 {
		st.HealCooldown--
		return
	}

	allyID, allyPos, ok := s.lowestHealthAlly(id, pos)
	if !ok {
		// 没有需要治疗的友军，下一 tick 再找
		return
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, allyID)
	health.Heal(s.ai.HealAmount)
	entities.NewBeam(s.entityManager, pos.X, pos.Y, allyPos.X, allyPos.Y)
	st.HealCooldown = s.ai.HealerCooldown
}

// lowestHealthAlly 返回治疗范围内生命比例最低且未满血的友军（不含自身与 Boss）
func (s *BehaviorSystem) lowestHealthAlly(self ecs.EntityID, pos *components.PositionComponent) (ecs.EntityID, *components.PositionComponent, bool) {
	em := s.entityManager
	var (
		bestID  ecs.EntityID
		bestPos *components.PositionComponent
		best    = 1.0
		found   bool
	)
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent](em) {
		if id == self || ecs.HasComponent[*components.BossComponent](em, id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if health.IsDepleted() {
			continue
		}
		ratio := health.Ratio()
		if ratio >= best {
			continue
		}
		allyPos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if math.Hypot(allyPos.X-pos.X, allyPos.Y-pos.Y) > s.ai.HealRadius {
			continue
		}
		best, bestID, bestPos, found = ratio, id, allyPos, true
	}
	return bestID, bestPos, found
}

// handleSummoner 召唤师：保持距离，周期性射击并在身边召唤一圈召唤物
func (s *BehaviorSystem) handleSummoner(id ecs.EntityID, enemy *components.EnemyComponent, st *components.SummonerState, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target) {
	keepBand(id, enemy, pos, vel, tgt, s.ai.SummonerMin, s.ai.SummonerMax)

	if st.ShotCooldown > 0 {
		st.ShotCooldown--
	} else {
		s.fireAt(enemy, pos, tgt, enemy.Damage*config.SummonerShotDamageFactor)
		st.ShotCooldown = s.ai.SummonerShotCooldown
	}

	if st.SummonCooldown > 0 {
		st.SummonCooldown--
		return
	}
	st.SummonCooldown = s.ai.SummonCooldown
	if s.minions == nil {
		return
	}
	n := s.ai.SummonCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := pos.X + math.Cos(angle)*s.ai.SummonRing
		y := pos.Y + math.Sin(angle)*s.ai.SummonRing
		if _, ok := s.minions.SpawnMinion(x, y); !ok {
			break
		}
	}
}

package behavior

import (
	"log"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

const (
	// PhaseShiftRatio 生命比例首次低于该值时触发半血转换
	PhaseShiftRatio = 0.5
	// EnragedCadence 转换后各状态时长的倍率
	EnragedCadence = 0.6
	// SignatureForceAfter 连续多少次其他攻击后强制使用招牌攻击
	SignatureForceAfter = 3
)

// threshold 返回状态时长，狂暴后缩短
func threshold(boss *components.BossComponent, ticks int) int {
	if !boss.Enraged {
		return ticks
	}
	t := int(math.Round(float64(ticks) * EnragedCadence))
	if t < 1 {
		t = 1
	}
	return t
}

// chooseAttack 选择下一次攻击
//
// 招牌攻击不会连续出现两次；连续 SignatureForceAfter 次其他攻击后强制使用招牌攻击。
func (s *BehaviorSystem) chooseAttack(boss *components.BossComponent, attacks []components.BossState, signature components.BossState) components.BossState {
	var picked components.BossState
	if boss.PatternCounter >= SignatureForceAfter && !boss.LastSignature {
		picked = signature
	} else {
		candidates := make([]components.BossState, 0, len(attacks)+1)
		candidates = append(candidates, attacks...)
		if !boss.LastSignature {
			candidates = append(candidates, signature)
		}
		picked = candidates[s.rng.Intn(len(candidates))]
	}

	if picked == signature {
		boss.PatternCounter = 0
		boss.LastSignature = true
	} else {
		boss.PatternCounter++
		boss.LastSignature = false
	}
	return picked
}

// updateBoss Boss 行为入口：先检查半血转换，再按 Boss 种类推进状态机
func (s *BehaviorSystem) updateBoss(id ecs.EntityID, enemy *components.EnemyComponent, boss *components.BossComponent, pos *components.PositionComponent, vel *components.VelocityComponent, tgt target, hasTarget bool) {
	if boss.Immovable() {
		vel.VX, vel.VY = 0, 0
		return
	}

	if s.checkPhaseShift(id, boss) {
		vel.VX, vel.VY = 0, 0
		return
	}

	if !hasTarget || !s.canAct(id) {
		vel.VX, vel.VY = 0, 0
		return
	}
	enemy.Target = tgt.ref
	boss.StateTimer++

	switch boss.State.(type) {
	case components.ColossusState:
		s.updateColossus(id, enemy, boss, pos, vel, tgt)
	case components.TempestState:
		s.updateTempest(id, enemy, boss, pos, vel, tgt)
	}
}

// checkPhaseShift 生命比例首次低于一半时进入转换状态（每场战斗只触发一次）
func (s *BehaviorSystem) checkPhaseShift(id ecs.EntityID, boss *components.BossComponent) bool {
	if boss.PhaseSeen {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.IsDepleted() || health.Ratio() >= PhaseShiftRatio {
		return false
	}

	boss.PhaseSeen = true
	if boss.Kind == types.ArchetypeColossus {
		boss.SetState(components.ColossusPhaseShift)
	} else {
		boss.SetState(components.TempestPhaseShift)
	}
	log.Printf("[BehaviorSystem] Boss %d below half health, entering %s", id, boss.State)
	if s.director != nil {
		s.director.StartPhaseShift(id)
	}
	return true
}

// enterState 切换状态并记录日志
func enterState(id ecs.EntityID, boss *components.BossComponent, next components.BossState) {
	log.Printf("[BehaviorSystem] Boss %d: %s → %s", id, boss.State, next)
	boss.SetState(next)
}

// ringAngles 以 offset 为起始角发射 n 发均匀分布的子弹
func ringAngles(n int, offset float64) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = offset + 2*math.Pi*float64(i)/float64(n)
	}
	return angles
}

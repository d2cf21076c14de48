package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// findPlayer 返回玩家实体及其位置
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return id, pos, true
	}
	return 0, nil, false
}

// FindPlayer 返回玩家实体ID
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	id, _, ok := findPlayer(em)
	return id, ok
}

// findDecoy 返回存活的诱饵
func findDecoy(em *ecs.EntityManager) (ecs.EntityID, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.DecoyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return id, pos, true
	}
	return 0, nil, false
}

// ResolveTarget 解析敌人的仇恨目标：诱饵存在时追踪诱饵，否则追踪玩家
// 返回：目标引用、目标位置、是否存在目标
func ResolveTarget(em *ecs.EntityManager) (components.TargetRef, *components.PositionComponent, bool) {
	if id, pos, ok := findDecoy(em); ok {
		return components.TargetRef{Kind: components.TargetDecoy, ID: id}, pos, true
	}
	if id, pos, ok := findPlayer(em); ok {
		return components.TargetRef{Kind: components.TargetPlayer, ID: id}, pos, true
	}
	return components.TargetRef{}, nil, false
}

// LookupTarget 按引用查找目标位置，目标已不存在时返回 false
func LookupTarget(em *ecs.EntityManager, ref components.TargetRef) (*components.PositionComponent, bool) {
	if !em.EntityExists(ref.ID) {
		return nil, false
	}
	switch ref.Kind {
	case components.TargetDecoy:
		if !ecs.HasComponent[*components.DecoyComponent](em, ref.ID) {
			return nil, false
		}
	case components.TargetPlayer:
		if !ecs.HasComponent[*components.PlayerComponent](em, ref.ID) {
			return nil, false
		}
	}
	return ecs.GetComponent[*components.PositionComponent](em, ref.ID)
}

// nearestEnemy 返回距离 (x, y) 最近且在 maxDist 内的敌人
func nearestEnemy(em *ecs.EntityManager, x, y, maxDist float64) (ecs.EntityID, *components.PositionComponent, bool) {
	var (
		bestID  ecs.EntityID
		bestPos *components.PositionComponent
		best    = maxDist
		found   bool
	)
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok && boss.Immovable() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := distance(x, y, pos.X, pos.Y); d < best {
			best, bestID, bestPos, found = d, id, pos, true
		}
	}
	return bestID, bestPos, found
}

// DamagePlayer 对玩家造成伤害，护盾和无敌闪烁期间无效
// 返回：是否造成了伤害
func DamagePlayer(em *ecs.EntityManager, id ecs.EntityID, amount float64, invulnTicks int) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || !player.CanTakeDamage() {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.Dead {
		return false
	}
	if health.Damage(amount) > 0 {
		player.Invulnerable = invulnTicks
		return true
	}
	return false
}

// ApplyPlayerStatus 在玩家没有护盾时施加状态
func ApplyPlayerStatus(em *ecs.EntityManager, id ecs.EntityID, kind types.StatusKind, ticks int) bool {
	if kind == types.StatusNone || ticks <= 0 {
		return false
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || player.IsShielded() {
		return false
	}
	status, ok := ecs.GetComponent[*components.StatusComponent](em, id)
	if !ok {
		return false
	}
	status.Apply(kind, ticks)
	return true
}

// DamageDecoy 对诱饵造成伤害
func DamageDecoy(em *ecs.EntityManager, id ecs.EntityID, amount float64) bool {
	if !ecs.HasComponent[*components.DecoyComponent](em, id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return false
	}
	return health.Damage(amount) > 0
}

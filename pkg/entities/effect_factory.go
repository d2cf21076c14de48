package entities

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// NewStrike 创建延迟打击：预警 warning 个 tick 后对范围内的玩家/诱饵造成一次伤害
func NewStrike(em *ecs.EntityManager, x, y, radius, damage float64, warning int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HazardComponent{
		Kind:    components.HazardStrike,
		Radius:  radius,
		Damage:  damage,
		Warning: warning,
		Hostile: true,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: warning + config.BlastDisplayTicks})
	return id
}

// NewBlast 创建径向爆炸，在同一 tick 内结算
// hostile 为 true 时伤害玩家/诱饵，否则伤害敌人
func NewBlast(em *ecs.EntityManager, x, y, radius, damage float64, hostile bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HazardComponent{
		Kind:    components.HazardBlast,
		Radius:  radius,
		Damage:  damage,
		Hostile: hostile,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.BlastDisplayTicks})
	return id
}

// NewBeam 创建治疗光束（纯视觉）
func NewBeam(em *ecs.EntityManager, fromX, fromY, toX, toY float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BeamComponent{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.BeamDisplayTicks})
	return id
}

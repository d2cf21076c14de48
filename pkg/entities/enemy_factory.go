package entities

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// EnemySpec 创建普通敌人所需的数据（属性已完成缩放）
type EnemySpec struct {
	Archetype   types.Archetype
	X, Y        float64
	Stats       config.ArchetypeStats
	Status      types.StatusKind // 接触/子弹附带状态
	StatusTicks int
	Minion      bool
}

// newArchetypeState 为原型创建初始专属状态
// 冷却从一半开始，避免刚出生就立刻攻击
func newArchetypeState(a types.Archetype, ai config.AITuning) components.ArchetypeState {
	switch a {
	case types.ArchetypeRanged:
		return &components.RangedState{FireCooldown: ai.RangedCooldown / 2}
	case types.ArchetypeHealer:
		return &components.HealerState{HealCooldown: ai.HealerCooldown / 2}
	case types.ArchetypeSummoner:
		return &components.SummonerState{
			ShotCooldown:   ai.SummonerShotCooldown / 2,
			SummonCooldown: ai.SummonCooldown / 2,
		}
	default:
		return &components.ChaseState{}
	}
}

// NewEnemy 创建普通敌人实体
func NewEnemy(em *ecs.EntityManager, spec EnemySpec, ai config.AITuning) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: spec.Stats.Radius})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: spec.Stats.Health, Max: spec.Stats.Health})
	ecs.AddComponent(em, id, &components.StatusComponent{})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Archetype:          spec.Archetype,
		Speed:              spec.Stats.Speed,
		Damage:             spec.Stats.Damage,
		LastAttackTick:     -config.ContactAttackCooldown,
		ContactStatus:      spec.Status,
		ContactStatusTicks: spec.StatusTicks,
		Minion:             spec.Minion,
		Value:              spec.Stats.Value,
		Target:             components.TargetRef{Kind: components.TargetPlayer},
		State:              newArchetypeState(spec.Archetype, ai),
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "enemy_" + spec.Archetype.String()})

	return id
}

// NewBoss 创建 Boss 实体，初始处于出场状态（不可移动）
//
// 参数:
//   - kind: ArchetypeColossus 或 ArchetypeTempest
//   - x, y: 出场动画的起点
//   - stats: 已缩放的属性
func NewBoss(em *ecs.EntityManager, kind types.Archetype, x, y float64, stats config.ArchetypeStats) ecs.EntityID {
	id := em.CreateEntity()

	boss := &components.BossComponent{
		Kind:       kind,
		Scale:      1,
		IntroFromY: y,
		IntroToY:   y,
		WaypointX:  x,
		WaypointY:  y,
	}
	switch kind {
	case types.ArchetypeColossus:
		boss.State = components.ColossusIntro
		boss.Scale = 0.2
	default:
		boss.State = components.TempestIntro
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: stats.Radius})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: stats.Health, Max: stats.Health})
	ecs.AddComponent(em, id, &components.StatusComponent{})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Archetype:      kind,
		Speed:          stats.Speed,
		Damage:         stats.Damage,
		LastAttackTick: -config.ContactAttackCooldown,
		Value:          stats.Value,
		Target:         components.TargetRef{Kind: components.TargetPlayer},
	})
	ecs.AddComponent(em, id, boss)
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "boss_" + kind.String(), Scale: boss.Scale})

	return id
}

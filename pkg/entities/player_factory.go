package entities

import (
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// BuildLoadout 根据技能ID列表构建装备栏
// 超过 MaxLoadoutSlots 的技能被丢弃，没有定义的技能被跳过
func BuildLoadout(ids []string, defs map[string]config.AbilityDef) []components.LoadoutSlot {
	slots := make([]components.LoadoutSlot, 0, config.MaxLoadoutSlots)
	for _, id := range ids {
		if len(slots) >= config.MaxLoadoutSlots {
			log.Printf("[PlayerFactory] Loadout full, dropping %q", id)
			break
		}
		def, ok := defs[id]
		if !ok {
			log.Printf("[PlayerFactory] Unknown ability %q, skipping", id)
			continue
		}
		slots = append(slots, components.LoadoutSlot{
			AbilityID:   id,
			Cooldown:    0,
			MaxCooldown: def.Cooldown,
		})
	}
	return slots
}

// NewPlayer 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - x, y: 出生点（世界坐标）
//   - health: 初始生命值（读档时可能小于最大值）
//   - stats: 基础属性（最大生命值、移速）
//   - loadout: 已构建的装备栏
//   - skin: 外观ID，用于查找精灵
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, x, y, health float64, stats game.BaseStats, loadout []components.LoadoutSlot, skin string) ecs.EntityID {
	id := em.CreateEntity()

	if health <= 0 || health > stats.MaxHealth {
		health = stats.MaxHealth
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.PlayerRadius})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: health, Max: stats.MaxHealth})
	ecs.AddComponent(em, id, &components.StatusComponent{})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:   stats.Speed,
		FacingX: 0,
		FacingY: -1,
		Loadout: loadout,
	})
	if skin == "" {
		skin = "default"
	}
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "player_" + skin})

	log.Printf("[PlayerFactory] Player %d created at (%.0f, %.0f) hp=%.0f/%.0f", id, x, y, health, stats.MaxHealth)
	return id
}

package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// StatusEffectSystem 推进状态效果计时器并结算周期伤害
// 同时衰减玩家的护盾、无敌闪烁、增益与技能冷却
type StatusEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewStatusEffectSystem 创建状态效果系统
func NewStatusEffectSystem(em *ecs.EntityManager) *StatusEffectSystem {
	return &StatusEffectSystem{entityManager: em}
}

// Update 推进一个 tick
func (s *StatusEffectSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.StatusComponent](s.entityManager) {
		status, _ := ecs.GetComponent[*components.StatusComponent](s.entityManager, id)
		health, hasHealth := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

		if status.Poison > 0 {
			status.PoisonTick++
			if status.PoisonTick >= config.PoisonInterval {
				status.PoisonTick = 0
				if hasHealth {
					health.Damage(config.PoisonDamage)
				}
			}
			status.Poison--
		}
		if status.Burn > 0 {
			status.BurnTick++
			if status.BurnTick >= config.BurnInterval {
				status.BurnTick = 0
				if hasHealth {
					health.Damage(config.BurnDamage)
				}
			}
			status.Burn--
		}

		status.Freeze = decay(status.Freeze)
		status.Web = decay(status.Web)
		status.Stun = decay(status.Stun)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		player.Shield = decay(player.Shield)
		player.Invulnerable = decay(player.Invulnerable)
		player.FireRateBoost = decay(player.FireRateBoost)
		player.SpeedBoost = decay(player.SpeedBoost)
		for i := range player.Loadout {
			player.Loadout[i].Cooldown = decay(player.Loadout[i].Cooldown)
		}
	}
}

// decay 计时器减 1，不低于 0
func decay(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

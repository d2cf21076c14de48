package systems

import (
	"log"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
)

// InputSource 玩家输入来源
// 引擎在运行时使用键盘实现，测试中使用脚本化输入
type InputSource interface {
	// MoveVector 返回移动方向（不要求归一化），无输入时返回 (0, 0)
	MoveVector() (float64, float64)
	// ActivatedSlot 返回本 tick 触发的技能槽索引，没有时返回 -1
	ActivatedSlot() int
}

// PlayerSystem 处理玩家移动意图、自动射击与技能释放
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	projectiles   *ProjectileSystem
	abilities     map[string]config.AbilityDef
	input         InputSource
}

// NewPlayerSystem 创建玩家系统
// input 可以为 nil（玩家保持静止，只自动射击）
func NewPlayerSystem(em *ecs.EntityManager, gs *game.GameState, ps *ProjectileSystem, abilities map[string]config.AbilityDef, input InputSource) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		gameState:     gs,
		projectiles:   ps,
		abilities:     abilities,
		input:         input,
	}
}

// Update 推进一个 tick
func (s *PlayerSystem) Update() {
	playerID, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID)
	status, _ := ecs.GetComponent[*components.StatusComponent](s.entityManager, playerID)

	var dx, dy float64
	if s.input != nil {
		dx, dy = s.input.MoveVector()
		if slot := s.input.ActivatedSlot(); slot >= 0 {
			s.TriggerAbility(slot)
		}
	}

	s.updateVelocity(player, vel, status, dx, dy)
	s.updateFiring(player, pos, status)
}

// updateVelocity 根据输入方向计算速度：冻结/眩晕时为 0，蛛网减速
func (s *PlayerSystem) updateVelocity(player *components.PlayerComponent, vel *components.VelocityComponent, status *components.StatusComponent, dx, dy float64) {
	nx, ny := normalize(dx, dy)
	if nx != 0 || ny != 0 {
		player.FacingX, player.FacingY = nx, ny
	}

	speed := s.gameState.Stats.Speed
	player.Speed = speed
	if player.SpeedBoost > 0 {
		speed *= config.SpeedBoostFactor
	}
	if status != nil {
		if !status.CanMove() {
			speed = 0
		} else {
			speed *= status.SpeedFactor(config.WebSpeedFactor)
		}
	}

	vel.VX = nx * speed
	vel.VY = ny * speed
}

// FireInterval 返回当前射击间隔（tick）
func FireInterval(fireRate float64, boosted bool) int {
	if fireRate <= 0 {
		fireRate = 0.1
	}
	interval := float64(config.PlayerBaseFireCooldown) / fireRate
	if boosted {
		interval *= config.FireRateBoostFactor
	}
	ticks := int(math.Round(interval))
	if ticks < config.PlayerMinFireCooldown {
		ticks = config.PlayerMinFireCooldown
	}
	return ticks
}

// updateFiring 自动朝射程内最近的敌人射击
func (s *PlayerSystem) updateFiring(player *components.PlayerComponent, pos *components.PositionComponent, status *components.StatusComponent) {
	if player.FireCooldown > 0 {
		player.FireCooldown--
	}
	if player.FireCooldown > 0 {
		return
	}
	if status != nil && !status.CanAct() {
		return
	}
	_, target, ok := nearestEnemy(s.entityManager, pos.X, pos.Y, config.PlayerFireRange)
	if !ok {
		return
	}

	angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
	s.projectiles.FireVolley(pos.X, pos.Y, angle, s.gameState.Stats)
	player.FireCooldown = FireInterval(s.gameState.Stats.FireRate, player.FireRateBoost > 0)
}

// TriggerAbility 释放装备栏中的技能
// 槽位越界、冷却中、技能未定义或玩家被眩晕时返回 false
func (s *PlayerSystem) TriggerAbility(slot int) bool {
	em := s.entityManager
	playerID, pos, ok := findPlayer(em)
	if !ok {
		return false
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if slot < 0 || slot >= len(player.Loadout) {
		return false
	}
	loadout := &player.Loadout[slot]
	if !loadout.Ready() {
		return false
	}
	if status, ok := ecs.GetComponent[*components.StatusComponent](em, playerID); ok && !status.CanAct() {
		return false
	}
	def, ok := s.abilities[loadout.AbilityID]
	if !ok {
		log.Printf("[PlayerSystem] Ability %q has no definition", loadout.AbilityID)
		return false
	}

	switch def.Effect {
	case config.EffectHeal:
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, playerID); ok {
			health.Heal(def.Amount)
		}
	case config.EffectShield:
		player.Shield = def.Duration
	case config.EffectRapidFire:
		player.FireRateBoost = def.Duration
	case config.EffectHaste:
		player.SpeedBoost = def.Duration
	case config.EffectGrenade:
		s.throwGrenade(player, pos, def)
	case config.EffectDecoy:
		s.placeDecoy(pos, def)
	case config.EffectFrostNova:
		s.frostNova(pos, def)
	default:
		log.Printf("[PlayerSystem] Unknown effect %q for ability %q", def.Effect, loadout.AbilityID)
		return false
	}

	loadout.Cooldown = loadout.MaxCooldown
	log.Printf("[PlayerSystem] Ability %q activated (slot %d)", loadout.AbilityID, slot)
	return true
}

// throwGrenade 朝最近的敌人投掷，没有敌人时沿朝向投掷最远距离
func (s *PlayerSystem) throwGrenade(player *components.PlayerComponent, pos *components.PositionComponent, def config.AbilityDef) {
	tx := pos.X + player.FacingX*config.GrenadeMaxDistance
	ty := pos.Y + player.FacingY*config.GrenadeMaxDistance
	if _, target, ok := nearestEnemy(s.entityManager, pos.X, pos.Y, config.PlayerFireRange); ok {
		tx, ty = target.X, target.Y
	}
	damage := s.gameState.Stats.Damage * config.GrenadeDamageMultiplier
	entities.NewGrenade(s.entityManager, pos.X, pos.Y, tx, ty, damage, def.Radius)
}

// placeDecoy 在玩家位置放置诱饵，替换已存在的诱饵
func (s *PlayerSystem) placeDecoy(pos *components.PositionComponent, def config.AbilityDef) {
	for _, id := range ecs.GetEntitiesWith1[*components.DecoyComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	entities.NewDecoy(s.entityManager, pos.X, pos.Y, def.Amount, def.Duration)
}

// frostNova 冻结半径内的所有敌人
func (s *PlayerSystem) frostNova(pos *components.PositionComponent, def config.AbilityDef) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.StatusComponent](em) {
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if distance(pos.X, pos.Y, enemyPos.X, enemyPos.Y) > def.Radius {
			continue
		}
		status, _ := ecs.GetComponent[*components.StatusComponent](em, id)
		status.Apply(types.StatusFreeze, def.Duration)
	}
}

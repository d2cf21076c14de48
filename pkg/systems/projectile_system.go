package systems

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// ProjectileSystem 管理玩家子弹、敌方子弹和伤害区域
//
// 每个 tick 的处理顺序：玩家子弹（可能产生爆炸）→ 伤害区域 → 敌方子弹
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, gs *game.GameState) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// SpreadAngles 返回多重射击的各发角度
// 第 i 发的偏移为 MultishotSpread*(i-(n-1)/2)，整体以 angle 为中心对称
func SpreadAngles(angle float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	angles := make([]float64, n)
	center := float64(n-1) / 2
	for i := 0; i < n; i++ {
		angles[i] = angle + config.MultishotSpread*(float64(i)-center)
	}
	return angles
}

// FireVolley 从 (x, y) 朝 angle 方向发射一轮子弹
// 数量、伤害、穿透取自玩家基础属性
func (s *ProjectileSystem) FireVolley(x, y, angle float64, stats game.BaseStats) []ecs.EntityID {
	angles := SpreadAngles(angle, stats.MultishotCount())
	ids := make([]ecs.EntityID, 0, len(angles))
	for _, a := range angles {
		ids = append(ids, entities.NewPlayerProjectile(s.entityManager, x, y, a, stats.Damage, stats.PierceCount()))
	}
	return ids
}

// Update 推进一个 tick
func (s *ProjectileSystem) Update() {
	s.updatePlayerProjectiles()
	s.updateHazards()
	s.updateEnemyProjectiles()
}

func (s *ProjectileSystem) updatePlayerProjectiles() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		proj.Lifetime--

		if proj.Grenade {
			proj.TravelLeft -= math.Hypot(vel.VX, vel.VY)
			if proj.TravelLeft <= 0 || proj.Lifetime <= 0 || !s.gameState.InWorld(pos.X, pos.Y) {
				x, y := s.gameState.ClampToWorld(pos.X, pos.Y, 0)
				entities.NewBlast(em, x, y, proj.BlastRadius, proj.Damage, false)
				em.DestroyEntity(id)
			}
			continue
		}

		if !s.checkEnemyHits(id, proj, pos) {
			continue
		}

		if proj.Lifetime <= 0 || !s.gameState.InWorld(pos.X, pos.Y) {
			em.DestroyEntity(id)
		}
	}
}

// checkEnemyHits 按实体ID升序检查子弹与所有存活敌人的碰撞
// 返回：子弹是否仍然存活
func (s *ProjectileSystem) checkEnemyHits(id ecs.EntityID, proj *components.ProjectileComponent, pos *components.PositionComponent) bool {
	em := s.entityManager
	radius := config.PlayerProjectileRadius
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		radius = col.Radius
	}

	for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent](em) {
		if proj.HasHit(enemyID) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, enemyID)
		if health.IsDepleted() {
			continue
		}
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, enemyID); ok && boss.Immovable() {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
		enemyRadius := 0.0
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, enemyID); ok {
			enemyRadius = col.Radius
		}
		if !circlesOverlap(pos.X, pos.Y, radius, enemyPos.X, enemyPos.Y, enemyRadius) {
			continue
		}

		dealt := health.Damage(proj.Damage)
		s.applyLifesteal(dealt)

		if !proj.RecordHit(enemyID) {
			em.DestroyEntity(id)
			return false
		}
	}
	return true
}

// applyLifesteal 按伤害 * lifesteal 治疗玩家
func (s *ProjectileSystem) applyLifesteal(dealt float64) {
	if dealt <= 0 || s.gameState.Stats.Lifesteal <= 0 {
		return
	}
	playerID, _, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID); ok {
		health.Heal(dealt * s.gameState.Stats.Lifesteal)
	}
}

func (s *ProjectileSystem) updateHazards() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.HazardComponent, *components.PositionComponent](em) {
		hazard, _ := ecs.GetComponent[*components.HazardComponent](em, id)
		if hazard.Triggered {
			continue
		}
		if hazard.Kind == components.HazardStrike && hazard.Warning > 0 {
			hazard.Warning--
			if hazard.Warning > 0 {
				continue
			}
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		hazard.Triggered = true
		if hazard.Hostile {
			s.hazardHitsPlayerSide(hazard, pos)
		} else {
			s.hazardHitsEnemies(hazard, pos)
		}
	}
}

// hazardHitsPlayerSide 敌方区域伤害玩家与诱饵
func (s *ProjectileSystem) hazardHitsPlayerSide(hazard *components.HazardComponent, pos *components.PositionComponent) {
	em := s.entityManager
	if playerID, playerPos, ok := findPlayer(em); ok {
		if circlesOverlap(pos.X, pos.Y, hazard.Radius, playerPos.X, playerPos.Y, config.PlayerRadius) {
			DamagePlayer(em, playerID, hazard.Damage, config.PlayerInvulnerableTicks)
		}
	}
	if decoyID, decoyPos, ok := findDecoy(em); ok {
		if circlesOverlap(pos.X, pos.Y, hazard.Radius, decoyPos.X, decoyPos.Y, config.DecoyRadius) {
			DamageDecoy(em, decoyID, hazard.Damage)
		}
	}
}

// hazardHitsEnemies 玩家区域伤害范围内每个敌人一次
func (s *ProjectileSystem) hazardHitsEnemies(hazard *components.HazardComponent, pos *components.PositionComponent) {
	em := s.entityManager
	for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent](em) {
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, enemyID); ok && boss.Immovable() {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
		if distance(pos.X, pos.Y, enemyPos.X, enemyPos.Y) > hazard.Radius {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, enemyID)
		health.Damage(hazard.Damage)
	}
}

func (s *ProjectileSystem) updateEnemyProjectiles() {
	em := s.entityManager
	playerID, playerPos, hasPlayer := findPlayer(em)
	decoyID, decoyPos, hasDecoy := findDecoy(em)

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		ep, _ := ecs.GetComponent[*components.EnemyProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		if ep.HomingAccel > 0 && hasPlayer {
			nx, ny := normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
			vel.VX += nx * ep.HomingAccel
			vel.VY += ny * ep.HomingAccel
			if speed := math.Hypot(vel.VX, vel.VY); speed > ep.MaxSpeed && speed > 0 {
				vel.VX = vel.VX / speed * ep.MaxSpeed
				vel.VY = vel.VY / speed * ep.MaxSpeed
			}
		}

		pos.X += vel.VX
		pos.Y += vel.VY
		ep.Lifetime--
		if ep.HitCooldown > 0 {
			ep.HitCooldown--
		}

		radius := config.EnemyProjectileRadius
		if ep.Wall {
			radius = ep.HitRadius
		}

		hit := false
		if hasDecoy && circlesOverlap(pos.X, pos.Y, radius, decoyPos.X, decoyPos.Y, config.DecoyRadius) {
			if !ep.Wall || ep.HitCooldown == 0 {
				DamageDecoy(em, decoyID, ep.Damage)
				hit = true
			}
		} else if hasPlayer && circlesOverlap(pos.X, pos.Y, radius, playerPos.X, playerPos.Y, config.PlayerRadius) {
			if !ep.Wall || ep.HitCooldown == 0 {
				DamagePlayer(em, playerID, ep.Damage, config.PlayerInvulnerableTicks)
				ApplyPlayerStatus(em, playerID, ep.Status, ep.StatusTicks)
				hit = true
			}
		}

		if hit {
			if !ep.Wall {
				em.DestroyEntity(id)
				continue
			}
			ep.HitCooldown = ep.HitCooldownMax
		}

		if ep.Lifetime <= 0 || !s.inExtendedWorld(pos.X, pos.Y, radius) {
			em.DestroyEntity(id)
		}
	}
}

// inExtendedWorld 墙体段从边界外扫入，允许超出半径范围
func (s *ProjectileSystem) inExtendedWorld(x, y, margin float64) bool {
	gs := s.gameState
	return x >= -margin && y >= -margin && x <= gs.WorldWidth+margin && y <= gs.WorldHeight+margin
}

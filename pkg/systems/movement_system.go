package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// MovementSystem 积分位置并处理碰撞
//
// 处理顺序：
//  1. 玩家按速度积分（速度已由 PlayerSystem 计算）
//  2. 敌人按 AI 设置的速度积分，乘以状态效果倍率
//  3. 障碍物推出（敌人附带朝向玩家的切向滑动）
//  4. 敌人之间对称分离
//  5. 接触伤害（诱饵优先）
//  6. 钳制到世界范围
type MovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// movingEnemy 本 tick 参与碰撞的敌人
type movingEnemy struct {
	id        ecs.EntityID
	pos       *components.PositionComponent
	radius    float64
	enemy     *components.EnemyComponent
	immovable bool
}

// Update 推进一个 tick
func (s *MovementSystem) Update() {
	em := s.entityManager

	playerID, playerPos, hasPlayer := findPlayer(em)
	if hasPlayer {
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, playerID); ok {
			playerPos.X += vel.VX
			playerPos.Y += vel.VY
		}
		s.pushOutOfObstacles(playerID, playerPos, config.PlayerRadius, nil)
	}

	enemies := s.collectEnemies()
	for _, e := range enemies {
		if e.immovable {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, e.id); ok {
			factor := 1.0
			if status, ok := ecs.GetComponent[*components.StatusComponent](em, e.id); ok {
				factor = status.SpeedFactor(config.WebSpeedFactor)
			}
			e.pos.X += vel.VX * factor
			e.pos.Y += vel.VY * factor
		}
		s.pushOutOfObstacles(e.id, e.pos, e.radius, e.enemy)
	}

	s.separateEnemies(enemies)

	if decoyID, decoyPos, ok := findDecoy(em); ok {
		s.pushOutOfObstacles(decoyID, decoyPos, config.DecoyRadius, nil)
	}

	s.resolveContacts(enemies)
	s.clampPositions()
}

func (s *MovementSystem) collectEnemies() []*movingEnemy {
	em := s.entityManager
	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em)
	enemies := make([]*movingEnemy, 0, len(ids))
	for _, id := range ids {
		e := &movingEnemy{id: id}
		e.pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)
		e.enemy, _ = ecs.GetComponent[*components.EnemyComponent](em, id)
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			e.radius = col.Radius
		}
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok {
			e.immovable = boss.Immovable()
		}
		enemies = append(enemies, e)
	}
	return enemies
}

// pushOutOfObstacles 把实体推出所有障碍物
// enemy 不为 nil 时额外加入朝向玩家的切向滑动，避免贴在障碍物上
func (s *MovementSystem) pushOutOfObstacles(id ecs.EntityID, pos *components.PositionComponent, radius float64, enemy *components.EnemyComponent) {
	em := s.entityManager
	for _, obsID := range ecs.GetEntitiesWith3[*components.ObstacleComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		obsPos, _ := ecs.GetComponent[*components.PositionComponent](em, obsID)
		obsCol, _ := ecs.GetComponent[*components.CollisionComponent](em, obsID)
		pushed, nx, ny := pushOutOfObstacle(pos, radius, obsPos, obsCol.Radius, id, obsID)
		if !pushed || enemy == nil {
			continue
		}
		_, targetPos, ok := findPlayer(em)
		if !ok {
			continue
		}
		tx, ty := slideTangent(nx, ny, targetPos.X-pos.X, targetPos.Y-pos.Y)
		slide := enemy.Speed * config.SlideFactor
		pos.X += tx * slide
		pos.Y += ty * slide
	}
}

// separateEnemies 对重叠的敌人做对称分离
// 不可移动的 Boss 不被推动，另一方承担全部位移
func (s *MovementSystem) separateEnemies(enemies []*movingEnemy) {
	for i := 0; i < len(enemies); i++ {
		a := enemies[i]
		for j := i + 1; j < len(enemies); j++ {
			b := enemies[j]
			if a.immovable && b.immovable {
				continue
			}
			if !circlesOverlap(a.pos.X, a.pos.Y, a.radius, b.pos.X, b.pos.Y, b.radius) {
				continue
			}
			nx, ny, d := separationNormal(a.pos.X, a.pos.Y, b.pos.X, b.pos.Y, a.id, b.id)
			overlap := a.radius + b.radius - d
			switch {
			case a.immovable:
				b.pos.X -= nx * overlap
				b.pos.Y -= ny * overlap
			case b.immovable:
				a.pos.X += nx * overlap
				a.pos.Y += ny * overlap
			default:
				half := overlap / 2
				a.pos.X += nx * half
				a.pos.Y += ny * half
				b.pos.X -= nx * half
				b.pos.Y -= ny * half
			}
		}
	}
}

// resolveContacts 结算敌人对诱饵/玩家的接触伤害
// 每个敌人受攻击冷却限制；诱饵存在且接触时优先攻击诱饵
func (s *MovementSystem) resolveContacts(enemies []*movingEnemy) {
	em := s.entityManager
	playerID, playerPos, hasPlayer := findPlayer(em)
	decoyID, decoyPos, hasDecoy := findDecoy(em)
	tick := s.gameState.Tick

	for _, e := range enemies {
		if e.immovable || e.enemy.Damage <= 0 {
			continue
		}
		if tick-e.enemy.LastAttackTick < int64(config.ContactAttackCooldown) {
			continue
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, e.id); ok && health.IsDepleted() {
			continue
		}

		if hasDecoy && circlesOverlap(e.pos.X, e.pos.Y, e.radius, decoyPos.X, decoyPos.Y, config.DecoyRadius) {
			DamageDecoy(em, decoyID, e.enemy.Damage)
			e.enemy.LastAttackTick = tick
			continue
		}
		if hasPlayer && circlesOverlap(e.pos.X, e.pos.Y, e.radius, playerPos.X, playerPos.Y, config.PlayerRadius) {
			DamagePlayer(em, playerID, e.enemy.Damage, config.PlayerInvulnerableTicks)
			// 无敌闪烁不阻挡状态，护盾阻挡
			ApplyPlayerStatus(em, playerID, e.enemy.ContactStatus, e.enemy.ContactStatusTicks)
			e.enemy.LastAttackTick = tick
		}
	}
}

// clampPositions 把所有可移动实体钳制在世界范围内（出场/转阶段中的 Boss 除外）
func (s *MovementSystem) clampPositions() {
	em := s.entityManager
	gs := s.gameState
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
		if !ecs.HasComponent[*components.PlayerComponent](em, id) &&
			!ecs.HasComponent[*components.EnemyComponent](em, id) &&
			!ecs.HasComponent[*components.DecoyComponent](em, id) {
			continue
		}
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok && boss.Immovable() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		pos.X, pos.Y = gs.ClampToWorld(pos.X, pos.Y, col.Radius)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		pos.X, pos.Y = gs.ClampToWorld(pos.X, pos.Y, 0)
	}
}

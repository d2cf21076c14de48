package entities

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// NewPlayerProjectile 创建玩家子弹
//
// 参数:
//   - x, y: 发射位置
//   - angle: 飞行方向（弧度）
//   - damage: 伤害
//   - pierce: 穿透次数（可额外命中的不同敌人数）
func NewPlayerProjectile(em *ecs.EntityManager, x, y, angle, damage float64, pierce int) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * config.PlayerProjectileSpeed,
		VY: math.Sin(angle) * config.PlayerProjectileSpeed,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.PlayerProjectileRadius})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Damage:   damage,
		Lifetime: config.PlayerProjectileLifetime,
		Pierce:   pierce,
		HitList:  make(map[ecs.EntityID]struct{}),
	})

	return id
}

// NewGrenade 创建手雷，飞向目标点（距离被钳制到 GrenadeMaxDistance）
func NewGrenade(em *ecs.EntityManager, x, y, targetX, targetY, damage, radius float64) ecs.EntityID {
	dx, dy := targetX-x, targetY-y
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)
	if dist > config.GrenadeMaxDistance {
		dist = config.GrenadeMaxDistance
	}
	if radius <= 0 {
		radius = config.GrenadeBlastRadius
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * config.GrenadeSpeed,
		VY: math.Sin(angle) * config.GrenadeSpeed,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.PlayerProjectileRadius * 1.5})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Damage:      damage,
		Lifetime:    int(math.Ceil(dist/config.GrenadeSpeed)) + 1,
		Grenade:     true,
		TravelLeft:  dist,
		BlastRadius: radius,
	})

	return id
}

// EnemyShot 敌方子弹参数
type EnemyShot struct {
	X, Y        float64
	Angle       float64
	Speed       float64 // 0 时使用 EnemyProjectileSpeed
	Damage      float64
	Status      types.StatusKind
	StatusTicks int
	HomingAccel float64 // 0 表示不追踪
	MaxSpeed    float64
	Lifetime    int // 0 时使用 EnemyProjectileLifetime
}

// NewEnemyProjectile 创建敌方子弹
func NewEnemyProjectile(em *ecs.EntityManager, shot EnemyShot) ecs.EntityID {
	speed := shot.Speed
	if speed <= 0 {
		speed = config.EnemyProjectileSpeed
	}
	lifetime := shot.Lifetime
	if lifetime <= 0 {
		lifetime = config.EnemyProjectileLifetime
	}
	maxSpeed := shot.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = speed
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: shot.X, Y: shot.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(shot.Angle) * speed,
		VY: math.Sin(shot.Angle) * speed,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.EnemyProjectileRadius})
	ecs.AddComponent(em, id, &components.EnemyProjectileComponent{
		Damage:      shot.Damage,
		Lifetime:    lifetime,
		HomingAccel: shot.HomingAccel,
		MaxSpeed:    maxSpeed,
		Status:      shot.Status,
		StatusTicks: shot.StatusTicks,
	})

	return id
}

// NewWallSegment 创建墙体段：命中后不销毁，伤害受冷却控制
func NewWallSegment(em *ecs.EntityManager, x, y, vx, vy, damage float64, lifetime int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.EnemyProjectileRadius})
	ecs.AddComponent(em, id, &components.EnemyProjectileComponent{
		Damage:         damage,
		Lifetime:       lifetime,
		MaxSpeed:       math.Hypot(vx, vy),
		Wall:           true,
		HitRadius:      config.WallSegmentRadius,
		HitCooldownMax: config.WallHitCooldown,
	})
	return id
}

package entities

import (
	"math"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// TestNewPlayerProjectile 测试玩家子弹实体创建
func TestNewPlayerProjectile(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name   string
		angle  float64
		wantVX float64
		wantVY float64
	}{
		{"向右", 0, config.PlayerProjectileSpeed, 0},
		{"向下", math.Pi / 2, 0, config.PlayerProjectileSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewPlayerProjectile(em, 10, 20, tt.angle, 12, 2)
			if id == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !ok {
				t.Fatal("Projectile should have VelocityComponent")
			}
			if math.Abs(vel.VX-tt.wantVX) > 1e-9 || math.Abs(vel.VY-tt.wantVY) > 1e-9 {
				t.Errorf("Expected velocity (%v,%v), got (%v,%v)", tt.wantVX, tt.wantVY, vel.VX, vel.VY)
			}

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if !ok {
				t.Fatal("Projectile should have ProjectileComponent")
			}
			if proj.Damage != 12 || proj.Pierce != 2 || proj.Grenade {
				t.Errorf("Unexpected projectile data %+v", proj)
			}
			if proj.HitList == nil {
				t.Error("HitList should be initialized")
			}
		})
	}
}

// TestNewGrenade_ClampsDistance 手雷飞行距离被钳制
func TestNewGrenade_ClampsDistance(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewGrenade(em, 0, 0, 1000, 0, 40, 0)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if !proj.Grenade {
		t.Fatal("Expected grenade flag")
	}
	if proj.TravelLeft != config.GrenadeMaxDistance {
		t.Errorf("Expected travel %v, got %v", config.GrenadeMaxDistance, proj.TravelLeft)
	}
	if proj.BlastRadius != config.GrenadeBlastRadius {
		t.Errorf("Expected default blast radius, got %v", proj.BlastRadius)
	}

	near := NewGrenade(em, 0, 0, 30, 40, 40, 50)
	proj, _ = ecs.GetComponent[*components.ProjectileComponent](em, near)
	if proj.TravelLeft != 50 {
		t.Errorf("Expected travel 50, got %v", proj.TravelLeft)
	}
}

// TestNewEnemyProjectile_Defaults 敌方子弹默认参数
func TestNewEnemyProjectile_Defaults(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewEnemyProjectile(em, EnemyShot{X: 5, Y: 5, Damage: 7, Status: types.StatusBurn, StatusTicks: 60})

	ep, ok := ecs.GetComponent[*components.EnemyProjectileComponent](em, id)
	if !ok {
		t.Fatal("Expected EnemyProjectileComponent")
	}
	if ep.Lifetime != config.EnemyProjectileLifetime {
		t.Errorf("Expected default lifetime, got %d", ep.Lifetime)
	}
	if ep.MaxSpeed != config.EnemyProjectileSpeed {
		t.Errorf("Expected default max speed, got %v", ep.MaxSpeed)
	}
	if ep.Status != types.StatusBurn || ep.Wall {
		t.Errorf("Unexpected payload %+v", ep)
	}

	wall := NewWallSegment(em, 0, 0, 3, 0, 10, 200)
	wp, _ := ecs.GetComponent[*components.EnemyProjectileComponent](em, wall)
	if !wp.Wall || wp.HitRadius != config.WallSegmentRadius {
		t.Errorf("Expected wall segment payload, got %+v", wp)
	}
}

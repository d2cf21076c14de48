package systems

import (
	"math"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/types"
)

func enemyComponent(em *ecs.EntityManager, id ecs.EntityID) *components.EnemyComponent {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	return enemy
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 310, 300, 30)
	ms := NewMovementSystem(em, gs)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)

	gs.Tick = 100
	ms.Update()
	if hp := healthOf(em, playerID).Current; hp != 95 {
		t.Fatalf("Expected contact damage to 95, got %.0f", hp)
	}
	if got := enemyComponent(em, enemyID).LastAttackTick; got != 100 {
		t.Errorf("Expected last attack tick 100, got %d", got)
	}

	player.Invulnerable = 0
	gs.Tick = 100 + config.ContactAttackCooldown - 1
	ms.Update()
	if hp := healthOf(em, playerID).Current; hp != 95 {
		t.Errorf("Expected no damage during contact cooldown, got %.0f", hp)
	}

	player.Invulnerable = 0
	gs.Tick = 100 + config.ContactAttackCooldown
	ms.Update()
	if hp := healthOf(em, playerID).Current; hp != 90 {
		t.Errorf("Expected second contact hit to 90, got %.0f", hp)
	}
}

func TestContactStatusIgnoresInvulnerability(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 310, 300, 30)
	enemy := enemyComponent(em, enemyID)
	enemy.ContactStatus = types.StatusPoison
	enemy.ContactStatusTicks = config.ContactStatusTicks

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	player.Invulnerable = 20

	gs.Tick = 100
	NewMovementSystem(em, gs).Update()

	if hp := healthOf(em, playerID).Current; hp != 100 {
		t.Errorf("Expected invulnerability to block damage, got %.0f", hp)
	}
	status, _ := ecs.GetComponent[*components.StatusComponent](em, playerID)
	if status.Poison != config.ContactStatusTicks {
		t.Errorf("Expected poison %d, got %d", config.ContactStatusTicks, status.Poison)
	}
}

func TestShieldBlocksContact(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 310, 300, 30)
	enemy := enemyComponent(em, enemyID)
	enemy.ContactStatus = types.StatusBurn
	enemy.ContactStatusTicks = 120

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	player.Shield = 60

	gs.Tick = 100
	NewMovementSystem(em, gs).Update()

	if hp := healthOf(em, playerID).Current; hp != 100 {
		t.Errorf("Expected shield to block damage, got %.0f", hp)
	}
	status, _ := ecs.GetComponent[*components.StatusComponent](em, playerID)
	if status.Burn != 0 {
		t.Errorf("Expected shield to block status, got burn %d", status.Burn)
	}
}

func TestContactPrefersDecoy(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	decoyID := entities.NewDecoy(em, 305, 300, 80, 600)
	spawnTestEnemy(em, types.ArchetypeBasic, 315, 300, 30)

	gs.Tick = 100
	NewMovementSystem(em, gs).Update()

	if hp := healthOf(em, decoyID).Current; hp != 75 {
		t.Errorf("Expected decoy to take the hit (75), got %.0f", hp)
	}
	if hp := healthOf(em, playerID).Current; hp != 100 {
		t.Errorf("Expected player untouched, got %.0f", hp)
	}
}

func TestEnemiesSeparateSymmetrically(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	a := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
	b := spawnTestEnemy(em, types.ArchetypeBasic, 310, 300, 30)

	NewMovementSystem(em, gs).Update()

	pa, pb := position(em, a), position(em, b)
	if d := distance(pa.X, pa.Y, pb.X, pb.Y); d < 28-1e-9 {
		t.Errorf("Expected enemies separated to 28, got %.3f", d)
	}
	if mid := (pa.X + pb.X) / 2; math.Abs(mid-305) > 1e-9 {
		t.Errorf("Expected symmetric separation around 305, got %.3f", mid)
	}
}

func TestPlayerPushedOutOfObstacle(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	entities.NewObstacle(em, 310, 300, 20, types.ThemeForest, 0)

	NewMovementSystem(em, gs).Update()

	pos := position(em, playerID)
	if d := distance(pos.X, pos.Y, 310, 300); d < config.PlayerRadius+20-1e-9 {
		t.Errorf("Expected player pushed clear of obstacle, distance %.3f", d)
	}
	if pos.X >= 300 {
		t.Errorf("Expected player pushed left, got x=%.3f", pos.X)
	}
}

func TestEnemySlidesAroundObstacleTowardPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	spawnTestPlayer(em, gs, 330, 600)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	vel.VX, vel.VY = 0, 0
	entities.NewObstacle(em, 290, 300, 20, types.ThemeForest, 0)

	NewMovementSystem(em, gs).Update()

	// 推出到障碍物右侧，再沿切线朝玩家（下方）滑动
	pos := position(em, enemyID)
	wantY := 300 + 1.5*config.SlideFactor
	if math.Abs(pos.X-324) > 1e-6 || math.Abs(pos.Y-wantY) > 1e-6 {
		t.Errorf("Expected enemy at (324, %.3f), got (%.3f, %.3f)", wantY, pos.X, pos.Y)
	}
	if d := distance(pos.X, pos.Y, 290, 300); d < 14+20-1e-9 {
		t.Errorf("Expected enemy clear of obstacle, distance %.3f", d)
	}
}

func TestEnemyPushedWithoutSlideWhenNoPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	vel.VX, vel.VY = 0, 0
	entities.NewObstacle(em, 290, 300, 20, types.ThemeForest, 0)

	NewMovementSystem(em, gs).Update()

	if pos := position(em, enemyID); math.Abs(pos.X-324) > 1e-6 || pos.Y != 300 {
		t.Errorf("Expected plain push-out to (324, 300), got (%.3f, %.3f)", pos.X, pos.Y)
	}
}

func TestFrozenEnemyDoesNotMove(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	enemyID := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemyID)
	vel.VX = 2
	status, _ := ecs.GetComponent[*components.StatusComponent](em, enemyID)
	status.Apply(types.StatusFreeze, 30)

	NewMovementSystem(em, gs).Update()

	if pos := position(em, enemyID); pos.X != 300 {
		t.Errorf("Expected frozen enemy to stay at 300, got %.3f", pos.X)
	}
}

func TestPositionsClampedToWorld(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 10, 890)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)
	vel.VX, vel.VY = -50, 50

	NewMovementSystem(em, gs).Update()

	pos := position(em, playerID)
	if pos.X != config.PlayerRadius || pos.Y != 900-config.PlayerRadius {
		t.Errorf("Expected clamp to (%.0f, %.0f), got (%.1f, %.1f)", config.PlayerRadius, 900-config.PlayerRadius, pos.X, pos.Y)
	}
}

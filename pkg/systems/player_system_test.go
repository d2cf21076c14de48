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

func TestFireInterval(t *testing.T) {
	tests := []struct {
		name     string
		fireRate float64
		boosted  bool
		want     int
	}{
		{"base rate", 1, false, 24},
		{"boosted", 1, true, 12},
		{"double rate", 2, false, 12},
		{"clamped to minimum", 10, false, config.PlayerMinFireCooldown},
		{"non-positive rate", 0, false, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FireInterval(tt.fireRate, tt.boosted); got != tt.want {
				t.Errorf("FireInterval(%.1f, %v) = %d, want %d", tt.fireRate, tt.boosted, got, tt.want)
			}
		})
	}
}

func newPlayerFixture(abilityIDs ...string) (*ecs.EntityManager, *PlayerSystem, ecs.EntityID, *scriptedInput) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	defs := config.DefaultAbilities()
	loadout := entities.BuildLoadout(abilityIDs, defs)
	playerID := entities.NewPlayer(em, 600, 450, 0, gs.Stats, loadout, "")
	input := &scriptedInput{}
	ps := NewPlayerSystem(em, gs, NewProjectileSystem(em, gs), defs, input)
	return em, ps, playerID, input
}

func playerVelocity(em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	return vel
}

func TestPlayerVelocityNormalized(t *testing.T) {
	em, ps, playerID, input := newPlayerFixture()
	input.dx, input.dy = 3, 4

	ps.Update()

	vel := playerVelocity(em, playerID)
	speed := ps.gameState.Stats.Speed
	if math.Abs(vel.VX-0.6*speed) > 1e-9 || math.Abs(vel.VY-0.8*speed) > 1e-9 {
		t.Errorf("Expected (%.2f, %.2f), got (%.2f, %.2f)", 0.6*speed, 0.8*speed, vel.VX, vel.VY)
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if math.Abs(player.FacingX-0.6) > 1e-9 || math.Abs(player.FacingY-0.8) > 1e-9 {
		t.Errorf("Expected facing (0.6, 0.8), got (%.2f, %.2f)", player.FacingX, player.FacingY)
	}
}

func TestPlayerVelocityStatusModifiers(t *testing.T) {
	tests := []struct {
		name   string
		status types.StatusKind
		haste  bool
		factor float64
	}{
		{"frozen", types.StatusFreeze, false, 0},
		{"stunned", types.StatusStun, false, 0},
		{"webbed", types.StatusWeb, false, config.WebSpeedFactor},
		{"haste", types.StatusNone, true, config.SpeedBoostFactor},
		{"webbed haste", types.StatusWeb, true, config.WebSpeedFactor * config.SpeedBoostFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, ps, playerID, input := newPlayerFixture()
			input.dx = 1
			status, _ := ecs.GetComponent[*components.StatusComponent](em, playerID)
			status.Apply(tt.status, 60)
			if tt.haste {
				player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
				player.SpeedBoost = 60
			}

			ps.Update()

			want := ps.gameState.Stats.Speed * tt.factor
			if vel := playerVelocity(em, playerID); math.Abs(vel.VX-want) > 1e-9 {
				t.Errorf("Expected VX %.3f, got %.3f", want, vel.VX)
			}
		})
	}
}

func TestPlayerAutoFiresAtNearestEnemy(t *testing.T) {
	em, ps, playerID, _ := newPlayerFixture()
	spawnTestEnemy(em, types.ArchetypeBasic, 800, 450, 30)

	ps.Update()

	if got := ecs.CountEntitiesWith1[*components.ProjectileComponent](em); got != 1 {
		t.Fatalf("Expected 1 projectile, got %d", got)
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if player.FireCooldown != 24 {
		t.Errorf("Expected fire cooldown 24, got %d", player.FireCooldown)
	}

	ps.Update()
	if got := ecs.CountEntitiesWith1[*components.ProjectileComponent](em); got != 1 {
		t.Errorf("Expected no shot during cooldown, got %d projectiles", got)
	}
}

func TestPlayerHoldsFireOutOfRange(t *testing.T) {
	em, ps, _, _ := newPlayerFixture()
	spawnTestEnemy(em, types.ArchetypeBasic, 600+config.PlayerFireRange+50, 450, 30)

	ps.Update()

	if got := ecs.CountEntitiesWith1[*components.ProjectileComponent](em); got != 0 {
		t.Errorf("Expected no projectile, got %d", got)
	}
}

func TestTriggerHealAbility(t *testing.T) {
	em, ps, playerID, input := newPlayerFixture("heal")
	healthOf(em, playerID).Current = 50
	input.slots = []int{0}

	ps.Update()

	if hp := healthOf(em, playerID).Current; hp != 90 {
		t.Errorf("Expected heal to 90, got %.0f", hp)
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if player.Loadout[0].Cooldown != 900 {
		t.Errorf("Expected cooldown 900, got %d", player.Loadout[0].Cooldown)
	}
	if ps.TriggerAbility(0) {
		t.Error("Expected ability on cooldown to fail")
	}
}

func TestTriggerAbilityRejections(t *testing.T) {
	em, ps, playerID, _ := newPlayerFixture("shield")

	if ps.TriggerAbility(-1) || ps.TriggerAbility(1) {
		t.Error("Expected out-of-range slots to fail")
	}

	status, _ := ecs.GetComponent[*components.StatusComponent](em, playerID)
	status.Apply(types.StatusStun, 30)
	if ps.TriggerAbility(0) {
		t.Error("Expected stunned player to be unable to use abilities")
	}

	status.Stun = 0
	if !ps.TriggerAbility(0) {
		t.Fatal("Expected shield to activate")
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if player.Shield != 180 {
		t.Errorf("Expected shield 180, got %d", player.Shield)
	}
}

func TestDecoyAbilityReplacesExisting(t *testing.T) {
	em, ps, playerID, _ := newPlayerFixture("decoy")
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)

	if !ps.TriggerAbility(0) {
		t.Fatal("Expected decoy to activate")
	}
	player.Loadout[0].Cooldown = 0
	if !ps.TriggerAbility(0) {
		t.Fatal("Expected second decoy to activate")
	}

	if got := ecs.CountEntitiesWith1[*components.DecoyComponent](em); got != 1 {
		t.Errorf("Expected a single decoy, got %d", got)
	}
}

func TestFrostNovaFreezesNearbyEnemies(t *testing.T) {
	em, ps, _, _ := newPlayerFixture("frost_nova")
	near := spawnTestEnemy(em, types.ArchetypeBasic, 700, 450, 30)
	far := spawnTestEnemy(em, types.ArchetypeBasic, 1000, 450, 30)

	if !ps.TriggerAbility(0) {
		t.Fatal("Expected frost nova to activate")
	}

	nearStatus, _ := ecs.GetComponent[*components.StatusComponent](em, near)
	farStatus, _ := ecs.GetComponent[*components.StatusComponent](em, far)
	if nearStatus.Freeze != 120 {
		t.Errorf("Expected nearby enemy frozen for 120, got %d", nearStatus.Freeze)
	}
	if farStatus.Freeze != 0 {
		t.Errorf("Expected distant enemy unaffected, got %d", farStatus.Freeze)
	}
}

func TestGrenadeAbilityTargetsNearestEnemy(t *testing.T) {
	em, ps, _, _ := newPlayerFixture("grenade")
	spawnTestEnemy(em, types.ArchetypeBasic, 800, 450, 30)

	if !ps.TriggerAbility(0) {
		t.Fatal("Expected grenade to activate")
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if !proj.Grenade {
			continue
		}
		if want := ps.gameState.Stats.Damage * config.GrenadeDamageMultiplier; proj.Damage != want {
			t.Errorf("Expected grenade damage %.0f, got %.0f", want, proj.Damage)
		}
		if proj.TravelLeft != 200 {
			t.Errorf("Expected travel distance 200, got %.0f", proj.TravelLeft)
		}
		return
	}
	t.Error("Expected a grenade projectile")
}

package behavior

import (
	"math"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
)

func spawnTempest(em *ecs.EntityManager, state components.TempestState) (ecs.EntityID, *components.BossComponent) {
	id := entities.NewBoss(em, types.ArchetypeTempest, 700, 300, config.DefaultArenaConfig().Bosses["tempest"])
	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
	boss.SetState(state)
	return id, boss
}

func TestWallSweepLeavesGap(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := spawnTempest(em, components.TempestWallTelegraph)
	s := newTestSystem(em, game.NewFixedRNG(0.5), nil, nil)

	ids := s.wallSweep(enemyOf(em, id))

	count := int(math.Ceil(s.gameState.WorldHeight / (2 * config.WallSegmentRadius)))
	if len(ids) != count-TempestWallGap {
		t.Fatalf("Expected %d wall segments, got %d", count-TempestWallGap, len(ids))
	}

	var firstVX float64
	for i, segID := range ids {
		proj, _ := ecs.GetComponent[*components.EnemyProjectileComponent](em, segID)
		if !proj.Wall {
			t.Errorf("Segment %d is not a wall", segID)
		}
		vel := velocityOf(em, segID)
		if i == 0 {
			firstVX = vel.VX
		}
		if vel.VX != firstVX || math.Abs(vel.VX) != TempestWallSpeed {
			t.Errorf("Segment %d: expected shared horizontal speed %.1f, got %.1f", segID, TempestWallSpeed, vel.VX)
		}
	}
}

func TestTempestVolleyFiresWaves(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnPlayer(em, 700, 900)
	_, boss := spawnTempest(em, components.TempestVolley)
	s := newTestSystem(em, game.NewRNG(3), nil, nil)

	for i := 0; i < TempestVolleyInterval*TempestVolleyWaves; i++ {
		if boss.State != components.TempestVolley {
			break
		}
		s.Update()
	}

	if got := countEnemyProjectiles(em); got != 3*TempestVolleyWaves {
		t.Errorf("Expected %d homing shots, got %d", 3*TempestVolleyWaves, got)
	}
	if boss.State != components.TempestRecover {
		t.Errorf("Expected recover after volley, got %s", boss.State)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.EnemyProjectileComponent](em, id)
		if proj.HomingAccel != TempestHomingAccel {
			t.Errorf("Expected homing shot, got accel %.2f", proj.HomingAccel)
		}
	}
}

func TestTempestRainSummonsAndStrikes(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnPlayer(em, 700, 900)
	_, boss := spawnTempest(em, components.TempestRain)
	minions := &fakeMinions{accept: 10}
	s := newTestSystem(em, game.NewRNG(5), minions, nil)

	s.Update()

	if minions.calls != TempestRainMinions {
		t.Errorf("Expected %d minion requests, got %d", TempestRainMinions, minions.calls)
	}
	if got := ecs.CountEntitiesWith1[*components.HazardComponent](em); got != TempestRainStrikes {
		t.Errorf("Expected %d strikes, got %d", TempestRainStrikes, got)
	}

	for i := 1; i < TempestRainTicks; i++ {
		s.Update()
	}
	if boss.State != components.TempestRecover {
		t.Errorf("Expected recover after rain, got %s", boss.State)
	}
	if minions.calls != TempestRainMinions {
		t.Errorf("Expected rain to summon only once, got %d requests", minions.calls)
	}
}

func TestTempestRepositionReachesWaypoint(t *testing.T) {
	em := ecs.NewEntityManager()
	spawnPlayer(em, 700, 900)
	id, boss := spawnTempest(em, components.TempestReposition)
	boss.WaypointX, boss.WaypointY = 700, 300
	s := newTestSystem(em, game.NewRNG(5), nil, nil)

	s.Update()

	if boss.State != components.TempestRecover {
		t.Errorf("Expected recover when already at waypoint, got %s", boss.State)
	}
	if vel := velocityOf(em, id); vel.VX != 0 || vel.VY != 0 {
		t.Errorf("Expected tempest to stop at waypoint, got (%.2f, %.2f)", vel.VX, vel.VY)
	}
}

package systems

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
)

func TestEnemyDeathCountedOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	ds := NewDeathSystem(em, gs, game.NewRNG(1))

	id := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
	healthOf(em, id).Current = 0

	report := ds.Update()
	if report.EnemiesKilled != 1 || gs.Kills != 1 || gs.StageKills != 1 {
		t.Fatalf("Expected one kill, got report=%+v kills=%d", report, gs.Kills)
	}
	if em.EntityExists(id) {
		t.Error("Expected dead enemy to be marked for removal")
	}

	report = ds.Update()
	if report.EnemiesKilled != 0 || gs.Kills != 1 {
		t.Errorf("Expected death to resolve once, got report=%+v kills=%d", report, gs.Kills)
	}
	if got := ecs.CountEntitiesWith1[*components.DropComponent](em); got != 1 {
		t.Errorf("Expected one drop, got %d", got)
	}
}

func TestQuotaOpensExit(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	ds := NewDeathSystem(em, gs, game.NewRNG(1))

	opened := 0
	for i := 0; i < gs.KillQuota; i++ {
		id := spawnTestEnemy(em, types.ArchetypeBasic, 300, 300, 30)
		healthOf(em, id).Current = 0
		if ds.Update().ExitOpened {
			opened++
		}
		em.RemoveMarkedEntities()
	}

	if !gs.ExitOpen || opened != 1 {
		t.Errorf("Expected exit opened exactly once at quota, open=%v reports=%d", gs.ExitOpen, opened)
	}
}

func TestMinionDeathSkipsQuota(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	ds := NewDeathSystem(em, gs, game.NewRNG(1))

	id := entities.NewEnemy(em, entities.EnemySpec{
		Archetype: types.ArchetypeBasic,
		X:         300,
		Y:         300,
		Stats:     config.ArchetypeStats{Health: 10, Speed: 1, Damage: 3, Radius: 10},
		Minion:    true,
	}, config.DefaultArenaConfig().AI)
	healthOf(em, id).Current = 0

	report := ds.Update()
	if report.EnemiesKilled != 1 {
		t.Errorf("Expected minion death to be reported, got %+v", report)
	}
	if gs.Kills != 0 || gs.StageKills != 0 {
		t.Errorf("Expected minion kill excluded from counters, got kills=%d stage=%d", gs.Kills, gs.StageKills)
	}
	if got := ecs.CountEntitiesWith1[*components.DropComponent](em); got != 0 {
		t.Errorf("Expected no drop from valueless minion, got %d", got)
	}
}

func TestBossDeathOpensExit(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1400, 1100)
	gs.IsBossStage = true
	gs.KillQuota = 0
	ds := NewDeathSystem(em, gs, game.NewRNG(1))

	id := entities.NewBoss(em, types.ArchetypeColossus, 700, 300, config.DefaultArenaConfig().Bosses["colossus"])
	healthOf(em, id).Current = 0

	report := ds.Update()
	if !report.BossKilled || !report.ExitOpened || !gs.ExitOpen {
		t.Errorf("Expected boss kill to open exit, got %+v", report)
	}
	if gs.Kills != 1 {
		t.Errorf("Expected boss kill counted, got %d", gs.Kills)
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(1200, 900)
	playerID := spawnTestPlayer(em, gs, 300, 300)
	healthOf(em, playerID).Current = 0

	report := NewDeathSystem(em, gs, game.NewRNG(1)).Update()

	if !report.PlayerDied || !gs.GameOver {
		t.Errorf("Expected game over, got report=%+v", report)
	}
}

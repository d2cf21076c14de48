package systems

import (
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// DeathReport 一个 tick 内的死亡结算结果
type DeathReport struct {
	EnemiesKilled int
	BossKilled    bool
	ExitOpened    bool
	PlayerDied    bool
}

// DeathSystem 结算生命值归零的实体
// 每个实体的死亡只处理一次（通过 HealthComponent.Dead 标记），随后实体被标记删除
type DeathSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           game.RNG
}

// NewDeathSystem 创建死亡系统
func NewDeathSystem(em *ecs.EntityManager, gs *game.GameState, rng game.RNG) *DeathSystem {
	return &DeathSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
	}
}

// Update 结算本 tick 的所有死亡
func (s *DeathSystem) Update() DeathReport {
	em := s.entityManager
	var report DeathReport

	for _, id := range ecs.GetEntitiesWith1[*components.HealthComponent](em) {
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if health.Dead || !health.IsDepleted() {
			continue
		}
		health.Dead = true

		switch {
		case ecs.HasComponent[*components.PlayerComponent](em, id):
			s.gameState.GameOver = true
			report.PlayerDied = true
			log.Printf("[DeathSystem] Player %d died on stage %d", id, s.gameState.Stage)

		case ecs.HasComponent[*components.EnemyComponent](em, id):
			s.resolveEnemyDeath(id, &report)
		}

		em.DestroyEntity(id)
	}
	return report
}

func (s *DeathSystem) resolveEnemyDeath(id ecs.EntityID, report *DeathReport) {
	em := s.entityManager
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)

	if ecs.HasComponent[*components.BossComponent](em, id) {
		s.gameState.RecordKill(false)
		report.BossKilled = true
		if s.gameState.OpenExit() {
			report.ExitOpened = true
		}
		log.Printf("[DeathSystem] Boss %s defeated on stage %d", enemy.Archetype, s.gameState.Stage)
	} else {
		report.EnemiesKilled++
		if s.gameState.RecordKill(enemy.Minion) {
			report.ExitOpened = true
		}
	}

	if enemy.Value <= 0 {
		return
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		entities.NewDrop(em, pos.X, pos.Y, enemy.Value+LuckBonus(s.gameState.Stats.Luck, s.rng))
	}
}

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

const (
	// 布置物体时与世界边界保持的距离
	stageEdgeMargin = 80.0
	// Boss 关出生点与出口距离上下边界的距离
	bossSpawnOffset = 120.0
	bossDoorOffset  = 80.0
)

// StageSystem 关卡生成系统
//
// 职责：
//   - 计算世界尺寸、配额、主题与 Boss 身份
//   - 清理上一关的临时实体，把玩家移动到出生点
//   - 布置出口、宝箱与障碍物（拒绝采样，次数有限）
//   - Boss 关开始出场过场
//   - 记录进入本关时的快照
type StageSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	arenaConfig     *config.ArenaConfig
	rng             game.RNG
	cameraSystem    *CameraSystem
	cutsceneSystem  *CutsceneSystem
	waveSpawnSystem *WaveSpawnSystem
}

// NewStageSystem 创建关卡生成系统
func NewStageSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ArenaConfig, rng game.RNG, camera *CameraSystem, cutscene *CutsceneSystem, spawner *WaveSpawnSystem) *StageSystem {
	return &StageSystem{
		entityManager:   em,
		gameState:       gs,
		arenaConfig:     cfg,
		rng:             rng,
		cameraSystem:    camera,
		cutsceneSystem:  cutscene,
		waveSpawnSystem: spawner,
	}
}

// SpawnStage 生成 gs.Stage 对应的关卡
func (s *StageSystem) SpawnStage() {
	gs := s.gameState
	tuning := s.arenaConfig.Stage
	if gs.Stage < 1 {
		gs.Stage = 1
	}

	gs.IsBossStage = tuning.IsBossStage(gs.Stage)
	gs.Boss = types.ArchetypeUnknown
	if gs.IsBossStage {
		gs.Boss = tuning.BossFor(gs.Stage)
	}
	gs.WorldWidth, gs.WorldHeight = tuning.WorldSize(gs.Stage)

	s.clearTransients()
	gs.ResetStageProgress()
	gs.KillQuota = 0
	if !gs.IsBossStage {
		gs.KillQuota = tuning.KillQuota(gs.Stage)
	}

	gs.Theme = s.chooseTheme()

	gs.SpawnX, gs.SpawnY = gs.WorldWidth/2, gs.WorldHeight/2
	if gs.IsBossStage {
		gs.SpawnY = gs.WorldHeight - bossSpawnOffset
	}
	health, maxHealth := s.resetPlayer()

	s.cutsceneSystem.Stop()
	s.waveSpawnSystem.Reset()

	if gs.IsBossStage {
		entities.NewExitDoor(s.entityManager, gs.WorldWidth/2, bossDoorOffset)
	} else {
		doorX, doorY := s.placeDoor()
		entities.NewExitDoor(s.entityManager, doorX, doorY)
		chests := s.placeChests(doorX, doorY)
		s.placeObstacles(doorX, doorY, chests)
	}

	s.cameraSystem.SnapTo(gs.SpawnX, gs.SpawnY)
	if gs.IsBossStage {
		s.cutsceneSystem.StartIntro(s.waveSpawnSystem.BossIntroPosition())
	}

	gs.CaptureStageStart(health, maxHealth)
	log.Printf("[StageSystem] Stage %d spawned: %.0fx%.0f theme=%s boss=%v quota=%d",
		gs.Stage, gs.WorldWidth, gs.WorldHeight, gs.Theme, gs.IsBossStage, gs.KillQuota)
}

// clearTransients 删除上一关的所有临时实体（玩家、镜头、过场实体保留）
func (s *StageSystem) clearTransients() {
	em := s.entityManager
	groups := [][]ecs.EntityID{
		ecs.GetEntitiesWith1[*components.EnemyComponent](em),
		ecs.GetEntitiesWith1[*components.ProjectileComponent](em),
		ecs.GetEntitiesWith1[*components.EnemyProjectileComponent](em),
		ecs.GetEntitiesWith1[*components.DropComponent](em),
		ecs.GetEntitiesWith1[*components.HazardComponent](em),
		ecs.GetEntitiesWith1[*components.ObstacleComponent](em),
		ecs.GetEntitiesWith1[*components.LootChestComponent](em),
		ecs.GetEntitiesWith1[*components.ExitDoorComponent](em),
		ecs.GetEntitiesWith1[*components.DecoyComponent](em),
		ecs.GetEntitiesWith1[*components.BeamComponent](em),
	}
	for _, ids := range groups {
		for _, id := range ids {
			em.DestroyEntity(id)
		}
	}
	em.RemoveMarkedEntities()
}

// chooseTheme Boss 关由 Boss 决定主题；普通关优先使用读档带入的主题，否则随机
func (s *StageSystem) chooseTheme() types.Theme {
	carried, hasCarried := s.gameState.ConsumeCarriedTheme()
	if s.gameState.IsBossStage {
		return s.gameState.Boss.BossTheme()
	}
	if hasCarried {
		return carried
	}
	themes := types.RandomThemes()
	return themes[s.rng.Intn(len(themes))]
}

// resetPlayer 把玩家移到出生点并清除速度、状态与临时增益
// 返回玩家当前生命值（用于记录关卡快照）
func (s *StageSystem) resetPlayer() (float64, float64) {
	em := s.entityManager
	gs := s.gameState
	playerID, pos, ok := findPlayer(em)
	if !ok {
		return 0, gs.Stats.MaxHealth
	}
	pos.X, pos.Y = gs.SpawnX, gs.SpawnY
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, playerID); ok {
		vel.VX, vel.VY = 0, 0
	}
	if status, ok := ecs.GetComponent[*components.StatusComponent](em, playerID); ok {
		*status = components.StatusComponent{}
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID); ok {
		player.FireCooldown = 0
		player.Shield, player.Invulnerable = 0, 0
		player.FireRateBoost, player.SpeedBoost = 0, 0
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, playerID)
	if !ok {
		return 0, gs.Stats.MaxHealth
	}
	return health.Current, health.Max
}

// ExitMinDistance 返回出口与出生点的最小距离，小世界中按比例缩小
func ExitMinDistance(base, w, h float64) float64 {
	return math.Min(base, 0.75*(math.Hypot(w/2, h/2)-stageEdgeMargin))
}

// randomPoint 返回距边界 margin 以内的随机点
func (s *StageSystem) randomPoint(margin float64) (float64, float64) {
	gs := s.gameState
	return game.RandRange(s.rng, margin, gs.WorldWidth-margin), game.RandRange(s.rng, margin, gs.WorldHeight-margin)
}

// placeDoor 采样出口位置；次数用尽时接受最后一个候选
func (s *StageSystem) placeDoor() (float64, float64) {
	gs := s.gameState
	tuning := s.arenaConfig.Stage
	minDist := ExitMinDistance(tuning.ExitMinDistance, gs.WorldWidth, gs.WorldHeight)

	var x, y float64
	for i := 0; i < max(tuning.PlacementTries, 1); i++ {
		x, y = s.randomPoint(stageEdgeMargin)
		if distance(x, y, gs.SpawnX, gs.SpawnY) >= minDist {
			break
		}
	}
	return x, y
}

// placeChests 放置 0~MaxChests 个宝箱
func (s *StageSystem) placeChests(doorX, doorY float64) [][2]float64 {
	gs := s.gameState
	tuning := s.arenaConfig.Stage
	count := s.rng.Intn(tuning.MaxChests + 1)

	placed := make([][2]float64, 0, count)
	for c := 0; c < count; c++ {
		var x, y float64
		for i := 0; i < max(tuning.PlacementTries, 1); i++ {
			x, y = s.randomPoint(stageEdgeMargin)
			if distance(x, y, gs.SpawnX, gs.SpawnY) < tuning.ChestMinDistance {
				continue
			}
			if distance(x, y, doorX, doorY) < tuning.ChestSpacing {
				continue
			}
			if tooClose(x, y, placed, tuning.ChestSpacing) {
				continue
			}
			break
		}
		entities.NewLootChest(s.entityManager, x, y)
		placed = append(placed, [2]float64{x, y})
	}
	return placed
}

// placeObstacles 放置主题障碍物；某个障碍物采样失败时跳过（允许部分布置）
func (s *StageSystem) placeObstacles(doorX, doorY float64, chests [][2]float64) int {
	gs := s.gameState
	tuning := s.arenaConfig.Stage
	count := tuning.ObstacleCount(gs.Stage)

	type circle struct{ x, y, r float64 }
	placed := make([]circle, 0, count)

	for o := 0; o < count; o++ {
		for i := 0; i < tuning.ObstacleAttempts; i++ {
			r := game.RandRange(s.rng, tuning.ObstacleMinRadius, tuning.ObstacleMaxRadius)
			x, y := s.randomPoint(r + stageEdgeMargin/2)

			if distance(x, y, gs.SpawnX, gs.SpawnY) < tuning.ObstacleClearance+r {
				continue
			}
			if distance(x, y, doorX, doorY) < r+config.DoorRadius+tuning.ObstacleSpacing {
				continue
			}
			if tooClose(x, y, chests, r+config.ChestRadius+tuning.ObstacleSpacing) {
				continue
			}
			overlap := false
			for _, c := range placed {
				if distance(x, y, c.x, c.y) < r+c.r+tuning.ObstacleSpacing {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}

			entities.NewObstacle(s.entityManager, x, y, r, gs.Theme, s.rng.Intn(3))
			placed = append(placed, circle{x, y, r})
			break
		}
	}
	if len(placed) < count {
		log.Printf("[StageSystem] Placed %d/%d obstacles", len(placed), count)
	}
	return len(placed)
}

func tooClose(x, y float64, points [][2]float64, minDist float64) bool {
	for _, p := range points {
		if distance(x, y, p[0], p[1]) < minDist {
			return true
		}
	}
	return false
}

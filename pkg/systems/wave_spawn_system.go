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

// BossCycleScale 每经过一轮 Boss（10 关）Boss 属性的增幅
const BossCycleScale = 0.5

// WaveSpawnSystem 刷怪系统
//
// 职责：
//   - 按关卡间隔在玩家周围的环形区域内周期性生成敌人
//   - 遵守关卡数量上限（召唤物同样受限）
//   - 按主题权重表选择原型，按关卡与狂暴状态缩放属性
//   - 为行为系统生成召唤物，为过场导演生成 Boss
//
// 架构说明：
//   - 所有随机抽样都通过注入的 game.RNG，保证可重放
//   - 使用敌人工厂函数创建实体（entities 包）
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	arenaConfig   *config.ArenaConfig
	rng           game.RNG
	timer         int
}

// NewWaveSpawnSystem 创建刷怪系统
//
// 参数：
//
//	em - 实体管理器
//	gs - 游戏状态（关卡、主题、出口状态）
//	cfg - 竞技场配置
//	rng - 随机数源
func NewWaveSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ArenaConfig, rng game.RNG) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		entityManager: em,
		gameState:     gs,
		arenaConfig:   cfg,
		rng:           rng,
	}
}

// Reset 进入新关卡时重置刷怪计时
func (s *WaveSpawnSystem) Reset() {
	s.timer = 0
}

// Update 推进一个 tick，到达间隔且未达上限时生成一个敌人
// Boss 关、游戏结束或关卡完成后不再周期刷怪
func (s *WaveSpawnSystem) Update() (ecs.EntityID, bool) {
	gs := s.gameState
	if gs.IsBossStage || gs.GameOver || gs.StageComplete {
		return 0, false
	}

	s.timer++
	if s.timer < s.arenaConfig.Spawn.Interval(gs.Stage) {
		return 0, false
	}
	s.timer = 0

	if s.LiveEnemyCount() >= s.arenaConfig.Spawn.Cap(gs.Stage) {
		return 0, false
	}

	x, y := s.SampleSpawnPosition()
	return s.SpawnEnemy(s.PickArchetype(), x, y, false), true
}

// LiveEnemyCount 返回存活的普通敌人数量（不含 Boss）
func (s *WaveSpawnSystem) LiveEnemyCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager) {
		if ecs.HasComponent[*components.BossComponent](s.entityManager, id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !health.IsDepleted() {
			n++
		}
	}
	return n
}

// PickArchetype 按当前主题的权重表随机选择已解锁的原型
func (s *WaveSpawnSystem) PickArchetype() types.Archetype {
	archetypes, weights := s.arenaConfig.Weights(s.gameState.Theme, s.gameState.Stage)
	if len(archetypes) == 0 {
		return types.ArchetypeBasic
	}
	return archetypes[game.WeightedIndex(s.rng, weights)]
}

// SampleSpawnPosition 在玩家周围的环形区域内采样出生点
//
// 候选点必须在世界内、与玩家保持安全距离且不在障碍物内；
// 采样次数用尽后返回最后一个候选点（钳制到世界内）。
func (s *WaveSpawnSystem) SampleSpawnPosition() (float64, float64) {
	gs := s.gameState
	spawn := s.arenaConfig.Spawn

	px, py := gs.WorldWidth/2, gs.WorldHeight/2
	if _, pos, ok := findPlayer(s.entityManager); ok {
		px, py = pos.X, pos.Y
	}

	attempts := spawn.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var x, y float64
	for i := 0; i < attempts; i++ {
		angle := game.RandAngle(s.rng)
		r := game.RandRange(s.rng, spawn.RingMin, spawn.RingMax)
		x = px + math.Cos(angle)*r
		y = py + math.Sin(angle)*r

		if !gs.InWorld(x, y) {
			continue
		}
		if distance(x, y, px, py) < spawn.SafeDistance {
			continue
		}
		if s.insideObstacle(x, y) {
			continue
		}
		return x, y
	}
	return gs.ClampToWorld(x, y, 0)
}

func (s *WaveSpawnSystem) insideObstacle(x, y float64) bool {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.ObstacleComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if distance(x, y, pos.X, pos.Y) < col.Radius {
			return true
		}
	}
	return false
}

// ScaledStats 返回按关卡、狂暴与召唤物倍率缩放后的属性
func (s *WaveSpawnSystem) ScaledStats(a types.Archetype, minion bool) config.ArchetypeStats {
	gs := s.gameState
	spawn := s.arenaConfig.Spawn

	stats := s.arenaConfig.BaseStats(a)
	stats.Health *= spawn.HealthScale(gs.Stage)
	stats.Damage *= spawn.DamageScale(gs.Stage)
	stats.Speed *= spawn.SpeedScale(gs.Stage)

	// 出口打开后新刷出的敌人进入狂暴
	if gs.ExitOpen {
		stats.Health *= spawn.RageHealth
		stats.Damage *= spawn.RageDamage
		stats.Speed *= spawn.RageSpeed
	}

	if minion {
		stats.Health *= spawn.MinionHealth
		stats.Damage *= spawn.MinionDamage
		stats.Value = 0
	}
	return stats
}

// SpawnEnemy 在 (x, y) 生成指定原型的敌人，附带当前主题的状态效果
func (s *WaveSpawnSystem) SpawnEnemy(a types.Archetype, x, y float64, minion bool) ecs.EntityID {
	status := s.gameState.Theme.ContactStatus()
	ticks := 0
	if status != types.StatusNone {
		ticks = config.ContactStatusTicks
	}
	return entities.NewEnemy(s.entityManager, entities.EnemySpec{
		Archetype:   a,
		X:           x,
		Y:           y,
		Stats:       s.ScaledStats(a, minion),
		Status:      status,
		StatusTicks: ticks,
		Minion:      minion,
	}, s.arenaConfig.AI)
}

// SpawnMinion 在 (x, y) 生成召唤物（强制为 basic 原型）
// 达到数量上限时不生成
func (s *WaveSpawnSystem) SpawnMinion(x, y float64) (ecs.EntityID, bool) {
	if s.LiveEnemyCount() >= s.arenaConfig.Spawn.Cap(s.gameState.Stage) {
		return 0, false
	}
	x, y = s.gameState.ClampToWorld(x, y, 0)
	return s.SpawnEnemy(types.ArchetypeBasic, x, y, true), true
}

// BossIntroPosition 返回 Boss 出场后的落点（竞技场上部居中）
func (s *WaveSpawnSystem) BossIntroPosition() (float64, float64) {
	return s.gameState.WorldWidth / 2, s.gameState.WorldHeight * 0.3
}

// BossStats 返回当前关卡的 Boss 属性
func (s *WaveSpawnSystem) BossStats(kind types.Archetype) config.ArchetypeStats {
	stats := s.arenaConfig.BaseStats(kind)
	cycle := s.gameState.Stage/s.arenaConfig.Stage.BossEvery - 1
	if cycle > 0 {
		scale := 1 + BossCycleScale*float64(cycle)
		stats.Health *= scale
		stats.Damage *= scale
	}
	return stats
}

// SpawnBoss 生成当前 Boss 关的 Boss（过场导演调用）
// 巨像直接出现在落点，风暴从竞技场上方飞入
func (s *WaveSpawnSystem) SpawnBoss() (ecs.EntityID, bool) {
	gs := s.gameState
	if !gs.IsBossStage || !gs.Boss.IsBoss() {
		return 0, false
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager) {
		return id, true
	}

	kind := gs.Boss
	stats := s.BossStats(kind)
	x, y := s.BossIntroPosition()

	startY := y
	if kind == types.ArchetypeTempest {
		startY = -stats.Radius * 2
	}
	id := entities.NewBoss(s.entityManager, kind, x, startY, stats)
	if boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id); ok {
		boss.IntroFromY = startY
		boss.IntroToY = y
	}
	log.Printf("[WaveSpawnSystem] Boss %s spawned (hp=%.0f)", kind, stats.Health)
	return id, true
}

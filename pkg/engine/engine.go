// Package engine 竞技场模拟的对外入口
//
// Engine 持有实体管理器、游戏状态、时钟与全部系统，
// 宿主（ebiten.Game 或测试）只通过这里的方法驱动模拟：
// 每个固定步调用一次 Update，渲染时调用 Draw 或 DrawTo。
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/arena/pkg/clock"
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
	"github.com/gonewx/arena/pkg/systems/behavior"
)

// Callbacks 引擎向宿主发出的通知，任何一项都可以为 nil
type Callbacks struct {
	// OnUpdateUI 界面状态有变化时调用，只包含变化的字段
	OnUpdateUI func(UIPatch)
	// OnShopOpen 玩家进入出口后调用
	OnShopOpen func()
	// OnStageComplete 玩家进入出口后调用，参数为完成的关卡
	OnStageComplete func(stage int)
	// OnAssetsLoaded 精灵来源就绪后调用（Start 时最多一次）
	OnAssetsLoaded func()
}

// Options 引擎构造参数
type Options struct {
	// Target 渲染目标，可以为 nil（此时只能使用 DrawTo）
	Target *ebiten.Image
	// Width/Height 视口像素尺寸，<= 0 时取 Target 的尺寸或默认尺寸
	Width  int
	Height int

	Callbacks Callbacks

	// Skin 玩家外观ID
	Skin string
	// Loadout 技能ID列表，超过 MaxLoadoutSlots 的部分被丢弃
	Loadout []string
	// Abilities 技能定义，为 nil 时使用内置定义
	Abilities map[string]config.AbilityDef
	// Resume 读档快照，为 nil 时开始新的一局
	Resume *game.RunSnapshot

	// RNG 随机数来源，为 nil 时使用当前时间作为种子
	RNG game.RNG
	// Input 玩家输入，为 nil 时玩家静止（仍会自动射击）
	Input systems.InputSource
	// Assets 精灵来源，为 nil 时绘制基本图形
	Assets systems.SpriteSource
	// Config 数值配置，为 nil 时使用 DefaultArenaConfig
	Config *config.ArenaConfig
}

// Engine 竞技场模拟引擎
type Engine struct {
	callbacks Callbacks
	target    *ebiten.Image
	assets    systems.SpriteSource

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	arenaConfig   *config.ArenaConfig
	clock         *clock.Clock
	playerID      ecs.EntityID

	statusSystem     *systems.StatusEffectSystem
	playerSystem     *systems.PlayerSystem
	movementSystem   *systems.MovementSystem
	behaviorSystem   *behavior.BehaviorSystem
	projectileSystem *systems.ProjectileSystem
	pickupSystem     *systems.PickupSystem
	waveSpawnSystem  *systems.WaveSpawnSystem
	deathSystem      *systems.DeathSystem
	lifetimeSystem   *systems.LifetimeSystem
	cameraSystem     *systems.CameraSystem
	cutsceneSystem   *systems.CutsceneSystem
	stageSystem      *systems.StageSystem
	renderSystem     *systems.RenderSystem

	running        bool
	paused         bool
	assetsNotified bool

	lastUI    UIState
	published bool
}

// New 创建引擎并生成 gs.Stage 对应的关卡
// 引擎创建后处于停止状态，调用 Start 后 Update 才会推进模拟。
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultArenaConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	abilities := opts.Abilities
	if abilities == nil {
		abilities = config.DefaultAbilities()
	}

	rng := opts.RNG
	if rng == nil {
		rng = game.NewRNG(time.Now().UnixNano())
	}

	width, height := opts.Width, opts.Height
	if (width <= 0 || height <= 0) && opts.Target != nil {
		b := opts.Target.Bounds()
		width, height = b.Dx(), b.Dy()
	}
	if width <= 0 || height <= 0 {
		width, height = config.DefaultViewWidth, config.DefaultViewHeight
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(opts.Resume)
	gs.ViewWidth, gs.ViewHeight = float64(width), float64(height)

	e := &Engine{
		callbacks:     opts.Callbacks,
		target:        opts.Target,
		assets:        opts.Assets,
		entityManager: em,
		gameState:     gs,
		arenaConfig:   cfg,
		clock:         clock.New(clock.DefaultStep, config.MaxStepsPerFrame),
	}

	e.projectileSystem = systems.NewProjectileSystem(em, gs)
	e.playerSystem = systems.NewPlayerSystem(em, gs, e.projectileSystem, abilities, opts.Input)
	e.statusSystem = systems.NewStatusEffectSystem(em)
	e.movementSystem = systems.NewMovementSystem(em, gs)
	e.waveSpawnSystem = systems.NewWaveSpawnSystem(em, gs, cfg, rng)
	e.cameraSystem = systems.NewCameraSystem(em, gs)
	e.cutsceneSystem = systems.NewCutsceneSystem(em, gs, e.cameraSystem, e.waveSpawnSystem)
	e.behaviorSystem = behavior.NewBehaviorSystem(em, gs, cfg.AI, rng, e.waveSpawnSystem, e.cutsceneSystem)
	e.pickupSystem = systems.NewPickupSystem(em, gs, rng)
	e.deathSystem = systems.NewDeathSystem(em, gs, rng)
	e.lifetimeSystem = systems.NewLifetimeSystem(em)
	e.stageSystem = systems.NewStageSystem(em, gs, cfg, rng, e.cameraSystem, e.cutsceneSystem, e.waveSpawnSystem)
	e.renderSystem = systems.NewRenderSystem(em, gs, opts.Assets)

	health := 0.0
	if opts.Resume != nil {
		health = opts.Resume.Health
	}
	loadout := entities.BuildLoadout(opts.Loadout, abilities)
	e.playerID = entities.NewPlayer(em, gs.SpawnX, gs.SpawnY, health, gs.Stats, loadout, opts.Skin)

	e.SpawnStage()

	log.Printf("[Engine] Created: stage=%d view=%dx%d loadout=%d resumed=%v",
		gs.Stage, width, height, len(loadout), opts.Resume != nil)
	return e, nil
}

// Start 开始推进模拟
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	if !e.assetsNotified {
		e.assetsNotified = true
		if e.callbacks.OnAssetsLoaded != nil {
			e.callbacks.OnAssetsLoaded()
		}
	}
	e.publishUI(true)
	log.Printf("[Engine] Started at tick %d", e.clock.Now())
}

// Stop 停止推进模拟（状态保留，可以再次 Start）
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	// 丢弃未消耗的累加时间与延迟行为，tick 编号保留
	// 横幅的清除计时随之丢弃，这里直接清除
	e.clock.Reset()
	e.gameState.Banner = ""
	log.Printf("[Engine] Stopped at tick %d", e.clock.Now())
}

// Pause 暂停模拟
func (e *Engine) Pause() {
	if e.paused {
		return
	}
	e.paused = true
	e.publishUI(false)
}

// Resume 恢复模拟
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.publishUI(false)
}

// IsPaused 是否处于暂停状态
func (e *Engine) IsPaused() bool {
	return e.paused
}

// Resize 修改视口尺寸（非正值被钳制为 1）
func (e *Engine) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	e.gameState.ViewWidth, e.gameState.ViewHeight = float64(width), float64(height)
	if e.target != nil {
		if b := e.target.Bounds(); b.Dx() != width || b.Dy() != height {
			e.target = nil
		}
	}
}

// SetTarget 替换渲染目标（Resize 丢弃尺寸不符的目标后由宿主重新设置）
func (e *Engine) SetTarget(target *ebiten.Image) {
	e.target = target
}

// Advance 把经过的真实时间交给时钟，按固定步长执行 Update
// 返回本次执行的步数
func (e *Engine) Advance(elapsed time.Duration) int {
	return e.clock.Advance(elapsed, e.Update)
}

// Tick 返回当前模拟 tick
func (e *Engine) Tick() int64 {
	return e.clock.Now()
}

// State 返回当前的界面状态
func (e *Engine) State() UIState {
	return e.uiState()
}

// GameState 返回共享的游戏状态（只读使用）
func (e *Engine) GameState() *game.GameState {
	return e.gameState
}

// EntityManager 返回实体管理器（调试与测试使用）
func (e *Engine) EntityManager() *ecs.EntityManager {
	return e.entityManager
}

// Update 推进一个固定步
//
// 顺序：延迟行为 → 状态效果 → 玩家 → 移动与碰撞 → AI → 投射物 →
// 拾取与出口 → 刷怪 → 死亡结算 → 生命周期 → 镜头 → 清理 → 界面。
// 过场期间只更新镜头与过场。
func (e *Engine) Update() {
	if !e.running || e.paused {
		return
	}
	e.clock.Tick()
	gs := e.gameState
	gs.Tick = e.clock.Now()

	if gs.GameOver || gs.StageComplete {
		e.publishUI(false)
		return
	}

	if e.cutsceneSystem.IsActive() {
		e.cameraSystem.Update()
		e.cutsceneSystem.Update()
		e.entityManager.RemoveMarkedEntities()
		e.publishUI(false)
		return
	}

	e.statusSystem.Update()
	e.playerSystem.Update()
	e.movementSystem.Update()
	e.behaviorSystem.Update()
	e.projectileSystem.Update()
	entered := e.pickupSystem.Update()
	e.waveSpawnSystem.Update()
	report := e.deathSystem.Update()
	e.lifetimeSystem.Update()
	e.cameraSystem.Update()
	e.entityManager.RemoveMarkedEntities()

	if report.ExitOpened {
		e.showBanner("EXIT OPEN")
	}
	if report.PlayerDied {
		log.Printf("[Engine] Game over on stage %d at tick %d", gs.Stage, gs.Tick)
	}
	if entered {
		e.completeStage()
	}
	e.publishUI(false)
}

// completeStage 玩家进入出口：通知宿主打开商店，等待 ContinueNextStage
func (e *Engine) completeStage() {
	stage := e.gameState.Stage
	log.Printf("[Engine] Stage %d complete", stage)
	if e.callbacks.OnStageComplete != nil {
		e.callbacks.OnStageComplete(stage)
	}
	if e.callbacks.OnShopOpen != nil {
		e.callbacks.OnShopOpen()
	}
}

// Draw 绘制到构造时传入的渲染目标
func (e *Engine) Draw() {
	if e.target == nil {
		return
	}
	e.renderSystem.Draw(e.target)
}

// DrawTo 绘制到指定画面
func (e *Engine) DrawTo(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	e.renderSystem.Draw(screen)
}

// SpawnStage 重新生成当前关卡
func (e *Engine) SpawnStage() {
	gs := e.gameState
	e.stageSystem.SpawnStage()
	e.entityManager.RemoveMarkedEntities()

	if gs.IsBossStage {
		e.showBanner(fmt.Sprintf("STAGE %d - %s", gs.Stage, gs.Boss))
	} else {
		e.showBanner(fmt.Sprintf("STAGE %d", gs.Stage))
	}
	e.publishUI(false)
}

// ContinueNextStage 进入下一关
// 玩家死亡后调用无效，返回 false
func (e *Engine) ContinueNextStage() bool {
	gs := e.gameState
	if gs.GameOver {
		return false
	}
	gs.Stage++
	e.SpawnStage()
	return true
}

// ExportState 导出可恢复的快照
// commit 为 true 时返回实时状态，否则返回进入本关时的状态
func (e *Engine) ExportState(commit bool) game.RunSnapshot {
	health, maxHealth := 0.0, e.gameState.Stats.MaxHealth
	if h, ok := ecs.GetComponent[*components.HealthComponent](e.entityManager, e.playerID); ok {
		health, maxHealth = h.Current, h.Max
	}
	return e.gameState.Export(commit, health, maxHealth)
}

// ApplyUpgrades 永久调整基础属性，并同步到玩家实体
// 最大生命值提高时当前生命值同步提高相同的量
func (e *Engine) ApplyUpgrades(delta map[string]float64) {
	gs := e.gameState
	gs.ApplyUpgrades(delta)

	em := e.entityManager
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, e.playerID); ok {
		if grow := gs.Stats.MaxHealth - h.Max; grow > 0 {
			h.Current += grow
		}
		h.Max = gs.Stats.MaxHealth
		if h.Current > h.Max {
			h.Current = h.Max
		}
	}
	if p, ok := ecs.GetComponent[*components.PlayerComponent](em, e.playerID); ok {
		p.Speed = gs.Stats.Speed
	}
	e.publishUI(false)
}

// TriggerPowerup 释放装备栏中的技能
// 未运行、暂停、过场中、关卡已完成或玩家死亡时返回 false
func (e *Engine) TriggerPowerup(slot int) bool {
	gs := e.gameState
	if !e.running || e.paused || gs.GameOver || gs.StageComplete || e.cutsceneSystem.IsActive() {
		return false
	}
	if !e.playerSystem.TriggerAbility(slot) {
		return false
	}
	e.publishUI(false)
	return true
}

// showBanner 显示横幅，BannerTicks 后清除（期间被替换则不清除）
func (e *Engine) showBanner(text string) {
	gs := e.gameState
	gs.Banner = text
	e.clock.Defer(config.BannerTicks, func() {
		if gs.Banner == text {
			gs.Banner = ""
		}
	})
}

// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/engine"
	"github.com/gonewx/arena/pkg/game"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Stage 指定起始关卡，> 0 时忽略存档
	Stage int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Skin 玩家外观ID
	Skin string
	// Loadout 技能ID列表（最多 4 个）
	Loadout []string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg       Config
	arena     *config.ArenaConfig
	abilities map[string]config.AbilityDef
	store     *game.RunStore

	engine   *engine.Engine
	lastTime time.Time
	shopOpen bool

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	arenaConfig, err := config.LoadArenaConfig("data/arena.yaml")
	if err != nil {
		return nil, fmt.Errorf("竞技场配置加载失败: %w", err)
	}
	abilityConfig, err := config.LoadAbilityConfig("data/abilities.yaml")
	if err != nil {
		return nil, fmt.Errorf("技能配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个原型, %d 个技能", len(arenaConfig.Archetypes), len(abilityConfig.Abilities))

	// gdata 打开失败时降级为仅内存存储
	manager, err := gdata.Open(gdata.Config{AppName: "arena"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (run will not persist)", err)
		manager = nil
	}
	store, err := game.NewRunStore(manager)
	if err != nil {
		return nil, fmt.Errorf("续玩存储初始化失败: %w", err)
	}

	if len(cfg.Loadout) == 0 {
		cfg.Loadout = []string{"heal", "shield", "grenade", "frost_nova"}
	}

	a := &App{
		cfg:       cfg,
		arena:     arenaConfig,
		abilities: abilityConfig.Abilities,
		store:     store,
		verbose:   cfg.Verbose,
	}

	resume := store.Resume()
	if cfg.Stage > 0 {
		snap := game.NewRunSnapshot()
		snap.Stage = cfg.Stage
		resume = &snap
		log.Printf("[App] Starting at stage %d (save ignored)", cfg.Stage)
	} else if resume != nil {
		log.Printf("[App] Resuming run at stage %d", resume.Stage)
	}

	if err := a.startRun(resume); err != nil {
		return nil, err
	}
	return a, nil
}

// startRun 创建新的引擎实例
func (a *App) startRun(resume *game.RunSnapshot) error {
	var rng game.RNG
	if a.cfg.Seed != 0 {
		rng = game.NewRNG(a.cfg.Seed)
	}

	e, err := engine.New(engine.Options{
		Width:  config.DefaultViewWidth,
		Height: config.DefaultViewHeight,
		Callbacks: engine.Callbacks{
			OnStageComplete: a.onStageComplete,
			OnShopOpen:      a.onShopOpen,
		},
		Skin:      a.cfg.Skin,
		Loadout:   a.cfg.Loadout,
		Abilities: a.abilities,
		Resume:    resume,
		RNG:       rng,
		Input:     engine.EbitenInput{},
		Config:    a.arena,
	})
	if err != nil {
		return fmt.Errorf("引擎创建失败: %w", err)
	}

	if a.engine != nil {
		a.engine.Stop()
	}
	a.engine = e
	a.shopOpen = false
	a.lastTime = time.Now()
	e.Start()
	return nil
}

// onStageComplete 关卡完成时提交存档
func (a *App) onStageComplete(stage int) {
	snap := a.engine.ExportState(true)
	snap.Stage = stage + 1
	snap.CurrentTheme = ""
	if err := a.store.Save(snap, true); err != nil {
		log.Printf("[App] Warning: failed to save run: %v", err)
	}
}

func (a *App) onShopOpen() {
	a.shopOpen = true
}

// Update 更新游戏逻辑
// TPS 与帧率同步，固定步长由引擎的时钟负责
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultViewWidth, config.DefaultViewHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultViewWidth, config.DefaultViewHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	now := time.Now()
	elapsed := now.Sub(a.lastTime)
	a.lastTime = now

	state := a.engine.State()
	switch {
	case state.GameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := a.store.Clear(); err != nil {
				log.Printf("[App] Warning: failed to clear run: %v", err)
			}
			return a.startRun(nil)
		}
	case a.shopOpen:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.shopOpen = false
			a.engine.ContinueNextStage()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.togglePause()
	}

	a.engine.Advance(elapsed)
	return nil
}

// togglePause 暂停时保存进入本关时的快照
func (a *App) togglePause() {
	if a.engine.IsPaused() {
		a.engine.Resume()
		return
	}
	a.engine.Pause()
	if err := a.store.Save(a.engine.ExportState(false), false); err != nil {
		log.Printf("[App] Warning: failed to save run: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.engine.DrawTo(screen)

	switch state := a.engine.State(); {
	case state.GameOver:
		ebitenutil.DebugPrintAt(screen, "Press R to start a new run", 12, 48)
	case a.shopOpen:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Stage %d cleared - press Enter to continue", state.Stage), 12, 48)
	case state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 12, 48)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.DefaultViewWidth, config.DefaultViewHeight
}

// Shutdown 退出前保存进入本关时的快照（玩家死亡时清除存档）并停止引擎
// 商店界面中退出时保留关卡完成时提交的存档
func (a *App) Shutdown() {
	defer a.engine.Stop()
	if a.shopOpen {
		return
	}
	if a.engine.State().GameOver {
		if err := a.store.Clear(); err != nil {
			log.Printf("[App] Warning: failed to clear run: %v", err)
		}
		return
	}
	if err := a.store.Save(a.engine.ExportState(false), false); err != nil {
		log.Printf("[App] Warning: failed to save run: %v", err)
	}
}

// Engine 返回当前的引擎实例
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

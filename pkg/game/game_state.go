package game

import (
	"log"

	"github.com/gonewx/arena/pkg/types"
)

// GameState 存储一局游戏的全局状态
// 每个引擎实例持有一个，各系统共享读写（仅在模拟步内修改）
type GameState struct {
	// 进度
	Stage      int  // 当前关卡（从 1 开始）
	Kills      int  // 本局累计击杀（不含召唤物）
	StageKills int  // 本关击杀（不含召唤物）
	KillQuota  int  // 本关击杀配额，Boss 关为 0
	ExitOpen   bool // 出口是否已打开（本关内只会从 false 变为 true 一次）
	Currency   int  // 本局货币

	Stats BaseStats // 玩家基础属性

	// 关卡
	Theme       types.Theme
	IsBossStage bool
	Boss        types.Archetype // Boss 关的 Boss 原型

	// 世界
	WorldWidth  float64
	WorldHeight float64
	SpawnX      float64
	SpawnY      float64

	// 摄像机（镜头中心的世界坐标）与视口尺寸
	CameraX    float64
	CameraY    float64
	ViewWidth  float64
	ViewHeight float64

	// 流程
	Tick          int64  // 当前模拟 tick（由引擎在每步开始时写入）
	GameOver      bool   // 玩家死亡
	StageComplete bool   // 玩家已进入出口，等待商店/下一关
	Banner        string // 横幅文字（由延迟行为清除）

	carriedTheme types.Theme // 读档带入的主题（仅恢复一次）
	stageStart   RunSnapshot // 进入本关时的快照
}

// NewGameState 创建游戏状态
// 参数：
//   - snapshot: 可选的读档快照，为 nil 时从第 1 关开始
func NewGameState(snapshot *RunSnapshot) *GameState {
	snap := NewRunSnapshot()
	if snapshot != nil {
		snap = *snapshot
		snap.Normalize()
	}

	gs := &GameState{
		Stage:        snap.Stage,
		Kills:        snap.Kills,
		Currency:     snap.Currency,
		Stats:        snap.BaseStats,
		carriedTheme: types.ThemeFromString(snap.CurrentTheme),
		stageStart:   snap,
	}
	return gs
}

// AddCurrency 增加货币（负数忽略）
func (gs *GameState) AddCurrency(amount int) {
	if amount > 0 {
		gs.Currency += amount
	}
}

// RecordKill 记录一次击杀
// 召唤物的击杀不计入配额。
// 返回：本次击杀是否打开了出口
func (gs *GameState) RecordKill(minion bool) bool {
	if minion {
		return false
	}
	gs.Kills++
	gs.StageKills++
	if gs.IsBossStage {
		return false
	}
	if gs.StageKills >= gs.KillQuota {
		return gs.OpenExit()
	}
	return false
}

// OpenExit 打开出口
// 返回：是否是本关第一次打开
func (gs *GameState) OpenExit() bool {
	if gs.ExitOpen {
		return false
	}
	gs.ExitOpen = true
	log.Printf("[GameState] Exit opened on stage %d (kills %d/%d)", gs.Stage, gs.StageKills, gs.KillQuota)
	return true
}

// ConsumeCarriedTheme 取出读档带入的主题（只返回一次）
func (gs *GameState) ConsumeCarriedTheme() (types.Theme, bool) {
	t := gs.carriedTheme
	gs.carriedTheme = types.ThemeUnknown
	return t, t != types.ThemeUnknown
}

// ResetStageProgress 进入新关卡时重置关卡内进度
func (gs *GameState) ResetStageProgress() {
	gs.StageKills = 0
	gs.ExitOpen = false
	gs.StageComplete = false
}

// CaptureStageStart 记录进入本关时的快照（用于回滚导出）
func (gs *GameState) CaptureStageStart(health, maxHealth float64) {
	gs.stageStart = gs.live(health, maxHealth)
}

// StageStart 返回进入本关时的快照
func (gs *GameState) StageStart() RunSnapshot {
	return gs.stageStart
}

// Export 导出快照
// 参数：
//   - commit: true 返回实时状态，false 返回进入本关时记录的状态
//   - health/maxHealth: 玩家当前生命值（仅 commit 时使用）
func (gs *GameState) Export(commit bool, health, maxHealth float64) RunSnapshot {
	if commit {
		return gs.live(health, maxHealth)
	}
	return gs.stageStart
}

func (gs *GameState) live(health, maxHealth float64) RunSnapshot {
	return RunSnapshot{
		Health:       health,
		MaxHealth:    maxHealth,
		Currency:     gs.Currency,
		Stage:        gs.Stage,
		Kills:        gs.Kills,
		BaseStats:    gs.Stats,
		CurrentTheme: gs.Theme.String(),
	}
}

// ApplyUpgrades 永久调整基础属性
func (gs *GameState) ApplyUpgrades(delta map[string]float64) {
	gs.Stats.Apply(delta)
}

// ClampToWorld 将圆形实体的中心钳制在世界范围内
func (gs *GameState) ClampToWorld(x, y, radius float64) (float64, float64) {
	return clamp(x, radius, gs.WorldWidth-radius), clamp(y, radius, gs.WorldHeight-radius)
}

// InWorld 判断点是否在世界范围内
func (gs *GameState) InWorld(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= gs.WorldWidth && y <= gs.WorldHeight
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

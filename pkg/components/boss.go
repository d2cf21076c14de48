package components

import "github.com/gonewx/arena/pkg/types"

// BossState Boss 状态机的状态（封闭变体）
// ColossusState 与 TempestState 各自是独立的枚举
type BossState interface {
	bossState()
	String() string
}

// ColossusState 巨像 Boss 的状态
type ColossusState int

const (
	ColossusIntro ColossusState = iota
	ColossusIdle
	ColossusChargeTelegraph
	ColossusCharging
	ColossusBarrageTelegraph
	ColossusBarrage
	ColossusMeteors
	ColossusQuakeTelegraph
	ColossusQuake
	ColossusRecover
	ColossusPhaseShift
)

var colossusStateNames = [...]string{
	"intro", "idle", "chargeTelegraph", "charging", "barrageTelegraph",
	"barrage", "meteors", "quakeTelegraph", "quake", "recover", "phaseShift",
}

func (ColossusState) bossState() {}

func (s ColossusState) String() string {
	if int(s) >= 0 && int(s) < len(colossusStateNames) {
		return "colossus." + colossusStateNames[s]
	}
	return "colossus.unknown"
}

// TempestState 风暴 Boss 的状态
type TempestState int

const (
	TempestIntro TempestState = iota
	TempestIdle
	TempestReposition
	TempestVolleyTelegraph
	TempestVolley
	TempestRain
	TempestWallTelegraph
	TempestWallSweep
	TempestRecover
	TempestPhaseShift
)

var tempestStateNames = [...]string{
	"intro", "idle", "reposition", "volleyTelegraph", "volley",
	"rain", "wallTelegraph", "wallSweep", "recover", "phaseShift",
}

func (TempestState) bossState() {}

func (s TempestState) String() string {
	if int(s) >= 0 && int(s) < len(tempestStateNames) {
		return "tempest." + tempestStateNames[s]
	}
	return "tempest.unknown"
}

// BossComponent Boss 专属数据
type BossComponent struct {
	Kind  types.Archetype // ArchetypeColossus 或 ArchetypeTempest
	State BossState

	StateTimer int // 当前状态已持续的 tick 数

	// PatternCounter 距离上次招牌攻击已经执行的其他攻击次数
	PatternCounter int
	// LastSignature 上一次选择的攻击是否为招牌攻击
	LastSignature bool

	// PhaseSeen 是否已经触发过半血阶段转换（一次性，不可清除）
	PhaseSeen bool
	// Enraged 阶段转换后攻击节奏加快
	Enraged bool

	// 目标航点（风暴 Boss 的位移、巨像的冲锋方向）
	WaypointX float64
	WaypointY float64

	// 出场动画进度 0~1；巨像用于缩放，风暴用于从上方飞入
	IntroProgress float64
	Scale         float64
	IntroFromY    float64
	IntroToY      float64

	// 攻击状态内的计数（弹幕已发射波数、墙体已发射段数等）
	ShotsFired int
}

// Immovable Boss 在出场与阶段转换期间不可移动、不可被推动
func (b *BossComponent) Immovable() bool {
	switch s := b.State.(type) {
	case ColossusState:
		return s == ColossusIntro || s == ColossusPhaseShift
	case TempestState:
		return s == TempestIntro || s == TempestPhaseShift
	}
	return false
}

// SetState 切换状态并重置状态计时
func (b *BossComponent) SetState(s BossState) {
	b.State = s
	b.StateTimer = 0
	b.ShotsFired = 0
}

package components

import "github.com/gonewx/arena/pkg/ecs"

// 过场阶段编号
// 出场序列使用 0~4，半血转换序列使用 10~13
const (
	CutsceneIntroDelay     = 0
	CutsceneIntroPanToBoss = 1
	CutsceneIntroSpawn     = 2
	CutsceneIntroRoar      = 3
	CutsceneIntroPanBack   = 4

	CutsceneShiftHold      = 10
	CutsceneShiftPanToBoss = 11
	CutsceneShiftRoar      = 12
	CutsceneShiftPanBack   = 13
)

// CutsceneComponent 管理过场动画的阶段状态机。
// 激活期间引擎只更新镜头、过场导演和 Boss 出场动画。
type CutsceneComponent struct {
	Active bool
	Phase  int
	Timer  int // 当前阶段已持续 tick

	// 镜头目标（Boss 出生点或 Boss 当前位置）
	TargetX float64
	TargetY float64

	Boss ecs.EntityID
}

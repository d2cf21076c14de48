package components

import "github.com/gonewx/arena/pkg/types"

// StatusComponent 存储实体身上的状态效果计时器（单位：tick）
//
// 每个计时器单调递减到 0；重复施加时覆盖为新值，不叠加。
type StatusComponent struct {
	Poison int
	Burn   int
	Freeze int
	Web    int
	Stun   int

	// 周期伤害的子间隔计数
	PoisonTick int
	BurnTick   int
}

// Apply 施加状态效果，覆盖（刷新）已有计时器
func (s *StatusComponent) Apply(kind types.StatusKind, ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	switch kind {
	case types.StatusPoison:
		if s.Poison == 0 {
			s.PoisonTick = 0
		}
		s.Poison = ticks
	case types.StatusBurn:
		if s.Burn == 0 {
			s.BurnTick = 0
		}
		s.Burn = ticks
	case types.StatusFreeze:
		s.Freeze = ticks
	case types.StatusWeb:
		s.Web = ticks
	case types.StatusStun:
		s.Stun = ticks
	}
}

// Timer 返回指定状态的剩余 tick 数
func (s *StatusComponent) Timer(kind types.StatusKind) int {
	switch kind {
	case types.StatusPoison:
		return s.Poison
	case types.StatusBurn:
		return s.Burn
	case types.StatusFreeze:
		return s.Freeze
	case types.StatusWeb:
		return s.Web
	case types.StatusStun:
		return s.Stun
	default:
		return 0
	}
}

// CanMove 冰冻或眩晕时无法移动
func (s *StatusComponent) CanMove() bool {
	return s.Freeze == 0 && s.Stun == 0
}

// CanAct 眩晕时无法执行动作（射击、技能、AI 攻击）
func (s *StatusComponent) CanAct() bool {
	return s.Stun == 0
}

// SpeedFactor 返回状态效果带来的移速倍率
func (s *StatusComponent) SpeedFactor(webFactor float64) float64 {
	if !s.CanMove() {
		return 0
	}
	if s.Web > 0 {
		return webFactor
	}
	return 1
}

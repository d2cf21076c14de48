package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间有限的实体（掉落物、特效、诱饵、光束）
type LifetimeComponent struct {
	Remaining int  // 剩余 tick 数
	IsExpired bool // 是否已过期
}

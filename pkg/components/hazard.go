package components

// HazardKind 区域效果类型
type HazardKind int

const (
	// HazardStrike 延迟打击：预警结束后对范围内目标造成一次伤害
	HazardStrike HazardKind = iota
	// HazardBlast 径向爆炸：生成后立即结算一次伤害
	HazardBlast
)

// HazardComponent 定时的伤害区域（同时也是视觉提示）
type HazardComponent struct {
	Kind    HazardKind
	Radius  float64
	Damage  float64
	Warning int // 预警剩余 tick，为 0 时结算

	// Hostile 为 true 时伤害玩家/诱饵，否则伤害敌人（玩家手雷）
	Hostile   bool
	Triggered bool
}

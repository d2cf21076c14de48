package components

// DecoyComponent 诱饵，存在时吸引所有敌人的仇恨
// 生命值由 HealthComponent 管理，持续时间由 LifetimeComponent 管理
type DecoyComponent struct{}

// BeamComponent 治疗光束（纯视觉）
type BeamComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
}

package components

// PositionComponent 存储实体在世界坐标系中的位置（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/tick）
// 玩家的速度由输入决定，敌人的速度由 AI 决策写入
type VelocityComponent struct {
	VX float64
	VY float64
}

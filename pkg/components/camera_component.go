package components

// CameraComponent 管理镜头的目标位置和平移动画状态。
// 镜头当前位置保存在 GameState.CameraX/CameraY（镜头中心的世界坐标）。
type CameraComponent struct {
	// TargetX/TargetY 平移目标（世界坐标）
	TargetX float64
	TargetY float64

	// AnimationSpeed 平移速度（像素/tick）
	AnimationSpeed float64

	// IsAnimating 是否正在平移；为 false 时镜头跟随玩家
	IsAnimating bool
}

package components

// SpriteComponent 存储实体的视觉表现名称
// 渲染系统通过资源接口按名称查找图像，找不到时退化为基本图形
type SpriteComponent struct {
	Name  string
	Scale float64 // 0 视为 1
}

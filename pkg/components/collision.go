package components

// CollisionComponent 定义实体的圆形碰撞体
// 所有碰撞检测（障碍物推出、实体分离、子弹命中）都基于圆心距离与半径之和比较
type CollisionComponent struct {
	Radius float64 // 碰撞半径（像素）
}

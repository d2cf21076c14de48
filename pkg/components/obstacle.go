package components

import "github.com/gonewx/arena/pkg/types"

// ObstacleComponent 静态障碍物，半径存储在 CollisionComponent
type ObstacleComponent struct {
	Theme   types.Theme
	Variant int // 主题内的外观变体
}

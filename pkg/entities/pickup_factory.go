package entities

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// NewDrop 创建货币掉落物
func NewDrop(em *ecs.EntityManager, x, y float64, value int) ecs.EntityID {
	if value < 1 {
		value = 1
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.DropComponent{Value: value, MagnetRadius: config.DropBaseMagnetRadius})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.DropLifetime})
	return id
}

// NewLootChest 创建宝箱
func NewLootChest(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.ChestRadius})
	ecs.AddComponent(em, id, &components.LootChestComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "chest"})
	return id
}

// NewExitDoor 创建出口（初始关闭）
func NewExitDoor(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.DoorRadius})
	ecs.AddComponent(em, id, &components.ExitDoorComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "door"})
	return id
}

// NewDecoy 创建诱饵
func NewDecoy(em *ecs.EntityManager, x, y, health float64, lifetime int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: config.DecoyRadius})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: health, Max: health})
	ecs.AddComponent(em, id, &components.DecoyComponent{})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: lifetime})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "decoy"})
	return id
}

// NewObstacle 创建主题障碍物
func NewObstacle(em *ecs.EntityManager, x, y, radius float64, theme types.Theme, variant int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: radius})
	ecs.AddComponent(em, id, &components.ObstacleComponent{Theme: theme, Variant: variant})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "obstacle_" + theme.String()})
	return id
}

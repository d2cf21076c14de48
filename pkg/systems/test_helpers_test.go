package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
)

// newTestGameState 创建第 1 关、指定世界尺寸的游戏状态
func newTestGameState(w, h float64) *game.GameState {
	gs := game.NewGameState(nil)
	gs.WorldWidth = w
	gs.WorldHeight = h
	gs.ViewWidth = 800
	gs.ViewHeight = 600
	gs.KillQuota = 15
	return gs
}

// spawnTestPlayer 在 (x, y) 创建满血玩家
func spawnTestPlayer(em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	return entities.NewPlayer(em, x, y, 0, gs.Stats, nil, "")
}

// spawnTestEnemy 创建一个指定原型与生命值的敌人
func spawnTestEnemy(em *ecs.EntityManager, a types.Archetype, x, y, hp float64) ecs.EntityID {
	return entities.NewEnemy(em, entities.EnemySpec{
		Archetype: a,
		X:         x,
		Y:         y,
		Stats:     config.ArchetypeStats{Health: hp, Speed: 1.5, Damage: 5, Radius: 14, Value: 2},
	}, config.DefaultArenaConfig().AI)
}

// position 读取实体位置
func position(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

// healthOf 读取实体生命值
func healthOf(em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return h
}

// scriptedInput 固定方向与一次性技能触发的输入
type scriptedInput struct {
	dx, dy float64
	slots  []int
}

func (in *scriptedInput) MoveVector() (float64, float64) {
	return in.dx, in.dy
}

func (in *scriptedInput) ActivatedSlot() int {
	if len(in.slots) == 0 {
		return -1
	}
	slot := in.slots[0]
	in.slots = in.slots[1:]
	return slot
}

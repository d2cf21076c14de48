package systems

import (
	"log"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// PickupSystem 处理掉落物吸附与拾取、宝箱与出口
type PickupSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           game.RNG
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, gs *game.GameState, rng game.RNG) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
	}
}

// Update 推进一个 tick
// 返回：玩家是否在本 tick 进入了已打开的出口
func (s *PickupSystem) Update() bool {
	_, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}
	s.updateDrops(playerPos)
	s.updateChests(playerPos)
	return s.updateDoor(playerPos)
}

// MagnetRadius 返回掉落物的实际吸附半径
func MagnetRadius(base, magnet float64) float64 {
	return base + magnet*config.MagnetRadiusPerPoint
}

func (s *PickupSystem) updateDrops(playerPos *components.PositionComponent) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](em) {
		drop, _ := ecs.GetComponent[*components.DropComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		d := distance(pos.X, pos.Y, playerPos.X, playerPos.Y)
		if d <= config.DropPickupRadius {
			s.gameState.AddCurrency(drop.Value)
			em.DestroyEntity(id)
			continue
		}
		if d <= MagnetRadius(drop.MagnetRadius, s.gameState.Stats.Magnet) {
			step := config.DropPullSpeed
			if step > d {
				step = d
			}
			nx, ny := normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
			pos.X += nx * step
			pos.Y += ny * step
		}
	}
}

// LuckBonus 幸运值的整数部分直接加成，小数部分按概率再加 1
func LuckBonus(luck float64, rng game.RNG) int {
	if luck <= 0 {
		return 0
	}
	whole := math.Floor(luck)
	n := int(whole)
	if frac := luck - whole; frac > 0 && rng.Float64() < frac {
		n++
	}
	return n
}

// ChestDropCount 返回宝箱散落的掉落物数量
func ChestDropCount(luck float64, rng game.RNG) int {
	return config.ChestBaseDrops + LuckBonus(luck, rng)
}

func (s *PickupSystem) updateChests(playerPos *components.PositionComponent) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.LootChestComponent, *components.PositionComponent](em) {
		chest, _ := ecs.GetComponent[*components.LootChestComponent](em, id)
		if chest.Opened {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !circlesOverlap(pos.X, pos.Y, config.ChestRadius, playerPos.X, playerPos.Y, config.PlayerRadius) {
			continue
		}

		chest.Opened = true
		n := ChestDropCount(s.gameState.Stats.Luck, s.rng)
		for i := 0; i < n; i++ {
			angle := game.RandAngle(s.rng)
			r := game.RandRange(s.rng, config.ChestRadius, config.ChestRadius*3)
			x, y := s.gameState.ClampToWorld(pos.X+r*math.Cos(angle), pos.Y+r*math.Sin(angle), 0)
			entities.NewDrop(em, x, y, 1+s.rng.Intn(3))
		}
		log.Printf("[PickupSystem] Chest %d opened, %d drops", id, n)
		em.DestroyEntity(id)
	}
}

// updateDoor 同步出口开关状态，玩家进入已打开的出口时完成关卡
func (s *PickupSystem) updateDoor(playerPos *components.PositionComponent) bool {
	em := s.entityManager
	entered := false
	for _, id := range ecs.GetEntitiesWith2[*components.ExitDoorComponent, *components.PositionComponent](em) {
		door, _ := ecs.GetComponent[*components.ExitDoorComponent](em, id)
		door.Open = s.gameState.ExitOpen
		if !door.Open || s.gameState.StageComplete {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if circlesOverlap(pos.X, pos.Y, config.DoorRadius, playerPos.X, playerPos.Y, config.PlayerRadius) {
			s.gameState.StageComplete = true
			entered = true
			log.Printf("[PickupSystem] Player entered exit on stage %d", s.gameState.Stage)
		}
	}
	return entered
}

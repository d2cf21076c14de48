package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// slotKeys 技能槽对应的按键
var slotKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// EbitenInput 键盘输入：WASD / 方向键移动，1~4 释放技能
type EbitenInput struct{}

// MoveVector 返回移动方向
func (EbitenInput) MoveVector() (float64, float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	return dx, dy
}

// ActivatedSlot 返回本帧按下的技能槽，没有时返回 -1
func (EbitenInput) ActivatedSlot() int {
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			return i
		}
	}
	return -1
}

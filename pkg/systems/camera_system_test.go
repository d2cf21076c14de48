package systems

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// TestCameraSystem_NewCameraSystem 测试镜头系统的创建
func TestCameraSystem_NewCameraSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(2000, 1500)

	cs := NewCameraSystem(em, gs)

	if cs.cameraEntity == 0 {
		t.Fatal("Camera entity not created")
	}
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](em, cs.cameraEntity)
	if !ok {
		t.Fatal("CameraComponent not added to camera entity")
	}
	if cameraComp.AnimationSpeed != config.CameraPanSpeed {
		t.Errorf("Expected default speed %.0f, got %.0f", config.CameraPanSpeed, cameraComp.AnimationSpeed)
	}
	if cameraComp.IsAnimating {
		t.Error("Expected IsAnimating to be false by default")
	}
}

// TestCameraSystem_FollowsPlayerClamped 测试镜头跟随玩家并钳制在世界内
func TestCameraSystem_FollowsPlayerClamped(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(2000, 1500)
	cs := NewCameraSystem(em, gs)

	player := spawnTestPlayer(em, gs, 1000, 700)
	cs.Update()
	if gs.CameraX != 1000 || gs.CameraY != 700 {
		t.Errorf("Expected camera at player (1000, 700), got (%.0f, %.0f)", gs.CameraX, gs.CameraY)
	}

	pos := position(em, player)
	pos.X, pos.Y = 10, 10
	cs.Update()
	if gs.CameraX != 400 || gs.CameraY != 300 {
		t.Errorf("Expected camera clamped to (400, 300), got (%.0f, %.0f)", gs.CameraX, gs.CameraY)
	}

	pos.X, pos.Y = 1990, 1490
	cs.Update()
	if gs.CameraX != 1600 || gs.CameraY != 1200 {
		t.Errorf("Expected camera clamped to (1600, 1200), got (%.0f, %.0f)", gs.CameraX, gs.CameraY)
	}
}

// TestCameraSystem_SmallWorldCentered 世界小于视口时居中
func TestCameraSystem_SmallWorldCentered(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(600, 400)
	cs := NewCameraSystem(em, gs)
	spawnTestPlayer(em, gs, 50, 50)

	cs.Update()

	if gs.CameraX != 300 || gs.CameraY != 200 {
		t.Errorf("Expected centered camera (300, 200), got (%.0f, %.0f)", gs.CameraX, gs.CameraY)
	}
}

// TestCameraSystem_MoveTo 测试镜头平移以固定速度到达目标
func TestCameraSystem_MoveTo(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(3000, 1500)
	cs := NewCameraSystem(em, gs)
	gs.CameraX, gs.CameraY = 400, 300

	cs.MoveTo(1100, 300, 14)
	if !cs.IsAnimating() {
		t.Fatal("Expected camera to be animating after MoveTo")
	}

	cs.Update()
	if gs.CameraX != 414 {
		t.Errorf("Expected CameraX=414 after one tick, got %.1f", gs.CameraX)
	}

	// 700 像素 / 14 = 50 tick
	for i := 0; i < 49; i++ {
		cs.Update()
	}
	if cs.IsAnimating() {
		t.Error("Expected animation to finish after 50 ticks")
	}
	if gs.CameraX != 1100 {
		t.Errorf("Expected CameraX=1100, got %.1f", gs.CameraX)
	}
}

// TestCameraSystem_StopAnimation 测试停止动画立即到达目标
func TestCameraSystem_StopAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestGameState(3000, 1500)
	cs := NewCameraSystem(em, gs)
	gs.CameraX, gs.CameraY = 400, 300

	cs.MoveTo(2000, 900, 0)
	cs.StopAnimation()

	if cs.IsAnimating() {
		t.Error("Expected animation stopped")
	}
	if gs.CameraX != 2000 || gs.CameraY != 900 {
		t.Errorf("Expected camera at target (2000, 900), got (%.0f, %.0f)", gs.CameraX, gs.CameraY)
	}
}

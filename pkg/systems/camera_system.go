package systems

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// CameraSystem 管理镜头位置。
// 过场动画期间以固定速度平移到目标点，其余时间跟随玩家，并钳制在世界范围内。
// 镜头位置写入 GameState.CameraX/CameraY（视口中心的世界坐标）。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头控制系统。
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		gameState:     gs,
	}

	// 创建镜头实体
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		AnimationSpeed: config.CameraPanSpeed,
	})

	return cs
}

// Entity 返回镜头实体ID（清理关卡时需要保留）
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}

// Update 推进一个 tick：平移动画优先，否则跟随玩家。
func (cs *CameraSystem) Update() {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if ok && cameraComp.IsAnimating {
		cs.stepAnimation(cameraComp)
		return
	}

	if _, pos, ok := findPlayer(cs.entityManager); ok {
		cs.gameState.CameraX, cs.gameState.CameraY = cs.clamp(pos.X, pos.Y)
	}
}

func (cs *CameraSystem) stepAnimation(cameraComp *components.CameraComponent) {
	dx := cameraComp.TargetX - cs.gameState.CameraX
	dy := cameraComp.TargetY - cs.gameState.CameraY
	d := math.Hypot(dx, dy)

	// 本 tick 可以到达目标，停止动画
	if d <= cameraComp.AnimationSpeed {
		cs.gameState.CameraX = cameraComp.TargetX
		cs.gameState.CameraY = cameraComp.TargetY
		cameraComp.IsAnimating = false
		return
	}

	cs.gameState.CameraX += dx / d * cameraComp.AnimationSpeed
	cs.gameState.CameraY += dy / d * cameraComp.AnimationSpeed
}

// clamp 让视口保持在世界内；世界比视口小时居中。
func (cs *CameraSystem) clamp(x, y float64) (float64, float64) {
	gs := cs.gameState
	halfW, halfH := gs.ViewWidth/2, gs.ViewHeight/2
	return clampAxis(x, halfW, gs.WorldWidth), clampAxis(y, halfH, gs.WorldHeight)
}

func clampAxis(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// MoveTo 移动镜头到目标位置。
// 参数:
//   - targetX, targetY: 目标位置（世界坐标，会被钳制使视口不越界）
//   - speed: 移动速度（像素/tick），<= 0 时使用 CameraPanSpeed
func (cs *CameraSystem) MoveTo(targetX, targetY, speed float64) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	if speed <= 0 {
		speed = config.CameraPanSpeed
	}

	cameraComp.TargetX, cameraComp.TargetY = cs.clamp(targetX, targetY)
	cameraComp.AnimationSpeed = speed
	cameraComp.IsAnimating = true
}

// SnapTo 立即把镜头放到目标位置（进入新关卡时使用）。
func (cs *CameraSystem) SnapTo(x, y float64) {
	cs.StopAnimation()
	cs.gameState.CameraX, cs.gameState.CameraY = cs.clamp(x, y)
}

// StopAnimation 停止镜头动画，立即设置到目标位置。
func (cs *CameraSystem) StopAnimation() {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok || !cameraComp.IsAnimating {
		return
	}

	cameraComp.IsAnimating = false
	cs.gameState.CameraX = cameraComp.TargetX
	cs.gameState.CameraY = cameraComp.TargetY
}

// IsAnimating 返回镜头是否正在动画中。
func (cs *CameraSystem) IsAnimating() bool {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return false
	}
	return cameraComp.IsAnimating
}

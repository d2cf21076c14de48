package systems

import (
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
	"github.com/gonewx/arena/pkg/utils"
)

const (
	// 出场序列各阶段时长（tick）
	IntroDelayTicks = 40
	IntroAnimTicks  = 90
	IntroRoarTicks  = 50

	// 半血转换序列各阶段时长（tick）
	ShiftHoldTicks = 20
	ShiftRoarTicks = 60

	// 巨像出场缩放起点
	ColossusIntroScale = 0.2
)

// BossSpawner 在过场中生成 Boss
type BossSpawner interface {
	SpawnBoss() (ecs.EntityID, bool)
}

// CutsceneSystem 过场导演，管理 Boss 出场与半血转换两段序列。
//
// 出场：0 延迟 → 1 镜头移向 Boss 出生点 → 2 生成 Boss 并播放出场动画 → 3 咆哮 → 4 镜头回到玩家
// 转换：10 停顿 → 11 镜头移向 Boss → 12 咆哮 → 13 镜头回到玩家（不重新生成）
type CutsceneSystem struct {
	entityManager  *ecs.EntityManager
	gameState      *game.GameState
	cameraSystem   *CameraSystem
	spawner        BossSpawner
	cutsceneEntity ecs.EntityID
}

// NewCutsceneSystem 创建过场系统
func NewCutsceneSystem(em *ecs.EntityManager, gs *game.GameState, cameraSystem *CameraSystem, spawner BossSpawner) *CutsceneSystem {
	cs := &CutsceneSystem{
		entityManager: em,
		gameState:     gs,
		cameraSystem:  cameraSystem,
		spawner:       spawner,
	}
	cs.cutsceneEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cutsceneEntity, &components.CutsceneComponent{})
	return cs
}

// Entity 返回过场实体ID
func (cs *CutsceneSystem) Entity() ecs.EntityID {
	return cs.cutsceneEntity
}

func (cs *CutsceneSystem) component() *components.CutsceneComponent {
	comp, _ := ecs.GetComponent[*components.CutsceneComponent](cs.entityManager, cs.cutsceneEntity)
	return comp
}

// IsActive 过场是否正在播放
func (cs *CutsceneSystem) IsActive() bool {
	comp := cs.component()
	return comp != nil && comp.Active
}

// Phase 返回当前阶段编号
func (cs *CutsceneSystem) Phase() int {
	if comp := cs.component(); comp != nil {
		return comp.Phase
	}
	return 0
}

// StartIntro 开始 Boss 出场序列
// 参数：targetX, targetY - Boss 出场位置（镜头目标）
func (cs *CutsceneSystem) StartIntro(targetX, targetY float64) {
	comp := cs.component()
	if comp == nil {
		return
	}
	*comp = components.CutsceneComponent{
		Active:  true,
		Phase:   components.CutsceneIntroDelay,
		TargetX: targetX,
		TargetY: targetY,
	}
	log.Printf("[CutsceneSystem] Boss intro started, target (%.0f, %.0f)", targetX, targetY)
}

// StartPhaseShift 开始半血转换序列
func (cs *CutsceneSystem) StartPhaseShift(bossID ecs.EntityID) {
	comp := cs.component()
	if comp == nil {
		return
	}
	*comp = components.CutsceneComponent{
		Active: true,
		Phase:  components.CutsceneShiftHold,
		Boss:   bossID,
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, bossID); ok {
		comp.TargetX, comp.TargetY = pos.X, pos.Y
	}
	log.Printf("[CutsceneSystem] Boss %d phase shift started", bossID)
}

// Stop 立即结束过场（清理关卡时使用）
func (cs *CutsceneSystem) Stop() {
	if comp := cs.component(); comp != nil {
		comp.Active = false
	}
	cs.cameraSystem.StopAnimation()
}

// Update 推进一个 tick
func (cs *CutsceneSystem) Update() {
	comp := cs.component()
	if comp == nil || !comp.Active {
		return
	}
	comp.Timer++

	switch comp.Phase {
	case components.CutsceneIntroDelay:
		if comp.Timer >= IntroDelayTicks {
			cs.enter(comp, components.CutsceneIntroPanToBoss)
			cs.cameraSystem.MoveTo(comp.TargetX, comp.TargetY, 0)
		}

	case components.CutsceneIntroPanToBoss:
		if !cs.cameraSystem.IsAnimating() {
			cs.enter(comp, components.CutsceneIntroSpawn)
			if cs.spawner != nil {
				if id, ok := cs.spawner.SpawnBoss(); ok {
					comp.Boss = id
				}
			}
		}

	case components.CutsceneIntroSpawn:
		cs.animateIntro(comp.Boss, float64(comp.Timer)/IntroAnimTicks)
		if comp.Timer >= IntroAnimTicks {
			cs.enter(comp, components.CutsceneIntroRoar)
		}

	case components.CutsceneIntroRoar:
		if comp.Timer >= IntroRoarTicks {
			cs.enter(comp, components.CutsceneIntroPanBack)
			cs.panToPlayer()
		}

	case components.CutsceneIntroPanBack:
		if !cs.cameraSystem.IsAnimating() {
			cs.finish(comp, false)
		}

	case components.CutsceneShiftHold:
		if comp.Timer >= ShiftHoldTicks {
			cs.enter(comp, components.CutsceneShiftPanToBoss)
			cs.cameraSystem.MoveTo(comp.TargetX, comp.TargetY, 0)
		}

	case components.CutsceneShiftPanToBoss:
		if !cs.cameraSystem.IsAnimating() {
			cs.enter(comp, components.CutsceneShiftRoar)
		}

	case components.CutsceneShiftRoar:
		if comp.Timer >= ShiftRoarTicks {
			cs.enter(comp, components.CutsceneShiftPanBack)
			cs.panToPlayer()
		}

	case components.CutsceneShiftPanBack:
		if !cs.cameraSystem.IsAnimating() {
			cs.finish(comp, true)
		}
	}
}

func (cs *CutsceneSystem) enter(comp *components.CutsceneComponent, phase int) {
	log.Printf("[CutsceneSystem] Phase %d → %d", comp.Phase, phase)
	comp.Phase = phase
	comp.Timer = 0
}

func (cs *CutsceneSystem) panToPlayer() {
	if _, pos, ok := findPlayer(cs.entityManager); ok {
		cs.cameraSystem.MoveTo(pos.X, pos.Y, 0)
	}
}

// animateIntro 播放 Boss 出场动画
// 巨像从 0.2 倍缩放长到 1 倍，风暴从竞技场上方飞入
func (cs *CutsceneSystem) animateIntro(bossID ecs.EntityID, progress float64) {
	boss, ok := ecs.GetComponent[*components.BossComponent](cs.entityManager, bossID)
	if !ok {
		return
	}
	if progress > 1 {
		progress = 1
	}
	boss.IntroProgress = progress

	switch boss.Kind {
	case types.ArchetypeColossus:
		boss.Scale = utils.Lerp(ColossusIntroScale, 1, utils.EaseInOutCubic(progress))
	case types.ArchetypeTempest:
		if pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, bossID); ok {
			pos.Y = utils.Lerp(boss.IntroFromY, boss.IntroToY, utils.EaseOutCubic(progress))
		}
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](cs.entityManager, bossID); ok {
		sprite.Scale = boss.Scale
	}
}

// finish 结束过场，Boss 进入空闲状态；转换序列结束后 Boss 进入狂暴节奏
func (cs *CutsceneSystem) finish(comp *components.CutsceneComponent, enrage bool) {
	comp.Active = false
	if boss, ok := ecs.GetComponent[*components.BossComponent](cs.entityManager, comp.Boss); ok {
		boss.Scale = 1
		boss.IntroProgress = 1
		if enrage {
			boss.Enraged = true
		}
		switch boss.Kind {
		case types.ArchetypeColossus:
			boss.SetState(components.ColossusIdle)
		default:
			boss.SetState(components.TempestIdle)
		}
		log.Printf("[CutsceneSystem] Cutscene finished, boss %d → %s (enraged=%v)", comp.Boss, boss.State, boss.Enraged)
	} else {
		log.Printf("[CutsceneSystem] Cutscene finished")
	}
}

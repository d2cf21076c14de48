package components

import (
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// ProjectileComponent 玩家子弹
type ProjectileComponent struct {
	Damage   float64
	Lifetime int // 剩余 tick

	// Pierce 命中后还能继续穿透的敌人数量
	Pierce int
	// HitList 已命中过的敌人，同一子弹对同一敌人最多造成一次伤害
	HitList map[ecs.EntityID]struct{}

	// 手雷：不做逐帧命中检测，飞完 TravelLeft 后在当前位置爆炸
	Grenade     bool
	TravelLeft  float64
	BlastRadius float64
}

// HasHit 检查是否已命中过该敌人
func (p *ProjectileComponent) HasHit(id ecs.EntityID) bool {
	_, ok := p.HitList[id]
	return ok
}

// RecordHit 记录一次命中
// 返回：子弹是否仍然存活（消耗了一点穿透）
func (p *ProjectileComponent) RecordHit(id ecs.EntityID) bool {
	if p.HitList == nil {
		p.HitList = make(map[ecs.EntityID]struct{})
	}
	p.HitList[id] = struct{}{}
	if p.Pierce > 0 {
		p.Pierce--
		return true
	}
	return false
}

// EnemyProjectileComponent 敌方子弹
type EnemyProjectileComponent struct {
	Damage   float64
	Lifetime int

	// 追踪：每 tick 朝玩家加速 HomingAccel，速度不超过 MaxSpeed
	HomingAccel float64
	MaxSpeed    float64

	// 命中附带状态
	Status      types.StatusKind
	StatusTicks int

	// 墙体段：命中后不销毁，以 HitCooldown 控制重复伤害
	Wall           bool
	HitRadius      float64
	HitCooldown    int
	HitCooldownMax int
}

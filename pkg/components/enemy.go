package components

import (
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/types"
)

// TargetKind 仇恨目标的种类
type TargetKind int

const (
	// TargetPlayer 追踪玩家
	TargetPlayer TargetKind = iota
	// TargetDecoy 追踪诱饵
	TargetDecoy
)

// TargetRef 仇恨目标引用
// 只保存种类与实体ID，每个 tick 通过 EntityManager 重新解析，不持有指针
type TargetRef struct {
	Kind TargetKind
	ID   ecs.EntityID
}

// ArchetypeState 普通敌人的原型专属状态（封闭变体）
// 只有本包中的类型实现此接口
type ArchetypeState interface {
	archetypeState()
}

// ChaseState 追击型（basic、tank）不需要额外状态
type ChaseState struct{}

// RangedState 远程射手状态
type RangedState struct {
	FireCooldown int
}

// HealerState 治疗者状态
type HealerState struct {
	HealCooldown int
}

// SummonerState 召唤师状态
type SummonerState struct {
	ShotCooldown   int
	SummonCooldown int
}

func (*ChaseState) archetypeState()    {}
func (*RangedState) archetypeState()   {}
func (*HealerState) archetypeState()   {}
func (*SummonerState) archetypeState() {}

// EnemyComponent 敌人核心数据
// 原型专属字段放在 State 中；Boss 额外拥有 BossComponent，State 为 nil
type EnemyComponent struct {
	Archetype types.Archetype
	Speed     float64 // 移速（像素/tick），已包含关卡与狂暴倍率
	Damage    float64 // 接触伤害
	Facing    float64 // 朝向角（弧度）

	// LastAttackTick 上次接触伤害的 tick，用于接触攻击冷却
	LastAttackTick int64

	// 接触/子弹附带的状态效果
	ContactStatus      types.StatusKind
	ContactStatusTicks int

	Minion bool // 召唤物，击杀不计入关卡配额
	Value  int  // 击杀掉落的货币价值

	Target TargetRef
	State  ArchetypeState
}

package components

// LoadoutSlot 装备栏中的一个技能槽
type LoadoutSlot struct {
	AbilityID   string // 技能ID，如 "heal"
	Cooldown    int    // 剩余冷却 tick
	MaxCooldown int    // 完整冷却 tick
}

// Ready 技能是否可用
func (s *LoadoutSlot) Ready() bool {
	return s.Cooldown <= 0
}

// PlayerComponent 标识玩家实体并存储玩家专属状态
// 位置、速度、生命值、状态效果分别存储在通用组件中
type PlayerComponent struct {
	Speed   float64 // 基础移速（像素/tick）
	FacingX float64 // 朝向单位向量（由速度推导，静止时保持上次朝向）
	FacingY float64

	FireCooldown int // 距离下一次射击的 tick 数

	Shield       int // 护盾剩余 tick，护盾期间免疫伤害与状态
	Invulnerable int // 受伤后的无敌闪烁剩余 tick

	FireRateBoost int // 射速增益剩余 tick
	SpeedBoost    int // 移速增益剩余 tick

	Loadout []LoadoutSlot
}

// IsShielded 护盾是否生效
func (p *PlayerComponent) IsShielded() bool {
	return p.Shield > 0
}

// CanTakeDamage 护盾与无敌闪烁都会阻止伤害
func (p *PlayerComponent) CanTakeDamage() bool {
	return p.Shield <= 0 && p.Invulnerable <= 0
}

package game

import (
	"log"
	"math"
)

// BaseStats 可永久升级的玩家基础属性
type BaseStats struct {
	Damage    float64 `yaml:"damage" json:"damage"`
	MaxHealth float64 `yaml:"maxHealth" json:"maxHealth"`
	Speed     float64 `yaml:"speed" json:"speed"`
	Multishot float64 `yaml:"multishot" json:"multishot"`
	Lifesteal float64 `yaml:"lifesteal" json:"lifesteal"`
	Magnet    float64 `yaml:"magnet" json:"magnet"`
	Piercing  float64 `yaml:"piercing" json:"piercing"`
	FireRate  float64 `yaml:"fireRate" json:"fireRate"`
	Luck      float64 `yaml:"luck" json:"luck"`
}

// DefaultBaseStats 返回新开局的基础属性
func DefaultBaseStats() BaseStats {
	return BaseStats{
		Damage:    10,
		MaxHealth: 100,
		Speed:     3.2,
		Multishot: 1,
		Lifesteal: 0,
		Magnet:    0,
		Piercing:  0,
		FireRate:  1,
		Luck:      0,
	}
}

// 属性下限，升级增量为负时结果被钳制到下限
var statFloors = BaseStats{
	Damage:    1,
	MaxHealth: 1,
	Speed:     0.5,
	Multishot: 1,
	Lifesteal: 0,
	Magnet:    0,
	Piercing:  0,
	FireRate:  0.1,
	Luck:      0,
}

// field 返回属性名对应的字段指针，未知属性返回 nil
func (b *BaseStats) field(name string) *float64 {
	switch name {
	case "damage":
		return &b.Damage
	case "maxHealth":
		return &b.MaxHealth
	case "speed":
		return &b.Speed
	case "multishot":
		return &b.Multishot
	case "lifesteal":
		return &b.Lifesteal
	case "magnet":
		return &b.Magnet
	case "piercing":
		return &b.Piercing
	case "fireRate":
		return &b.FireRate
	case "luck":
		return &b.Luck
	default:
		return nil
	}
}

// Apply 叠加升级增量
// 未知属性被忽略；结果低于下限时钳制到下限
func (b *BaseStats) Apply(delta map[string]float64) {
	for name, d := range delta {
		f := b.field(name)
		if f == nil {
			log.Printf("[BaseStats] Ignoring unknown stat %q", name)
			continue
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		*f += d
	}
	b.clamp()
}

func (b *BaseStats) clamp() {
	for _, name := range []string{"damage", "maxHealth", "speed", "multishot", "lifesteal", "magnet", "piercing", "fireRate", "luck"} {
		f := b.field(name)
		floor := *statFloors.field(name)
		if *f < floor || math.IsNaN(*f) {
			*f = floor
		}
	}
}

// MultishotCount 返回整数的多重射击数量（至少 1）
func (b BaseStats) MultishotCount() int {
	n := int(math.Floor(b.Multishot))
	if n < 1 {
		return 1
	}
	return n
}

// PierceCount 返回整数的穿透次数
func (b BaseStats) PierceCount() int {
	n := int(math.Floor(b.Piercing))
	if n < 0 {
		return 0
	}
	return n
}

// RunSnapshot 可恢复的一局游戏状态
type RunSnapshot struct {
	Health       float64   `yaml:"health" json:"health"`
	MaxHealth    float64   `yaml:"maxHealth" json:"maxHealth"`
	Currency     int       `yaml:"currency" json:"currency"`
	Stage        int       `yaml:"stage" json:"stage"`
	Kills        int       `yaml:"kills" json:"kills"`
	BaseStats    BaseStats `yaml:"baseStats" json:"baseStats"`
	CurrentTheme string    `yaml:"currentTheme" json:"currentTheme"`
}

// NewRunSnapshot 返回新开局的快照
func NewRunSnapshot() RunSnapshot {
	stats := DefaultBaseStats()
	return RunSnapshot{
		Health:    stats.MaxHealth,
		MaxHealth: stats.MaxHealth,
		Stage:     1,
		BaseStats: stats,
	}
}

// Normalize 修正外部传入的快照数值
// 关卡至少为 1，生命值钳制到 (0, MaxHealth]，负数货币与击杀归零
func (s *RunSnapshot) Normalize() {
	if s.Stage < 1 {
		s.Stage = 1
	}
	if s.Currency < 0 {
		s.Currency = 0
	}
	if s.Kills < 0 {
		s.Kills = 0
	}
	s.BaseStats.clamp()
	if s.MaxHealth <= 0 {
		s.MaxHealth = s.BaseStats.MaxHealth
	}
	if s.Health <= 0 || s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

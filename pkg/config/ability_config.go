package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/arena/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultAbilityConfigPath 内置技能定义文件路径
const DefaultAbilityConfigPath = "data/abilities.yaml"

// 技能效果类型
const (
	EffectHeal      = "heal"       // 恢复 Amount 点生命值
	EffectShield    = "shield"     // Duration 内免疫伤害与状态
	EffectRapidFire = "rapid_fire" // Duration 内射击间隔减半
	EffectHaste     = "haste"      // Duration 内移速提升
	EffectGrenade   = "grenade"    // 朝最近的敌人投掷手雷
	EffectDecoy     = "decoy"      // 放置 Amount 生命值的诱饵，持续 Duration
	EffectFrostNova = "frost_nova" // 冻结 Radius 内的敌人 Duration
)

var knownEffects = map[string]bool{
	EffectHeal:      true,
	EffectShield:    true,
	EffectRapidFire: true,
	EffectHaste:     true,
	EffectGrenade:   true,
	EffectDecoy:     true,
	EffectFrostNova: true,
}

// AbilityDef 单个技能的定义
type AbilityDef struct {
	Cooldown int     `yaml:"cooldown"` // 冷却（tick）
	Effect   string  `yaml:"effect"`   // 效果类型
	Amount   float64 `yaml:"amount"`   // 效果数值（治疗量、诱饵生命值）
	Duration int     `yaml:"duration"` // 持续时长（tick）
	Radius   float64 `yaml:"radius"`   // 作用半径
}

// AbilityConfig 技能定义文件结构
type AbilityConfig struct {
	Abilities map[string]AbilityDef `yaml:"abilities"` // 技能ID -> 定义
}

// DefaultAbilities 返回内置技能定义（与 data/abilities.yaml 一致）
func DefaultAbilities() map[string]AbilityDef {
	return map[string]AbilityDef{
		"heal":       {Cooldown: 900, Effect: EffectHeal, Amount: 40},
		"shield":     {Cooldown: 1200, Effect: EffectShield, Duration: 180},
		"rapid_fire": {Cooldown: 1200, Effect: EffectRapidFire, Duration: 300},
		"haste":      {Cooldown: 900, Effect: EffectHaste, Duration: 300},
		"grenade":    {Cooldown: 480, Effect: EffectGrenade, Radius: GrenadeBlastRadius},
		"decoy":      {Cooldown: 1500, Effect: EffectDecoy, Amount: 80, Duration: 600},
		"frost_nova": {Cooldown: 1200, Effect: EffectFrostNova, Duration: 120, Radius: 200},
	}
}

// LoadAbilityConfig 从 YAML 文件加载技能定义
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*AbilityConfig - 解析后的配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadAbilityConfig(filepath string) (*AbilityConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ability file %s: %w", filepath, err)
	}

	var cfg AbilityConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ability YAML from %s: %w", filepath, err)
	}

	if err := validateAbilities(cfg.Abilities); err != nil {
		return nil, fmt.Errorf("invalid abilities in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// validateAbilities 验证技能定义
func validateAbilities(abilities map[string]AbilityDef) error {
	if len(abilities) == 0 {
		return fmt.Errorf("at least one ability is required")
	}

	ids := make([]string, 0, len(abilities))
	for id := range abilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := abilities[id]
		if !knownEffects[def.Effect] {
			return fmt.Errorf("ability %s: unknown effect %q", id, def.Effect)
		}
		if def.Cooldown < 0 {
			return fmt.Errorf("ability %s: cooldown cannot be negative, got %d", id, def.Cooldown)
		}
		if def.Duration < 0 {
			return fmt.Errorf("ability %s: duration cannot be negative, got %d", id, def.Duration)
		}
		if def.Amount < 0 || def.Radius < 0 {
			return fmt.Errorf("ability %s: amount and radius cannot be negative", id)
		}
	}
	return nil
}

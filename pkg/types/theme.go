package types

// Theme 定义关卡的世界主题
// 主题决定障碍物外观、敌人权重表以及敌人附带的状态效果
type Theme int

const (
	// ThemeUnknown 未设置主题（快照中缺省值）
	ThemeUnknown Theme = iota
	ThemeForest
	ThemeCrypt
	ThemeVolcano
	ThemeGlacier
	ThemeSwamp
)

var themeStringMap = map[Theme]string{
	ThemeForest:  "forest",
	ThemeCrypt:   "crypt",
	ThemeVolcano: "volcano",
	ThemeGlacier: "glacier",
	ThemeSwamp:   "swamp",
}

// String 返回主题的配置字符串表示
func (t Theme) String() string {
	if s, ok := themeStringMap[t]; ok {
		return s
	}
	return ""
}

// ThemeFromString 将字符串转换为 Theme，未知字符串返回 ThemeUnknown
func ThemeFromString(s string) Theme {
	for t, name := range themeStringMap {
		if name == s {
			return t
		}
	}
	return ThemeUnknown
}

// RandomThemes 返回普通关卡可随机选择的主题（顺序固定，保证随机抽样可重放）
func RandomThemes() []Theme {
	return []Theme{ThemeForest, ThemeCrypt, ThemeVolcano, ThemeGlacier, ThemeSwamp}
}

// ContactStatus 返回该主题下敌人接触/子弹附带的状态效果
func (t Theme) ContactStatus() StatusKind {
	switch t {
	case ThemeSwamp:
		return StatusPoison
	case ThemeVolcano:
		return StatusBurn
	case ThemeGlacier:
		return StatusFreeze
	case ThemeCrypt:
		return StatusWeb
	default:
		return StatusNone
	}
}

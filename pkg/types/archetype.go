// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Archetype 定义敌人的原型（行为与属性模板）
type Archetype int

const (
	// ArchetypeUnknown 未知原型
	ArchetypeUnknown Archetype = iota

	// 普通敌人（按关卡解锁）
	ArchetypeBasic    // 追击者，第1关起
	ArchetypeRanged   // 远程射手，第2关起
	ArchetypeTank     // 重装兵，第3关起
	ArchetypeHealer   // 治疗者，第5关起
	ArchetypeSummoner // 召唤师，第7关起

	// Boss
	ArchetypeColossus // 巨像（奇数十关）
	ArchetypeTempest  // 风暴（偶数十关）
)

// archetypeStringMap 原型到配置字符串的映射
var archetypeStringMap = map[Archetype]string{
	ArchetypeBasic:    "basic",
	ArchetypeRanged:   "ranged",
	ArchetypeTank:     "tank",
	ArchetypeHealer:   "healer",
	ArchetypeSummoner: "summoner",
	ArchetypeColossus: "colossus",
	ArchetypeTempest:  "tempest",
}

// stringToArchetypeMap 配置字符串到原型的反向映射
var stringToArchetypeMap map[string]Archetype

func init() {
	stringToArchetypeMap = make(map[string]Archetype)
	for a, s := range archetypeStringMap {
		stringToArchetypeMap[s] = a
	}
}

// String 返回原型的配置字符串表示（用于配置文件匹配）
func (a Archetype) String() string {
	if s, ok := archetypeStringMap[a]; ok {
		return s
	}
	return "unknown"
}

// ArchetypeFromString 将配置字符串转换为 Archetype
func ArchetypeFromString(s string) Archetype {
	if a, ok := stringToArchetypeMap[s]; ok {
		return a
	}
	return ArchetypeUnknown
}

// IsBoss 判断是否为 Boss 原型
func (a Archetype) IsBoss() bool {
	return a == ArchetypeColossus || a == ArchetypeTempest
}

// UnlockStage 返回原型最早出现的关卡编号
// Boss 与未知原型不参与随机生成，返回 0
func (a Archetype) UnlockStage() int {
	switch a {
	case ArchetypeBasic:
		return 1
	case ArchetypeRanged:
		return 2
	case ArchetypeTank:
		return 3
	case ArchetypeHealer:
		return 5
	case ArchetypeSummoner:
		return 7
	default:
		return 0
	}
}

// SpawnableArchetypes 返回可随机生成的普通原型（按解锁顺序）
func SpawnableArchetypes() []Archetype {
	return []Archetype{ArchetypeBasic, ArchetypeRanged, ArchetypeTank, ArchetypeHealer, ArchetypeSummoner}
}

// BossTheme 返回 Boss 关的固定主题：巨像为火山，风暴为冰川
func (a Archetype) BossTheme() Theme {
	switch a {
	case ArchetypeColossus:
		return ThemeVolcano
	case ArchetypeTempest:
		return ThemeGlacier
	default:
		return ThemeUnknown
	}
}

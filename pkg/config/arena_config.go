package config

import (
	"fmt"
	"math"

	"github.com/gonewx/arena/pkg/embedded"
	"github.com/gonewx/arena/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultArenaConfigPath 内置调参文件路径
const DefaultArenaConfigPath = "data/arena.yaml"

// ArchetypeStats 单个敌人原型的第 1 关基础属性
type ArchetypeStats struct {
	Health float64 `yaml:"health"` // 生命值
	Speed  float64 `yaml:"speed"`  // 移速（像素/tick）
	Damage float64 `yaml:"damage"` // 接触伤害
	Radius float64 `yaml:"radius"` // 碰撞半径
	Value  int     `yaml:"value"`  // 击杀掉落货币
}

// SpawnTuning 刷怪节奏与属性缩放
type SpawnTuning struct {
	BaseInterval     int `yaml:"baseInterval"`     // 第 0 关的刷怪间隔
	IntervalPerStage int `yaml:"intervalPerStage"` // 每关缩短的间隔
	MinInterval      int `yaml:"minInterval"`      // 间隔下限

	BaseCap     int `yaml:"baseCap"`     // 第 0 关的数量上限
	CapPerStage int `yaml:"capPerStage"` // 每关增加的上限
	MaxCap      int `yaml:"maxCap"`      // 上限的上限

	RingMin      float64 `yaml:"ringMin"`      // 刷怪环内径
	RingMax      float64 `yaml:"ringMax"`      // 刷怪环外径
	SafeDistance float64 `yaml:"safeDistance"` // 与玩家的最小距离
	Attempts     int     `yaml:"attempts"`     // 位置采样次数

	HealthPerStage float64 `yaml:"healthPerStage"`
	DamagePerStage float64 `yaml:"damagePerStage"`
	SpeedPerStage  float64 `yaml:"speedPerStage"`
	SpeedCap       float64 `yaml:"speedCap"`

	RageHealth float64 `yaml:"rageHealth"`
	RageDamage float64 `yaml:"rageDamage"`
	RageSpeed  float64 `yaml:"rageSpeed"`

	MinionHealth float64 `yaml:"minionHealth"`
	MinionDamage float64 `yaml:"minionDamage"`

	TankSpeed  float64 `yaml:"tankSpeed"`
	TankHealth float64 `yaml:"tankHealth"`
	TankDamage float64 `yaml:"tankDamage"`
	TankSize   float64 `yaml:"tankSize"`
}

// StageTuning 关卡生成参数
type StageTuning struct {
	BaseQuota     int `yaml:"baseQuota"`
	QuotaPerStage int `yaml:"quotaPerStage"`

	BaseWidth      float64 `yaml:"baseWidth"`
	WidthPerStage  float64 `yaml:"widthPerStage"`
	MaxWidth       float64 `yaml:"maxWidth"`
	BaseHeight     float64 `yaml:"baseHeight"`
	HeightPerStage float64 `yaml:"heightPerStage"`
	MaxHeight      float64 `yaml:"maxHeight"`

	BossEvery  int     `yaml:"bossEvery"`
	BossWidth  float64 `yaml:"bossWidth"`
	BossHeight float64 `yaml:"bossHeight"`

	BaseObstacles     int     `yaml:"baseObstacles"`
	ObstaclesPerStage int     `yaml:"obstaclesPerStage"`
	MaxObstacles      int     `yaml:"maxObstacles"`
	ObstacleClearance float64 `yaml:"obstacleClearance"` // 与出生点的最小距离
	ObstacleSpacing   float64 `yaml:"obstacleSpacing"`   // 障碍物之间的额外间距
	ObstacleAttempts  int     `yaml:"obstacleAttempts"`
	ObstacleMinRadius float64 `yaml:"obstacleMinRadius"`
	ObstacleMaxRadius float64 `yaml:"obstacleMaxRadius"`

	ExitMinDistance  float64 `yaml:"exitMinDistance"`
	ChestMinDistance float64 `yaml:"chestMinDistance"`
	ChestSpacing     float64 `yaml:"chestSpacing"`
	MaxChests        int     `yaml:"maxChests"`
	PlacementTries   int     `yaml:"placementTries"`
}

// AITuning 普通敌人的行为参数
type AITuning struct {
	RangedMin      float64 `yaml:"rangedMin"`
	RangedMax      float64 `yaml:"rangedMax"`
	RangedRange    float64 `yaml:"rangedRange"`
	RangedCooldown int     `yaml:"rangedCooldown"`

	HealerMin      float64 `yaml:"healerMin"`
	HealerMax      float64 `yaml:"healerMax"`
	HealRadius     float64 `yaml:"healRadius"`
	HealAmount     float64 `yaml:"healAmount"`
	HealerCooldown int     `yaml:"healerCooldown"`

	SummonerMin          float64 `yaml:"summonerMin"`
	SummonerMax          float64 `yaml:"summonerMax"`
	SummonerShotCooldown int     `yaml:"summonerShotCooldown"`
	SummonCooldown       int     `yaml:"summonCooldown"`
	SummonCount          int     `yaml:"summonCount"`
	SummonRing           float64 `yaml:"summonRing"`
}

// ArenaConfig 竞技场调参配置
type ArenaConfig struct {
	Archetypes   map[string]ArchetypeStats  `yaml:"archetypes"`   // 普通原型属性（tank 由 basic 派生）
	Bosses       map[string]ArchetypeStats  `yaml:"bosses"`       // Boss 属性
	ThemeWeights map[string]map[string]int `yaml:"themeWeights"` // 主题 -> 原型 -> 权重
	Spawn        SpawnTuning                `yaml:"spawn"`
	Stage        StageTuning                `yaml:"stage"`
	AI           AITuning                   `yaml:"ai"`
}

// DefaultArenaConfig 返回内置默认配置（与 data/arena.yaml 一致）
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Archetypes: map[string]ArchetypeStats{
			"basic":    {Health: 30, Speed: 1.6, Damage: 8, Radius: 14, Value: 2},
			"ranged":   {Health: 22, Speed: 1.4, Damage: 7, Radius: 13, Value: 3},
			"healer":   {Health: 28, Speed: 1.3, Damage: 5, Radius: 14, Value: 4},
			"summoner": {Health: 35, Speed: 1.1, Damage: 6, Radius: 16, Value: 5},
		},
		Bosses: map[string]ArchetypeStats{
			"colossus": {Health: 1800, Speed: 1.2, Damage: 20, Radius: 48, Value: 60},
			"tempest":  {Health: 1500, Speed: 1.8, Damage: 16, Radius: 40, Value: 60},
		},
		ThemeWeights: map[string]map[string]int{
			"forest":  {"basic": 6, "ranged": 3, "tank": 2, "healer": 1, "summoner": 1},
			"crypt":   {"basic": 4, "ranged": 2, "tank": 2, "healer": 2, "summoner": 3},
			"volcano": {"basic": 4, "ranged": 4, "tank": 3, "healer": 1, "summoner": 1},
			"glacier": {"basic": 5, "ranged": 3, "tank": 2, "healer": 2, "summoner": 1},
			"swamp":   {"basic": 5, "ranged": 2, "tank": 1, "healer": 2, "summoner": 2},
		},
		Spawn: SpawnTuning{
			BaseInterval: 90, IntervalPerStage: 3, MinInterval: 24,
			BaseCap: 12, CapPerStage: 2, MaxCap: 60,
			RingMin: 450, RingMax: 700, SafeDistance: 400, Attempts: 20,
			HealthPerStage: 0.15, DamagePerStage: 0.10, SpeedPerStage: 0.02, SpeedCap: 1.5,
			RageHealth: 1.3, RageDamage: 1.2, RageSpeed: 1.15,
			MinionHealth: 0.5, MinionDamage: 0.7,
			TankSpeed: 0.6, TankHealth: 3, TankDamage: 1.8, TankSize: 1.6,
		},
		Stage: StageTuning{
			BaseQuota: 12, QuotaPerStage: 3,
			BaseWidth: 1200, WidthPerStage: 80, MaxWidth: 3200,
			BaseHeight: 900, HeightPerStage: 60, MaxHeight: 2400,
			BossEvery: 10, BossWidth: 1400, BossHeight: 1100,
			BaseObstacles: 10, ObstaclesPerStage: 2, MaxObstacles: 40,
			ObstacleClearance: 160, ObstacleSpacing: 60, ObstacleAttempts: 30,
			ObstacleMinRadius: 18, ObstacleMaxRadius: 42,
			ExitMinDistance: 600, ChestMinDistance: 300, ChestSpacing: 200,
			MaxChests: 2, PlacementTries: 40,
		},
		AI: AITuning{
			RangedMin: 200, RangedMax: 300, RangedRange: 380, RangedCooldown: 90,
			HealerMin: 180, HealerMax: 280, HealRadius: 220, HealAmount: 15, HealerCooldown: 150,
			SummonerMin: 260, SummonerMax: 360, SummonerShotCooldown: 120,
			SummonCooldown: 360, SummonCount: 3, SummonRing: 40,
		},
	}
}

// LoadArenaConfig 从 YAML 文件加载竞技场配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 开头读取嵌入数据，否则读取磁盘）
//
// 返回：
//
//	*ArenaConfig - 解析后的配置对象（文件中未出现的分组与条目保留默认值）
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadArenaConfig(filepath string) (*ArenaConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config file %s: %w", filepath, err)
	}

	cfg, err := ParseArenaConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid arena config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseArenaConfig 解析 YAML 内容，叠加在默认配置之上并验证
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena YAML: %w", err)
	}
	if err := validateArenaConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置（用于代码中构造或修改过的配置）
func (c *ArenaConfig) Validate() error {
	return validateArenaConfig(c)
}

// validateArenaConfig 验证配置的完整性和合法性
func validateArenaConfig(cfg *ArenaConfig) error {
	for _, a := range types.SpawnableArchetypes() {
		if a == types.ArchetypeTank {
			continue
		}
		stats, ok := cfg.Archetypes[a.String()]
		if !ok {
			return fmt.Errorf("archetypes.%s: missing", a)
		}
		if err := validateStats("archetypes."+a.String(), stats); err != nil {
			return err
		}
	}
	for _, a := range []types.Archetype{types.ArchetypeColossus, types.ArchetypeTempest} {
		stats, ok := cfg.Bosses[a.String()]
		if !ok {
			return fmt.Errorf("bosses.%s: missing", a)
		}
		if err := validateStats("bosses."+a.String(), stats); err != nil {
			return err
		}
	}

	for _, theme := range types.RandomThemes() {
		weights, ok := cfg.ThemeWeights[theme.String()]
		if !ok {
			return fmt.Errorf("themeWeights.%s: missing", theme)
		}
		total := 0
		for name, w := range weights {
			if types.ArchetypeFromString(name) == types.ArchetypeUnknown || types.ArchetypeFromString(name).IsBoss() {
				return fmt.Errorf("themeWeights.%s: unknown archetype %q", theme, name)
			}
			if w < 0 {
				return fmt.Errorf("themeWeights.%s.%s: weight cannot be negative, got %d", theme, name, w)
			}
			total += w
		}
		if weights["basic"] <= 0 {
			return fmt.Errorf("themeWeights.%s.basic: must be positive, got %d", theme, weights["basic"])
		}
		if total <= 0 {
			return fmt.Errorf("themeWeights.%s: total weight must be positive", theme)
		}
	}

	s := cfg.Spawn
	if s.MinInterval < 1 {
		return fmt.Errorf("spawn.minInterval: must be at least 1, got %d", s.MinInterval)
	}
	if s.BaseCap < 1 || s.MaxCap < s.BaseCap {
		return fmt.Errorf("spawn.maxCap: must be at least baseCap (%d), got %d", s.BaseCap, s.MaxCap)
	}
	if s.RingMin <= 0 || s.RingMax < s.RingMin {
		return fmt.Errorf("spawn.ringMax: must be at least ringMin (%v), got %v", s.RingMin, s.RingMax)
	}
	if s.Attempts < 1 {
		return fmt.Errorf("spawn.attempts: must be at least 1, got %d", s.Attempts)
	}
	if s.SpeedCap < 1 {
		return fmt.Errorf("spawn.speedCap: must be at least 1, got %v", s.SpeedCap)
	}

	st := cfg.Stage
	if st.BossEvery < 1 {
		return fmt.Errorf("stage.bossEvery: must be at least 1, got %d", st.BossEvery)
	}
	if st.BaseWidth <= 0 || st.BaseHeight <= 0 || st.MaxWidth < st.BaseWidth || st.MaxHeight < st.BaseHeight {
		return fmt.Errorf("stage: invalid world size (base %vx%v, max %vx%v)", st.BaseWidth, st.BaseHeight, st.MaxWidth, st.MaxHeight)
	}
	if st.BossWidth <= 0 || st.BossHeight <= 0 {
		return fmt.Errorf("stage: invalid boss world size %vx%v", st.BossWidth, st.BossHeight)
	}
	if st.ObstacleAttempts < 1 || st.PlacementTries < 1 {
		return fmt.Errorf("stage: obstacleAttempts and placementTries must be at least 1")
	}
	if st.ObstacleMinRadius <= 0 || st.ObstacleMaxRadius < st.ObstacleMinRadius {
		return fmt.Errorf("stage.obstacleMaxRadius: must be at least obstacleMinRadius (%v), got %v", st.ObstacleMinRadius, st.ObstacleMaxRadius)
	}
	if st.MaxChests < 0 {
		return fmt.Errorf("stage.maxChests: cannot be negative, got %d", st.MaxChests)
	}

	ai := cfg.AI
	if ai.RangedMax < ai.RangedMin || ai.HealerMax < ai.HealerMin || ai.SummonerMax < ai.SummonerMin {
		return fmt.Errorf("ai: distance band max must not be below min")
	}
	if ai.RangedCooldown < 1 || ai.HealerCooldown < 1 || ai.SummonerShotCooldown < 1 || ai.SummonCooldown < 1 {
		return fmt.Errorf("ai: cooldowns must be at least 1")
	}
	if ai.SummonCount < 0 {
		return fmt.Errorf("ai.summonCount: cannot be negative, got %d", ai.SummonCount)
	}

	return nil
}

func validateStats(field string, stats ArchetypeStats) error {
	if stats.Health <= 0 {
		return fmt.Errorf("%s.health: must be positive, got %v", field, stats.Health)
	}
	if stats.Speed < 0 {
		return fmt.Errorf("%s.speed: cannot be negative, got %v", field, stats.Speed)
	}
	if stats.Damage < 0 {
		return fmt.Errorf("%s.damage: cannot be negative, got %v", field, stats.Damage)
	}
	if stats.Radius <= 0 {
		return fmt.Errorf("%s.radius: must be positive, got %v", field, stats.Radius)
	}
	if stats.Value < 0 {
		return fmt.Errorf("%s.value: cannot be negative, got %d", field, stats.Value)
	}
	return nil
}

// BaseStats 返回原型的基础属性
// tank 由 basic 按坦克倍率派生
func (c *ArenaConfig) BaseStats(a types.Archetype) ArchetypeStats {
	if a.IsBoss() {
		return c.Bosses[a.String()]
	}
	if a == types.ArchetypeTank {
		basic := c.Archetypes[types.ArchetypeBasic.String()]
		return ArchetypeStats{
			Health: basic.Health * c.Spawn.TankHealth,
			Speed:  basic.Speed * c.Spawn.TankSpeed,
			Damage: basic.Damage * c.Spawn.TankDamage,
			Radius: basic.Radius * c.Spawn.TankSize,
			Value:  basic.Value * 2,
		}
	}
	if stats, ok := c.Archetypes[a.String()]; ok {
		return stats
	}
	return c.Archetypes[types.ArchetypeBasic.String()]
}

// Weights 返回主题在指定关卡可用的原型权重表（按解锁顺序，权重为 0 的原型被跳过）
func (c *ArenaConfig) Weights(theme types.Theme, stage int) ([]types.Archetype, []int) {
	table, ok := c.ThemeWeights[theme.String()]
	if !ok {
		table = c.ThemeWeights[types.ThemeForest.String()]
	}
	archetypes := make([]types.Archetype, 0, 5)
	weights := make([]int, 0, 5)
	for _, a := range types.SpawnableArchetypes() {
		if stage < a.UnlockStage() {
			continue
		}
		if w := table[a.String()]; w > 0 {
			archetypes = append(archetypes, a)
			weights = append(weights, w)
		}
	}
	return archetypes, weights
}

// Interval 返回关卡的刷怪间隔（tick）
func (s SpawnTuning) Interval(stage int) int {
	v := s.BaseInterval - s.IntervalPerStage*stage
	if v < s.MinInterval {
		return s.MinInterval
	}
	return v
}

// Cap 返回关卡的敌人数量上限
func (s SpawnTuning) Cap(stage int) int {
	v := s.BaseCap + s.CapPerStage*stage
	if v > s.MaxCap {
		return s.MaxCap
	}
	return v
}

// HealthScale 返回关卡的生命值倍率
func (s SpawnTuning) HealthScale(stage int) float64 {
	return 1 + s.HealthPerStage*float64(stage-1)
}

// DamageScale 返回关卡的伤害倍率
func (s SpawnTuning) DamageScale(stage int) float64 {
	return 1 + s.DamagePerStage*float64(stage-1)
}

// SpeedScale 返回关卡的移速倍率（有上限）
func (s SpawnTuning) SpeedScale(stage int) float64 {
	return math.Min(1+s.SpeedPerStage*float64(stage-1), s.SpeedCap)
}

// KillQuota 返回普通关卡的击杀配额
func (s StageTuning) KillQuota(stage int) int {
	return s.BaseQuota + s.QuotaPerStage*stage
}

// IsBossStage 判断是否为 Boss 关
func (s StageTuning) IsBossStage(stage int) bool {
	return stage > 0 && stage%s.BossEvery == 0
}

// BossFor 返回 Boss 关的 Boss 原型：奇数个十关为巨像，偶数个为风暴
func (s StageTuning) BossFor(stage int) types.Archetype {
	if (stage/s.BossEvery)%2 == 1 {
		return types.ArchetypeColossus
	}
	return types.ArchetypeTempest
}

// WorldSize 返回关卡的世界尺寸
func (s StageTuning) WorldSize(stage int) (float64, float64) {
	if s.IsBossStage(stage) {
		return s.BossWidth, s.BossHeight
	}
	w := math.Min(s.BaseWidth+s.WidthPerStage*float64(stage), s.MaxWidth)
	h := math.Min(s.BaseHeight+s.HeightPerStage*float64(stage), s.MaxHeight)
	return w, h
}

// ObstacleCount 返回关卡的障碍物数量
func (s StageTuning) ObstacleCount(stage int) int {
	n := s.BaseObstacles + s.ObstaclesPerStage*stage
	if n > s.MaxObstacles {
		return s.MaxObstacles
	}
	return n
}

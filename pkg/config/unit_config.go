package config

// 单位配置常量
// 本文件定义了模拟中使用的固定参数（时间、半径、速度、冷却）
// 时间单位统一为 tick（1 tick = 1/60 秒），速度单位为 像素/tick

// Simulation Configuration (模拟配置)
const (
	// TicksPerSecond 固定步长频率
	TicksPerSecond = 60

	// MaxStepsPerFrame 单次渲染回调最多执行的模拟步数
	// 超出部分留在累加器中，下一帧继续执行
	MaxStepsPerFrame = 8
)

// Player Configuration (玩家配置)
const (
	// PlayerRadius 玩家碰撞半径（像素）
	PlayerRadius = 16.0

	// PlayerInvulnerableTicks 玩家受伤后的无敌闪烁时长
	PlayerInvulnerableTicks = 30

	// PlayerBaseFireCooldown 射速属性为 1 时的射击间隔
	PlayerBaseFireCooldown = 24

	// PlayerMinFireCooldown 射击间隔下限
	PlayerMinFireCooldown = 4

	// FireRateBoostFactor 射速增益期间射击间隔的倍率
	FireRateBoostFactor = 0.5

	// SpeedBoostFactor 移速增益期间的移速倍率
	SpeedBoostFactor = 1.5

	// MaxLoadoutSlots 装备栏最多技能数
	MaxLoadoutSlots = 4
)

// Projectile Configuration (子弹配置)
const (
	// PlayerProjectileSpeed 玩家子弹速度
	PlayerProjectileSpeed = 9.0

	// PlayerProjectileRadius 玩家子弹碰撞半径
	PlayerProjectileRadius = 5.0

	// PlayerProjectileLifetime 玩家子弹存活时长
	PlayerProjectileLifetime = 80

	// MultishotSpread 多重射击相邻子弹的角度间隔（弧度）
	MultishotSpread = 0.15

	// PlayerFireRange 自动瞄准的最大距离
	PlayerFireRange = 520.0

	// GrenadeSpeed 手雷飞行速度
	GrenadeSpeed = 7.0

	// GrenadeMaxDistance 手雷最大投掷距离
	GrenadeMaxDistance = 320.0

	// GrenadeBlastRadius 手雷爆炸半径
	GrenadeBlastRadius = 96.0

	// GrenadeDamageMultiplier 手雷伤害相对基础伤害的倍率
	GrenadeDamageMultiplier = 4.0

	// BlastDisplayTicks 爆炸特效的显示时长
	BlastDisplayTicks = 20

	// EnemyProjectileSpeed 敌方子弹基础速度
	EnemyProjectileSpeed = 4.0

	// EnemyProjectileRadius 敌方子弹碰撞半径
	EnemyProjectileRadius = 6.0

	// EnemyProjectileLifetime 敌方子弹存活时长
	EnemyProjectileLifetime = 180

	// SummonerShotDamageFactor 召唤师弱化子弹的伤害倍率
	SummonerShotDamageFactor = 0.5

	// WallSegmentRadius 墙体段的扩展命中半径
	WallSegmentRadius = 22.0

	// WallHitCooldown 墙体段重复伤害的冷却
	WallHitCooldown = 30
)

// Combat Configuration (战斗配置)
const (
	// ContactAttackCooldown 敌人接触伤害冷却
	ContactAttackCooldown = 45

	// ContactStatusTicks 接触附带状态的持续时长
	ContactStatusTicks = 120

	// SlideFactor 敌人被障碍物推出时朝玩家方向的切向滑动系数
	SlideFactor = 0.35

	// PoisonInterval 中毒伤害间隔
	PoisonInterval = 30
	// PoisonDamage 中毒每次伤害
	PoisonDamage = 3.0

	// BurnInterval 燃烧伤害间隔
	BurnInterval = 20
	// BurnDamage 燃烧每次伤害
	BurnDamage = 4.0

	// WebSpeedFactor 蛛网减速倍率
	WebSpeedFactor = 0.5
)

// Pickup Configuration (拾取配置)
const (
	// DropBaseMagnetRadius 掉落物基础吸附半径
	DropBaseMagnetRadius = 70.0

	// MagnetRadiusPerPoint 每点 magnet 属性增加的吸附半径
	MagnetRadiusPerPoint = 25.0

	// DropPullSpeed 掉落物被吸附时的移动速度
	DropPullSpeed = 6.0

	// DropPickupRadius 掉落物拾取半径
	DropPickupRadius = 20.0

	// DropLifetime 掉落物存在时长
	DropLifetime = 1800

	// ChestRadius 宝箱半径
	ChestRadius = 18.0

	// ChestBaseDrops 宝箱基础掉落数
	ChestBaseDrops = 3

	// DoorRadius 出口半径
	DoorRadius = 28.0
)

// Ability Configuration (技能配置)
const (
	// DecoyRadius 诱饵碰撞半径
	DecoyRadius = 14.0

	// BeamDisplayTicks 治疗光束显示时长
	BeamDisplayTicks = 15

	// BannerTicks 关卡横幅显示时长
	BannerTicks = 120
)

// Camera Configuration (镜头配置)
const (
	// CameraPanSpeed 过场镜头平移速度
	CameraPanSpeed = 14.0

	// DefaultViewWidth 默认视口宽度（窗口模式下的逻辑屏幕尺寸）
	DefaultViewWidth = 960

	// DefaultViewHeight 默认视口高度
	DefaultViewHeight = 640
)

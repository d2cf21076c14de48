package components

// DropComponent 货币掉落物
type DropComponent struct {
	Value        int
	MagnetRadius float64 // 基础吸附半径，实际半径还要加上玩家的 magnet 属性
}

// LootChestComponent 宝箱，玩家接触时打开并散落掉落物
type LootChestComponent struct {
	Opened bool
}

// ExitDoorComponent 关卡出口
// 满足击杀配额（或 Boss 死亡）后打开，玩家进入即完成关卡
type ExitDoorComponent struct {
	Open bool
}

package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人、Boss 和诱饵
//
// 不变量：Current 永远不小于 0；Dead 一旦置位不再清除，
// 保证死亡处理只执行一次。
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
	Dead    bool    // 死亡处理是否已完成
}

// Damage 扣除生命值并钳制到 0
// 返回：实际扣除的生命值
func (h *HealthComponent) Damage(amount float64) float64 {
	if amount <= 0 || h.Current <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal 恢复生命值，不超过最大值
// 生命值已耗尽的实体不能被治疗（等待死亡处理）
// 返回：实际恢复的生命值
func (h *HealthComponent) Heal(amount float64) float64 {
	if amount <= 0 || h.Dead || h.Current <= 0 {
		return 0
	}
	if h.Current+amount > h.Max {
		amount = h.Max - h.Current
	}
	if amount < 0 {
		return 0
	}
	h.Current += amount
	return amount
}

// Ratio 返回当前生命值占最大值的比例（0~1）
func (h *HealthComponent) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// IsDepleted 生命值是否已耗尽（等待死亡处理）
func (h *HealthComponent) IsDepleted() bool {
	return h.Current <= 0
}

package engine

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// UIState 界面需要的完整状态
type UIState struct {
	Health    float64
	MaxHealth float64

	Currency   int
	Stage      int
	Kills      int
	StageKills int
	KillQuota  int

	ExitOpen      bool
	BossStage     bool
	GameOver      bool
	StageComplete bool
	Paused        bool

	Theme  string
	Banner string

	// Cooldowns 各技能槽剩余冷却 tick（空槽为 0）
	Cooldowns [config.MaxLoadoutSlots]int
}

// UIPatch 界面状态的增量，nil 字段表示没有变化
type UIPatch struct {
	Health    *float64
	MaxHealth *float64

	Currency   *int
	Stage      *int
	Kills      *int
	StageKills *int
	KillQuota  *int

	ExitOpen      *bool
	BossStage     *bool
	GameOver      *bool
	StageComplete *bool
	Paused        *bool

	Theme  *string
	Banner *string

	Cooldowns *[config.MaxLoadoutSlots]int
}

// IsEmpty 增量是否不含任何字段
func (p UIPatch) IsEmpty() bool {
	return p == UIPatch{}
}

// DiffUI 计算 prev 到 cur 的增量，full 为 true 时包含所有字段
func DiffUI(prev, cur UIState, full bool) UIPatch {
	return UIPatch{
		Health:        pick(prev.Health, cur.Health, full),
		MaxHealth:     pick(prev.MaxHealth, cur.MaxHealth, full),
		Currency:      pick(prev.Currency, cur.Currency, full),
		Stage:         pick(prev.Stage, cur.Stage, full),
		Kills:         pick(prev.Kills, cur.Kills, full),
		StageKills:    pick(prev.StageKills, cur.StageKills, full),
		KillQuota:     pick(prev.KillQuota, cur.KillQuota, full),
		ExitOpen:      pick(prev.ExitOpen, cur.ExitOpen, full),
		BossStage:     pick(prev.BossStage, cur.BossStage, full),
		GameOver:      pick(prev.GameOver, cur.GameOver, full),
		StageComplete: pick(prev.StageComplete, cur.StageComplete, full),
		Paused:        pick(prev.Paused, cur.Paused, full),
		Theme:         pick(prev.Theme, cur.Theme, full),
		Banner:        pick(prev.Banner, cur.Banner, full),
		Cooldowns:     pick(prev.Cooldowns, cur.Cooldowns, full),
	}
}

func pick[T comparable](prev, cur T, full bool) *T {
	if !full && prev == cur {
		return nil
	}
	v := cur
	return &v
}

func (e *Engine) uiState() UIState {
	gs := e.gameState
	st := UIState{
		MaxHealth:     gs.Stats.MaxHealth,
		Currency:      gs.Currency,
		Stage:         gs.Stage,
		Kills:         gs.Kills,
		StageKills:    gs.StageKills,
		KillQuota:     gs.KillQuota,
		ExitOpen:      gs.ExitOpen,
		BossStage:     gs.IsBossStage,
		GameOver:      gs.GameOver,
		StageComplete: gs.StageComplete,
		Paused:        e.paused,
		Theme:         gs.Theme.String(),
		Banner:        gs.Banner,
	}

	em := e.entityManager
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, e.playerID); ok && !gs.GameOver {
		st.Health, st.MaxHealth = h.Current, h.Max
	}
	if p, ok := ecs.GetComponent[*components.PlayerComponent](em, e.playerID); ok {
		for i := range p.Loadout {
			if i >= len(st.Cooldowns) {
				break
			}
			st.Cooldowns[i] = max(p.Loadout[i].Cooldown, 0)
		}
	}
	return st
}

// publishUI 把变化的界面状态发送给宿主（Start 之前不发送）
func (e *Engine) publishUI(full bool) {
	if !e.running {
		return
	}
	cur := e.uiState()
	patch := DiffUI(e.lastUI, cur, full || !e.published)
	e.lastUI = cur
	e.published = true
	if patch.IsEmpty() || e.callbacks.OnUpdateUI == nil {
		return
	}
	e.callbacks.OnUpdateUI(patch)
}

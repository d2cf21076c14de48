package components

import (
	"testing"

	"github.com/gonewx/arena/pkg/types"
)

// TestStatusComponent_ApplyRefreshes 测试重复施加状态会覆盖而不是叠加
func TestStatusComponent_ApplyRefreshes(t *testing.T) {
	s := &StatusComponent{}
	s.Apply(types.StatusFreeze, 60)

	// 模拟经过 10 个 tick
	for i := 0; i < 10; i++ {
		s.Freeze--
	}
	if s.Freeze != 50 {
		t.Fatalf("Expected freeze 50 after 10 ticks, got %d", s.Freeze)
	}

	s.Apply(types.StatusFreeze, 60)
	if s.Freeze != 60 {
		t.Errorf("Expected freeze to refresh to 60, got %d", s.Freeze)
	}
}

// TestStatusComponent_Gating 测试状态对移动与动作的限制
func TestStatusComponent_Gating(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.StatusKind
		canMove  bool
		canAct   bool
		speedMul float64
	}{
		{"none", types.StatusNone, true, true, 1},
		{"freeze", types.StatusFreeze, false, true, 0},
		{"stun", types.StatusStun, false, false, 0},
		{"web", types.StatusWeb, true, true, 0.5},
		{"poison", types.StatusPoison, true, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StatusComponent{}
			s.Apply(tt.kind, 30)
			if s.CanMove() != tt.canMove {
				t.Errorf("CanMove = %v, want %v", s.CanMove(), tt.canMove)
			}
			if s.CanAct() != tt.canAct {
				t.Errorf("CanAct = %v, want %v", s.CanAct(), tt.canAct)
			}
			if got := s.SpeedFactor(0.5); got != tt.speedMul {
				t.Errorf("SpeedFactor = %v, want %v", got, tt.speedMul)
			}
		})
	}
}

// TestHealthComponent_DamageClamp 测试生命值不会低于 0
func TestHealthComponent_DamageClamp(t *testing.T) {
	h := &HealthComponent{Current: 10, Max: 100}

	if dealt := h.Damage(25); dealt != 10 {
		t.Errorf("Expected 10 damage dealt, got %v", dealt)
	}
	if h.Current != 0 {
		t.Errorf("Expected health 0, got %v", h.Current)
	}
	if dealt := h.Damage(5); dealt != 0 {
		t.Errorf("Expected no damage on depleted health, got %v", dealt)
	}
	if !h.IsDepleted() {
		t.Error("Expected health to be depleted")
	}
}

// TestHealthComponent_HealCap 测试治疗不超过最大生命值
func TestHealthComponent_HealCap(t *testing.T) {
	h := &HealthComponent{Current: 90, Max: 100}
	if healed := h.Heal(50); healed != 10 {
		t.Errorf("Expected 10 healed, got %v", healed)
	}
	if h.Current != 100 {
		t.Errorf("Expected health 100, got %v", h.Current)
	}

	h.Dead = true
	h.Current = 0
	if healed := h.Heal(50); healed != 0 {
		t.Errorf("Expected dead entity not to heal, got %v", healed)
	}
}

// TestHealthComponent_HealDepleted 测试生命值耗尽但尚未死亡处理时不能治疗
func TestHealthComponent_HealDepleted(t *testing.T) {
	h := &HealthComponent{Current: 0, Max: 100}
	if healed := h.Heal(20); healed != 0 {
		t.Errorf("Expected depleted entity not to heal, got %v", healed)
	}
	if !h.IsDepleted() {
		t.Error("Expected health to stay depleted")
	}
}

// TestProjectileComponent_RecordHit 测试穿透预算的消耗
func TestProjectileComponent_RecordHit(t *testing.T) {
	p := &ProjectileComponent{Pierce: 1}

	if !p.RecordHit(5) {
		t.Error("Expected projectile to survive first hit with pierce 1")
	}
	if !p.HasHit(5) {
		t.Error("Expected enemy 5 in hit list")
	}
	if p.RecordHit(6) {
		t.Error("Expected projectile to be consumed on second hit")
	}
}

// TestBossComponent_Immovable 测试出场与阶段转换期间 Boss 不可移动
func TestBossComponent_Immovable(t *testing.T) {
	b := &BossComponent{State: ColossusIntro}
	if !b.Immovable() {
		t.Error("Expected colossus intro to be immovable")
	}
	b.SetState(ColossusIdle)
	if b.Immovable() {
		t.Error("Expected colossus idle to be movable")
	}
	b.SetState(TempestPhaseShift)
	if !b.Immovable() {
		t.Error("Expected tempest phase shift to be immovable")
	}
	if b.State.String() != "tempest.phaseShift" {
		t.Errorf("Unexpected state name %q", b.State.String())
	}
}

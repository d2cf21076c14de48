package game

import (
	"encoding/json"
	"testing"

	"github.com/gonewx/arena/pkg/types"
)

// newStageOneState 返回处于第 1 关、配额 15 的状态
func newStageOneState() *GameState {
	gs := NewGameState(nil)
	gs.KillQuota = 12 + 3*gs.Stage
	gs.ResetStageProgress()
	return gs
}

// TestRecordKill_OpensExitOnQuota 第 15 次非召唤物击杀打开出口
func TestRecordKill_OpensExitOnQuota(t *testing.T) {
	gs := newStageOneState()
	if gs.KillQuota != 15 {
		t.Fatalf("Expected quota 15 at stage 1, got %d", gs.KillQuota)
	}

	for i := 0; i < 14; i++ {
		if gs.RecordKill(false) {
			t.Fatalf("Exit opened early at kill %d", i+1)
		}
	}
	// 召唤物不计入
	for i := 0; i < 5; i++ {
		gs.RecordKill(true)
	}
	if gs.ExitOpen {
		t.Fatal("Minion kills should not open the exit")
	}

	if !gs.RecordKill(false) {
		t.Error("Expected the 15th kill to open the exit")
	}
	if !gs.ExitOpen {
		t.Error("Expected ExitOpen after reaching quota")
	}

	// 之后的击杀不会再次触发
	for i := 0; i < 3; i++ {
		if gs.RecordKill(false) {
			t.Error("Exit should open exactly once")
		}
	}
	if !gs.ExitOpen {
		t.Error("Exit should remain open")
	}
	if gs.Kills != 18 {
		t.Errorf("Expected 18 kills, got %d", gs.Kills)
	}
}

// TestRecordKill_BossStage Boss 关击杀不打开出口
func TestRecordKill_BossStage(t *testing.T) {
	gs := newStageOneState()
	gs.IsBossStage = true
	gs.KillQuota = 0
	for i := 0; i < 30; i++ {
		gs.RecordKill(false)
	}
	if gs.ExitOpen {
		t.Error("Boss stage exit must only open on boss death")
	}
	if !gs.OpenExit() {
		t.Error("Expected OpenExit to report the first opening")
	}
	if gs.OpenExit() {
		t.Error("Expected second OpenExit to be a no-op")
	}
}

// TestExport_CommitVsRollback 测试两种快照来源
func TestExport_CommitVsRollback(t *testing.T) {
	gs := newStageOneState()
	gs.Currency = 10
	gs.Theme = types.ThemeSwamp
	gs.CaptureStageStart(100, 100)

	// 关卡进行中
	gs.Currency = 55
	gs.RecordKill(false)
	gs.RecordKill(false)

	rollback := gs.Export(false, 42, 100)
	if rollback.Health != 100 || rollback.Currency != 10 || rollback.Kills != 0 {
		t.Errorf("Rollback export should return stage-entry values, got %+v", rollback)
	}

	live := gs.Export(true, 42, 100)
	if live.Health != 42 || live.Currency != 55 || live.Kills != 2 {
		t.Errorf("Commit export should return live values, got %+v", live)
	}
	if live.CurrentTheme != "swamp" {
		t.Errorf("Expected theme swamp, got %q", live.CurrentTheme)
	}
}

// TestNewGameState_FromSnapshot 读档恢复状态与主题
func TestNewGameState_FromSnapshot(t *testing.T) {
	snap := NewRunSnapshot()
	snap.Stage = 4
	snap.Kills = 30
	snap.Currency = 120
	snap.CurrentTheme = "glacier"

	gs := NewGameState(&snap)
	if gs.Stage != 4 || gs.Kills != 30 || gs.Currency != 120 {
		t.Errorf("Unexpected restored state: stage=%d kills=%d currency=%d", gs.Stage, gs.Kills, gs.Currency)
	}

	theme, ok := gs.ConsumeCarriedTheme()
	if !ok || theme != types.ThemeGlacier {
		t.Errorf("Expected carried glacier theme, got %v (%v)", theme, ok)
	}
	if _, ok := gs.ConsumeCarriedTheme(); ok {
		t.Error("Carried theme should only be consumed once")
	}
}

// TestNewGameState_ClampsSnapshot 外部快照数值被修正
func TestNewGameState_ClampsSnapshot(t *testing.T) {
	snap := RunSnapshot{Stage: -3, Currency: -10, Health: 500, MaxHealth: 80}
	gs := NewGameState(&snap)
	if gs.Stage != 1 {
		t.Errorf("Expected stage clamped to 1, got %d", gs.Stage)
	}
	if gs.Currency != 0 {
		t.Errorf("Expected currency clamped to 0, got %d", gs.Currency)
	}
	start := gs.StageStart()
	if start.Health != 80 {
		t.Errorf("Expected health clamped to max 80, got %v", start.Health)
	}
	if gs.Stats.Damage < 1 || gs.Stats.Multishot < 1 {
		t.Errorf("Expected stat floors applied, got %+v", gs.Stats)
	}
}

// TestBaseStats_ApplyUpgrades 升级叠加与下限
func TestBaseStats_ApplyUpgrades(t *testing.T) {
	stats := DefaultBaseStats()
	stats.Apply(map[string]float64{
		"damage":    5,
		"multishot": 1,
		"speed":     -100,
		"unknown":   3,
	})

	if stats.Damage != 15 {
		t.Errorf("Expected damage 15, got %v", stats.Damage)
	}
	if stats.MultishotCount() != 2 {
		t.Errorf("Expected multishot 2, got %d", stats.MultishotCount())
	}
	if stats.Speed != 0.5 {
		t.Errorf("Expected speed floored to 0.5, got %v", stats.Speed)
	}
}

// TestRunSnapshot_JSONSchema 快照字段名与外部约定一致
func TestRunSnapshot_JSONSchema(t *testing.T) {
	data, err := json.Marshal(NewRunSnapshot())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"health", "maxHealth", "currency", "stage", "kills", "baseStats", "currentTheme"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Missing snapshot key %q", key)
		}
	}

	stats, ok := fields["baseStats"].(map[string]any)
	if !ok {
		t.Fatal("baseStats should be an object")
	}
	for _, key := range []string{"damage", "maxHealth", "speed", "multishot", "lifesteal", "magnet", "piercing", "fireRate", "luck"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("Missing baseStats key %q", key)
		}
	}
}

func TestClampToWorld(t *testing.T) {
	gs := &GameState{WorldWidth: 100, WorldHeight: 50}
	x, y := gs.ClampToWorld(-20, 80, 10)
	if x != 10 || y != 40 {
		t.Errorf("Expected (10,40), got (%v,%v)", x, y)
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadAbilityConfig(t *testing.T) {
	t.Run("内置技能文件", func(t *testing.T) {
		path := filepath.Join(getProjectRoot(), "data", "abilities.yaml")
		cfg, err := LoadAbilityConfig(path)
		if err != nil {
			t.Fatalf("LoadAbilityConfig failed: %v", err)
		}
		if !reflect.DeepEqual(cfg.Abilities, DefaultAbilities()) {
			t.Errorf("data/abilities.yaml differs from DefaultAbilities()")
		}
	})

	t.Run("未知效果", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		content := "abilities:\n  meteor:\n    cooldown: 10\n    effect: meteor\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadAbilityConfig(path); err == nil {
			t.Error("Expected error for unknown effect")
		}
	})

	t.Run("空定义", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, []byte("abilities: {}\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadAbilityConfig(path); err == nil {
			t.Error("Expected error for empty abilities")
		}
	})
}

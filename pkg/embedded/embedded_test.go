package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时读取嵌入路径
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/arena.yaml")
	if err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileEmbedded 测试从嵌入数据读取
func TestReadFileEmbedded(t *testing.T) {
	Init(fstest.MapFS{
		"data/arena.yaml": &fstest.MapFile{Data: []byte("spawn: {}\n")},
	})
	defer func() { initialized = false }()

	data, err := ReadFile("./data/arena.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "spawn: {}\n" {
		t.Errorf("Unexpected content %q", string(data))
	}

	if !Exists("data/arena.yaml") {
		t.Error("Expected data/arena.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml not to exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Expected 1 match, got %d", len(matches))
	}
}

// TestReadFileFromDisk 测试非 data/ 路径读取磁盘文件（无需初始化）
func TestReadFileFromDisk(t *testing.T) {
	initialized = false

	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("ok"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("Unexpected content %q", string(data))
	}
	if !Exists(path) {
		t.Error("Expected disk file to exist")
	}
}

// TestGlobUnknownPrefix 测试 Glob 拒绝非 data/ 模式
func TestGlobUnknownPrefix(t *testing.T) {
	Init(fstest.MapFS{})
	defer func() { initialized = false }()

	if _, err := Glob("assets/*.png"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

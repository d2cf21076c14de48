package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	runObject   = "run"
	runProperty = "resume"
)

// savedRun 存储格式
type savedRun struct {
	Committed bool        `yaml:"committed"` // true: 关卡完成时的实时状态；false: 暂停时回滚到关卡开始
	Snapshot  RunSnapshot `yaml:"snapshot"`
}

// RunStore 续玩快照的持久化
// 负责快照的加载、保存和内存缓存
type RunStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	saved        *savedRun      // 最近一次保存/加载的快照
}

// NewRunStore 创建续玩存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *RunStore: 存储实例
//   - error: 总是 nil，加载失败只记录日志
func NewRunStore(gdataManager *gdata.Manager) (*RunStore, error) {
	rs := &RunStore{gdataManager: gdataManager}

	if err := rs.Load(); err != nil {
		// 加载失败不是致命错误，视为没有存档
		log.Printf("[RunStore] Warning: Failed to load run snapshot: %v (starting fresh)", err)
	}

	return rs, nil
}

// Load 从 gdata 加载快照
//
// 如果 gdataManager 为 nil 或存档不存在，保持内存中的状态
func (rs *RunStore) Load() error {
	if rs.gdataManager == nil {
		return nil
	}

	if !rs.gdataManager.ObjectPropExists(runObject, runProperty) {
		return nil
	}

	data, err := rs.gdataManager.LoadObjectProp(runObject, runProperty)
	if err != nil {
		return fmt.Errorf("failed to load run snapshot: %w", err)
	}
	if len(data) == 0 {
		rs.saved = nil
		return nil
	}

	var loaded savedRun
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal run snapshot: %w", err)
	}
	loaded.Snapshot.Normalize()

	rs.saved = &loaded
	log.Printf("[RunStore] Run snapshot loaded (stage %d, committed=%v)", loaded.Snapshot.Stage, loaded.Committed)
	return nil
}

// Save 保存快照
//
// 参数：
//   - snapshot: 要保存的快照
//   - committed: 快照来源（实时状态或关卡开始状态），仅用于记录
//
// 如果 gdataManager 为 nil，只更新内存（降级模式，不报错）
func (rs *RunStore) Save(snapshot RunSnapshot, committed bool) error {
	rs.saved = &savedRun{Committed: committed, Snapshot: snapshot}

	if rs.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rs.saved)
	if err != nil {
		return fmt.Errorf("failed to marshal run snapshot: %w", err)
	}

	if err := rs.gdataManager.SaveObjectProp(runObject, runProperty, data); err != nil {
		return fmt.Errorf("failed to save run snapshot: %w", err)
	}

	log.Printf("[RunStore] Run snapshot saved (stage %d, committed=%v)", snapshot.Stage, committed)
	return nil
}

// Resume 返回可续玩的快照，没有存档时返回 nil
func (rs *RunStore) Resume() *RunSnapshot {
	if rs.saved == nil {
		return nil
	}
	snap := rs.saved.Snapshot
	return &snap
}

// Clear 清除存档（玩家死亡后调用）
func (rs *RunStore) Clear() error {
	rs.saved = nil

	if rs.gdataManager == nil {
		return nil
	}
	if err := rs.gdataManager.SaveObjectProp(runObject, runProperty, []byte{}); err != nil {
		return fmt.Errorf("failed to clear run snapshot: %w", err)
	}
	return nil
}

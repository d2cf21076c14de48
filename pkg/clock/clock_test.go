package clock

import (
	"testing"
	"time"
)

// TestClock_AdvanceDrainsAccumulator 测试累加器按步长消耗
func TestClock_AdvanceDrainsAccumulator(t *testing.T) {
	c := New(10*time.Millisecond, 100)
	calls := 0
	step := func() { calls++ }

	if n := c.Advance(25*time.Millisecond, step); n != 2 {
		t.Errorf("Expected 2 steps, got %d", n)
	}
	if c.Pending() != 5*time.Millisecond {
		t.Errorf("Expected 5ms pending, got %v", c.Pending())
	}
	if n := c.Advance(5*time.Millisecond, step); n != 1 {
		t.Errorf("Expected 1 step, got %d", n)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls total, got %d", calls)
	}
	if c.Pending() != 0 {
		t.Errorf("Expected empty accumulator, got %v", c.Pending())
	}
}

// TestClock_FrameRateIndependence 不同帧率下相同总时长执行相同步数
func TestClock_FrameRateIndependence(t *testing.T) {
	for _, fps := range []int{30, 60, 144, 240} {
		frame := time.Second / time.Duration(fps)
		c := New(DefaultStep, 1000)
		total := 0
		for i := 0; i < fps; i++ {
			total += c.Advance(frame, func() {})
		}
		// 每帧时长整除误差不会超过 1 步
		if total < 59 || total > 61 {
			t.Errorf("%d fps: expected ~60 steps in 1s, got %d", fps, total)
		}
	}
}

// TestClock_MaxStepsKeepsRemainder 超出单帧上限的时间保留在累加器中
func TestClock_MaxStepsKeepsRemainder(t *testing.T) {
	c := New(10*time.Millisecond, 3)
	calls := 0

	if n := c.Advance(100*time.Millisecond, func() { calls++ }); n != 3 {
		t.Errorf("Expected 3 steps (capped), got %d", n)
	}
	if c.Pending() != 70*time.Millisecond {
		t.Errorf("Expected 70ms pending, got %v", c.Pending())
	}

	// 后续帧继续消耗积压，没有步被丢弃
	for i := 0; i < 10; i++ {
		c.Advance(0, func() { calls++ })
	}
	if calls != 10 {
		t.Errorf("Expected 10 steps total, got %d", calls)
	}
}

// TestClock_NegativeElapsedIgnored 负的时间差被忽略
func TestClock_NegativeElapsedIgnored(t *testing.T) {
	c := New(10*time.Millisecond, 3)
	if n := c.Advance(-time.Second, func() {}); n != 0 {
		t.Errorf("Expected 0 steps, got %d", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Expected empty accumulator, got %v", c.Pending())
	}
}

// TestClock_DeferOrder 测试延迟行为按到期时间和排队顺序执行
func TestClock_DeferOrder(t *testing.T) {
	c := New(0, 0)
	var order []string

	c.Defer(2, func() { order = append(order, "b1") })
	c.Defer(1, func() { order = append(order, "a") })
	c.Defer(2, func() { order = append(order, "b2") })
	c.Defer(0, func() { order = append(order, "now") })

	c.Tick()
	if len(order) != 2 || order[0] != "a" || order[1] != "now" {
		t.Fatalf("After tick 1: unexpected order %v", order)
	}

	c.Tick()
	want := []string{"a", "now", "b1", "b2"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
	if c.PendingActions() != 0 {
		t.Errorf("Expected no pending actions, got %d", c.PendingActions())
	}
}

// TestClock_DeferFromAction 延迟行为内部排队的行为在之后的 tick 执行
func TestClock_DeferFromAction(t *testing.T) {
	c := New(0, 0)
	fired := 0

	c.Defer(1, func() {
		c.Defer(1, func() { fired++ })
	})

	c.Tick()
	if fired != 0 {
		t.Fatal("Nested action should not run on the same tick")
	}
	c.Tick()
	if fired != 1 {
		t.Errorf("Expected nested action to run once, got %d", fired)
	}
}

// TestClock_Reset 测试重置清空累加器与延迟行为
func TestClock_Reset(t *testing.T) {
	c := New(10*time.Millisecond, 3)
	c.Advance(5*time.Millisecond, func() {})
	c.Defer(1, func() { t.Error("Deferred action should have been cleared") })

	c.Reset()
	if c.Pending() != 0 || c.PendingActions() != 0 {
		t.Error("Expected Reset to clear accumulator and pending actions")
	}
	c.Tick()
}

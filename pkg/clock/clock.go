// Package clock 提供固定步长的模拟时钟
//
// 渲染回调以任意频率传入经过的真实时间，时钟将其累加，
// 每满一个 Step 执行一次模拟步，剩余时间留在累加器中。
// 模拟中的延迟行为（如清除横幅文字）通过 Defer 排入同一时钟，
// 不使用独立的计时器，保证整个模拟单线程且可重放。
package clock

import (
	"container/heap"
	"time"
)

// DefaultStep 默认步长（1/60 秒）
const DefaultStep = time.Second / 60

// DefaultMaxSteps 单次 Advance 默认最多执行的步数
const DefaultMaxSteps = 8

// Clock 固定步长时钟
type Clock struct {
	// Step 每个模拟步对应的真实时间
	Step time.Duration
	// MaxStepsPerFrame 单次 Advance 最多执行的步数，剩余时间保留到下一次
	MaxStepsPerFrame int

	accumulator time.Duration
	tick        int64
	seq         uint64
	pending     deferredQueue
}

// New 创建时钟
// 参数：
//
//	step - 步长，<= 0 时使用 DefaultStep
//	maxSteps - 单帧最多步数，<= 0 时使用 DefaultMaxSteps
func New(step time.Duration, maxSteps int) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Clock{
		Step:             step,
		MaxStepsPerFrame: maxSteps,
	}
}

// Advance 累加经过的时间并执行所有到期的模拟步
// 参数：
//
//	elapsed - 距离上一次调用经过的真实时间（负值视为 0）
//	step - 模拟步回调
//
// 返回：
//
//	int - 本次执行的步数
func (c *Clock) Advance(elapsed time.Duration, step func()) int {
	if elapsed > 0 {
		c.accumulator += elapsed
	}

	steps := 0
	for c.accumulator >= c.Step && steps < c.MaxStepsPerFrame {
		c.accumulator -= c.Step
		step()
		steps++
	}
	return steps
}

// Pending 返回累加器中尚未消耗的时间
func (c *Clock) Pending() time.Duration {
	return c.accumulator
}

// Now 返回当前 tick 编号
func (c *Clock) Now() int64 {
	return c.tick
}

// Tick 推进 tick 计数并执行所有到期的延迟行为
// 同一 tick 到期的行为按排队顺序执行；行为内部可以继续排队
func (c *Clock) Tick() {
	c.tick++
	for c.pending.Len() > 0 && c.pending[0].due <= c.tick {
		action := heap.Pop(&c.pending).(*deferredAction)
		action.fn()
	}
}

// Defer 在 delay 个 tick 之后执行 fn
// delay <= 0 时在下一次 Tick 执行
func (c *Clock) Defer(delay int, fn func()) {
	if fn == nil {
		return
	}
	if delay < 1 {
		delay = 1
	}
	c.seq++
	heap.Push(&c.pending, &deferredAction{
		due: c.tick + int64(delay),
		seq: c.seq,
		fn:  fn,
	})
}

// PendingActions 返回尚未执行的延迟行为数量
func (c *Clock) PendingActions() int {
	return c.pending.Len()
}

// Reset 清空累加器和延迟行为，tick 计数保持不变
func (c *Clock) Reset() {
	c.accumulator = 0
	c.pending = c.pending[:0]
}

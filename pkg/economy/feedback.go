package economy

import "math"

// FeedbackCounter 统计 floor(累计点数) 跨过的整数边界
//
// 手动点击（整数跳变）和自动累积（小数平滑增长）统一成同一个信号：
// 每跨过一个整数边界产生一次反馈（叫声/动画）。
type FeedbackCounter struct {
	last int64
}

// Rebase 将基准设为当前累计点数，不产生反馈
func (c *FeedbackCounter) Rebase(lifetime float64) {
	c.last = floorInt(lifetime)
}

// Observe 观察新的累计点数，返回自上次观察以来跨过的整数边界数
//
// 累计点数不会减少；如果观察值小于基准（例如重置后未 Rebase），
// 只移动基准，不产生反馈。
func (c *FeedbackCounter) Observe(lifetime float64) int {
	current := floorInt(lifetime)
	if current <= c.last {
		c.last = current
		return 0
	}
	crossed := current - c.last
	c.last = current
	if crossed > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(crossed)
}

func floorInt(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	f := math.Floor(v)
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

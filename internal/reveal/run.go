package reveal

import (
	"context"
	"time"
)

// Run 在调用方 goroutine 中驱动引擎直到完成：每个间隔触发一次 Tick，
// 触发后重新调度下一次。ctx 取消时停止并返回 ctx.Err()，未触发的定时器会被释放。
func Run(ctx context.Context, e *Engine) error {
	if e == nil {
		return nil
	}
	for !e.Done() {
		timer := time.NewTimer(e.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			e.Tick()
		}
	}
	return nil
}

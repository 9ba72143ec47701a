// Package retry 提供带指数退避的重试
package retry

import (
	"context"
	"time"
)

// Backoff 退避参数
type Backoff struct {
	// 最大尝试次数，小于 1 时按 1 处理
	Attempts int
	// 首次等待
	Initial time.Duration
	// 等待上限
	Max time.Duration
}

// Do 执行 fn 直到成功、次数用尽或 ctx 结束，返回最后一次错误
func Do(ctx context.Context, b Backoff, fn func(ctx context.Context) error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Initial

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastErr
		case <-timer.C:
		}

		// 指数退避
		delay = time.Duration(float64(delay) * 1.5)
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
	return lastErr
}

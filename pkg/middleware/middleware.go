// Package middleware 提供 Gin 通用中间件（日志、trace、panic recover、限流）
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

// RequestIDKey gin context key for request ID
const RequestIDKey = "request_id"

// TraceIDHeader 上游传入的 trace ID
const TraceIDHeader = "X-Trace-ID"

// GinLoggingMiddleware Gin 日志中间件，生成 request/trace/span ID 并写入请求 context
func GinLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		spanID := uuid.New().String()

		c.Set(RequestIDKey, requestID)
		ctx := logger.ContextWithIDs(c.Request.Context(), requestID, traceID, spanID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info(ctx, "HTTP request completed",
			"method", method,
			"path", path,
			"client_ip", c.ClientIP(),
			"status_code", c.Writer.Status(),
			"response_size", c.Writer.Size(),
			"duration", time.Since(start),
		)
	}
}

// GinRecoveryMiddleware Gin panic 恢复中间件，onPanic 负责渲染错误页，为空时只返回 500 状态码
func GinRecoveryMiddleware(onPanic func(c *gin.Context, err error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "HTTP request panicked",
					"panic", rec, "path", c.Request.URL.Path, "stack", string(debug.Stack()))

				switch {
				case c.Writer.Written():
				case onPanic != nil:
					onPanic(c, fmt.Errorf("panic: %v", rec))
				default:
					c.Status(http.StatusInternalServerError)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

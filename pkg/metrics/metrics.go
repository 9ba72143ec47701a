// Package metrics 提供 Prometheus 指标集合与 Gin 采集中间件
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration *prometheus.HistogramVec
	// 实体变更计数，按实体与操作区分
	EntityMutationsTotal *prometheus.CounterVec
	// 登录结果计数
	LoginAttemptsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New 创建指标实例，使用独立 registry，便于测试中重复创建
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "poseidon",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EntityMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: serviceName,
			Name:      "entity_mutations_total",
			Help:      "Entity create/update/delete operations",
		}, []string{"entity", "operation"}),
		LoginAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poseidon",
			Subsystem: serviceName,
			Name:      "login_attempts_total",
			Help:      "Login attempts by result",
		}, []string{"result"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EntityMutationsTotal,
		m.LoginAttemptsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordMutation 记录一次实体变更
func (m *Metrics) RecordMutation(entity, operation string) {
	if m == nil {
		return
	}
	m.EntityMutationsTotal.WithLabelValues(entity, operation).Inc()
}

// RecordLogin 记录登录结果：success, failure, throttled
func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// Handler 返回 /metrics 处理器
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// GinMiddleware 采集 HTTP 请求数与耗时
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

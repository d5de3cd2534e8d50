// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
// - Counter（只增不减）：请求总数、订单总数
// - Gauge（可增可减）：正在处理的请求数
// - Histogram（分布）：请求耗时、订单金额
//
// 指标通过/metrics端点暴露，由Prometheus Server周期抓取。
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数（按方法、路径、状态码分组）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的请求数
	HTTPRequestsInProgress prometheus.Gauge

	// OrdersCreatedTotal 成功创建的订单总数
	OrdersCreatedTotal prometheus.Counter

	// OrderAmount 订单金额分布（分）
	OrderAmount prometheus.Histogram

	registry *prometheus.Registry
	initOnce sync.Once
)

// InitMetrics 初始化并注册所有指标
// 可重复调用（幂等），便于测试
func InitMetrics() {
	initOnce.Do(func() {
		registry = prometheus.NewRegistry()

		HTTPRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshop_http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookshop_http_request_duration_seconds",
				Help:    "HTTP请求耗时分布",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookshop_http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		OrdersCreatedTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bookshop_orders_created_total",
				Help: "成功创建的订单总数",
			},
		)

		OrderAmount = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bookshop_order_amount_fen",
				Help:    "订单金额分布(分)",
				Buckets: []float64{500, 1000, 5000, 10000, 50000, 100000, 500000},
			},
		)

		registry.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			HTTPRequestsInProgress,
			OrdersCreatedTotal,
			OrderAmount,
		)
	})
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	InitMetrics()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveRequest 记录一次HTTP请求（中间件调用）
func ObserveRequest(method, path, status string, seconds float64) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveOrderCreated 记录一次成功下单
func ObserveOrderCreated(totalFen int64) {
	InitMetrics()
	OrdersCreatedTotal.Inc()
	OrderAmount.Observe(float64(totalFen))
}

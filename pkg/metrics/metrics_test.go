package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getCounterValue 读取Counter当前值
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

// getGaugeValue 读取Gauge当前值
func getGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

// TestInitMetrics 测试指标初始化（幂等）
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, OrdersCreatedTotal)
	assert.NotNil(t, OrderAmount)
}

// TestObserveOrderCreated 测试订单指标
func TestObserveOrderCreated(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, OrdersCreatedTotal)

	ObserveOrderCreated(3000)
	ObserveOrderCreated(12000)

	after := getCounterValue(t, OrdersCreatedTotal)
	assert.Equal(t, float64(2), after-before)
}

// TestObserveRequest 测试HTTP请求指标
func TestObserveRequest(t *testing.T) {
	InitMetrics()

	labeled := HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/orders", "200")
	before := getCounterValue(t, labeled)

	ObserveRequest("POST", "/api/v1/orders", "200", 0.123)
	ObserveRequest("POST", "/api/v1/orders", "200", 0.456)

	after := getCounterValue(t, labeled)
	assert.Equal(t, float64(2), after-before)
}

// TestGaugeInProgress 测试并发请求数Gauge
func TestGaugeInProgress(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)

	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Inc()
	assert.Equal(t, before+2, getGaugeValue(t, HTTPRequestsInProgress))

	HTTPRequestsInProgress.Dec()
	assert.Equal(t, before+1, getGaugeValue(t, HTTPRequestsInProgress))

	HTTPRequestsInProgress.Dec()
}

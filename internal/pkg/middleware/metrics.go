// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 按照路由模板统计耗时和请求数，没有匹配到路由的统一记为 unknown
type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP 请求耗时",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1, 3},
	}, []string{"method", "path", "status_code"})
	inflight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "正在处理的 HTTP 请求数",
	})
	reg.MustRegister(duration, inflight)
	return &MetricsBuilder{duration: duration, inflight: inflight}
}

func (m *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		m.duration.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

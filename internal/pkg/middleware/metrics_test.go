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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder("jobboard", reg)
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/jobs/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/jobs/1", "/jobs/2", "/nothing"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	// 两条序列：/jobs/:id 200 和 unknown 404
	assert.Equal(t, 2, testutil.CollectAndCount(builder.duration, "jobboard_http_request_duration_seconds"))
	assert.Equal(t, float64(0), testutil.ToFloat64(builder.inflight))
}

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

package mqx

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type evt struct {
	ID int64 `json:"id"`
}

func TestTraceMQ(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	q := &TraceMQ{MQ: memory.NewMQ(), tracer: tp.Tracer("test")}
	ctx := context.Background()
	const topic = "trace_test"
	require.NoError(t, q.CreateTopic(ctx, topic, 1))

	consumer, err := q.Consumer(topic, "g1")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[evt](q, topic)
	require.NoError(t, err)
	require.NoError(t, producer.Produce(ctx, evt{ID: 1}))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(msg.Value))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Equal(t, trace.SpanKindProducer, spans[0].SpanKind())
	assert.Equal(t, "mq.consume", spans[1].Name())
	assert.Equal(t, trace.SpanKindConsumer, spans[1].SpanKind())
}

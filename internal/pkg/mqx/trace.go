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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/mqx/tracing"

// TraceMQ 给生产和消费都打点
type TraceMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMQ(q mq.MQ) *TraceMQ {
	return &TraceMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMQ) Consumer(topic, group string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, group)
	if err != nil {
		return nil, err
	}
	return &traceConsumer{Consumer: c, topic: topic, group: group, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "mq.produce", m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	end(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "mq.produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	end(span, err)
	return res, err
}

func (t *traceProducer) start(ctx context.Context, name string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.topic", t.topic),
	)
	if m != nil {
		span.SetAttributes(attribute.Int("messaging.message_length", len(m.Value)))
	}
	return ctx, span
}

type traceConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

// Consume 阻塞等待消息的时间不算在 span 里面
func (t *traceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	m, err := t.Consumer.Consume(ctx)
	if err != nil {
		return m, err
	}
	_, span := t.tracer.Start(ctx, "mq.consume", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.operation", "consume"),
		attribute.String("messaging.topic", t.topic),
		attribute.String("messaging.consumer_group", t.group),
		attribute.Int("messaging.message_length", len(m.Value)),
	)
	end(span, nil)
	return m, nil
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("call-metrics")

// CallMetrics provides metrics collection for outbound generation and chat calls
type CallMetrics struct {
	generationsStartedCounter   metric.Int64Counter
	generationsCompletedCounter metric.Int64Counter
	generationsFailedCounter    metric.Int64Counter
	generationDurationHistogram metric.Float64Histogram
	chatMessagesSentCounter     metric.Int64Counter
	chatMessagesFailedCounter   metric.Int64Counter
	chatDurationHistogram       metric.Float64Histogram
	callsActiveGauge            metric.Int64UpDownCounter
}

// NewCallMetrics creates a new call metrics collector
func NewCallMetrics() (*CallMetrics, error) {
	generationsStartedCounter, err := meter.Int64Counter(
		"prompt_studio.generations.started",
		metric.WithDescription("Total number of prompt generations started"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	generationsCompletedCounter, err := meter.Int64Counter(
		"prompt_studio.generations.completed",
		metric.WithDescription("Total number of prompt generations completed successfully"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	generationsFailedCounter, err := meter.Int64Counter(
		"prompt_studio.generations.failed",
		metric.WithDescription("Total number of prompt generations that failed"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	generationDurationHistogram, err := meter.Float64Histogram(
		"prompt_studio.generation.duration",
		metric.WithDescription("Duration of prompt generation calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	chatMessagesSentCounter, err := meter.Int64Counter(
		"prompt_studio.chat_messages.sent",
		metric.WithDescription("Total number of chat test messages sent"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, err
	}

	chatMessagesFailedCounter, err := meter.Int64Counter(
		"prompt_studio.chat_messages.failed",
		metric.WithDescription("Total number of chat test messages that came back as errors"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, err
	}

	chatDurationHistogram, err := meter.Float64Histogram(
		"prompt_studio.chat_message.duration",
		metric.WithDescription("Duration of chat test exchanges in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	callsActiveGauge, err := meter.Int64UpDownCounter(
		"prompt_studio.calls.active",
		metric.WithDescription("Number of outbound calls currently in flight"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &CallMetrics{
		generationsStartedCounter:   generationsStartedCounter,
		generationsCompletedCounter: generationsCompletedCounter,
		generationsFailedCounter:    generationsFailedCounter,
		generationDurationHistogram: generationDurationHistogram,
		chatMessagesSentCounter:     chatMessagesSentCounter,
		chatMessagesFailedCounter:   chatMessagesFailedCounter,
		chatDurationHistogram:       chatDurationHistogram,
		callsActiveGauge:            callsActiveGauge,
	}, nil
}

// RecordGenerationStarted records the start of a prompt generation call
func (cm *CallMetrics) RecordGenerationStarted(ctx context.Context, profile string) {
	cm.generationsStartedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("profile", profile),
		),
	)
	cm.callsActiveGauge.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("call.type", "generation"),
		),
	)
}

// RecordGenerationCompleted records a successful prompt generation
func (cm *CallMetrics) RecordGenerationCompleted(ctx context.Context, profile string, duration time.Duration) {
	cm.generationsCompletedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("profile", profile),
			attribute.String("status", "completed"),
		),
	)
	cm.generationDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("profile", profile),
			attribute.String("status", "completed"),
		),
	)
	cm.callsActiveGauge.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("call.type", "generation"),
		),
	)
}

// RecordGenerationFailed records a failed prompt generation
func (cm *CallMetrics) RecordGenerationFailed(ctx context.Context, profile, stage string, duration time.Duration) {
	cm.generationsFailedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("profile", profile),
			attribute.String("status", "failed"),
			attribute.String("stage", stage),
		),
	)
	cm.generationDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("profile", profile),
			attribute.String("status", "failed"),
		),
	)
	cm.callsActiveGauge.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("call.type", "generation"),
		),
	)
}

// RecordChatMessageSent records the start of a chat test exchange
func (cm *CallMetrics) RecordChatMessageSent(ctx context.Context, model, language string) {
	cm.chatMessagesSentCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("language", language),
		),
	)
	cm.callsActiveGauge.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("call.type", "chat"),
		),
	)
}

// RecordChatMessageCompleted records a chat exchange that returned a reply
func (cm *CallMetrics) RecordChatMessageCompleted(ctx context.Context, model string, duration time.Duration) {
	cm.chatDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("status", "success"),
		),
	)
	cm.callsActiveGauge.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("call.type", "chat"),
		),
	)
}

// RecordChatMessageFailed records a chat exchange that came back as an error result
func (cm *CallMetrics) RecordChatMessageFailed(ctx context.Context, model string, duration time.Duration) {
	cm.chatMessagesFailedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("status", "error"),
		),
	)
	cm.chatDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("status", "error"),
		),
	)
	cm.callsActiveGauge.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("call.type", "chat"),
		),
	)
}

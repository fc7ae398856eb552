package scan

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Prober invokes single operations and classifies the outcome. It performs
// no retries; connection timeout and retry budget belong to the client.
type Prober struct {
	tracer trace.Tracer
}

// NewProber returns a Prober emitting one span per probe.
func NewProber() *Prober {
	return &Prober{tracer: otel.Tracer("privsweep/prober")}
}

// Probe invokes one operation on one regional client with the injected
// arguments. The returned classification tells the caller whether the result
// counts toward the aggregate or must be dropped (transient failure).
func (p *Prober) Probe(ctx context.Context, client RegionalClient, operation string, args Args) (ProbeResult, Classification) {
	ctx, span := p.tracer.Start(ctx, "probe", trace.WithAttributes(
		attribute.String("provider", "aws"),
		attribute.String("operation", operation),
		attribute.String("region", client.Region()),
	))
	defer span.End()

	resp, err := client.Invoke(ctx, operation, args)
	cls := Classify(err)

	result := ProbeResult{
		Operation: operation,
		Region:    client.Region(),
		Outcome:   cls.Outcome,
		ErrorCode: cls.Code,
		Err:       err,
	}
	if err == nil {
		result.Response = resp
	}

	span.SetAttributes(attribute.String("outcome", cls.Outcome.String()))
	if cls.Dropped {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return result, cls
}

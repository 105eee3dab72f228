// Package instrument provides optional OpenTelemetry tracing around render
// and parse calls. The core packages know nothing about tracing; wrap calls
// here when spans are wanted.
package instrument

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tagforge/tagforge/pkg/markup"
	"github.com/tagforge/tagforge/pkg/parse"
	"github.com/tagforge/tagforge/pkg/render"
)

// Default tracer name for tagforge spans.
const defaultTracerName = "tagforge"

// Config configures tracing.
type Config struct {
	// TracerName is the name of the tracer (default: "tagforge").
	TracerName string

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures tracing.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracer sets an explicit tracer instead of the global provider's.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.tracer = tracer
	}
}

func resolve(opts []Option) Config {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.tracer == nil {
		config.tracer = otel.Tracer(config.TracerName)
	}
	return config
}

// Render serializes a tree inside a span named "tagforge.render", recording
// the root tag and output size.
func Render(ctx context.Context, r *render.Renderer, node *markup.Node, opts ...Option) (render.Output, error) {
	config := resolve(opts)

	tag := ""
	if node != nil {
		tag = node.Tag
	}

	_, span := config.tracer.Start(ctx, "tagforge.render",
		trace.WithAttributes(attribute.String("tagforge.root_tag", tag)))
	defer span.End()

	out, err := r.Render(node)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return render.Output{}, err
	}

	span.SetAttributes(attribute.Int("tagforge.output_bytes", out.Length))
	return out, nil
}

// Parse reconstructs a tree inside a span named "tagforge.parse", recording
// input size and the error offset on failure.
func Parse(ctx context.Context, input string, opts ...Option) (*parse.Element, error) {
	config := resolve(opts)

	_, span := config.tracer.Start(ctx, "tagforge.parse",
		trace.WithAttributes(attribute.Int("tagforge.input_bytes", len(input))))
	defer span.End()

	el, err := parse.Parse(input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var perr *parse.Error
		if errors.As(err, &perr) {
			span.SetAttributes(attribute.Int("tagforge.error_offset", perr.Offset))
		}
		return nil, err
	}

	return el, nil
}

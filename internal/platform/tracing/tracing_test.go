package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitWithExporter_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	shutdown, err := InitWithExporter("normalro-test", "test", exporter)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "anaf.lookup")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "anaf.lookup", spans[0].Name)

	// Second init is a no-op and still returns a usable shutdown.
	again, err := InitWithExporter("other", "x", tracetest.NewInMemoryExporter())
	require.NoError(t, err)
	require.NotNil(t, again)

	require.NoError(t, shutdown(context.Background()))
}

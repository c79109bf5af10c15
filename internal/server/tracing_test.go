package server

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/internal/config"
)

// recordingServer returns a server whose spans land in the returned recorder.
func recordingServer(t *testing.T) (*Server, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	cfg := config.Default()
	s, err := New(cfg, nil, WithTracerProvider(tp))
	require.NoError(t, err)
	return s, sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestSearchSpan_NoPath(t *testing.T) {
	s, sr := recordingServer(t)
	rec, resp := post(t, s.Handler(), `{"rows":["101","101"],"source":[0,0],"destination":[2,1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no_path", resp.Outcome)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "astar.Search", span.Name())

	attrs := spanAttrs(span)
	assert.Equal(t, int64(3), attrs["grid.width"].AsInt64())
	assert.Equal(t, int64(2), attrs["grid.height"].AsInt64())
	assert.Equal(t, "(0,0)", attrs["src"].AsString())
	assert.Equal(t, "(2,1)", attrs["dst"].AsString())
	assert.Equal(t, "no_path", attrs["outcome"].AsString())
	assert.Equal(t, int64(resp.Expanded), attrs["expanded"].AsInt64())
	assert.Positive(t, attrs["expanded"].AsInt64())
	assert.Equal(t, int64(0), attrs["path.length"].AsInt64())

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "no_path", span.Status().Description)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestSearchSpan_Found(t *testing.T) {
	s, sr := recordingServer(t)
	rec, resp := post(t, s.Handler(), `{"rows":["111","1#1","111"],"source":[0,0],"destination":[2,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Found)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spanAttrs(spans[0])
	assert.Equal(t, "found", attrs["outcome"].AsString())
	assert.Equal(t, int64(4), attrs["path.length"].AsInt64())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
}

func TestSearchSpan_NotStartedForBadRequest(t *testing.T) {
	s, sr := recordingServer(t)
	rec, _ := post(t, s.Handler(), `{"rows":["11"],"source":[0,0]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sr.Ended())
}

func TestNewTracerProvider(t *testing.T) {
	cfg := config.Default()
	tp, shutdown, err := NewTracerProvider(cfg, nil)
	require.NoError(t, err)
	_, span := tp.Tracer("t").Start(context.Background(), "disabled")
	assert.False(t, span.IsRecording(), "disabled tracing uses the no-op global provider")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	var buf bytes.Buffer
	cfg.Trace.Enabled = true
	tp, shutdown, err = NewTracerProvider(cfg, &buf)
	require.NoError(t, err)
	s, err := New(cfg, nil, WithTracerProvider(tp))
	require.NoError(t, err)
	_, _ = post(t, s.Handler(), `{"rows":["11"],"source":[0,0],"destination":[1,0]}`)
	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"astar.Search"`)

	cfg.Trace.Exporter = "zipkin"
	_, _, err = NewTracerProvider(cfg, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_ZeroValueIsNoOp(t *testing.T) {
	o := &Observability{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		o.RecordReport(ctx, "job", "success")
		o.RecordReportDuration(ctx, 12*time.Millisecond, "job")
		o.Shutdown()
	})
	assert.NotNil(t, o.Tracer())
}

func TestNew_RecordsAndTraces(t *testing.T) {
	o, err := New("jobtracker-reports-test", 1.0)
	require.NoError(t, err)
	defer o.Shutdown()

	ctx, span := o.Tracer().Start(context.Background(), "test-span")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())

	assert.NotPanics(t, func() {
		o.RecordReport(ctx, "recruiter", "success")
		o.RecordReportDuration(ctx, 3*time.Millisecond, "recruiter")
	})
	span.End()
}

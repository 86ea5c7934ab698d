// internal/views/application-view/handler.go
package applicationview

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "jobtracker/internal/common/errors"
	"jobtracker/internal/common/logger"
	"jobtracker/internal/common/metrics"
	"jobtracker/internal/models"
	"jobtracker/internal/views/application-view/queries"
)

const (
	ViewName        = "application-view"
	RequestIDHeader = "X-Request-ID"
)

var (
	ErrInvalidFilter        = errors.New("INVALID_FILTER_FORMAT")
	ErrQueryExecutionFailed = errors.New("QUERY_EXECUTION_FAILED")
	ErrQueryTimeout         = errors.New("QUERY_TIMEOUT")
)

// Telemetry is the otel surface the handler reports to.
type Telemetry interface {
	Tracer() trace.Tracer
	RecordReport(ctx context.Context, bundle, status string)
	RecordReportDuration(ctx context.Context, duration time.Duration, bundle string)
}

type Handler struct {
	config    *Config
	db        *sql.DB
	logger    logger.Logger
	errors    *apperrors.ErrorHandler
	telemetry Telemetry
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger, telemetry Telemetry) *Handler {
	log = log.WithFields(map[string]interface{}{"view": ViewName})
	return &Handler{
		config:    config,
		db:        db,
		logger:    log,
		errors:    apperrors.NewErrorHandler(log),
		telemetry: telemetry,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, requestID)

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.errors.HandleHTTPError(w, r, apperrors.NewMethodNotAllowedError(r.Method))
		return
	}

	ctx, span := h.telemetry.Tracer().Start(r.Context(), "GET /applicationView",
		trace.WithAttributes(attribute.String("request.id", requestID)))
	defer span.End()

	log := h.logger.WithFields(map[string]interface{}{"requestId": requestID})
	start := time.Now()

	input, err := ParseInput(r.URL.Query())
	if err != nil {
		h.fail(ctx, w, r, span, string(models.BundleNone), "invalid",
			apperrors.NewInvalidFilterFormatError(err.Error()))
		return
	}

	bundle := string(queries.SelectBundle(input.Filter()))
	span.SetAttributes(attribute.String("report.bundle", bundle))

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrQueryTimeout):
			h.fail(ctx, w, r, span, bundle, "timeout", apperrors.NewQueryTimeoutError(ViewName))
		default:
			h.fail(ctx, w, r, span, bundle, "error", apperrors.NewQueryExecutionFailedError(ViewName, err))
		}
		return
	}

	elapsed := time.Since(start)
	metrics.ReportRequestsTotal.WithLabelValues(bundle, "success").Inc()
	metrics.ReportRowsReturned.Observe(float64(len(output.Applications)))
	h.telemetry.RecordReport(ctx, bundle, "success")
	h.telemetry.RecordReportDuration(ctx, elapsed, bundle)
	span.SetAttributes(attribute.Int("report.rows", len(output.Applications)))

	log.Info("report served", map[string]interface{}{
		"bundle":     bundle,
		"rows":       len(output.Applications),
		"durationMs": elapsed.Milliseconds(),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(output); err != nil {
		log.Error("failed to encode report", map[string]interface{}{"error": err})
	}
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, span trace.Span, bundle, status string, stdErr *apperrors.StandardError) {
	metrics.ReportRequestsTotal.WithLabelValues(bundle, status).Inc()
	h.telemetry.RecordReport(ctx, bundle, status)
	span.SetStatus(codes.Error, string(stdErr.Code))
	span.RecordError(stdErr)
	h.errors.HandleHTTPError(w, r, stdErr)
}

// execute runs the row query and the selected statistics bundle in one
// read-only transaction so both see the same snapshot.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidFilter)
	}
	filter := input.Filter()

	tx, err := h.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer tx.Rollback()

	rows, err := queries.FetchReportRows(ctx, tx, filter)
	if err != nil {
		return nil, classify(ctx, err)
	}

	bundle, err := queries.Compute(ctx, tx, filter)
	if err != nil {
		return nil, classify(ctx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify(ctx, err)
	}

	return &Output{
		Applications: rows,
		Statistics:   bundle,
	}, nil
}

func classify(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %v", ErrQueryTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrQueryExecutionFailed, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

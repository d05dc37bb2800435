package reports

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"boukir/internal/core/apperror"
	appctx "boukir/internal/core/context"
	"boukir/internal/core/id"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
	"boukir/pkg/logger"
)

var tracer = otel.Tracer("boukir/reports")

// Filter is the caller-facing form of Options.
type Filter struct {
	DateFrom *time.Time `json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`

	Sales          bool `json:"sales"`
	PurchaseOrders bool `json:"purchaseOrders"`
	Credits        bool `json:"credits"`

	IgnoreCounterparty bool `json:"ignoreCounterparty"`

	SelectedProductID      string `json:"selectedProductId" validate:"omitempty,max=64"`
	SelectedCounterpartyID string `json:"selectedCounterpartyId" validate:"omitempty,max=256"`

	TopN int `json:"topN" validate:"gte=0,lte=1000"`
}

// DefaultFilter enables every group.
func DefaultFilter() Filter {
	return Filter{Sales: true, PurchaseOrders: true, Credits: true, TopN: DefaultTopN}
}

// Options converts the filter.
func (f Filter) Options() Options {
	return Options{
		Period: documents.Period{From: f.DateFrom, To: f.DateTo},
		Groups: documents.Groups{
			Sales:          f.Sales,
			PurchaseOrders: f.PurchaseOrders,
			Credits:        f.Credits,
		},
		IgnoreCounterparty:     f.IgnoreCounterparty,
		SelectedProductID:      f.SelectedProductID,
		SelectedCounterpartyID: f.SelectedCounterpartyID,
		TopN:                   f.TopN,
	}
}

// key identifies identical concurrent builds.
func (f Filter) key() string {
	day := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s|%s|%t|%t|%t|%t|%s|%s|%d",
		day(f.DateFrom), day(f.DateTo),
		f.Sales, f.PurchaseOrders, f.Credits, f.IgnoreCounterparty,
		f.SelectedProductID, f.SelectedCounterpartyID, f.TopN)
}

// Service loads inputs from a Source and runs the engine.
// Identical concurrent builds share one pass; reports returned to several
// callers are shared and must be treated as read-only.
type Service struct {
	source   Source
	engine   *Engine
	log      *logger.Logger
	validate *validator.Validate
	metrics  *Metrics
	group    singleflight.Group
	now      func() time.Time
}

// NewService creates a report service.
func NewService(source Source, engine *Engine, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	if engine == nil {
		engine = NewEngine(log)
	}
	return &Service{
		source:   source,
		engine:   engine,
		log:      log.WithComponent("reports.service"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// WithMetrics attaches Prometheus collectors to the service.
func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}

// Build validates the filter and computes a fresh report.
func (s *Service) Build(ctx context.Context, filter Filter) (*Report, error) {
	if err := s.validate.Struct(filter); err != nil {
		return nil, apperror.NewValidation("invalid report filter").WithCause(err)
	}
	if err := filter.Options().Validate(); err != nil {
		return nil, err
	}

	ch := s.group.DoChan(filter.key(), func() (any, error) {
		return s.build(context.WithoutCancel(ctx), filter.Options())
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.metrics.observeShared()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Report), nil
	}
}

func (s *Service) build(ctx context.Context, opts Options) (report *Report, err error) {
	start := s.now()
	passID := id.NewString()
	ctx = appctx.WithPassID(ctx, passID)
	log := s.log.WithContext(ctx)

	ctx, span := tracer.Start(ctx, "reports.sales_profit",
		trace.WithAttributes(
			attribute.String("report.pass_id", passID),
			attribute.String("report.groups", opts.Label()),
			attribute.Bool("report.ignore_counterparty", opts.IgnoreCounterparty),
		))
	defer span.End()
	defer func() { s.metrics.observeBuild(start, report, err) }()
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("report pass panicked", "panic", r, "stack", string(debug.Stack()))
			span.SetStatus(codes.Error, "panic")
			report, err = nil, apperror.NewInternal(fmt.Errorf("report pass panicked: %v", r))
		}
	}()

	channels, catalog, err := s.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load inputs")
		log.Errorw("failed to load report inputs", "error", err)
		return nil, err
	}

	report = s.engine.Compute(Inputs{Channels: channels, Catalog: catalog, Options: opts})
	report.PassID = passID
	report.GeneratedAt = s.now()

	span.SetAttributes(
		attribute.Int("report.documents", report.Counters.Documents),
		attribute.Int("report.lines", report.Counters.Lines),
		attribute.Int("report.products", len(report.Products)),
		attribute.Int("report.counterparties", len(report.Counterparties)),
	)
	log.Infow("report built",
		"documents_in", channels.Count(),
		"catalog_products", catalog.Len(),
		"notes", len(report.Notes),
		"duration", s.now().Sub(start),
	)
	return report, nil
}

// load fetches documents and catalog concurrently.
func (s *Service) load(ctx context.Context) (documents.Channels, *nomenclature.Catalog, error) {
	var (
		channels documents.Channels
		catalog  *nomenclature.Catalog
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(guard("documents", func() (err error) {
		channels, err = s.source.Documents(ctx)
		return err
	}))
	g.Go(guard("catalog", func() (err error) {
		catalog, err = s.source.Catalog(ctx)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return channels, catalog, nil
}

// guard turns a data-layer error into a data-source AppError and a panic in
// the loader goroutine into an internal one.
func guard(what string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = apperror.NewInternal(fmt.Errorf("%s loader panicked: %v", what, r))
			}
		}()
		if loadErr := fn(); loadErr != nil {
			return apperror.NewDataSource(what, loadErr)
		}
		return nil
	}
}

// PairLedger builds a report and returns the drill-down ledger of one pair.
func (s *Service) PairLedger(ctx context.Context, filter Filter, productID, counterpartyID string) ([]LedgerRow, error) {
	report, err := s.Build(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows, ok := report.PairLedger(productID, counterpartyID)
	if !ok {
		return nil, apperror.NewNotFound("pair", productID+"/"+counterpartyID)
	}
	return rows, nil
}

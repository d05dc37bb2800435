package reports

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boukir/internal/core/apperror"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/documents"
	"boukir/pkg/logger"
)

type fakeSource struct {
	channels   documents.Channels
	catalog    *nomenclature.Catalog
	docErr     error
	catalogErr error

	calls atomic.Int32
	gate  chan struct{}
}

func (f *fakeSource) Documents(ctx context.Context) (documents.Channels, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	return f.channels, f.docErr
}

func (f *fakeSource) Catalog(context.Context) (*nomenclature.Catalog, error) {
	return f.catalog, f.catalogErr
}

func newTestService(src Source) *Service {
	s := NewService(src, testEngine(), logger.NewNop())
	s.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestService_Build(t *testing.T) {
	svc := newTestService(&fakeSource{channels: mixedChannels()})

	report, err := svc.Build(context.Background(), DefaultFilter())
	require.NoError(t, err)
	assert.NotEmpty(t, report.PassID)
	assert.Equal(t, 2025, report.GeneratedAt.Year())
	assert.Equal(t, 7, report.Counters.Documents)
	assert.Equal(t, "Sales + Purchase orders + Credit notes", report.Options.Label())
}

func TestService_BuildAppliesPeriod(t *testing.T) {
	from := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	filter := DefaultFilter()
	filter.DateFrom, filter.DateTo = &from, &to

	report, err := newTestService(&fakeSource{channels: mixedChannels()}).Build(context.Background(), filter)
	require.NoError(t, err)

	// S2 (11th), K1 (12-01-25) and O1 (12th) only.
	assert.Equal(t, 3, report.Counters.Documents)
}

func TestService_BuildPeriodInLocalZones(t *testing.T) {
	// Bounds picked in the user's zones: the same calendar day, even though
	// the From instant falls after the To instant.
	from := time.Date(2025, 1, 11, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	to := time.Date(2025, 1, 11, 0, 0, 0, 0, time.FixedZone("UTC+1", 3600))
	filter := DefaultFilter()
	filter.DateFrom, filter.DateTo = &from, &to

	report, err := newTestService(&fakeSource{channels: mixedChannels()}).Build(context.Background(), filter)
	require.NoError(t, err)

	// S2 only.
	assert.Equal(t, 1, report.Counters.Documents)
}

func TestService_BuildRejectsInvalidFilters(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.Build(context.Background(), Filter{TopN: 5})
	assert.True(t, apperror.HasCode(err, apperror.CodeNoGroupEnabled))

	f := DefaultFilter()
	f.TopN = 5000
	_, err = svc.Build(context.Background(), f)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestService_BuildWrapsSourceErrors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := newTestService(&fakeSource{docErr: boom}).Build(context.Background(), DefaultFilter())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDataSource))
	assert.ErrorIs(t, err, boom)

	_, err = newTestService(&fakeSource{catalogErr: boom}).Build(context.Background(), DefaultFilter())
	assert.True(t, apperror.HasCode(err, apperror.CodeDataSource))
}

func TestService_ConcurrentIdenticalBuildsShareOnePass(t *testing.T) {
	src := &fakeSource{channels: mixedChannels(), gate: make(chan struct{})}
	svc := newTestService(src)

	const callers = 5
	var (
		wg      sync.WaitGroup
		reports = make([]*Report, callers)
		started sync.WaitGroup
	)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			r, err := svc.Build(context.Background(), DefaultFilter())
			assert.NoError(t, err)
			reports[i] = r
		}()
	}
	started.Wait()
	// Let the goroutines reach the singleflight group before releasing the load.
	time.Sleep(50 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for _, r := range reports {
		assert.Same(t, reports[0], r)
	}
}

func TestService_CancelledCaller(t *testing.T) {
	src := &fakeSource{channels: mixedChannels(), gate: make(chan struct{})}
	svc := newTestService(src)
	defer close(src.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Build(ctx, DefaultFilter())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_PairLedger(t *testing.T) {
	svc := newTestService(&fakeSource{channels: mixedChannels()})

	rows, err := svc.PairLedger(context.Background(), DefaultFilter(), "P1", "C1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[len(rows)-1].Balance.Equal(d("20")))

	_, err = svc.PairLedger(context.Background(), DefaultFilter(), "P1", "nobody")
	assert.True(t, apperror.IsNotFound(err))
}

type panickySource struct{ fakeSource }

func (p *panickySource) Documents(context.Context) (documents.Channels, error) {
	panic("driver bug")
}

func TestService_RecoversFromPanics(t *testing.T) {
	svc := newTestService(&panickySource{})

	_, err := svc.Build(context.Background(), DefaultFilter())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
	assert.Contains(t, err.Error(), "driver bug")
}

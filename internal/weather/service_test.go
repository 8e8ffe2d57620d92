package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/i474232898/farmerbuddy/internal/common"
)

type fakeProvider struct {
	snap      Snapshot
	samples   []Sample
	err       error
	lastCount int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Current(ctx context.Context, city string) (Snapshot, error) {
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snap, nil
}

func (f *fakeProvider) Forecast(ctx context.Context, city string, count int) ([]Sample, error) {
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	return f.samples, nil
}

func TestLookupCurrentLive(t *testing.T) {
	live := Snapshot{Temperature: 22, City: "Guntur", Country: "IN"}
	svc := NewService(&fakeProvider{snap: live}, time.UTC)

	res := svc.LookupCurrent(context.Background(), "Guntur")
	if res.Degraded() || res.Err != nil {
		t.Fatalf("unexpected degraded result: %+v", res)
	}
	if res.Snapshot != live {
		t.Fatalf("expected live snapshot, got %+v", res.Snapshot)
	}
}

func TestLookupCurrentFallbackKeepsCause(t *testing.T) {
	cases := []error{
		&common.StatusError{Code: 500},
		common.Transport(errors.New("dial tcp: no such host")),
		common.Shape("missing main"),
	}

	for _, cause := range cases {
		svc := NewService(&fakeProvider{err: cause}, time.UTC)
		res := svc.LookupCurrent(context.Background(), "Hyderabad")
		if !res.Degraded() {
			t.Fatalf("expected fallback for %v", cause)
		}
		if !errors.Is(res.Err, cause) {
			t.Fatalf("expected cause %v, got %v", cause, res.Err)
		}
		if res.Snapshot != FallbackSnapshot() {
			t.Fatalf("expected fallback snapshot, got %+v", res.Snapshot)
		}
	}
}

func TestLookupForecastDefaultsDays(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fp := &fakeProvider{samples: samplesAt(start, 3*time.Hour, 8, 30)}
	svc := NewService(fp, time.UTC)

	res := svc.LookupForecast(context.Background(), "Hyderabad", 0)
	if fp.lastCount != DefaultForecastDays*8 {
		t.Fatalf("expected cnt %d, got %d", DefaultForecastDays*8, fp.lastCount)
	}
	if res.Degraded() || len(res.Days) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLookupForecastEmptyListFallsBack(t *testing.T) {
	svc := NewService(&fakeProvider{samples: []Sample{}}, time.UTC)

	res := svc.LookupForecast(context.Background(), "Hyderabad", 3)
	if !res.Degraded() || !errors.Is(res.Err, common.ErrUnexpectedShape) {
		t.Fatalf("expected shape fallback, got %+v", res)
	}
	if len(res.Days) != 1 || res.Days[0].Date != "2025-07-25" {
		t.Fatalf("expected fallback day, got %+v", res.Days)
	}
}

func TestNilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, nil)
	if snap := svc.GetCurrentWeather(context.Background(), "Hyderabad"); snap != FallbackSnapshot() {
		t.Fatalf("expected fallback snapshot, got %+v", snap)
	}
	if days := svc.GetForecast(context.Background(), "Hyderabad", 5); len(days) != 1 {
		t.Fatalf("expected fallback forecast, got %+v", days)
	}
}

func TestStatusFailureLogsCodeAndBody(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	cause := &common.StatusError{Code: 401, Body: `{"message":"Invalid API key"}`}
	svc := NewService(&fakeProvider{err: cause}, time.UTC)
	svc.LookupCurrent(context.Background(), "Hyderabad")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != log.WarnLevel {
		t.Errorf("expected warn level, got %s", entry.Level)
	}
	if entry.Data["status"] != 401 || entry.Data["body"] != cause.Body {
		t.Errorf("expected status and body fields, got %v", entry.Data)
	}
}

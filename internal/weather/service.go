package weather

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/farmerbuddy/internal/common"
)

// samplesPerDay is the number of 3-hour forecast entries in a day.
const samplesPerDay = 8

// DefaultForecastDays is used when a caller asks for zero or fewer days.
const DefaultForecastDays = 5

// Service fetches weather through a Provider and never fails: every upstream
// problem is absorbed into the static fallback values.
type Service struct {
	provider Provider
	location *time.Location
}

// NewService creates a new Service. Dates and sunrise/sunset times are
// rendered in loc; a nil loc means time.Local.
func NewService(provider Provider, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		provider: provider,
		location: loc,
	}
}

// LookupCurrent fetches current conditions and reports whether the fallback
// record had to be used.
func (s *Service) LookupCurrent(ctx context.Context, city string) CurrentResult {
	if s.provider == nil {
		return s.currentFallback(city, errors.New("no weather provider configured"))
	}

	snap, err := s.provider.Current(ctx, city)
	if err != nil {
		return s.currentFallback(city, err)
	}
	return CurrentResult{Snapshot: snap, Source: SourceLive}
}

// GetCurrentWeather always returns a usable snapshot.
func (s *Service) GetCurrentWeather(ctx context.Context, city string) Snapshot {
	return s.LookupCurrent(ctx, city).Snapshot
}

// LookupForecast fetches days*8 samples and aggregates them per day.
func (s *Service) LookupForecast(ctx context.Context, city string, days int) ForecastResult {
	if days <= 0 {
		days = DefaultForecastDays
	}
	if s.provider == nil {
		return s.forecastFallback(city, errors.New("no weather provider configured"))
	}

	samples, err := s.provider.Forecast(ctx, city, days*samplesPerDay)
	if err != nil {
		return s.forecastFallback(city, err)
	}

	daily := AggregateDaily(samples, s.location)
	if len(daily) == 0 {
		return s.forecastFallback(city, common.Shape("forecast list is empty"))
	}
	return ForecastResult{Days: daily, Source: SourceLive}
}

// GetForecast always returns at least one day.
func (s *Service) GetForecast(ctx context.Context, city string, days int) []DailyForecast {
	return s.LookupForecast(ctx, city, days).Days
}

// GetFarmingAdvice derives tips from a snapshot. It makes no outbound call.
func (s *Service) GetFarmingAdvice(snap Snapshot) []string {
	return FarmingAdvice(snap)
}

func (s *Service) currentFallback(city string, err error) CurrentResult {
	logFailure("current weather", city, err)
	return CurrentResult{Snapshot: FallbackSnapshot(), Source: SourceFallback, Err: err}
}

func (s *Service) forecastFallback(city string, err error) ForecastResult {
	logFailure("forecast", city, err)
	return ForecastResult{Days: FallbackForecast(), Source: SourceFallback, Err: err}
}

func logFailure(what, city string, err error) {
	entry := log.WithFields(log.Fields{
		"city":  city,
		"class": common.Class(err),
	})

	var se *common.StatusError
	switch {
	case errors.As(err, &se):
		entry.WithFields(log.Fields{"status": se.Code, "body": se.Body}).Warnf("%s: provider returned non-success status; using fallback", what)
	case errors.Is(err, common.ErrUnexpectedShape):
		entry.Warnf("%s: unexpected provider payload; using fallback: %v", what, err)
	default:
		entry.Errorf("%s: provider call failed; using fallback: %v", what, err)
	}
}

package weather

import (
	"context"
)

// Provider abstracts the weather API behind the service (OpenWeatherMap today).
// Implementations perform exactly one outbound request per call and classify
// failures with the errors in internal/common.
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (Snapshot, error)
	// Forecast returns up to count 3-hour samples in the order the API sent them.
	Forecast(ctx context.Context, city string, count int) ([]Sample, error)
}

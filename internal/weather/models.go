package weather

import (
	"fmt"
	"time"
)

// Source tells whether a value came from the provider or from the static fallback.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Snapshot is the normalized view of current conditions for a city.
type Snapshot struct {
	Temperature int     `json:"temperature"` // °C
	FeelsLike   int     `json:"feels_like"`  // °C
	Humidity    int     `json:"humidity"`    // %
	Pressure    int     `json:"pressure"`    // hPa
	Description string  `json:"description"`
	WindSpeed   int     `json:"wind_speed"` // km/h
	Visibility  float64 `json:"visibility"` // km
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Sunrise     string  `json:"sunrise"` // HH:MM local
	Sunset      string  `json:"sunset"`  // HH:MM local
	Icon        string  `json:"icon"`
}

// String renders the snapshot as a single line for prompts and logs.
func (s Snapshot) String() string {
	return fmt.Sprintf("%s, %s: %d°C (feels like %d°C), %s, humidity %d%%, pressure %d hPa, wind %d km/h, visibility %g km, sunrise %s, sunset %s",
		s.City, s.Country, s.Temperature, s.FeelsLike, s.Description, s.Humidity, s.Pressure, s.WindSpeed, s.Visibility, s.Sunrise, s.Sunset)
}

// Sample is a single 3-hour forecast entry after unit normalization.
type Sample struct {
	Time        time.Time
	Temperature float64
	Humidity    float64
	HasRain     bool    // the entry carried a rain block
	Rain3h      float64 // mm over the 3-hour window
	Description string
	Icon        string
}

// DailyForecast summarizes all samples that fall on one calendar date.
type DailyForecast struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Day         string  `json:"day"`
	MaxTemp     int     `json:"max_temp"`
	MinTemp     int     `json:"min_temp"`
	AvgHumidity int     `json:"avg_humidity"`
	RainChance  int     `json:"rain_chance"` // %
	TotalRain   float64 `json:"total_rain"`  // mm
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// CurrentResult is the discriminated outcome of a current-conditions lookup.
// Err is set only when Source is SourceFallback.
type CurrentResult struct {
	Snapshot Snapshot
	Source   Source
	Err      error
}

// Degraded reports whether the fallback record was used.
func (r CurrentResult) Degraded() bool { return r.Source == SourceFallback }

// ForecastResult is the discriminated outcome of a forecast lookup.
type ForecastResult struct {
	Days   []DailyForecast
	Source Source
	Err    error
}

// Degraded reports whether the fallback forecast was used.
func (r ForecastResult) Degraded() bool { return r.Source == SourceFallback }

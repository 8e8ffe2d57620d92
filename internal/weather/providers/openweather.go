package providers

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/farmerbuddy/internal/common"
	"github.com/i474232898/farmerbuddy/internal/weather"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherBaseURL = "http://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name     string
	apiKey   string
	client   *resty.Client
	location *time.Location
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)

// NewOpenWeatherProvider creates a provider. The API key is not validated: a
// missing key surfaces as a 401 from the API. Sunrise and sunset are
// rendered in loc (time.Local when nil).
func NewOpenWeatherProvider(cfg HTTPClientConfig, apiKey string, loc *time.Location) *OpenWeatherProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	if loc == nil {
		loc = time.Local
	}

	return &OpenWeatherProvider{
		name:     "openweathermap",
		apiKey:   apiKey,
		client:   common.NewRestClient(cfg.Client, baseURL),
		location: loc,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type owCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type owCurrentPayload struct {
	Name *string `json:"name"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []owCondition `json:"weather"`
	Wind    *struct {
		Speed *float64 `json:"speed"` // m/s
	} `json:"wind"`
	Visibility float64 `json:"visibility"` // m, optional
	Sys        *struct {
		Country *string `json:"country"`
		Sunrise *int64  `json:"sunrise"`
		Sunset  *int64  `json:"sunset"`
	} `json:"sys"`
}

// missingField names the first required field absent from the current payload.
func (c *owCurrentPayload) missingField() string {
	switch {
	case c.Name == nil:
		return "name"
	case c.Main == nil:
		return "main"
	case c.Main.Temp == nil:
		return "main.temp"
	case c.Main.FeelsLike == nil:
		return "main.feels_like"
	case c.Main.Humidity == nil:
		return "main.humidity"
	case c.Main.Pressure == nil:
		return "main.pressure"
	case c.Wind == nil || c.Wind.Speed == nil:
		return "wind.speed"
	case c.Sys == nil:
		return "sys"
	case c.Sys.Country == nil:
		return "sys.country"
	case c.Sys.Sunrise == nil:
		return "sys.sunrise"
	case c.Sys.Sunset == nil:
		return "sys.sunset"
	}
	return missingCondition(c.Weather)
}

func missingCondition(conds []owCondition) string {
	switch {
	case len(conds) == 0:
		return "weather[0]"
	case conds[0].Description == nil:
		return "weather[0].description"
	case conds[0].Icon == nil:
		return "weather[0].icon"
	}
	return ""
}

// Current fetches /weather for the city in metric units.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (weather.Snapshot, error) {
	var payload owCurrentPayload
	err := getJSON(ctx, p.client, "/weather", map[string]string{
		"q":     city,
		"appid": p.apiKey,
		"units": "metric",
	}, &payload)
	if err != nil {
		return weather.Snapshot{}, err
	}
	if f := payload.missingField(); f != "" {
		return weather.Snapshot{}, common.Shape("current weather: missing %s", f)
	}

	cond := payload.Weather[0]
	return weather.Snapshot{
		Temperature: round(*payload.Main.Temp),
		FeelsLike:   round(*payload.Main.FeelsLike),
		Humidity:    round(*payload.Main.Humidity),
		Pressure:    round(*payload.Main.Pressure),
		Description: titleCase(*cond.Description),
		WindSpeed:   round(*payload.Wind.Speed * 3.6),
		Visibility:  payload.Visibility / 1000,
		City:        *payload.Name,
		Country:     *payload.Sys.Country,
		Sunrise:     p.clock(*payload.Sys.Sunrise),
		Sunset:      p.clock(*payload.Sys.Sunset),
		Icon:        *cond.Icon,
	}, nil
}

type owForecastItem struct {
	Dt   *int64 `json:"dt"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Rain *struct {
		ThreeH float64 `json:"3h"`
	} `json:"rain"`
	Weather []owCondition `json:"weather"`
}

// missingField names the first required field absent from a forecast item.
func (it *owForecastItem) missingField() string {
	switch {
	case it.Dt == nil:
		return "dt"
	case it.Main == nil:
		return "main"
	case it.Main.Temp == nil:
		return "main.temp"
	case it.Main.Humidity == nil:
		return "main.humidity"
	}
	return missingCondition(it.Weather)
}

type owForecastPayload struct {
	List *[]owForecastItem `json:"list"`
}

// Forecast fetches /forecast with cnt=count and returns the samples in order.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string, count int) ([]weather.Sample, error) {
	var payload owForecastPayload
	err := getJSON(ctx, p.client, "/forecast", map[string]string{
		"q":     city,
		"appid": p.apiKey,
		"units": "metric",
		"cnt":   strconv.Itoa(count),
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.List == nil {
		return nil, common.Shape("forecast: missing list")
	}

	items := *payload.List
	samples := make([]weather.Sample, 0, len(items))
	for i, item := range items {
		if f := item.missingField(); f != "" {
			return nil, common.Shape("forecast: list[%d] missing %s", i, f)
		}

		s := weather.Sample{
			Time:        time.Unix(*item.Dt, 0).In(p.location),
			Temperature: *item.Main.Temp,
			Humidity:    *item.Main.Humidity,
			Description: titleCase(*item.Weather[0].Description),
			Icon:        *item.Weather[0].Icon,
		}
		if item.Rain != nil {
			s.HasRain = true
			s.Rain3h = item.Rain.ThreeH
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (p *OpenWeatherProvider) clock(unix int64) string {
	return time.Unix(unix, 0).In(p.location).Format("15:04")
}

func round(v float64) int {
	return int(math.RoundToEven(v))
}

// titleCase upper-cases the first letter of each word ("light rain" -> "Light Rain").
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

package weather

import (
	"math"
	"time"
)

// MaxForecastDays caps how many daily summaries a forecast returns.
const MaxForecastDays = 5

// AggregateDaily groups samples by calendar date (in loc) in arrival order and
// reduces each group into a DailyForecast. A new group starts whenever the date
// differs from the previous sample's date. At most MaxForecastDays are returned.
func AggregateDaily(samples []Sample, loc *time.Location) []DailyForecast {
	if loc == nil {
		loc = time.Local
	}

	var (
		days    []DailyForecast
		group   []Sample
		current string
	)

	for _, s := range samples {
		date := s.Time.In(loc).Format("2006-01-02")
		if date != current {
			if len(group) > 0 {
				days = append(days, reduceDay(group, loc))
			}
			current = date
			group = nil
		}
		group = append(group, s)
	}
	if len(group) > 0 {
		days = append(days, reduceDay(group, loc))
	}

	if len(days) > MaxForecastDays {
		days = days[:MaxForecastDays]
	}
	return days
}

// reduceDay folds one non-empty day of samples.
func reduceDay(group []Sample, loc *time.Location) DailyForecast {
	maxTemp, minTemp := math.Inf(-1), math.Inf(1)
	var (
		sumHum    float64
		totalRain float64
		rainy     int
	)

	for _, s := range group {
		maxTemp = math.Max(maxTemp, s.Temperature)
		minTemp = math.Min(minTemp, s.Temperature)
		sumHum += s.Humidity
		if s.HasRain {
			rainy++
			totalRain += s.Rain3h
		}
	}

	n := float64(len(group))
	mid := group[len(group)/2]
	day := group[0].Time.In(loc)

	return DailyForecast{
		Date:        day.Format("2006-01-02"),
		Day:         day.Weekday().String(),
		MaxTemp:     roundInt(maxTemp),
		MinTemp:     roundInt(minTemp),
		AvgHumidity: roundInt(sumHum / n),
		RainChance:  roundInt(float64(rainy) / n * 100),
		TotalRain:   math.RoundToEven(totalRain*10) / 10,
		Description: mid.Description,
		Icon:        mid.Icon,
	}
}

// roundInt rounds half to even.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

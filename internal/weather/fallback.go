package weather

// FallbackSnapshot is returned whenever current conditions cannot be fetched.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		Temperature: 30,
		FeelsLike:   33,
		Humidity:    65,
		Pressure:    1013,
		Description: "Clear Sky",
		WindSpeed:   12,
		Visibility:  10,
		City:        "Hyderabad",
		Country:     "IN",
		Sunrise:     "06:00",
		Sunset:      "18:30",
		Icon:        "01d",
	}
}

// FallbackForecast is returned whenever the forecast cannot be fetched.
func FallbackForecast() []DailyForecast {
	return []DailyForecast{
		{
			Date:        "2025-07-25",
			Day:         "Friday",
			MaxTemp:     32,
			MinTemp:     24,
			AvgHumidity: 70,
			RainChance:  20,
			TotalRain:   0,
			Description: "Partly Cloudy",
			Icon:        "02d",
		},
	}
}

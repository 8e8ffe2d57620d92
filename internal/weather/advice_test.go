package weather

import (
	"reflect"
	"testing"
)

func TestFarmingAdvice(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want []string
	}{
		{
			name: "heat only",
			snap: Snapshot{Temperature: 36, Humidity: 50, Description: "clear", WindSpeed: 10},
			want: []string{TipHeat},
		},
		{
			name: "rain then wind",
			snap: Snapshot{Temperature: 20, Humidity: 50, Description: "light rain", WindSpeed: 30},
			want: []string{TipRain, TipWind},
		},
		{
			name: "cold and dry",
			snap: Snapshot{Temperature: 10, Humidity: 30, Description: "Clear Sky", WindSpeed: 5},
			want: []string{TipCold, TipDryAir},
		},
		{
			name: "rain wins over dry air",
			snap: Snapshot{Temperature: 25, Humidity: 20, Description: "Moderate Rain", WindSpeed: 5},
			want: []string{TipRain},
		},
		{
			name: "all three",
			snap: Snapshot{Temperature: 40, Humidity: 80, Description: "Heavy Intensity Rain", WindSpeed: 26},
			want: []string{TipHeat, TipRain, TipWind},
		},
		{
			name: "boundaries do not fire",
			snap: Snapshot{Temperature: 35, Humidity: 40, Description: "haze", WindSpeed: 25},
			want: []string{TipFavourable},
		},
		{
			name: "fallback record",
			snap: FallbackSnapshot(),
			want: []string{TipFavourable},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FarmingAdvice(tc.snap)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FarmingAdvice() = %q, want %q", got, tc.want)
			}
		})
	}
}

package assistant

import (
	"strings"
	"time"
)

// Season is an Indian cropping season.
type Season string

const (
	Kharif Season = "kharif" // June-October, monsoon sown
	Rabi   Season = "rabi"   // November-March, winter sown
	Summer Season = "summer" // April-May
)

// Seasons lists every season in calendar order of their start.
var Seasons = []Season{Kharif, Rabi, Summer}

// SeasonForMonth maps a month to its season.
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.June, time.July, time.August, time.September, time.October:
		return Kharif
	case time.November, time.December, time.January, time.February, time.March:
		return Rabi
	default:
		return Summer
	}
}

// CurrentSeason is the season at t.
func CurrentSeason(t time.Time) Season {
	return SeasonForMonth(t.Month())
}

// ParseSeason accepts a season name in any case.
func ParseSeason(s string) (Season, bool) {
	season := Season(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Seasons {
		if season == known {
			return season, true
		}
	}
	return "", false
}

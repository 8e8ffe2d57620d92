package weather

import "github.com/i474232898/farmerbuddy/internal/common"

// Advice tips, in the order they can appear.
const (
	TipHeat       = "🌡️ बहुत गर्मी है - फसलों की अतिरिक्त सिंचाई करें"
	TipCold       = "❄️ ठंड है - फसलों को ठंड से बचाने के उपाय करें"
	TipRain       = "🌧️ बारिश होने वाली है - खेत की जल निकासी चेक करें"
	TipDryAir     = "💧 हवा में नमी कम है - सिंचाई की योजना बनाएं"
	TipWind       = "💨 तेज हवा है - फसल को सहारा दें"
	TipFavourable = "🌱 मौसम खेती के लिए अनुकूल है"
)

// Thresholds for the advisory rules.
const (
	hotAboveC     = 35
	coldBelowC    = 15
	dryBelowPct   = 40
	windyAboveKmh = 25
)

// FarmingAdvice maps a snapshot to short farming tips. Temperature, then
// rain/humidity, then wind are checked independently and appended in that
// order. When nothing fires the single favourable tip is returned.
func FarmingAdvice(s Snapshot) []string {
	var advice []string

	switch {
	case s.Temperature > hotAboveC:
		advice = append(advice, TipHeat)
	case s.Temperature < coldBelowC:
		advice = append(advice, TipCold)
	}

	switch {
	case common.HasAny(s.Description, "rain"):
		advice = append(advice, TipRain)
	case s.Humidity < dryBelowPct:
		advice = append(advice, TipDryAir)
	}

	if s.WindSpeed > windyAboveKmh {
		advice = append(advice, TipWind)
	}

	if len(advice) == 0 {
		return []string{TipFavourable}
	}
	return advice
}

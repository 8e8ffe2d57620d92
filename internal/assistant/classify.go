package assistant

import "github.com/i474232898/farmerbuddy/internal/common"

// Hint names the banner the presentation layer may show next to an answer.
type Hint string

const (
	HintNone    Hint = ""
	HintWeather Hint = "weather"
	HintMarket  Hint = "market"
)

// IsMarketQuery reports whether text mentions any market keyword.
func (s *Service) IsMarketQuery(text string) bool {
	return common.HasAny(text, s.knowledge.Keywords.Market...)
}

// IsWeatherQuery reports whether text mentions any weather keyword.
func (s *Service) IsWeatherQuery(text string) bool {
	return common.HasAny(text, s.knowledge.Keywords.Weather...)
}

// HintFor picks one banner for a question. Weather is checked before market.
func (s *Service) HintFor(text string) Hint {
	switch {
	case s.IsWeatherQuery(text):
		return HintWeather
	case s.IsMarketQuery(text):
		return HintMarket
	default:
		return HintNone
	}
}

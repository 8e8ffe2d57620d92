package assistant

import (
	"fmt"
	"strings"
)

// QuickKind selects a canned reply.
type QuickKind string

const (
	QuickGreeting           QuickKind = "greeting"
	QuickCropRecommendation QuickKind = "crop_recommendation"
	QuickMarketPrices       QuickKind = "market_prices"
)

// Canned replies that need no model call.
const (
	greetingReply = "नमस्ते! मैं FarmerBuddy हूँ। मैं आपकी खेती में मदद कर सकता हूँ। आप क्या जानना चाहते हैं?"
	genericReply  = "कृपया अपना सवाल पूछें, मैं आपकी मदद करूंगा।"
)

// QuickReply returns a templated reply for kind. Unknown kinds get the
// generic "please ask your question" reply.
func (s *Service) QuickReply(kind QuickKind, location string) string {
	location = s.locationOrDefault(location)

	switch kind {
	case QuickGreeting:
		return greetingReply
	case QuickCropRecommendation:
		season := CurrentSeason(s.now())
		crops := s.knowledge.Crops[season]
		if len(crops) > 3 {
			crops = crops[:3]
		}
		return fmt.Sprintf("इस %s सीजन में %s के लिए सबसे अच्छी फसलें हैं: %s", season, location, strings.Join(crops, ", "))
	case QuickMarketPrices:
		return fmt.Sprintf("आज के भाव: चावल %s, कपास %s, मूंगफली %s",
			s.knowledge.Price("rice"), s.knowledge.Price("cotton"), s.knowledge.Price("groundnut"))
	default:
		return genericReply
	}
}

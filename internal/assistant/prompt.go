package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/farmerbuddy/internal/weather"
)

// systemPrompt renders the persona and the static context for one call.
func (s *Service) systemPrompt(now time.Time) string {
	season := CurrentSeason(now)

	var prices strings.Builder
	for _, p := range s.knowledge.MarketPrices {
		fmt.Fprintf(&prices, "- %s: %s\n", p.Crop, p.Price)
	}

	return fmt.Sprintf(`You are FarmerBuddy, an expert agricultural assistant for Indian farmers, especially in Telangana and Andhra Pradesh regions.

Current Context:
- Date: %s
- Current Season: %s
- Region Focus: Telangana, Andhra Pradesh (but can help with all of India)

Your Knowledge:
- Crop recommendations for different seasons
- Weather-based farming advice
- Market prices and trends
- Pest management (basic)
- Soil management
- Government schemes for farmers

Guidelines:
- Always be helpful, practical, and encouraging
- Give specific advice when possible
- Mention relevant government schemes when applicable
- Use simple language that farmers can understand
- Include local crop varieties and practices
- If asked about market prices, use the current data provided
- Always consider the current season in your recommendations

Current Market Prices:
%s
Current Season Crops: %s

Respond in a friendly, knowledgeable manner as if you're talking to a farmer friend.`,
		now.Format("January 2006"),
		season,
		prices.String(),
		strings.Join(s.knowledge.Crops[season], ", "),
	)
}

// buildPrompt appends the per-question context to the system prompt.
// current may be nil.
func (s *Service) buildPrompt(now time.Time, question string, current *weather.Snapshot, location string) string {
	var b strings.Builder
	b.WriteString(s.systemPrompt(now))
	b.WriteString("\n")
	fmt.Fprintf(&b, "User Location: %s\n", location)
	if current != nil {
		fmt.Fprintf(&b, "Current Weather: %s\n", current.String())
	}
	fmt.Fprintf(&b, "User Question: %s", question)
	return b.String()
}

// cropPrompt is the question sent for crop recommendations.
func cropPrompt(season Season, crops []string, location string) string {
	q := fmt.Sprintf("Give me the top 3 best crops to plant in %s season in %s. Consider current market demand, weather suitability, and profitability. Be specific and practical.", season, location)
	if len(crops) > 0 {
		q += fmt.Sprintf(" Crops commonly grown this season: %s.", strings.Join(crops, ", "))
	}
	return q
}

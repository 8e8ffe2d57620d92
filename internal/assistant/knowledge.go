package assistant

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// PriceEntry is one static market price quote.
type PriceEntry struct {
	Crop  string `yaml:"crop" json:"crop"`
	Price string `yaml:"price" json:"price"`
}

// Keywords are the substrings used to classify a question.
type Keywords struct {
	Market  []string `yaml:"market"`
	Weather []string `yaml:"weather"`
}

// Knowledge is the static farm data embedded in prompts and quick replies.
type Knowledge struct {
	Crops        map[Season][]string `yaml:"crops"`
	MarketPrices []PriceEntry        `yaml:"market_prices"`
	Keywords     Keywords            `yaml:"keywords"`
}

// ParseKnowledge decodes and validates a knowledge document.
func ParseKnowledge(data []byte) (*Knowledge, error) {
	var k Knowledge
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("parse knowledge: %w", err)
	}
	for _, s := range Seasons {
		if len(k.Crops[s]) == 0 {
			return nil, fmt.Errorf("knowledge: no crops listed for %s season", s)
		}
	}
	return &k, nil
}

// DefaultKnowledge returns the embedded knowledge document.
func DefaultKnowledge() (*Knowledge, error) {
	return ParseKnowledge(defaultKnowledge)
}

// LoadKnowledge reads a knowledge document from path, or the embedded one
// when path is empty.
func LoadKnowledge(path string) (*Knowledge, error) {
	if path == "" {
		return DefaultKnowledge()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return ParseKnowledge(data)
}

// Price returns the quoted price for crop, or "" when unknown.
func (k *Knowledge) Price(crop string) string {
	for _, p := range k.MarketPrices {
		if p.Crop == crop {
			return p.Price
		}
	}
	return ""
}

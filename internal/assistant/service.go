package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/farmerbuddy/internal/common"
	"github.com/i474232898/farmerbuddy/internal/llm"
	"github.com/i474232898/farmerbuddy/internal/weather"
)

// DefaultLocation is assumed when a caller does not name one.
const DefaultLocation = "Telangana"

// Replies used when the model cannot answer.
const (
	formatChangedReply = "Sorry, the AI service response format changed."
	apologyReply       = "मुझे खुशी से आपकी मदद करनी चाहिए, लेकिन अभी कुछ तकनीकी समस्या है। कृपया फिर से कोशिश करें। / Sorry, I couldn't get an answer right now because of a technical problem. Please try again. (Error: %v)"
)

// Reply is the outcome of one question. Degraded is true when Text is a
// canned failure message rather than a model answer.
type Reply struct {
	Text     string
	Degraded bool
	Err      error
}

// Service answers farmer questions through a language model.
// It holds only configuration and read-only tables.
type Service struct {
	generator       llm.Generator
	knowledge       *Knowledge
	now             func() time.Time
	defaultLocation string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used for the season and the date stamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDefaultLocation overrides DefaultLocation.
func WithDefaultLocation(location string) Option {
	return func(s *Service) {
		if location != "" {
			s.defaultLocation = location
		}
	}
}

// NewService creates a new Service. A nil knowledge uses the embedded document.
func NewService(generator llm.Generator, knowledge *Knowledge, opts ...Option) (*Service, error) {
	if knowledge == nil {
		k, err := DefaultKnowledge()
		if err != nil {
			return nil, err
		}
		knowledge = k
	}

	s := &Service{
		generator:       generator,
		knowledge:       knowledge,
		now:             time.Now,
		defaultLocation: DefaultLocation,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Ask sends the question with its context to the model. Every failure is
// turned into a displayable Reply; nothing is returned as an error.
// current may be nil.
func (s *Service) Ask(ctx context.Context, question string, current *weather.Snapshot, location string) Reply {
	location = s.locationOrDefault(location)

	if s.generator == nil {
		err := errors.New("no language model configured")
		return Reply{Text: fmt.Sprintf(apologyReply, err), Degraded: true, Err: err}
	}

	prompt := s.buildPrompt(s.now(), question, current, location)
	text, err := s.generator.Generate(ctx, prompt)
	if err == nil {
		return Reply{Text: text}
	}

	entry := log.WithFields(log.Fields{
		"provider": s.generator.Name(),
		"class":    common.Class(err),
	})
	if errors.Is(err, common.ErrUnexpectedShape) {
		entry.Warnf("assistant: unexpected model response: %v", err)
		return Reply{Text: formatChangedReply, Degraded: true, Err: err}
	}

	entry.Errorf("assistant: model call failed: %v", err)
	return Reply{Text: fmt.Sprintf(apologyReply, err), Degraded: true, Err: err}
}

// Respond is Ask reduced to its text.
func (s *Service) Respond(ctx context.Context, question string, current *weather.Snapshot, location string) string {
	return s.Ask(ctx, question, current, location).Text
}

// RecommendCrops asks the model for the top 3 crops for season, or for the
// current season when season is empty.
func (s *Service) RecommendCrops(ctx context.Context, season Season, location string) string {
	return s.AskCrops(ctx, season, location).Text
}

// AskCrops is RecommendCrops with the degraded flag kept.
func (s *Service) AskCrops(ctx context.Context, season Season, location string) Reply {
	if season == "" {
		season = CurrentSeason(s.now())
	}
	location = s.locationOrDefault(location)
	return s.Ask(ctx, cropPrompt(season, s.knowledge.Crops[season], location), nil, location)
}

// Season is the current season.
func (s *Service) Season() Season {
	return CurrentSeason(s.now())
}

// Crops returns the crop list for season.
func (s *Service) Crops(season Season) []string {
	return append([]string(nil), s.knowledge.Crops[season]...)
}

// MarketPrices returns the static price table in its configured order.
func (s *Service) MarketPrices() []PriceEntry {
	return append([]PriceEntry(nil), s.knowledge.MarketPrices...)
}

func (s *Service) locationOrDefault(location string) string {
	if location == "" {
		return s.defaultLocation
	}
	return location
}

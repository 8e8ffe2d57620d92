package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/farmerbuddy/internal/assistant"
	"github.com/i474232898/farmerbuddy/internal/weather"
)

var validate = validator.New()

// Deps are the services the routes compose. Neither service depends on the other.
type Deps struct {
	Weather   *weather.Service
	Assistant *assistant.Service

	DefaultCity     string
	DefaultLocation string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c, deps.DefaultCity)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := deps.Weather.LookupCurrent(c.UserContext(), q.City)
		return c.JSON(fiber.Map{
			"weather": res.Snapshot,
			"source":  res.Source,
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var q forecastQuery
		if err := q.bind(c, deps.DefaultCity); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := deps.Weather.LookupForecast(c.UserContext(), q.City, q.Days)
		return c.JSON(fiber.Map{
			"city":     q.City,
			"days":     q.Days,
			"source":   res.Source,
			"forecast": res.Days,
		})
	})

	v1.Get("/weather/advice", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c, deps.DefaultCity)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := deps.Weather.LookupCurrent(c.UserContext(), q.City)
		return c.JSON(fiber.Map{
			"weather": res.Snapshot,
			"source":  res.Source,
			"advice":  deps.Weather.GetFarmingAdvice(res.Snapshot),
		})
	})

	v1.Post("/assistant/ask", func(c *fiber.Ctx) error {
		var req askRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		req.Question = strings.TrimSpace(req.Question)
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.City == "" {
			req.City = deps.DefaultCity
		}
		if req.Location == "" {
			req.Location = deps.DefaultLocation
		}

		current := deps.Weather.LookupCurrent(c.UserContext(), req.City)
		reply := deps.Assistant.Ask(c.UserContext(), req.Question, &current.Snapshot, req.Location)

		return c.JSON(fiber.Map{
			"answer":         reply.Text,
			"degraded":       reply.Degraded,
			"hint":           deps.Assistant.HintFor(req.Question),
			"weather":        current.Snapshot,
			"weather_source": current.Source,
		})
	})

	v1.Post("/assistant/crops", func(c *fiber.Ctx) error {
		var req cropsRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		req.Season = strings.ToLower(strings.TrimSpace(req.Season))
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Location == "" {
			req.Location = deps.DefaultLocation
		}

		season := assistant.Season(req.Season)
		if season == "" {
			season = deps.Assistant.Season()
		}
		reply := deps.Assistant.AskCrops(c.UserContext(), season, req.Location)

		return c.JSON(fiber.Map{
			"season":   season,
			"crops":    deps.Assistant.Crops(season),
			"answer":   reply.Text,
			"degraded": reply.Degraded,
		})
	})

	v1.Get("/assistant/quick/:kind", func(c *fiber.Ctx) error {
		location := c.Query("location", deps.DefaultLocation)
		kind := assistant.QuickKind(c.Params("kind"))
		return c.JSON(fiber.Map{
			"kind":  kind,
			"reply": deps.Assistant.QuickReply(kind, location),
		})
	})

	v1.Get("/market/prices", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"season": deps.Assistant.Season(),
			"prices": deps.Assistant.MarketPrices(),
		})
	})
}

// cityQuery holds the city a weather lookup is for.
type cityQuery struct {
	City string `validate:"required,max=100"`
}

func parseCityQuery(c *fiber.Ctx, def string) (cityQuery, error) {
	q := cityQuery{City: strings.TrimSpace(c.Query("city", def))}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	City string `validate:"required,max=100"`
	Days int    `validate:"min=1,max=5"`
}

func (f *forecastQuery) bind(c *fiber.Ctx, defCity string) error {
	f.City = strings.TrimSpace(c.Query("city", defCity))
	f.Days = weather.DefaultForecastDays

	if s := c.Query("days"); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("days must be an integer")
		}
		f.Days = days
	}
	return nil
}

type askRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Location string `json:"location" validate:"max=100"`
	City     string `json:"city" validate:"max=100"`
}

type cropsRequest struct {
	Season   string `json:"season" validate:"omitempty,oneof=kharif rabi summer"`
	Location string `json:"location" validate:"max=100"`
}

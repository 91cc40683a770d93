package routes

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/opaltrip/opaltrip/pkg/tfnsw"
	"github.com/opaltrip/opaltrip/pkg/translations"
	"github.com/opaltrip/opaltrip/pkg/util"
)

var validate = validator.New()

type tripPlanRequest struct {
	FromLocation  string `query:"from_location" validate:"required"`
	ToLocation    string `query:"to_location" validate:"required"`
	DepartureTime string `query:"departure_time"`
	ArrivalTime   string `query:"arrival_time"`
	LanguageCode  string `query:"language_code"`
}

func getTripPlan(dependencies Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		request := tripPlanRequest{LanguageCode: translations.DefaultLanguage}

		if err := c.QueryParser(&request); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Could not parse query parameters",
			})
		}

		if err := validate.Struct(request); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameters from_location and to_location are required",
			})
		}

		if request.DepartureTime != "" && request.ArrivalTime != "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameters departure_time and arrival_time are mutually exclusive",
			})
		}

		query := tfnsw.TripPlanQuery{
			Origin:      request.FromLocation,
			Destination: request.ToLocation,
		}

		if request.DepartureTime != "" {
			departAt, err := util.ParseAPITime(request.DepartureTime)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Parameter departure_time should be an RFC3339/ISO8601 datetime",
				})
			}

			query.DepartAt = departAt
		}

		if request.ArrivalTime != "" {
			arriveBy, err := util.ParseAPITime(request.ArrivalTime)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Parameter arrival_time should be an RFC3339/ISO8601 datetime",
				})
			}

			query.ArriveBy = arriveBy
		}

		response, err := dependencies.Upstream.TripPlan(c.Context(), query)
		if err != nil {
			return upstreamError(c, err)
		}

		result := dependencies.Formatter.FormatTripResponse(c.Context(), response, request.LanguageCode)

		resultReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, result)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce journeys",
			})
		}

		return c.JSON(resultReduced)
	}
}

// upstreamError reports trip planner failures, keeping the distinct
// authentication statuses visible to the caller.
func upstreamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tfnsw.ErrUnauthorized):
		c.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, tfnsw.ErrForbidden):
		c.SendStatus(fiber.StatusForbidden)
	default:
		c.SendStatus(fiber.StatusBadGateway)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/opaltrip/opaltrip/pkg/tfnsw"
)

type serviceAlert struct {
	ID            string          `json:"id"`
	Priority      string          `json:"priority"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	AffectedStops []affectedEntry `json:"affected_stops"`
	AffectedLines []affectedEntry `json:"affected_lines"`
}

type affectedEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
}

func getServiceAlerts(dependencies Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromLocation := c.Query("from_location")
		toLocation := c.Query("to_location")

		if fromLocation == "" || toLocation == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameters from_location and to_location are required",
			})
		}

		fromStopID, err := dependencies.Upstream.FindStopID(c.Context(), fromLocation)
		if err != nil {
			return stopLookupError(c, err)
		}

		toStopID, err := dependencies.Upstream.FindStopID(c.Context(), toLocation)
		if err != nil {
			return stopLookupError(c, err)
		}

		alerts, err := dependencies.Upstream.ServiceAlerts(c.Context(), []string{fromStopID, toStopID}, time.Now())
		if err != nil {
			return upstreamError(c, err)
		}

		response := make([]serviceAlert, 0, len(alerts))
		for _, alert := range alerts {
			response = append(response, simplifyAlert(alert))
		}

		return c.JSON(response)
	}
}

// stopLookupError reports a failed stop name resolution. Authentication
// failures keep their own statuses; anything else means the stop could not
// be matched and is the caller's mistake.
func stopLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, tfnsw.ErrUnauthorized) || errors.Is(err, tfnsw.ErrForbidden) {
		return upstreamError(c, err)
	}

	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": "Could not find specified stops, check the stop names",
	})
}

func simplifyAlert(alert tfnsw.ServiceAlert) serviceAlert {
	simplified := serviceAlert{
		ID:            alert.ID,
		Priority:      alert.Priority,
		Title:         alert.Subtitle,
		Content:       alert.Content,
		AffectedStops: []affectedEntry{},
		AffectedLines: []affectedEntry{},
	}

	for _, stop := range alert.Affected.Stops {
		simplified.AffectedStops = append(simplified.AffectedStops, affectedEntry{
			ID:   stop.ID,
			Name: stop.Name,
		})
	}

	for _, line := range alert.Affected.Lines {
		simplified.AffectedLines = append(simplified.AffectedLines, affectedEntry{
			ID:     line.ID,
			Name:   line.Name,
			Number: line.Number,
		})
	}

	return simplified
}

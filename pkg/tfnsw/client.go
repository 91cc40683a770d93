package tfnsw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/opaltrip/opaltrip/pkg/util"
)

const defaultBaseURL = "https://api.transport.nsw.gov.au/v1/tp"

// apiVersion pins the trip planner API contract the response types were
// written against.
const apiVersion = "10.2.1.42"

const maxRetries = 3

// Client talks to the Transport for NSW trip planner API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient builds a client from the environment. OPALTRIP_TFNSW_API_KEY
// carries the API key and OPALTRIP_TFNSW_API_BASE_URL optionally points at a
// different deployment.
func NewClient() *Client {
	env := util.GetEnvironmentVariables()

	baseURL := defaultBaseURL
	if env["OPALTRIP_TFNSW_API_BASE_URL"] != "" {
		baseURL = env["OPALTRIP_TFNSW_API_BASE_URL"]
	}

	return &Client{
		BaseURL:    baseURL,
		APIKey:     env["OPALTRIP_TFNSW_API_KEY"],
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// TripPlanQuery describes one trip planning request. DepartAt and ArriveBy
// are mutually exclusive; when both are zero the current time is used as the
// departure reference.
type TripPlanQuery struct {
	Origin      string
	Destination string
	DepartAt    time.Time
	ArriveBy    time.Time
}

func (query TripPlanQuery) values() url.Values {
	reference := query.DepartAt
	depArr := "dep"

	if reference.IsZero() && !query.ArriveBy.IsZero() {
		reference = query.ArriveBy
		depArr = "arr"
	}
	if reference.IsZero() {
		reference = time.Now()
	}

	sydneyReference := reference.In(util.SydneyTimezone)

	values := url.Values{}
	values.Set("outputFormat", "rapidJSON")
	values.Set("coordOutputFormat", "EPSG:4326")
	values.Set("itdTripDate", sydneyReference.Format("20060102"))
	values.Set("itdTripTime", sydneyReference.Format("1504"))
	values.Set("itdTimeDepArr", depArr)
	values.Set("type_origin", "stop")
	values.Set("name_origin", query.Origin)
	values.Set("type_destination", "stop")
	values.Set("name_destination", query.Destination)
	values.Set("calcNumberOfTrips", "5")
	values.Set("wheelchair", "false")
	values.Set("TfNSWSF", "true")
	values.Set("version", apiVersion)

	return values
}

// TripPlan fetches journey options between two stops.
func (client *Client) TripPlan(ctx context.Context, query TripPlanQuery) (*TripPlanResponse, error) {
	var response TripPlanResponse
	if err := client.getJSON(ctx, "trip", query.values(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// FindStopID resolves a free text stop name to the upstream's identifier for
// the best matching stop.
func (client *Client) FindStopID(ctx context.Context, name string) (string, error) {
	values := url.Values{}
	values.Set("outputFormat", "rapidJSON")
	values.Set("coordOutputFormat", "EPSG:4326")
	values.Set("type_sf", "any")
	values.Set("name_sf", name)
	values.Set("TfNSWSF", "true")
	values.Set("version", apiVersion)

	var response stopFinderResponse
	if err := client.getJSON(ctx, "stop_finder", values, &response); err != nil {
		return "", err
	}

	var fallback string
	for _, location := range response.Locations {
		if location.Type != "stop" {
			continue
		}

		if location.IsBest {
			return location.ID, nil
		}
		if fallback == "" {
			fallback = location.ID
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("no stop found matching %q", name)
}

// ServiceAlerts returns the current alerts affecting the given stops on the
// given date. The upstream answers 404 when nothing is published, which is
// reported as an empty list rather than an error.
func (client *Client) ServiceAlerts(ctx context.Context, stopIDs []string, date time.Time) ([]ServiceAlert, error) {
	values := url.Values{}
	values.Set("outputFormat", "rapidJSON")
	values.Set("coordOutputFormat", "EPSG:4326")
	values.Set("filterDateValid", date.In(util.SydneyTimezone).Format("02-01-2006"))
	values.Set("filterPublicationStatus", "current")
	values.Set("itdLPxx_selStop", strings.Join(stopIDs, ","))
	values.Set("version", apiVersion)

	var response addInfoResponse

	err := client.getJSON(ctx, "add_info", values, &response)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []ServiceAlert{}, nil
		}

		return nil, err
	}

	alerts := response.Infos.Current
	if alerts == nil {
		alerts = []ServiceAlert{}
	}

	return alerts, nil
}

// getJSON performs one authenticated GET against the API, retrying transient
// failures with exponential backoff. Client errors are permanent and
// returned immediately.
func (client *Client) getJSON(ctx context.Context, endpoint string, values url.Values, target any) error {
	requestURL := fmt.Sprintf("%s/%s?%s", client.BaseURL, endpoint, values.Encode())
	log.Debug().Str("endpoint", endpoint).Msg("Requesting trip planner API")

	operation := func() ([]byte, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		request.Header.Set("Authorization", fmt.Sprintf("apikey %s", client.APIKey))
		request.Header.Set("Accept", "application/json")

		response, err := client.HTTPClient.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		body, err := io.ReadAll(response.Body)
		if err != nil {
			return nil, err
		}

		if err := statusError(response.StatusCode); err != nil {
			if retryableStatus(response.StatusCode) {
				return nil, err
			}

			return nil, backoff.Permanent(err)
		}

		return body, nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)

	body, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, target)
}

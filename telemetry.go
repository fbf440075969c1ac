package prana

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// TelemetryQuery selects time-series values. The zero value requests the
// latest DefaultTelemetryLimit samples of every key.
type TelemetryQuery struct {
	Keys      []string
	StartTime time.Time // zero means unbounded
	EndTime   time.Time // zero means unbounded
	Limit     int       // samples per key
}

func (q *TelemetryQuery) values() url.Values {
	limit := DefaultTelemetryLimit
	params := url.Values{}
	if q != nil {
		if q.Limit > 0 {
			limit = q.Limit
		}
		if len(q.Keys) > 0 {
			params.Set("keys", strings.Join(q.Keys, ","))
		}
		if !q.StartTime.IsZero() {
			params.Set("startTs", strconv.FormatInt(q.StartTime.UnixMilli(), 10))
		}
		if !q.EndTime.IsZero() {
			params.Set("endTs", strconv.FormatInt(q.EndTime.UnixMilli(), 10))
		}
	}
	params.Set("limit", strconv.Itoa(limit))
	return params
}

func devicePluginPath(deviceID string) string {
	return endpointTelemetry + "/" + EntityTypeDevice + "/" + url.PathEscape(deviceID)
}

// GetDeviceTelemetry returns time-series values of a device, newest first.
func (c *Client) GetDeviceTelemetry(ctx context.Context, deviceID string, query *TelemetryQuery) (Telemetry, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   devicePluginPath(deviceID) + "/values/timeseries",
		route:  endpointTelemetry + "/DEVICE/{id}/values/timeseries",
		query:  query.values(),
	})
	if err != nil {
		return nil, err
	}
	return TelemetryFromJSON(payload), nil
}

// GetDeviceAttributes returns device attributes of one scope, or of every
// scope when scope is ScopeAll. With no keys every attribute is returned.
func (c *Client) GetDeviceAttributes(ctx context.Context, deviceID string, scope AttributeScope, keys ...string) (Attributes, error) {
	if deviceID == "" {
		return Attributes{}, ErrEmptyDeviceID
	}

	path := devicePluginPath(deviceID) + "/values/attributes"
	route := endpointTelemetry + "/DEVICE/{id}/values/attributes"
	if scope != ScopeAll {
		path += "/" + url.PathEscape(string(scope))
		route += "/{scope}"
	}

	var query url.Values
	if len(keys) > 0 {
		query = url.Values{"keys": {strings.Join(keys, ",")}}
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   path,
		route:  route,
		query:  query,
	})
	if err != nil {
		return Attributes{}, err
	}
	return AttributesFromJSON(payload), nil
}

// GetDeviceState fetches the latest telemetry and all attributes of a device
// concurrently and decodes them. If either fetch fails the other is cancelled
// and the error is returned.
func (c *Client) GetDeviceState(ctx context.Context, deviceID string) (*PranaState, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	var (
		telemetry Telemetry
		attrs     Attributes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		telemetry, err = c.GetDeviceTelemetry(gctx, deviceID, &TelemetryQuery{Limit: 1})
		return err
	})
	g.Go(func() error {
		var err error
		attrs, err = c.GetDeviceAttributes(gctx, deviceID, ScopeAll)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return DecodeState(telemetry, attrs), nil
}

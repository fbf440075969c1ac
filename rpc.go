package prana

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	rpcModeOneway = "oneway"
	rpcModeTwoway = "twoway"
)

// rpcRequest is the body of an RPC call.
type rpcRequest struct {
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	Timeout *int64         `json:"timeout,omitempty"` // milliseconds, two-way only
}

func newRPCRequest(method string, params map[string]any) rpcRequest {
	if params == nil {
		params = map[string]any{}
	}
	return rpcRequest{Method: method, Params: params}
}

// SendRPCOneway sends a command to a device without waiting for a reply.
// A nil params is sent as an empty object.
func (c *Client) SendRPCOneway(ctx context.Context, deviceID, method string, params map[string]any) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if method == "" {
		return ErrEmptyMethod
	}

	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointRPCOneway + "/" + url.PathEscape(deviceID),
		route:  endpointRPCOneway + "/{id}",
		body:   newRPCRequest(method, params),
	})

	rpcCommands.WithLabelValues(rpcModeOneway, method, resultLabel(err)).Inc()
	c.logRPC(ctx, deviceID, rpcModeOneway, method, err)
	return err
}

// SendRPCTwoway sends a command to a device and returns its reply. The
// platform waits up to timeout for the device to answer; zero uses the
// client's RPC timeout.
//
// API failures are reported as RPC errors carrying the original status code:
//
//	reply, err := client.SendRPCTwoway(ctx, id, "getConfig", nil, 0)
//	if prana.IsRPCError(err) {
//		log.Printf("device rejected command (HTTP %d)", prana.StatusCode(err))
//	}
func (c *Client) SendRPCTwoway(ctx context.Context, deviceID, method string, params map[string]any, timeout time.Duration) (any, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	if method == "" {
		return nil, ErrEmptyMethod
	}
	if timeout <= 0 {
		timeout = c.rpcTimeout
	}

	body := newRPCRequest(method, params)
	ms := timeout.Milliseconds()
	body.Timeout = &ms

	reply, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointRPCTwoway + "/" + url.PathEscape(deviceID),
		route:  endpointRPCTwoway + "/{id}",
		body:   body,
	})
	if err != nil {
		err = rpcError(method, err)
	}

	rpcCommands.WithLabelValues(rpcModeTwoway, method, resultLabel(err)).Inc()
	c.logRPC(ctx, deviceID, rpcModeTwoway, method, err)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// rpcError wraps an API failure of method into an RPC error with the same
// status code.
func rpcError(method string, err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	return &APIError{
		Kind:       KindRPC,
		StatusCode: apiErr.StatusCode,
		Message:    fmt.Sprintf("RPC command '%s' failed: %s", method, apiErr.Message),
		Body:       apiErr.Body,
		Header:     apiErr.Header,
		RetryAfter: apiErr.RetryAfter,
		Err:        err,
	}
}

package prana

import (
	"context"
	"net/http"
	"net/url"
)

// resolveCustomerID returns the customer id of the authenticated user, read
// from the access token when possible and from the user record otherwise.
func (c *Client) resolveCustomerID(ctx context.Context) (string, error) {
	if id, ok := c.tokens.CustomerID(); ok && !(EntityID{ID: id}).IsNull() {
		return id, nil
	}

	user, err := c.GetUser(ctx)
	if err != nil {
		return "", err
	}
	if user.CustomerID != nil && !user.CustomerID.IsNull() {
		return user.CustomerID.ID, nil
	}

	return "", newAPIError(KindConfiguration, 0, "Could not determine customer ID")
}

// ListUserDevicesPage returns one page of the devices owned by the
// authenticated user's customer.
func (c *Client) ListUserDevicesPage(ctx context.Context, opts *PageOptions) (*PageData[Device], error) {
	customerID, err := c.resolveCustomerID(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointCustomer + "/" + url.PathEscape(customerID) + "/devices",
		route:  endpointCustomer + "/{customerId}/devices",
		query:  pageQuery(opts, true),
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "device list")
	if err != nil {
		return nil, err
	}
	page := MapPage(obj, MapDevice)
	return &page, nil
}

// ListUserDevices returns the devices on one page of the user's device listing.
// Use UserDevices to iterate over every page.
func (c *Client) ListUserDevices(ctx context.Context, opts *PageOptions) ([]Device, error) {
	page, err := c.ListUserDevicesPage(ctx, opts)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// GetDevice returns a single device by ID.
func (c *Client) GetDevice(ctx context.Context, deviceID string) (*Device, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointDevice + "/" + url.PathEscape(deviceID),
		route:  endpointDevice + "/{id}",
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "device")
	if err != nil {
		return nil, err
	}
	device := MapDevice(obj)
	return &device, nil
}

// GetDeviceCredentials returns the transport credentials of a device.
func (c *Client) GetDeviceCredentials(ctx context.Context, deviceID string) (*DeviceCredentials, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointDevice + "/" + url.PathEscape(deviceID) + "/credentials",
		route:  endpointDevice + "/{id}/credentials",
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "device credentials")
	if err != nil {
		return nil, err
	}
	creds := MapDeviceCredentials(obj)
	return &creds, nil
}

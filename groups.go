package prana

import (
	"context"
	"net/http"
	"net/url"
)

// ListEntityGroupsPage returns one page of the entity groups holding entities
// of entityType. An empty entityType means EntityTypeDevice.
func (c *Client) ListEntityGroupsPage(ctx context.Context, entityType string, opts *PageOptions) (*PageData[EntityGroup], error) {
	if entityType == "" {
		entityType = EntityTypeDevice
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointEntityGroups + "/" + url.PathEscape(entityType),
		route:  endpointEntityGroups + "/{entityType}",
		query:  pageQuery(opts, false),
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "entity group list")
	if err != nil {
		return nil, err
	}
	page := MapPage(obj, MapEntityGroup)
	return &page, nil
}

// ListEntityGroups returns the groups on one page of the listing.
func (c *Client) ListEntityGroups(ctx context.Context, entityType string, opts *PageOptions) ([]EntityGroup, error) {
	page, err := c.ListEntityGroupsPage(ctx, entityType, opts)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// ListGroupDevicesPage returns one page of the devices in an entity group.
func (c *Client) ListGroupDevicesPage(ctx context.Context, groupID string, opts *PageOptions) (*PageData[Device], error) {
	if groupID == "" {
		return nil, ErrEmptyGroupID
	}

	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointEntityGroup + "/" + url.PathEscape(groupID) + "/entities",
		route:  endpointEntityGroup + "/{groupId}/entities",
		query:  pageQuery(opts, false),
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "group device list")
	if err != nil {
		return nil, err
	}
	page := MapPage(obj, MapDevice)
	return &page, nil
}

// ListGroupDevices returns the devices on one page of a group listing.
func (c *Client) ListGroupDevices(ctx context.Context, groupID string, opts *PageOptions) ([]Device, error) {
	page, err := c.ListGroupDevicesPage(ctx, groupID, opts)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

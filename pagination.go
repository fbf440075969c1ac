package prana

import (
	"context"
	"iter"
)

// paginate iterates over every item of a paginated listing, starting at
// opts.Page and following hasNext. Iteration stops at the first error.
func paginate[T any](ctx context.Context, opts *PageOptions, fetch func(context.Context, *PageOptions) (*PageData[T], error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		page := PageOptions{}
		if opts != nil {
			page = *opts
		}

		for {
			select {
			case <-ctx.Done():
				yield(zero, ctx.Err())
				return
			default:
			}

			resp, err := fetch(ctx, &page)
			if err != nil {
				yield(zero, err)
				return
			}

			for _, item := range resp.Data {
				if !yield(item, nil) {
					return // caller stopped iteration
				}
			}

			if !resp.HasNext || len(resp.Data) == 0 {
				return // no more pages
			}
			page.Page++
		}
	}
}

// UserDevices returns an iterator over all of the user's devices.
//
// Example:
//
//	for device, err := range client.UserDevices(ctx, nil) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(device.DisplayName())
//	}
func (c *Client) UserDevices(ctx context.Context, opts *PageOptions) iter.Seq2[Device, error] {
	return paginate(ctx, opts, c.ListUserDevicesPage)
}

// EntityGroups returns an iterator over all entity groups of entityType.
func (c *Client) EntityGroups(ctx context.Context, entityType string, opts *PageOptions) iter.Seq2[EntityGroup, error] {
	return paginate(ctx, opts, func(ctx context.Context, page *PageOptions) (*PageData[EntityGroup], error) {
		return c.ListEntityGroupsPage(ctx, entityType, page)
	})
}

// GroupDevices returns an iterator over all devices in an entity group.
func (c *Client) GroupDevices(ctx context.Context, groupID string, opts *PageOptions) iter.Seq2[Device, error] {
	return paginate(ctx, opts, func(ctx context.Context, page *PageOptions) (*PageData[Device], error) {
		return c.ListGroupDevicesPage(ctx, groupID, page)
	})
}

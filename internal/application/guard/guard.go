// Package guard authorizes access to owner-scoped resources. Tasks and
// projects share one contract: look the resource up by primary id, then
// require owner equality. A row that does not exist and a row that belongs
// to another user produce the same not-found outcome, so no request can
// probe for the existence of someone else's resource ids.
package guard

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/domain"
)

// Resource is any entity with a single owning user.
type Resource interface {
	comparable
	ResourceOwner() domain.UserID
}

// Resolve looks up a resource and verifies the requester owns it. lookup
// returns the zero value (nil for pointer types) when no row exists; that
// case and an owner mismatch both yield notFound, with no partial
// information about the resource.
func Resolve[ID any, R Resource](
	ctx context.Context,
	lookup func(context.Context, ID) (R, error),
	id ID,
	requester domain.UserID,
	notFound error,
) (R, error) {
	var zero R
	res, err := lookup(ctx, id)
	if err != nil {
		return zero, err
	}
	if res == zero || res.ResourceOwner() != requester {
		return zero, notFound
	}
	return res, nil
}

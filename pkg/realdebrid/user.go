package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
)

type UserAPI struct {
	c *client
}

// Get returns the account the token belongs to.
func (a UserAPI) Get(ctx context.Context) (types.User, error) {
	resp, err := a.c.get(ctx, "/user", nil)
	if err != nil {
		return types.User{}, err
	}
	return decode[types.User](resp, "user")
}

package pocket

import (
	"context"
	"fmt"
	"net/http"
)

// UserRecord is the auth record of the users collection.
type UserRecord struct {
	BaseRecord
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Auth is the result of a password-grant authentication call.
type Auth struct {
	Token  string     `json:"token"`
	Record UserRecord `json:"record"`
}

// AuthWithPassword exchanges email and password for a bearer token and
// the authenticated user's record.
func (c *Client) AuthWithPassword(ctx context.Context, identity, password string) (*Auth, error) {
	body := map[string]string{
		"identity": identity,
		"password": password,
	}

	var out Auth
	err := c.do(ctx, http.MethodPost, "/api/collections/users/auth-with-password", "", nil, body, &out)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return &out, nil
}

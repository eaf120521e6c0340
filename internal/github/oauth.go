package github

import (
	"context"
	"fmt"
	"net/http"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

// DeviceScope is requested when starting the device flow.
const DeviceScope = "read:user repo"

const deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"

// DeviceCode is the first leg of the OAuth device flow.
type DeviceCode struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

// oauthReply holds the fields GitHub may return from either device endpoint.
type oauthReply struct {
	DeviceCode
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (r *oauthReply) err() error {
	msg := r.ErrorDescription
	if msg == "" {
		msg = r.Error
	}
	return fmt.Errorf("%s: %w", msg, deckerrors.ErrGitHubOperation)
}

// StartDeviceFlow requests a device and user code for clientID.
func (c *Client) StartDeviceFlow(ctx context.Context, clientID string) (*DeviceCode, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	var reply oauthReply
	payload := map[string]string{"client_id": clientID, "scope": DeviceScope}
	if err := c.doOAuth(ctx, "/login/device/code", payload, &reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, reply.err()
	}
	code := reply.DeviceCode
	return &code, nil
}

// PollDeviceToken checks once whether the user has authorized the device.
// It returns the token when granted, "" while authorization is pending, and
// an error for any terminal outcome such as expiry or denial.
func (c *Client) PollDeviceToken(ctx context.Context, clientID, deviceCode string) (string, error) {
	var reply oauthReply
	payload := map[string]string{
		"client_id":   clientID,
		"device_code": deviceCode,
		"grant_type":  deviceGrantType,
	}
	if err := c.doOAuth(ctx, "/login/oauth/access_token", payload, &reply); err != nil {
		return "", err
	}
	if reply.AccessToken != "" {
		return reply.AccessToken, nil
	}
	switch reply.Error {
	case "", "authorization_pending", "slow_down":
		return "", nil
	default:
		return "", reply.err()
	}
}

func (c *Client) doOAuth(ctx context.Context, path string, payload map[string]string, out *oauthReply) error {
	return c.doJSON(ctx, http.MethodPost, c.oauthURL+path, false, payload, out)
}

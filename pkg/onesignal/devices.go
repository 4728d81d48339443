package onesignal

import (
	"context"
	"net/http"
	"net/url"
)

// Platform identifies the push platform a device token belongs to.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// deviceType maps a platform to OneSignal's numeric device-type code.
// Anything that is not iOS falls back to the Android code; unrecognized
// platform strings are not rejected.
func (p Platform) deviceType() int {
	if p == PlatformIOS {
		return 0
	}
	return 1
}

// sandboxTestType is the registration test flag for Apple's sandbox push
// environment. It is sent as JSON null when the client is not sandboxed.
const sandboxTestType = 1

type registerDeviceRequest struct {
	AppID      string `json:"app_id"`
	DeviceType int    `json:"device_type"`
	Identifier string `json:"identifier"`
	Language   string `json:"language"`
	TestType   *int   `json:"test_type"`
}

type editDeviceRequest struct {
	AppID      string `json:"app_id"`
	Identifier string `json:"identifier"`
}

// RegisterDevice registers a device token with OneSignal and returns the
// provider-assigned device id. The identifier is the raw push token; platform
// selects the device-type code.
func (c *Client) RegisterDevice(ctx context.Context, identifier string, platform Platform) (string, error) {
	body := registerDeviceRequest{
		AppID:      c.appID,
		DeviceType: platform.deviceType(),
		Identifier: identifier,
		Language:   "en",
	}
	if c.sandbox {
		testType := sandboxTestType
		body.TestType = &testType
	}

	resp, err := c.do(ctx, http.MethodPost, "/players", body)
	if err != nil {
		return "", err
	}

	// The id is absent from malformed success bodies; the zero value is
	// returned rather than inventing an error class the API contract does
	// not have.
	id, _ := resp["id"].(string)
	return id, nil
}

// EditDevice replaces the push token of a previously registered device and
// returns the full parsed response body.
func (c *Client) EditDevice(ctx context.Context, deviceID, identifier string) (Response, error) {
	body := editDeviceRequest{
		AppID:      c.appID,
		Identifier: identifier,
	}
	return c.do(ctx, http.MethodPut, "/players/"+url.PathEscape(deviceID), body)
}

package onesignal

import (
	"context"
	"maps"
	"net/http"
)

// defaultLocale keys the contents map for plain-string messages.
const defaultLocale = "en"

// catchAllSegment targets every subscribed device when no explicit segments
// are given.
const catchAllSegment = "All"

type notificationRequest struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Contents         map[string]string `json:"contents"`
	Data             any               `json:"data,omitempty"`
}

type overrideNotificationRequest struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings,omitempty"`
	Contents         map[string]string `json:"contents"`
	IncludedSegments []string          `json:"included_segments"`
	IOSBadgeType     string            `json:"ios_badgeType,omitempty"`
	IOSBadgeCount    int               `json:"ios_badgeCount,omitempty"`
	Data             any               `json:"data,omitempty"`
}

// OverrideNotificationParams carries the full field set for
// SendOverrideNotification. Headings accepts a complete locale map while
// Message only ever populates the default-locale contents entry.
type OverrideNotificationParams struct {
	Headings   map[string]string // Locale-keyed titles, e.g. {"en": "Hello"}
	Message    string            // Default-locale body text
	Data       any               // Arbitrary payload attached verbatim
	Segments   []string          // Target segments; empty defaults to the catch-all segment
	BadgeCount int               // iOS badge value; zero leaves the badge untouched
	PlayerIDs  []string          // Explicit recipient device ids
}

// SendNotification delivers a plain message to an explicit list of device
// ids. The data payload is attached verbatim and shows up under the
// notification's data field on the receiving device.
func (c *Client) SendNotification(ctx context.Context, message string, data any, playerIDs []string) (Response, error) {
	body := notificationRequest{
		AppID:            c.appID,
		IncludePlayerIDs: playerIDs,
		Contents:         map[string]string{defaultLocale: message},
		Data:             data,
	}
	return c.do(ctx, http.MethodPost, "/notifications", body)
}

// SendRawNotification posts an arbitrary OneSignal notification payload. The
// app_id field is injected (overwriting any caller-supplied value); every
// other field passes through untouched. This is the escape hatch for API
// surface the typed helpers do not cover: multi-locale contents, filters,
// scheduling, and so on.
//
// The caller's map is cloned before injection and never mutated.
func (c *Client) SendRawNotification(ctx context.Context, payload map[string]any) (Response, error) {
	body := maps.Clone(payload)
	if body == nil {
		body = make(map[string]any, 1)
	}
	body["app_id"] = c.appID
	return c.do(ctx, http.MethodPost, "/notifications", body)
}

// SendOverrideNotification delivers a notification with the full override
// field set: locale-keyed headings, segments, and iOS badge count. Empty
// Segments defaults to the catch-all segment; a non-empty slice is forwarded
// unchanged and in order. A non-zero BadgeCount is applied as an absolute
// badge value.
func (c *Client) SendOverrideNotification(ctx context.Context, params OverrideNotificationParams) (Response, error) {
	segments := params.Segments
	if len(segments) == 0 {
		segments = []string{catchAllSegment}
	}

	body := overrideNotificationRequest{
		AppID:            c.appID,
		IncludePlayerIDs: params.PlayerIDs,
		Headings:         params.Headings,
		Contents:         map[string]string{defaultLocale: params.Message},
		IncludedSegments: segments,
		IOSBadgeCount:    params.BadgeCount,
		Data:             params.Data,
	}
	if params.BadgeCount != 0 {
		body.IOSBadgeType = "SetTo"
	}
	return c.do(ctx, http.MethodPost, "/notifications", body)
}

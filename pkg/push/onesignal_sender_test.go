package push_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickSklyuev/onesignal-api-override/pkg/onesignal"
	"github.com/NickSklyuev/onesignal-api-override/pkg/push"
)

func TestNewOneSignalSender_NilClient(t *testing.T) {
	t.Parallel()

	sender, err := push.NewOneSignalSender(nil)
	assert.Nil(t, sender)
	assert.ErrorIs(t, err, push.ErrInvalidConfig)

	assert.Panics(t, func() {
		push.MustNewOneSignalSender(nil)
	})
}

func TestOneSignalSender_SendPush_WithTitle(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"n1"}`))
	}))
	defer server.Close()

	client := onesignal.New("key", "app", onesignal.WithBaseURL(server.URL))
	sender := push.MustNewOneSignalSender(client)

	err := sender.SendPush(context.Background(), push.Notification{
		Title:     "Order update",
		Body:      "Your order shipped",
		Data:      map[string]string{"order_id": "ord-42"},
		PlayerIDs: []string{"p1"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"en": "Order update"}, gotBody["headings"])
	assert.Equal(t, map[string]any{"en": "Your order shipped"}, gotBody["contents"])
	assert.Equal(t, []any{"p1"}, gotBody["include_player_ids"])
	assert.Equal(t, map[string]any{"order_id": "ord-42"}, gotBody["data"])
}

func TestOneSignalSender_SendPush_BodyOnly(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"n1"}`))
	}))
	defer server.Close()

	client := onesignal.New("key", "app", onesignal.WithBaseURL(server.URL))
	sender := push.MustNewOneSignalSender(client)

	err := sender.SendPush(context.Background(), push.Notification{
		Body:      "hello",
		PlayerIDs: []string{"p1"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"en": "hello"}, gotBody["contents"])
	assert.NotContains(t, gotBody, "headings")
}

func TestOneSignalSender_SendPush_ValidationShortCircuits(t *testing.T) {
	t.Parallel()

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := onesignal.New("key", "app", onesignal.WithBaseURL(server.URL))
	sender := push.MustNewOneSignalSender(client)

	err := sender.SendPush(context.Background(), push.Notification{Body: ""})
	assert.ErrorIs(t, err, push.ErrInvalidNotification)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests), "invalid notifications must not hit the API")
}

func TestOneSignalSender_SendPush_DeliveryFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := onesignal.New("key", "app", onesignal.WithBaseURL(server.URL))
	sender := push.MustNewOneSignalSender(client)

	err := sender.SendPush(context.Background(), push.Notification{
		Body:      "hello",
		PlayerIDs: []string{"p1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, push.ErrFailedToSendPush)
	assert.ErrorIs(t, err, onesignal.ErrRequestFailed)
}

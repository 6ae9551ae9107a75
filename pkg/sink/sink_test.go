package sink

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayShow(t *testing.T) {
	var (
		gotPath string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	d := NewDisplay(srv.URL)
	require.NoError(t, d.Show(4, 6, 1998, 2530))

	assert.Equal(t, "/display", gotPath)
	assert.JSONEq(t, `{"text":"4 / 6 - 1998 / 2530"}`, string(gotBody))
}

func TestDisplayFailures(t *testing.T) {
	assert.Error(t, NewDisplay("").Show(0, 6, 0, 2530), "unconfigured URL must fail, not panic")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	assert.Error(t, NewDisplay(srv.URL).Show(0, 6, 0, 2530))

	unreachable := httptest.NewServer(nil)
	unreachable.Close()
	assert.Error(t, NewDisplay(unreachable.URL).Show(0, 6, 0, 2530))
}

func TestTelemetryPush(t *testing.T) {
	var (
		gotHeaders http.Header
		gotEvents  []event
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotEvents))
	}))
	defer srv.Close()

	tel := NewTelemetry("secret", "staging", WithTelemetryEndpoint(srv.URL))

	require.NoError(t, tel.Push(1998, false))
	assert.Equal(t, "secret", gotHeaders.Get("X-IS-AccessKey"))
	assert.Equal(t, "staging - coffee_scale_data", gotHeaders.Get("X-IS-BucketKey"))
	require.Len(t, gotEvents, 1)
	assert.Equal(t, "Coffee Weight", gotEvents[0].Key)
	assert.Equal(t, float64(1998), gotEvents[0].Value)

	// The lifted flag is only submitted when the pot is actually off the scale
	require.NoError(t, tel.Push(3, true))
	require.Len(t, gotEvents, 2)
	assert.Equal(t, "Coffee Pot Lifted", gotEvents[0].Key)
	assert.Equal(t, true, gotEvents[0].Value)
	assert.Equal(t, "Coffee Weight", gotEvents[1].Key)
}

func TestTelemetryMissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an access key")
	}))
	defer srv.Close()

	tel := NewTelemetry("", "prod", WithTelemetryEndpoint(srv.URL))
	assert.Error(t, tel.Push(1998, false))
}

func TestChatNotify(t *testing.T) {
	var (
		gotQuery string
		gotBody  map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
	}))
	defer srv.Close()

	c := NewChat("token", 926556, WithChatEndpoint(srv.URL))
	require.NoError(t, c.Notify(2, 6, 1450, 2530))

	assert.Equal(t, "auth_token=token", gotQuery)
	assert.Equal(t, float64(926556), gotBody["room_id"])
	assert.Equal(t, "2 / 6", gotBody["from"])
	assert.Equal(t, "1450 / 2530", gotBody["message"])
	assert.Equal(t, "random", gotBody["color"])
}

func TestChatMissingKey(t *testing.T) {
	c := NewChat("", 926556)
	assert.Error(t, c.Notify(0, 6, 0, 2530))
}

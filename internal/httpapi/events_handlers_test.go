package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companies-engine/internal/events"
)

func readEvent(t *testing.T, rd *bufio.Reader) events.Event {
	t.Helper()
	for {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		data, ok := strings.CutPrefix(strings.TrimRight(line, "\n"), "data: ")
		if !ok {
			continue
		}
		var evt events.Event
		require.NoError(t, json.Unmarshal([]byte(data), &evt))
		return evt
	}
}

func TestEventsStream(t *testing.T) {
	h, d := newTestRouter(t, nil)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	rd := bufio.NewReader(resp.Body)
	assert.Equal(t, events.TypePing, readEvent(t, rd).Type)
	require.Eventually(t, func() bool { return d.Hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	post, err := srv.Client().Post(srv.URL+"/api/listings", "application/json",
		strings.NewReader(`{"company":"Stream Co","title":"Engineer"}`))
	require.NoError(t, err)
	post.Body.Close()
	require.Equal(t, http.StatusCreated, post.StatusCode)

	evt := readEvent(t, rd)
	assert.Equal(t, events.TypeListingCreated, evt.Type)
	var change events.ListingChange
	require.NoError(t, json.Unmarshal(evt.Data, &change))
	assert.Equal(t, "Stream Co", change.Company)
}

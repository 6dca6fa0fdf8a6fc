package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetpoll/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := &http.Client{
		Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      srv.Listener.Addr().String(),
		},
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClientFromToken(t *testing.T) {
	t.Run("Empty Token Rejected", func(t *testing.T) {
		_, err := gcalendar.NewClientFromToken(context.Background(), "")
		if err == nil {
			t.Errorf("expected error for empty access token")
		}
	})

	t.Run("Non-Empty Token Accepted", func(t *testing.T) {
		_, err := gcalendar.NewClientFromToken(context.Background(), "ya29.dummy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListEvents(t *testing.T) {
	dayStart := time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 4, 23, 23, 59, 59, 0, time.UTC)

	t.Run("Maps Timed And All-Day Events", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("singleEvents") != "true" {
				t.Errorf("expected singleEvents=true")
			}
			if q.Get("orderBy") != "startTime" {
				t.Errorf("expected orderBy=startTime")
			}
			if q.Get("maxResults") != "100" {
				t.Errorf("expected default maxResults 100, got %s", q.Get("maxResults"))
			}

			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"id":      "ev1",
						"summary": "輪読会",
						"start":   map[string]string{"dateTime": "2025-04-23T19:00:00+09:00"},
						"end":     map[string]string{"dateTime": "2025-04-23T22:00:00+09:00"},
					},
					{
						"id":    "ev2",
						"start": map[string]string{"date": "2025-04-23"},
						"end":   map[string]string{"date": "2025-04-24"},
					},
				},
			})
		})

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: dayStart,
			TimeMax: dayEnd,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "輪読会" || events[0].Start.DateTime == "" {
			t.Errorf("timed event not mapped: %+v", events[0])
		}
		if events[1].Start.Date != "2025-04-23" || events[1].Start.DateTime != "" {
			t.Errorf("all-day event not mapped: %+v", events[1])
		}
	})

	t.Run("API Error Propagates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))
		})

		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: dayStart,
			TimeMax: dayEnd,
		})
		if err == nil {
			t.Errorf("expected error from 401 response")
		}
	})
}

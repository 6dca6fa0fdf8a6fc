package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetpoll/pkg/deepseek"
)

func TestNew(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := deepseek.New(deepseek.Config{})
		if err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Model() != deepseek.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("JSON Mode Round Trip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer k" {
				t.Errorf("missing bearer header, got %q", got)
			}

			var req deepseek.Request
			json.NewDecoder(r.Body).Decode(&req)
			if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
				t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
			}

			json.NewEncoder(w).Encode(deepseek.Response{
				Choices: []deepseek.Choice{
					{Message: deepseek.Message{Role: "assistant", Content: `{"ok":true}`}},
				},
			})
		}))
		defer srv.Close()

		client, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: srv.URL})
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages:       []deepseek.Message{{Role: "user", Content: "check"}},
			ResponseFormat: &deepseek.ResponseFormat{Type: "json_object"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != `{"ok":true}` {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("API Error Message Extracted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
		}))
		defer srv.Close()

		client, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: srv.URL})
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "check"}},
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

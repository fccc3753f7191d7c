package langtool

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Correct(t *testing.T) {
	t.Run("applies matches from the checker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/check" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Method != "POST" {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if err := r.ParseForm(); err != nil {
				t.Errorf("ParseForm() error = %v", err)
			}
			if got := r.PostFormValue("text"); got != "teh cat iz here" {
				t.Errorf("text = %q", got)
			}
			if got := r.PostFormValue("language"); got != "en-US" {
				t.Errorf("language = %q", got)
			}
			if got := r.PostFormValue("enabledOnly"); got != "false" {
				t.Errorf("enabledOnly = %q", got)
			}

			resp := checkResponse{Matches: []Match{
				{Offset: 0, Length: 3, Replacements: []Replacement{{Value: "The"}}},
				{Offset: 8, Length: 2, Replacements: []Replacement{{Value: "is"}}},
			}}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		got, err := client.Correct(context.Background(), "teh cat iz here")
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if got != "The cat is here" {
			t.Errorf("Correct() = %q", got)
		}
	})

	t.Run("bad status is service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Correct(context.Background(), "some text")
		assertKind(t, err, KindServiceUnavailable)
	})

	t.Run("malformed body is service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Correct(context.Background(), "some text")
		assertKind(t, err, KindServiceUnavailable)
	})

	t.Run("schema violation is service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Valid JSON but offsets of the wrong type.
			w.Write([]byte(`{"matches":[{"offset":"zero","length":3}]}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Correct(context.Background(), "some text")
		assertKind(t, err, KindServiceUnavailable)
	})

	t.Run("slow service times out", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
		_, err := client.Correct(context.Background(), "some text")
		assertKind(t, err, KindTimeout)
	})

	t.Run("dead endpoint is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing is listening anymore

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Correct(context.Background(), "some text")
		assertKind(t, err, KindUnreachable)
	})

	t.Run("no matches returns text unchanged", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"matches":[]}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		got, err := client.Correct(context.Background(), "Already fine.")
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if got != "Already fine." {
			t.Errorf("Correct() = %q", got)
		}
	})
}

func TestClient_Ping(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/languages" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		if err := client.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})

	t.Run("unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		if err := client.Ping(context.Background()); err == nil {
			t.Error("Ping() expected error")
		}
	})
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("error %v is not a RemoteError", err)
	}
	if re.Kind != want {
		t.Errorf("Kind = %v, want %v", re.Kind, want)
	}
}

package bank

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient_MissingToken(t *testing.T) {
	_, err := NewClient("", "")
	if !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("error = %v, want ErrTokenMissing", err)
	}
}

func TestClientStatement(t *testing.T) {
	from := time.Unix(1699000000, 0)
	to := time.Unix(1700000000, 0)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := fmt.Sprintf("/personal/statement/0/%d/%d", from.Unix(), to.Unix())
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		if got := r.Header.Get("X-Token"); got != "secret-token" {
			t.Errorf("X-Token = %q, want secret-token", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id":"x1","time":1700000000,"amount":12345,"description":"Cafe","mcc":5812},
			{"id":"x2","time":1700000100,"amount":-250,"description":"Metro","mcc":4111}
		]`)
	}))
	defer server.Close()

	client, err := NewClient("secret-token", server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	entries, err := client.Statement(context.Background(), DefaultAccount, from, to)
	if err != nil {
		t.Fatalf("Statement failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].ID == nil || *entries[0].ID != "x1" {
		t.Errorf("entry 0 ID = %v, want x1", entries[0].ID)
	}
	if entries[1].Amount == nil || *entries[1].Amount != -250 {
		t.Errorf("entry 1 Amount = %v, want -250", entries[1].Amount)
	}
}

func TestClientStatement_MissingSourceField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"x1","amount":12345,"description":"Cafe","mcc":5812}]`)
	}))
	defer server.Close()

	client, err := NewClient("secret-token", server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	entries, err := client.Statement(context.Background(), DefaultAccount, time.Unix(0, 0), time.Unix(1, 0))
	if err != nil {
		t.Fatalf("Statement failed: %v", err)
	}

	// The gap surfaces as a nil field, caught later by Normalize.
	if entries[0].Time != nil {
		t.Errorf("Time = %v, want nil for absent source field", entries[0].Time)
	}
}

func TestClientStatement_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "invalid token")
	}))
	defer server.Close()

	client, err := NewClient("bad-token", server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.Statement(context.Background(), DefaultAccount, time.Unix(0, 0), time.Unix(1, 0))
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error is %T, want *UpstreamError", err)
	}
	if upErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", upErr.StatusCode)
	}
	if upErr.Body != "invalid token" {
		t.Errorf("Body = %q, want the upstream body verbatim", upErr.Body)
	}
}

func TestClientStatement_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient("secret-token", server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := client.Statement(ctx, DefaultAccount, time.Unix(0, 0), time.Unix(1, 0))
		errc <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("Statement succeeded, want cancellation error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Statement did not return after cancellation")
	}
}

package rpapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
)

// fakeDoer returns canned responses and records requests.
type fakeDoer struct {
	status int
	body   string
	err    error

	gotReq *http.Request
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(f.body))),
		Header:     make(http.Header),
	}, nil
}

func TestFetchIndex(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: `[{"key":"abc","name":"Cut"}]`}
	client := NewClient(
		map[string]string{"Cookie": "session=secret"},
		WithBaseURL("https://example.test/api/training"),
		WithHTTPClient(doer),
	)

	body, err := client.FetchIndex(context.Background())
	if err != nil {
		t.Fatalf("FetchIndex() error: %v", err)
	}
	if string(body) != `[{"key":"abc","name":"Cut"}]` {
		t.Errorf("body = %q", body)
	}

	if got := doer.gotReq.URL.String(); got != "https://example.test/api/training/mesocycles" {
		t.Errorf("URL = %q", got)
	}
	if got := doer.gotReq.Header.Get("Cookie"); got != "session=secret" {
		t.Errorf("Cookie header = %q, want session=secret", got)
	}
	if got := doer.gotReq.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept header = %q", got)
	}
}

func TestFetchMesocycleURL(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: `{}`}
	client := NewClient(nil, WithBaseURL("https://example.test/api/training"), WithHTTPClient(doer))

	if _, err := client.FetchMesocycle(context.Background(), "k123"); err != nil {
		t.Fatalf("FetchMesocycle() error: %v", err)
	}
	if got := doer.gotReq.URL.String(); got != "https://example.test/api/training/mesocycles/k123" {
		t.Errorf("URL = %q", got)
	}
}

func TestFetchGoneMesocycle(t *testing.T) {
	doer := &fakeDoer{status: http.StatusGone}
	client := NewClient(nil, WithHTTPClient(doer))

	_, err := client.FetchMesocycle(context.Background(), "deleted")
	if !errors.Is(err, ErrGone) {
		t.Errorf("expected ErrGone, got %v", err)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	doer := &fakeDoer{status: http.StatusUnauthorized, body: "denied"}
	client := NewClient(nil, WithHTTPClient(doer))

	_, err := client.FetchExercises(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetchErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", fetchErr.Status)
	}
}

func TestFetchNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	client := NewClient(nil, WithHTTPClient(&fakeDoer{err: cause}))

	_, err := client.FetchIndex(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("FetchError should wrap the transport error")
	}
}

package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestContactRelay(t *testing.T) {
	ts, cleanup := setupTestServer(t, nil)
	defer cleanup()

	w := postForm(ts, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@x.com"},
		"subject": {"Question"},
		"message": {"How do I start with Go?"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	sent := ts.sender.messages()
	if len(sent) != 1 {
		t.Fatalf("expected one relayed message, got %d", len(sent))
	}
	msg := sent[0]
	if msg.From != "ada@x.com" {
		t.Fatalf("expected From set to the submitter, got %q", msg.From)
	}
	if msg.To != ts.cfg.ContactInbox {
		t.Fatalf("expected operator inbox recipient, got %q", msg.To)
	}
	if !strings.Contains(msg.Text, "How do I start with Go?") {
		t.Fatalf("expected message body relayed, got %q", msg.Text)
	}
}

func TestContactTransportFailure(t *testing.T) {
	ts, cleanup := setupTestServer(t, nil)
	defer cleanup()

	ts.sender.failAll = true

	w := postForm(ts, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@x.com"},
		"subject": {"Question"},
		"message": {"Hello"},
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when transport rejects, got %d", w.Code)
	}
}

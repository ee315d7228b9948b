package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifyPostsEmbed(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	d := NewDiscord(server.URL)
	if err := d.Notify(context.Background(), "홍길동", "010-1234-5678", "상담 문의"); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(received.Embeds))
	}
	e := received.Embeds[0]
	if e.Title != "새로운 상담 문의가 접수되었습니다!" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if e.Color != embedColor {
		t.Errorf("expected color %#x, got %#x", embedColor, e.Color)
	}
	if len(e.Fields) != 3 || e.Fields[0].Value != "홍길동" || e.Fields[1].Value != "010-1234-5678" {
		t.Errorf("unexpected fields %+v", e.Fields)
	}
	if e.Footer.Text != "로켓콜-분양" {
		t.Errorf("unexpected footer %q", e.Footer.Text)
	}
}

func TestNotifyEmptyMessagePlaceholder(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
	}))
	t.Cleanup(server.Close)

	d := NewDiscord(server.URL)
	if err := d.Notify(context.Background(), "홍길동", "01012345678", ""); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if received.Embeds[0].Fields[2].Value != "(문의 내용 없음)" {
		t.Errorf("expected placeholder for empty message, got %q", received.Embeds[0].Fields[2].Value)
	}
}

func TestNotifyUnconfiguredIsNoop(t *testing.T) {
	d := NewDiscord("")
	if err := d.Notify(context.Background(), "홍길동", "01012345678", ""); err != nil {
		t.Errorf("expected no-op for unconfigured webhook, got %v", err)
	}
}

func TestNotifyNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	d := NewDiscord(server.URL)
	if err := d.Notify(context.Background(), "홍길동", "01012345678", ""); err == nil {
		t.Error("expected error for non-success status")
	}
}

func TestNotifyUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	d := NewDiscord(server.URL)
	if err := d.Notify(context.Background(), "홍길동", "01012345678", ""); err == nil {
		t.Error("expected error for unreachable endpoint")
	}
}

package service

import (
	"strings"
	"testing"
	"time"

	"github.com/streamlinelabs/backend/internal/config"
	"github.com/streamlinelabs/backend/internal/models"
)

func testMessage() *models.ContactMessage {
	ip := "203.0.113.7"
	return &models.ContactMessage{
		ID:        1,
		Name:      "John Doe",
		Email:     "john@example.com",
		Message:   "I need help streamlining my invoicing workflow.",
		CreatedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
		IPAddress: &ip,
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"short message unchanged", "hello", "hello"},
		{"exactly at limit", strings.Repeat("a", 200), strings.Repeat("a", 200)},
		{"truncated with ellipsis", strings.Repeat("a", 201), strings.Repeat("a", 200) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := excerpt(tt.message, excerptLimit); got != tt.want {
				t.Errorf("excerpt() length %d, want length %d", len(got), len(tt.want))
			}
		})
	}
}

func TestBuildAdminBody(t *testing.T) {
	msg := testMessage()
	body := buildAdminBody(msg)

	for _, want := range []string{
		"John Doe",
		"john@example.com",
		"203.0.113.7",
		"June 01, 2025 at 02:30 PM",
		"I need help streamlining my invoicing workflow.",
		"mailto:john@example.com",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("admin body missing %q", want)
		}
	}
}

func TestBuildAdminBody_UnknownIP(t *testing.T) {
	msg := testMessage()
	msg.IPAddress = nil

	if body := buildAdminBody(msg); !strings.Contains(body, "Unknown") {
		t.Error("admin body should report Unknown for a missing IP address")
	}
}

func TestBuildAutoReplyBody(t *testing.T) {
	msg := testMessage()
	msg.Message = strings.Repeat("x", 250)
	body := buildAutoReplyBody(msg)

	for _, want := range []string{
		"Thank You, John Doe!",
		strings.Repeat("x", 200) + "...",
		"0114404621",
		"Business hours: 8 AM - 6 PM, Monday - Friday",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("auto-reply body missing %q", want)
		}
	}
	if strings.Contains(body, strings.Repeat("x", 201)) {
		t.Error("auto-reply should truncate the message summary at 200 characters")
	}
}

func TestSendContactNotification_Disabled(t *testing.T) {
	// No credentials configured: the notification is logged, not sent
	svc := NewMailService(&config.Config{})

	if err := svc.SendContactNotification(testMessage()); err != nil {
		t.Fatalf("disabled mail service should not error, got %v", err)
	}
}

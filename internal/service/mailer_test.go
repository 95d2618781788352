package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "clinic@example.com",
	}, logrus.New())

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "clinic@example.com",
	}, logrus.New())

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "DocConnect" {
		t.Errorf("default from name: got %q, want DocConnect", sender.fromName)
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := NewStubEmailSender(logrus.New())

	err := sender.Send(context.Background(), EmailMessage{
		To:      "patient@example.com",
		Subject: SubjectVerification,
		HTML:    "<p>hi</p>",
	})
	if err != nil {
		t.Errorf("stub sender should not fail, got %v", err)
	}
}

func TestRenderVerificationEmail(t *testing.T) {
	body, err := RenderVerificationEmail("Rahim Uddin", "Dr. Ayesha Khan", "A1B2C3D4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Rahim Uddin", "Dr. Ayesha Khan", "A1B2C3D4", "2 minutes"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderVerificationEmail_EscapesHTML(t *testing.T) {
	body, err := RenderVerificationEmail("<script>alert(1)</script>", "Dr. Khan", "A1B2C3D4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("patient name was not escaped")
	}
}

func TestRenderConfirmationEmail(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	body, err := RenderConfirmationEmail("Rahim Uddin", "Dr. Ayesha Khan", date, "18:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Rahim Uddin", "Dr. Ayesha Khan", "02 Jun 2025", "18:00"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

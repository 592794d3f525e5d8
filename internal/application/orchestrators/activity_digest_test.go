package orchestrators

import (
	"context"
	"strings"
	"testing"
	"time"

	emailAdapter "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/email"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/schedule"
	domainTrainer "github.com/FurkanArikk/fitness-center-sub002/internal/domain/trainer"
	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/week"
)

type digestTrainerStore struct {
	trainers []domainTrainer.Trainer
}

func (s *digestTrainerStore) List(_ context.Context) ([]domainTrainer.Trainer, error) {
	return s.trainers, nil
}

type digestScheduleStore struct {
	records []schedule.Record
}

func (s *digestScheduleStore) List(_ context.Context) ([]schedule.Record, error) {
	return s.records, nil
}

type captureSender struct {
	sent []emailAdapter.SendRequest
}

func (s *captureSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	s.sent = append(s.sent, req)
	return emailAdapter.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

// TestExecuteSendActivityDigest verifies the digest ranks trainers,
// renders HTML, and sends a single email.
func TestExecuteSendActivityDigest(t *testing.T) {
	sender := &captureSender{}
	deps := ActivityDigestDeps{
		TrainerStore: &digestTrainerStore{trainers: []domainTrainer.Trainer{
			{ID: 1, FirstName: "Elif", LastName: "Demir"},
			{ID: 2, FirstName: "Murat", LastName: "Kaya"},
		}},
		ScheduleStore: &digestScheduleStore{records: []schedule.Record{
			{EntityID: 1, EntityType: schedule.EntityTrainer, Day: week.Monday, Status: schedule.StatusActive},
			{EntityID: 1, EntityType: schedule.EntityTrainer, Day: week.Tuesday, Status: schedule.StatusActive},
			{EntityID: 2, EntityType: schedule.EntityTrainer, Day: week.Friday, Status: schedule.StatusActive},
		}},
		EmailSender: sender,
	}

	input := ActivityDigestInput{
		To:  []string{"owner@fitness.local"},
		Now: time.Date(2026, 8, 24, 6, 0, 0, 0, time.Local),
	}
	result, err := ExecuteSendActivityDigest(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.MessageID != "msg-1" {
		t.Errorf("message id = %q", result.MessageID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d emails, want 1", len(sender.sent))
	}

	req := sender.sent[0]
	if req.Subject != "Weekly trainer activity digest 2026-08-24" {
		t.Errorf("subject = %q", req.Subject)
	}
	if !strings.Contains(req.HTML, "Elif Demir (2 classes)") {
		t.Errorf("html missing top trainer line: %s", req.HTML)
	}
	if !strings.Contains(req.HTML, "Murat Kaya (1 classes)") {
		t.Errorf("html missing runner-up line: %s", req.HTML)
	}
	if !strings.Contains(req.HTML, "<h1>") {
		t.Errorf("html not rendered from markdown: %s", req.HTML)
	}
}

// TestExecuteSendActivityDigest_EmptyRanking verifies a quiet week
// still produces a digest.
func TestExecuteSendActivityDigest_EmptyRanking(t *testing.T) {
	sender := &captureSender{}
	deps := ActivityDigestDeps{
		TrainerStore:  &digestTrainerStore{},
		ScheduleStore: &digestScheduleStore{},
		EmailSender:   sender,
	}

	_, err := ExecuteSendActivityDigest(context.Background(), ActivityDigestInput{To: []string{"owner@fitness.local"}}, deps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0].HTML, "No trainers held classes") {
		t.Errorf("quiet-week digest = %+v", sender.sent)
	}
}

// TestExecuteSendActivityDigest_NoRecipients verifies the recipient
// precondition.
func TestExecuteSendActivityDigest_NoRecipients(t *testing.T) {
	_, err := ExecuteSendActivityDigest(context.Background(), ActivityDigestInput{}, ActivityDigestDeps{})
	if err == nil {
		t.Fatal("expected error for empty recipient list")
	}
}

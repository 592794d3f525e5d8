package orchestrators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	emailAdapter "github.com/FurkanArikk/fitness-center-sub002/internal/adapters/email"
	"github.com/FurkanArikk/fitness-center-sub002/internal/application/projections"

	"github.com/yuin/goldmark"
)

// ActivityDigestInput carries input for the weekly activity digest.
type ActivityDigestInput struct {
	To   []string  // recipient addresses
	From string    // sender address; empty uses the sender's default
	TopN int       // ranking size, defaults to projections.DefaultTopN
	Now  time.Time // optional: if zero, time.Now() is used
}

// ActivityDigestDeps holds dependencies for the digest orchestrator.
type ActivityDigestDeps struct {
	TrainerStore  projections.TrainerStore
	ScheduleStore projections.ScheduleStore
	EmailSender   emailAdapter.Sender
}

// ExecuteSendActivityDigest builds the weekly top-trainer ranking,
// renders it as an HTML email, and delivers it to the given addresses.
// PRE: Input.To has at least one address; deps are non-nil
// POST: Exactly one email is sent covering all recipients; an empty
// ranking still produces a digest noting the quiet week
func ExecuteSendActivityDigest(ctx context.Context, input ActivityDigestInput, deps ActivityDigestDeps) (emailAdapter.SendResult, error) {
	if len(input.To) == 0 {
		return emailAdapter.SendResult{}, errors.New("digest needs at least one recipient")
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	ranked, err := projections.QueryGetTopTrainers(ctx, projections.GetTopTrainersQuery{N: input.TopN}, projections.GetTopTrainersDeps{
		TrainerStore:  deps.TrainerStore,
		ScheduleStore: deps.ScheduleStore,
	})
	if err != nil {
		return emailAdapter.SendResult{}, fmt.Errorf("digest ranking: %w", err)
	}

	date := now.Format("2006-01-02")
	md := buildDigestMarkdown(date, ranked)

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(md), &html); err != nil {
		return emailAdapter.SendResult{}, fmt.Errorf("digest render: %w", err)
	}

	result, err := deps.EmailSender.Send(ctx, emailAdapter.SendRequest{
		To:      input.To,
		From:    input.From,
		Subject: "Weekly trainer activity digest " + date,
		HTML:    html.String(),
	})
	if err != nil {
		return emailAdapter.SendResult{}, err
	}

	slog.Info("activity_digest_sent",
		"message_id", result.MessageID,
		"recipients", len(input.To),
		"ranked", len(ranked),
	)
	return result, nil
}

// buildDigestMarkdown renders the ranking as a markdown document.
func buildDigestMarkdown(date string, ranked []projections.RankedEntry) string {
	var b strings.Builder
	b.WriteString("# Trainer activity digest\n\n")
	b.WriteString("Week of " + date + "\n\n")
	if len(ranked) == 0 {
		b.WriteString("No trainers held classes this week.\n")
		return b.String()
	}
	for _, entry := range ranked {
		b.WriteString(projections.FormatRankLine(entry))
		b.WriteString("\n")
	}
	return b.String()
}

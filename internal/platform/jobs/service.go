package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"fintrack/internal/domain/credit"
)

const JobDueDateRefresh = "due_date_refresh"

// Service runs scheduled maintenance. The only job today is the nightly
// due-date refresh: recompute every fixed/floating card's next due date and
// persist the ones that moved.
type Service struct {
	DB    *pgxpool.Pool
	Cards *credit.Store
	cron  *cron.Cron
}

func New(db *pgxpool.Pool, cards *credit.Store) *Service {
	return &Service{DB: db, Cards: cards, cron: cron.New()}
}

// Start schedules the refresh with the given cron spec (e.g. "@daily") and
// kicks off the scheduler. Stop cancels it.
func (s *Service) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunDueDateRefresh(ctx); err != nil {
			slog.Warn("due date refresh failed", "err", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunDueDateRefresh executes one refresh pass and records the run.
func (s *Service) RunDueDateRefresh(ctx context.Context) (int, error) {
	runID := s.beginRun(ctx, JobDueDateRefresh)

	updated, err := s.refreshDueDates(ctx, time.Now())

	status := "completed"
	if err != nil {
		status = "failed"
	}
	s.finishRun(ctx, runID, status, map[string]any{"updated": updated})
	return updated, err
}

func (s *Service) refreshDueDates(ctx context.Context, now time.Time) (int, error) {
	cards, err := s.Cards.ListAllCards(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, card := range cards {
		if card.DueDateType == credit.DueManual {
			continue
		}
		next := credit.NextDueDate(card, now)
		if next.IsZero() || (card.DueDate != nil && next.Equal(*card.DueDate)) {
			continue
		}
		if err := s.Cards.UpdateDueDate(ctx, card.ID, next); err != nil {
			return updated, err
		}
		updated++
	}
	slog.Info("due date refresh complete", "cards", len(cards), "updated", updated)
	return updated, nil
}

func (s *Service) beginRun(ctx context.Context, jobType string) string {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, $2)
    RETURNING id
  `, jobType, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}
	return runID
}

func (s *Service) finishRun(ctx context.Context, runID, status string, details any) {
	if runID == "" {
		return
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}
	if _, err := s.DB.Exec(ctx, `
    UPDATE job_runs
    SET status = $1, details_json = $2, completed_at = now()
    WHERE id = $3
  `, status, detailsJSON, runID); err != nil {
		slog.Warn("job run update failed", "err", err)
	}
}

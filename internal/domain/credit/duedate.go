package credit

import (
	"time"

	"fintrack/internal/platform/calendar"
)

// Classification thresholds in days. Fixed constants, not configuration.
const (
	dueSoonDays     = 3
	dueThisWeekDays = 7
)

// NextDueDate recomputes a card's due date relative to asOf.
//
// fixed cards anchor on a day-of-month, clamped into short months (day 31 in
// April yields April 30). floating cards anchor on the statement date's
// day-of-month plus DaysAfterStatement calendar days. manual cards are
// returned unchanged no matter how stale.
//
// The result only ever moves forward: it is never earlier than the stored
// due date, so a payment window already shown to the user is never revoked.
func NextDueDate(card Card, asOf time.Time) time.Time {
	today := calendar.Midnight(asOf)

	var next time.Time
	switch card.DueDateType {
	case DueFixed:
		next = nextFixed(card, today)
	case DueFloating:
		next = nextFloating(card, today)
	default:
		// manual and anything unrecognized: never auto-advance.
		if card.DueDate != nil {
			return calendar.Midnight(*card.DueDate)
		}
		return time.Time{}
	}

	if card.DueDate != nil {
		stored := calendar.Midnight(*card.DueDate)
		if !next.IsZero() && next.Before(stored) {
			return stored
		}
	}
	return next
}

func nextFixed(card Card, today time.Time) time.Time {
	day := card.DueDateDay
	if day < 1 && card.DueDate != nil {
		day = card.DueDate.Day()
	}
	if day < 1 {
		return time.Time{}
	}

	candidate := calendar.ClampDay(today.Year(), today.Month(), day)
	if !candidate.After(today) {
		// Advance by naming the month, not by AddDate on today: Jan 31 plus
		// one month would normalize into March and skip February.
		candidate = calendar.ClampDay(today.Year(), today.Month()+1, day)
	}
	return candidate
}

func nextFloating(card Card, today time.Time) time.Time {
	if card.StatementDate == nil {
		if card.DueDate != nil {
			return calendar.Midnight(*card.DueDate)
		}
		return time.Time{}
	}
	anchorDay := card.StatementDate.Day()

	statement := calendar.ClampDay(today.Year(), today.Month(), anchorDay)
	due := statement.AddDate(0, 0, card.DaysAfterStatement)
	if !due.After(today) {
		statement = calendar.ClampDay(today.Year(), today.Month()+1, anchorDay)
		due = statement.AddDate(0, 0, card.DaysAfterStatement)
	}
	return due
}

// ClassifyDueDate buckets the card's next due date relative to asOf:
// overdue (<0 days), due_today (0), due_soon (1-3), due_this_week (4-7),
// due_later (>7). A card with no derivable due date classifies as no_date.
func ClassifyDueDate(card Card, asOf time.Time) DueClassification {
	due := NextDueDate(card, asOf)
	if due.IsZero() {
		return DueClassification{Status: DueStatusNone}
	}

	days := calendar.DaysBetween(asOf, due)
	status := DueStatusLater
	switch {
	case days < 0:
		status = DueStatusOverdue
	case days == 0:
		status = DueStatusToday
	case days <= dueSoonDays:
		status = DueStatusSoon
	case days <= dueThisWeekDays:
		status = DueStatusThisWeek
	}
	return DueClassification{Status: status, DaysUntilDue: days}
}

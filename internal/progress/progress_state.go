package progress

import (
	"time"

	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
)

// transitions lists every allowed (from, to) pair. Same-state moves on
// not_started and completed are accepted and leave the row untouched.
var transitions = map[Status]map[Status]bool{
	StatusNotStarted: {StatusNotStarted: true, StatusInProgress: true, StatusCompleted: true},
	StatusInProgress: {StatusInProgress: true, StatusCompleted: true},
	StatusCompleted:  {StatusCompleted: true},
}

func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// Apply moves p to the target status. A nil p means no row exists yet and a fresh
// not_started row is used as the starting point. The returned bool is false when
// the move is an accepted no-op.
func Apply(p *EmployeeProgress, to Status, percentage *int, now time.Time) (EmployeeProgress, bool, error) {
	if !to.Valid() {
		return EmployeeProgress{}, false, progresserrors.ErrInvalidStatus
	}
	if percentage != nil && (*percentage < 0 || *percentage > 100) {
		return EmployeeProgress{}, false, progresserrors.ErrInvalidPercentage
	}

	var next EmployeeProgress
	if p != nil {
		next = *p
	} else {
		next = EmployeeProgress{Status: StatusNotStarted, CreatedAt: now}
	}

	from := next.Status
	if !CanTransition(from, to) {
		return EmployeeProgress{}, false, progresserrors.ErrInvalidStatusTransition
	}

	switch to {
	case StatusNotStarted:
		if percentage != nil && *percentage != 0 {
			return EmployeeProgress{}, false, progresserrors.ErrNotStartedPercentage
		}
		// only reachable from not_started
		if p != nil {
			return next, false, nil
		}
	case StatusInProgress:
		if next.StartedAt == nil {
			next.StartedAt = &now
		}
		if percentage != nil {
			next.ProgressPercentage = *percentage
		}
	case StatusCompleted:
		if from == StatusCompleted {
			return next, false, nil
		}
		if next.StartedAt == nil {
			next.StartedAt = &now
		}
		next.ProgressPercentage = 100
		next.CompletedAt = &now
	}

	next.Status = to
	next.UpdatedAt = now
	return next, true, nil
}

// Reopen is the explicit reset path: completed back to in_progress.
// started_at is kept, completed_at cleared.
func Reopen(p EmployeeProgress, percentage *int, now time.Time) (EmployeeProgress, error) {
	if p.Status != StatusCompleted {
		return EmployeeProgress{}, progresserrors.ErrInvalidStatusTransition
	}
	pct := 0
	if percentage != nil {
		if *percentage < 0 || *percentage > 100 {
			return EmployeeProgress{}, progresserrors.ErrInvalidPercentage
		}
		pct = *percentage
	}

	p.Status = StatusInProgress
	p.ProgressPercentage = pct
	p.CompletedAt = nil
	if p.StartedAt == nil {
		p.StartedAt = &now
	}
	p.UpdatedAt = now
	return p, nil
}

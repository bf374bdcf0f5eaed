// Package backend talks to the moderation backend over HTTP.
package backend

import (
	"context"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// Client defines the operations the console needs from the backend.
type Client interface {
	// PendingPapers fetches the full list of papers awaiting a decision.
	PendingPapers(ctx context.Context) ([]domain.Paper, error)
	// AcceptPaper submits an accept decision for one paper.
	AcceptPaper(ctx context.Context, id int) error
}

package inference

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/operant/internal/config"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// RateLimitedCollaborator wraps a Collaborator with a proactive request
// limiter, so the loop never drives the API past its request budget even
// with a zero cooldown.
type RateLimitedCollaborator struct {
	inner   Collaborator
	limiter *rate.Limiter
	log     *logging.Logger
}

// NewRateLimited wraps the collaborator with a requests-per-minute limit.
// Burst is 1: proposals are strictly sequential, so there is nothing to
// batch.
func NewRateLimited(inner Collaborator, cfg *config.RateLimitConfig, log *logging.Logger) *RateLimitedCollaborator {
	perSecond := float64(cfg.RequestsPerMinute) / 60.0
	return &RateLimitedCollaborator{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		log:     log.WithPrefix("inference"),
	}
}

// Propose waits for limiter clearance, then delegates.
func (r *RateLimitedCollaborator) Propose(ctx context.Context, contextText string) (*Proposal, error) {
	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if waited := time.Since(start); waited > time.Second {
		r.log.Info("waited for rate limit", logging.Duration(waited))
	}
	return r.inner.Propose(ctx, contextText)
}

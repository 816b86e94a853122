package fallback

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/taller-admin/internal/gateway"
)

// Policy tracks which collections are currently served from sample data.
type Policy struct {
	mu     sync.Mutex
	active map[gateway.Entity]Notice
	board  NoticeBoard
	logger zerolog.Logger
	now    func() time.Time
}

func NewPolicy(board NoticeBoard, logger zerolog.Logger) *Policy {
	return &Policy{
		active: make(map[gateway.Entity]Notice),
		board:  board,
		logger: logger,
		now:    time.Now,
	}
}

// Fail records a failed load. The first failure of a run posts a notice;
// later failures return the same notice without posting again.
func (p *Policy) Fail(ctx context.Context, entity gateway.Entity, cause error) (Notice, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n, ok := p.active[entity]; ok {
		p.logger.Debug().Str("entity", string(entity)).Err(cause).Msg("still using sample data")
		return n, false
	}

	n := NewNotice(entity, p.now())
	p.active[entity] = n
	p.logger.Warn().
		Str("entity", string(entity)).
		Err(cause).
		Msg("load failed, using sample data")

	if err := p.board.Post(ctx, n); err != nil {
		p.logger.Error().Err(err).Str("entity", string(entity)).Msg("failed to post notice")
	}
	return n, true
}

// Recover returns the entity to live mode and reports whether it was in
// fallback mode.
func (p *Policy) Recover(entity gateway.Entity) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.active[entity]; !ok {
		return false
	}
	delete(p.active, entity)
	p.logger.Info().Str("entity", string(entity)).Msg("store reachable again")
	return true
}

func (p *Policy) Active(entity gateway.Entity) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.active[entity]
	return ok
}

// Notice returns the notice posted when the entity entered fallback mode.
func (p *Policy) Notice(entity gateway.Entity) (Notice, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, ok := p.active[entity]
	return n, ok
}

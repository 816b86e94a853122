// Package fallback decides when a collection is served from sample data
// and tells the operator about it through dismissable notices.
package fallback

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
)

const (
	NoticeTitle   = "Usando datos de ejemplo"
	NoticeMessage = "No se pudo conectar a la base de datos. Mostrando datos de ejemplo."
)

type Notice struct {
	ID        uuid.UUID      `json:"id"`
	Entity    gateway.Entity `json:"entity"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewNotice(entity gateway.Entity, now time.Time) Notice {
	return Notice{
		ID:        uuid.New(),
		Entity:    entity,
		Title:     NoticeTitle,
		Message:   NoticeMessage,
		CreatedAt: now,
	}
}

// NoticeBoard stores notices until the operator dismisses them.
type NoticeBoard interface {
	Post(ctx context.Context, n Notice) error
	List(ctx context.Context) ([]Notice, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

// ======================================================
// Memory board
// ======================================================

type MemoryBoard struct {
	mu      sync.Mutex
	notices map[uuid.UUID]Notice
}

var _ NoticeBoard = (*MemoryBoard)(nil)

func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{notices: make(map[uuid.UUID]Notice)}
}

func (b *MemoryBoard) Post(_ context.Context, n Notice) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices[n.ID] = n
	return nil
}

// List returns the notices newest first.
func (b *MemoryBoard) List(_ context.Context) ([]Notice, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notice, 0, len(b.notices))
	for _, n := range b.notices {
		out = append(out, n)
	}
	SortNewestFirst(out)
	return out, nil
}

func (b *MemoryBoard) Dismiss(_ context.Context, id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notices[id]; !ok {
		return apperr.NotFound("notice", id)
	}
	delete(b.notices, id)
	return nil
}

func SortNewestFirst(ns []Notice) {
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.After(ns[j].CreatedAt)
		}
		return ns[i].ID.String() < ns[j].ID.String()
	})
}

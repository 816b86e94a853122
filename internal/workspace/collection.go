package workspace

import (
	"context"

	"github.com/BruksfildServices01/taller-admin/internal/audit"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
)

type keyed interface {
	Key() uint
}

// Result is one load of a collection. Fallback is set when Items come from
// the sample dataset.
type Result[V any] struct {
	Items    []V              `json:"items"`
	Fallback bool             `json:"fallback"`
	Notice   *fallback.Notice `json:"notice,omitempty"`
}

// Collection routes one entity to the live store or, while the entity is
// in fallback mode, to the local sample store.
type Collection[V keyed, I, P any] struct {
	entity gateway.Entity
	noun   string
	live   gateway.Store[V, I, P]
	local  gateway.Store[V, I, P]
	ws     *Workspace
}

var _ gateway.CustomerStore = (*Collection[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch])(nil)

func newCollection[V keyed, I, P any](
	ws *Workspace,
	entity gateway.Entity,
	noun string,
	live, local gateway.Store[V, I, P],
) *Collection[V, I, P] {
	return &Collection[V, I, P]{
		entity: entity,
		noun:   noun,
		live:   live,
		local:  local,
		ws:     ws,
	}
}

func (c *Collection[V, I, P]) Entity() gateway.Entity {
	return c.entity
}

// Fallback reports whether mutations currently go to the sample store.
func (c *Collection[V, I, P]) Fallback() bool {
	return c.ws.policy.Active(c.entity)
}

// Load reads the live store. Any failure switches the entity to the sample
// dataset and the error is not returned.
func (c *Collection[V, I, P]) Load(ctx context.Context) (Result[V], error) {
	items, err := c.live.List(ctx)
	if err == nil {
		c.ws.policy.Recover(c.entity)
		return Result[V]{Items: items}, nil
	}

	notice, entered := c.ws.policy.Fail(ctx, c.entity, err)
	if entered {
		c.ws.local.Reset(c.entity)
	}

	items, err = c.local.List(ctx)
	if err != nil {
		return Result[V]{}, err
	}
	return Result[V]{Items: items, Fallback: true, Notice: &notice}, nil
}

// List satisfies gateway.Store; it drops the fallback flag of Load.
func (c *Collection[V, I, P]) List(ctx context.Context) ([]V, error) {
	res, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *Collection[V, I, P]) store() (gateway.Store[V, I, P], bool) {
	if c.ws.policy.Active(c.entity) {
		return c.local, true
	}
	return c.live, false
}

func (c *Collection[V, I, P]) Create(ctx context.Context, in I) (V, error) {
	s, local := c.store()
	v, err := s.Create(ctx, in)
	if err != nil {
		return v, err
	}
	c.record(c.noun+"_created", v.Key(), local)
	return v, nil
}

func (c *Collection[V, I, P]) Update(ctx context.Context, id uint, patch P) (V, error) {
	return c.UpdateAs(ctx, id, patch, c.noun+"_updated")
}

// UpdateAs applies patch and records it under action.
func (c *Collection[V, I, P]) UpdateAs(ctx context.Context, id uint, patch P, action string) (V, error) {
	s, local := c.store()
	v, err := s.Update(ctx, id, patch)
	if err != nil {
		return v, err
	}
	c.record(action, id, local)
	return v, nil
}

func (c *Collection[V, I, P]) Delete(ctx context.Context, id uint) error {
	s, local := c.store()
	if err := s.Delete(ctx, id); err != nil {
		return err
	}
	c.record(c.noun+"_deleted", id, local)
	return nil
}

func (c *Collection[V, I, P]) record(action string, id uint, local bool) {
	c.ws.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   string(c.entity),
		EntityID: &id,
		Fallback: local,
	})
}

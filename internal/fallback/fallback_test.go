package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

func TestPolicyPostsOncePerOutage(t *testing.T) {
	board := NewMemoryBoard()
	p := NewPolicy(board, zerolog.Nop())
	ctx := context.Background()
	cause := apperr.Transport("list customers", errors.New("connection refused"))

	first, posted := p.Fail(ctx, gateway.Customers, cause)
	assert.True(t, posted)
	assert.Equal(t, NoticeTitle, first.Title)
	assert.Equal(t, gateway.Customers, first.Entity)

	again, posted := p.Fail(ctx, gateway.Customers, cause)
	assert.False(t, posted)
	assert.Equal(t, first.ID, again.ID)

	notices, err := board.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notices, 1)
	assert.True(t, p.Active(gateway.Customers))
	assert.False(t, p.Active(gateway.Invoices))

	assert.True(t, p.Recover(gateway.Customers))
	assert.False(t, p.Recover(gateway.Customers))
	assert.False(t, p.Active(gateway.Customers))

	_, posted = p.Fail(ctx, gateway.Customers, cause)
	assert.True(t, posted, "a new outage posts a new notice")
}

func TestMemoryBoard(t *testing.T) {
	board := NewMemoryBoard()
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	older := NewNotice(gateway.Inventory, base)
	newer := NewNotice(gateway.Invoices, base.Add(time.Minute))
	require.NoError(t, board.Post(ctx, older))
	require.NoError(t, board.Post(ctx, newer))

	list, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	require.NoError(t, board.Dismiss(ctx, newer.ID))
	assert.True(t, apperr.IsNotFound(board.Dismiss(ctx, newer.ID)))
	assert.True(t, apperr.IsNotFound(board.Dismiss(ctx, uuid.New())))

	list, err = board.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Notice{older}, list)
}

func TestSampleIsConsistent(t *testing.T) {
	s := Sample()

	for _, c := range s.Customers {
		assert.NoError(t, validators.Customer(c))
	}
	for _, a := range s.Appointments {
		assert.NoError(t, validators.Appointment(a))
	}
	for _, it := range s.Inventory {
		assert.NoError(t, validators.InventoryItem(it))
	}
	for _, o := range s.RepairOrders {
		assert.NoError(t, validators.RepairOrder(o))
	}
	for _, inv := range s.Invoices {
		assert.NoError(t, validators.Invoice(inv))
	}

	db := memory.NewDB(derive.Engine{TaxRate: derive.DefaultTaxRate}, "FAC", s)
	appointments, err := db.Gateway().Appointments.List(context.Background())
	require.NoError(t, err)
	for _, a := range appointments {
		assert.NotEqual(t, gateway.UnknownCustomer, a.CustomerName)
	}
}

func TestSampleReturnsFreshData(t *testing.T) {
	a := Sample()
	a.Invoices[0].Items[0].UnitPrice = 0
	a.Customers[0].Name = "changed"

	b := Sample()
	assert.Equal(t, 38.9, b.Invoices[0].Items[0].UnitPrice)
	assert.Equal(t, "Juan Pérez", b.Customers[0].Name)
}

package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

var errDown = errors.New("connection refused")

// flaky fails List while *down is set.
type flaky[V, I, P any] struct {
	gateway.Store[V, I, P]
	down *bool
}

func (f flaky[V, I, P]) List(ctx context.Context) ([]V, error) {
	if *f.down {
		return nil, apperr.Transport("list", errDown)
	}
	return f.Store.List(ctx)
}

type fixture struct {
	ws    *Workspace
	live  gateway.Gateway
	board *fallback.MemoryBoard
	down  *bool
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	engine := derive.Engine{TaxRate: derive.DefaultTaxRate}
	liveDB := memory.NewDB(engine, "FAC", memory.Dataset{
		Customers: []models.Customer{{ID: 1, Name: "Cliente real"}},
	})
	live := liveDB.Gateway()

	down := new(bool)
	wrapped := gateway.Gateway{
		Customers:    flaky[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch]{live.Customers, down},
		Appointments: flaky[dto.AppointmentView, dto.AppointmentInput, dto.AppointmentPatch]{live.Appointments, down},
		Inventory:    flaky[dto.InventoryItemView, dto.InventoryItemInput, dto.InventoryItemPatch]{live.Inventory, down},
		RepairOrders: flaky[dto.RepairOrderView, dto.RepairOrderInput, dto.RepairOrderPatch]{live.RepairOrders, down},
		Invoices:     flaky[dto.InvoiceView, dto.InvoiceInput, dto.InvoicePatch]{live.Invoices, down},
	}

	board := fallback.NewMemoryBoard()
	policy := fallback.NewPolicy(board, zerolog.Nop())
	local := memory.NewDB(engine, "FAC", fallback.Sample())
	return fixture{
		ws:    New(wrapped, local, policy, nil, time.UTC),
		live:  live,
		board: board,
		down:  down,
	}
}

func TestLoadFallsBackAndRecovers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sampleCount := len(fallback.Sample().Customers)

	res, err := f.ws.Customers.Load(ctx)
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Nil(t, res.Notice)
	require.Len(t, res.Items, 1)

	*f.down = true
	res, err = f.ws.Customers.Load(ctx)
	require.NoError(t, err, "a failed load is never escalated")
	assert.True(t, res.Fallback)
	require.NotNil(t, res.Notice)
	assert.Equal(t, fallback.NoticeTitle, res.Notice.Title)
	assert.Len(t, res.Items, sampleCount)
	assert.True(t, f.ws.Customers.Fallback())

	notices, err := f.board.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notices, 1)

	_, err = f.ws.Customers.Create(ctx, dto.CustomerInput{Name: "Solo local"})
	require.NoError(t, err)

	res, err = f.ws.Customers.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, sampleCount+1)

	liveRows, err := f.live.Customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, liveRows, 1, "local mutations are never replayed")

	*f.down = false
	res, err = f.ws.Customers.Load(ctx)
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Len(t, res.Items, 1)
	assert.False(t, f.ws.Customers.Fallback())

	*f.down = true
	res, err = f.ws.Customers.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, sampleCount, "a new outage starts from clean sample data")

	notices, err = f.board.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notices, 2)
}

func TestFallbackIsPerEntity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	*f.down = true
	_, err := f.ws.Invoices.Load(ctx)
	require.NoError(t, err)

	assert.True(t, f.ws.Invoices.Fallback())
	assert.False(t, f.ws.Customers.Fallback())
}

func TestMutationErrorsAreSurfaced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ws.Appointments.Create(ctx, dto.AppointmentInput{CustomerID: 42, AppointmentDate: time.Now()})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.ws.Customers.UpdateAs(ctx, 99, dto.CustomerPatch{}, "customer_updated")
	assert.True(t, apperr.IsNotFound(err))
}

func TestReportMarksFallbackEntities(t *testing.T) {
	f := newFixture(t)
	*f.down = true

	ov, err := f.ws.Report(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, gateway.Entities(), ov.Fallback)
	assert.Len(t, ov.Notices, 5)
	assert.Equal(t, 2, ov.Data.Statistics.CompletedOrders)
	assert.Equal(t, 3, ov.Data.Statistics.UniqueCustomers)
	assert.Equal(t, 94.86, ov.Data.Statistics.TotalRevenue)
}

func TestDashboardOnSampleData(t *testing.T) {
	f := newFixture(t)
	*f.down = true
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	ov, err := f.ws.Dashboard(context.Background(), now)
	require.NoError(t, err)

	d := ov.Data
	assert.Equal(t, 1, d.TodayAppointments)
	assert.Equal(t, 1, d.PendingAppointments)
	assert.Len(t, d.UpcomingAppointments, 2)
	assert.Equal(t, 1, d.ActiveOrders)
	assert.Equal(t, 2, d.LowStockItems)
	assert.Equal(t, 0.0, d.TodayRevenue)
}

func TestLiveOverviewHasNoFallback(t *testing.T) {
	f := newFixture(t)

	ov, err := f.ws.Report(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ov.Fallback)
	assert.Empty(t, ov.Notices)
	assert.Len(t, ov.Data.TopCustomers, 1)
}

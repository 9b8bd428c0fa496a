package services

import (
	"context"
	"errors"
	"testing"

	"warmindo-pos/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockOrderStore struct {
	orders      map[string]*models.Order
	setCalls    int
	setStatuses []Status
	setErr      error
	findErr     error
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: map[string]*models.Order{}}
}

func (m *mockOrderStore) put(o *models.Order) { m.orders[o.Order_id] = o }

func (m *mockOrderStore) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	o, ok := m.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copy := *o
	return &copy, nil
}

func (m *mockOrderStore) SetStatus(ctx context.Context, orderID string, from, to Status) error {
	m.setCalls++
	m.setStatuses = append(m.setStatuses, to)
	if m.setErr != nil {
		return m.setErr
	}
	o, ok := m.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if Status(o.Status) != from {
		return ErrConflict
	}
	o.Status = string(to)
	return nil
}

func tableNo(n string) *string { return &n }

func testOrder(status Status, serviceType string, table *string) *models.Order {
	return &models.Order{
		Order_id:     uuid.NewString(),
		Status:       string(status),
		Service_type: serviceType,
		Table_no:     table,
	}
}

func TestTransitionTableShape(t *testing.T) {
	terminal := map[Status]bool{StatusCompleted: true, StatusCanceled: true}
	for from, nexts := range StatusTransitions {
		if terminal[from] {
			assert.Empty(t, nexts, "terminal status %s must allow nothing", from)
			continue
		}
		assert.True(t, CanTransition(from, StatusCanceled), "%s must be cancelable", from)
	}
	assert.False(t, CanTransition(StatusCompleted, StatusCanceled))
	assert.False(t, CanTransition(StatusCanceled, StatusPlaced))
}

func TestTransitionAllowed(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusPlaced, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	got, err := svc.Transition(context.Background(), order.Order_id, StatusPaid)

	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, got)
	assert.Equal(t, string(StatusPaid), store.orders[order.Order_id].Status)
	assert.Equal(t, 1, store.setCalls)
}

func TestTransitionSkippingStepsRefused(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusPlaced, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), order.Order_id, StatusReady)

	var ite *IllegalTransitionError
	assert.ErrorAs(t, err, &ite)
	assert.Equal(t, StatusPlaced, ite.From)
	assert.Equal(t, StatusReady, ite.To)
	assert.Equal(t, 0, store.setCalls, "no write may happen before guards pass")
	assert.Equal(t, string(StatusPlaced), store.orders[order.Order_id].Status)
}

func TestTransitionOutOfTerminalRefused(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCanceled} {
		store := newMockOrderStore()
		order := testOrder(terminal, ServiceTakeaway, nil)
		store.put(order)
		svc := NewStatusService(store)

		_, err := svc.Transition(context.Background(), order.Order_id, StatusPlaced)

		var ite *IllegalTransitionError
		assert.ErrorAs(t, err, &ite, "from %s", terminal)
		assert.Equal(t, 0, store.setCalls)
	}
}

func TestTransitionDineInNeedsTable(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusConfirmed, ServiceDineIn, nil)
	store.put(order)
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), order.Order_id, StatusPrep)

	assert.ErrorIs(t, err, ErrMissingTable)
	assert.Equal(t, 0, store.setCalls)
	assert.Equal(t, string(StatusConfirmed), store.orders[order.Order_id].Status)
}

func TestTransitionDineInWithTablePasses(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusConfirmed, ServiceDineIn, tableNo("5"))
	store.put(order)
	svc := NewStatusService(store)

	got, err := svc.Transition(context.Background(), order.Order_id, StatusPrep)

	assert.NoError(t, err)
	assert.Equal(t, StatusPrep, got)
}

func TestTransitionBlankTableCountsAsMissing(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusConfirmed, ServiceDineIn, tableNo("   "))
	store.put(order)
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), order.Order_id, StatusPrep)

	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestTransitionTakeawayIgnoresTable(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusReady, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	got, err := svc.Transition(context.Background(), order.Order_id, StatusServed)

	assert.NoError(t, err)
	assert.Equal(t, StatusServed, got)
}

func TestTransitionReissueFailsCleanly(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusPlaced, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), order.Order_id, StatusPaid)
	assert.NoError(t, err)

	// The same request again finds the order already past placed.
	_, err = svc.Transition(context.Background(), order.Order_id, StatusPaid)
	var ite *IllegalTransitionError
	assert.ErrorAs(t, err, &ite)
	assert.Equal(t, string(StatusPaid), store.orders[order.Order_id].Status)
}

func TestTransitionConflictSurfaces(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusPlaced, ServiceTakeaway, nil)
	store.put(order)
	store.setErr = ErrConflict
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), order.Order_id, StatusPaid)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestTransitionUnknownOrder(t *testing.T) {
	store := newMockOrderStore()
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), uuid.NewString(), StatusPaid)

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, 0, store.setCalls, "unknown order must fail before any write")
}

func TestTransitionRejectsBadInput(t *testing.T) {
	store := newMockOrderStore()
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), "not-a-uuid", StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidOrderID)

	_, err = svc.Transition(context.Background(), uuid.NewString(), Status("shipped"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, 0, store.setCalls)
}

func TestAdvanceWalksLinearFlow(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusPlaced, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	want := []Status{StatusPaid, StatusConfirmed, StatusPrep, StatusReady, StatusServed, StatusCompleted}
	for _, next := range want {
		got, err := svc.Advance(context.Background(), order.Order_id)
		assert.NoError(t, err)
		assert.Equal(t, next, got)
	}
	assert.Equal(t, want, store.setStatuses)

	_, err := svc.Advance(context.Background(), order.Order_id)
	assert.ErrorIs(t, err, ErrNoNextStep)
}

func TestCancelFromEveryNonTerminal(t *testing.T) {
	for _, from := range []Status{StatusPlaced, StatusPaid, StatusConfirmed, StatusPrep, StatusReady, StatusServed} {
		store := newMockOrderStore()
		order := testOrder(from, ServiceTakeaway, nil)
		store.put(order)
		svc := NewStatusService(store)

		got, err := svc.Cancel(context.Background(), order.Order_id)

		assert.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, StatusCanceled, got)
	}
}

func TestCancelFromTerminalRefused(t *testing.T) {
	store := newMockOrderStore()
	order := testOrder(StatusCompleted, ServiceTakeaway, nil)
	store.put(order)
	svc := NewStatusService(store)

	_, err := svc.Cancel(context.Background(), order.Order_id)

	var ite *IllegalTransitionError
	assert.ErrorAs(t, err, &ite)
}

func TestFindErrorPassesThrough(t *testing.T) {
	store := newMockOrderStore()
	store.findErr = errors.New("primary stepped down")
	svc := NewStatusService(store)

	_, err := svc.Transition(context.Background(), uuid.NewString(), StatusPaid)

	assert.EqualError(t, err, "primary stepped down")
}

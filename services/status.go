package services

import (
	"context"
	"strings"

	"warmindo-pos/models"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusPaid      Status = "paid"
	StatusConfirmed Status = "confirmed"
	StatusPrep      Status = "prep"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

const (
	ServiceDineIn   = "dine_in"
	ServiceTakeaway = "takeaway"
)

// StatusTransitions maps each status to the set of statuses reachable from
// it. completed and canceled are terminal; every other status can cancel.
var StatusTransitions = map[Status][]Status{
	StatusPlaced:    {StatusPaid, StatusCanceled},
	StatusPaid:      {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusPrep, StatusCanceled},
	StatusPrep:      {StatusReady, StatusCanceled},
	StatusReady:     {StatusServed, StatusCanceled},
	StatusServed:    {StatusCompleted, StatusCanceled},
	StatusCompleted: {},
	StatusCanceled:  {},
}

// LinearNext is the single-step "Next" action used by the order table.
var LinearNext = map[Status]Status{
	StatusPlaced:    StatusPaid,
	StatusPaid:      StatusConfirmed,
	StatusConfirmed: StatusPrep,
	StatusPrep:      StatusReady,
	StatusReady:     StatusServed,
	StatusServed:    StatusCompleted,
}

// requiresTable lists the statuses a dine-in order may only reach once a
// table number has been set.
var requiresTable = map[Status]bool{
	StatusPrep:      true,
	StatusReady:     true,
	StatusServed:    true,
	StatusCompleted: true,
}

func (s Status) Valid() bool {
	_, ok := StatusTransitions[s]
	return ok
}

func AllowedNext(s Status) []Status {
	return StatusTransitions[s]
}

func CanTransition(from, to Status) bool {
	for _, next := range StatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func RequiresTable(s Status) bool {
	return requiresTable[s]
}

func IsDineIn(serviceType string) bool {
	return strings.ToLower(strings.TrimSpace(serviceType)) == ServiceDineIn
}

// OrderStore is the slice of the order repository the status service needs.
type OrderStore interface {
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	// SetStatus applies the transition only while the order still carries
	// the from status; it returns ErrConflict when the row moved underneath
	// us and ErrOrderNotFound when the order is gone.
	SetStatus(ctx context.Context, orderID string, from, to Status) error
}

type StatusService struct {
	store OrderStore
}

func NewStatusService(store OrderStore) *StatusService {
	return &StatusService{store: store}
}

// Transition re-reads the order, validates the requested status against the
// transition table and the dine-in table guard, then issues the conditional
// update. Nothing is written before every guard passes.
func (s *StatusService) Transition(ctx context.Context, orderID string, target Status) (Status, error) {
	cleanID := strings.TrimSpace(orderID)
	if _, err := uuid.Parse(cleanID); err != nil {
		return "", ErrInvalidOrderID
	}
	if !target.Valid() {
		return "", ErrUnknownStatus
	}

	order, err := s.store.FindByID(ctx, cleanID)
	if err != nil {
		return "", err
	}

	from := Status(order.Status)
	if !CanTransition(from, target) {
		return "", &IllegalTransitionError{From: from, To: target}
	}
	if IsDineIn(order.Service_type) && RequiresTable(target) {
		if order.Table_no == nil || strings.TrimSpace(*order.Table_no) == "" {
			return "", ErrMissingTable
		}
	}

	if err := s.store.SetStatus(ctx, cleanID, from, target); err != nil {
		return "", err
	}
	return target, nil
}

// Advance moves the order one step along the linear flow.
func (s *StatusService) Advance(ctx context.Context, orderID string) (Status, error) {
	cleanID := strings.TrimSpace(orderID)
	if _, err := uuid.Parse(cleanID); err != nil {
		return "", ErrInvalidOrderID
	}
	order, err := s.store.FindByID(ctx, cleanID)
	if err != nil {
		return "", err
	}
	next, ok := LinearNext[Status(order.Status)]
	if !ok {
		return "", ErrNoNextStep
	}
	return s.Transition(ctx, cleanID, next)
}

// Cancel marks the order canceled; legal from every non-terminal status.
func (s *StatusService) Cancel(ctx context.Context, orderID string) (Status, error) {
	return s.Transition(ctx, orderID, StatusCanceled)
}

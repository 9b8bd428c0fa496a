package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"warmindo-pos/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderWriter is the slice of the order repository the POS needs. The
// create-with-items call is preferred; when the store reports it as
// unavailable the submitter falls back to the two inserts.
type OrderWriter interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertItems(ctx context.Context, items []models.OrderItem) error
	SetProof(ctx context.Context, orderID, proofPath string) error
}

// BlobStore stores payment proofs and resolves stored paths for display.
type BlobStore interface {
	Upload(ctx context.Context, blobPath string, r io.Reader) error
	SignedURL(blobPath string, ttl time.Duration) (string, error)
}

// MenuFinder resolves menu ids to current menu documents so unit prices are
// snapshotted server-side, never trusted from the client.
type MenuFinder interface {
	FindByID(ctx context.Context, menuID string) (*models.Menu, error)
}

// OrderLine is one requested line before the menu snapshot is applied.
type OrderLine struct {
	Menu_id string
	Qty     int
	Note    string
	Options []models.ItemOption
}

// BuildCart resolves each requested line against the menu store. An
// unavailable menu, or a document missing its name or price, refuses the
// whole submission.
func BuildCart(ctx context.Context, menus MenuFinder, lines []OrderLine) (*Cart, error) {
	cart := &Cart{}
	for _, ln := range lines {
		menu, err := menus.FindByID(ctx, ln.Menu_id)
		if err != nil {
			return nil, err
		}
		if !menu.Is_available || menu.Name == nil || menu.Price == nil {
			return nil, ErrMenuUnavailable
		}
		cart.Add(CartItem{
			Menu_id:    menu.Menu_id,
			Name:       *menu.Name,
			Unit_price: *menu.Price,
			Qty:        ln.Qty,
			Note:       ln.Note,
			Options:    ln.Options,
		})
	}
	return cart, nil
}

const ProofURLTTL = 10 * time.Minute

type POSService struct {
	orders OrderWriter
	blobs  BlobStore
	now    func() time.Time
}

func NewPOSService(orders OrderWriter, blobs BlobStore) *POSService {
	return &POSService{orders: orders, blobs: blobs, now: time.Now}
}

type SubmitInput struct {
	Cart           *Cart
	Service_type   string
	Table_no       string
	Payment_method string
	Guest_name     string
	Contact        string
	Note           string
	Source         string
	Created_by     string
	// MarkPaid starts the order at paid instead of placed; the POS flow
	// uses it when payment is taken up front.
	MarkPaid bool
}

type SubmitResult struct {
	Order        models.Order       `json:"order"`
	Items        []models.OrderItem `json:"items"`
	Totals       Totals             `json:"totals"`
	UsedFallback bool               `json:"used_fallback"`
}

// PaymentCode builds the client-generated correlation token for an order.
func PaymentCode(t time.Time) string {
	return "POS-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// NeedsProof reports whether the payment method expects an uploaded proof.
func NeedsProof(paymentMethod string) bool {
	switch paymentMethod {
	case "transfer", "ewallet", "qris":
		return true
	}
	return false
}

// Submit persists the cart as an order plus line items. It first attempts
// the atomic create-with-items call; when the store reports that call as
// unavailable it falls back to inserting the header and then the items.
// A header that persisted without its items is surfaced as
// PartialSubmissionError so the caller knows not to resubmit.
func (s *POSService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if in.Cart == nil || in.Cart.Empty() {
		return nil, ErrEmptyCart
	}
	if IsDineIn(in.Service_type) && strings.TrimSpace(in.Table_no) == "" {
		return nil, ErrMissingTable
	}

	now := s.now()
	totals := in.Cart.ComputeTotals()

	status := StatusPlaced
	if in.MarkPaid {
		status = StatusPaid
	}
	source := in.Source
	if source == "" {
		source = "pos"
	}

	order := models.Order{
		ID:             primitive.NewObjectID(),
		Order_id:       uuid.NewString(),
		Created_at:     now,
		Updated_at:     now,
		Source:         source,
		Service_type:   in.Service_type,
		Status:         string(status),
		Payment_method: in.Payment_method,
		Payment_code:   PaymentCode(now),
		Total_amount:   totals.Grand_total,
	}
	if IsDineIn(in.Service_type) {
		tableNo := strings.TrimSpace(in.Table_no)
		order.Table_no = &tableNo
	}
	if in.Guest_name != "" {
		order.Guest_name = &in.Guest_name
	}
	if in.Contact != "" {
		order.Contact = &in.Contact
	}
	if in.Note != "" {
		order.Note = &in.Note
	}
	if in.Created_by != "" {
		order.Created_by = &in.Created_by
	}

	items := make([]models.OrderItem, 0, len(in.Cart.Items))
	for _, it := range in.Cart.Items {
		item := models.OrderItem{
			ID:         primitive.NewObjectID(),
			Order_id:   order.Order_id,
			Menu_id:    it.Menu_id,
			Name:       it.Name,
			Qty:        it.Qty,
			Unit_price: it.Unit_price,
			Options:    it.Options,
			Created_at: now,
			Updated_at: now,
		}
		item.Order_item_id = item.ID.Hex()
		if it.Note != "" {
			note := it.Note
			item.Note = &note
		}
		items = append(items, item)
	}

	usedFallback := false
	err := s.orders.CreateWithItems(ctx, &order, items)
	if errors.Is(err, ErrAtomicUnavailable) {
		usedFallback = true
		if err = s.orders.InsertOrder(ctx, &order); err != nil {
			return nil, err
		}
		if err = s.orders.InsertItems(ctx, items); err != nil {
			return nil, &PartialSubmissionError{OrderID: order.Order_id, Stage: "item insert", Err: err}
		}
	} else if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Order:        order,
		Items:        items,
		Totals:       totals,
		UsedFallback: usedFallback,
	}, nil
}

// AttachProof uploads the file under a path keyed by the order id and
// patches only the order's proof reference. Both steps are side effecting
// and not transactional; a failure after upload leaves the order intact.
func (s *POSService) AttachProof(ctx context.Context, orderID, filename string, r io.Reader) (string, error) {
	cleanID := strings.TrimSpace(orderID)
	if _, err := uuid.Parse(cleanID); err != nil {
		return "", ErrInvalidOrderID
	}
	blobPath := fmt.Sprintf("proofs/%s/%d_%s", cleanID, s.now().Unix(), path.Base(filename))
	if err := s.blobs.Upload(ctx, blobPath, r); err != nil {
		return "", fmt.Errorf("proof upload failed: %w", err)
	}
	if err := s.orders.SetProof(ctx, cleanID, blobPath); err != nil {
		return "", &PartialSubmissionError{OrderID: cleanID, Stage: "proof reference update", Err: err}
	}
	return blobPath, nil
}

// ResolveProofURL turns a stored proof path into something the caller can
// open. Absolute URLs pass through untouched; otherwise a time-limited
// signed URL is issued. When signing fails the raw path is returned as a
// textual fallback rather than an error.
func (s *POSService) ResolveProofURL(proofPath string) string {
	p := strings.TrimSpace(proofPath)
	if p == "" {
		return ""
	}
	lower := strings.ToLower(p)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return p
	}
	url, err := s.blobs.SignedURL(p, ProofURLTTL)
	if err != nil {
		return p
	}
	return url
}

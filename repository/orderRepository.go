package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/models"
	"warmindo-pos/services"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository owns the orders and order_items collections. It is the
// authoritative boundary for order state: the status update re-validates
// the current status server-side via a conditional write.
type OrderRepository struct {
	client *mongo.Client
	orders *mongo.Collection
	items  *mongo.Collection
}

func NewOrderRepository(client *mongo.Client, db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		client: client,
		orders: db.Collection("orders"),
		items:  db.Collection("order_items"),
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := helpers.WithRetry(ctx, func() error {
		return r.orders.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, services.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// SetStatus applies the transition only while the stored status still equals
// from. A missed match on an existing order means another actor moved it
// first, which surfaces as a conflict rather than a silent overwrite.
func (r *OrderRepository) SetStatus(ctx context.Context, orderID string, from, to services.Status) error {
	res, err := r.orders.UpdateOne(
		ctx,
		bson.M{"order_id": orderID, "status": string(from)},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: string(to)},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := r.orders.CountDocuments(ctx, bson.M{"order_id": orderID})
		if err != nil {
			return err
		}
		if count == 0 {
			return services.ErrOrderNotFound
		}
		return services.ErrConflict
	}
	return nil
}

// commitOutcomeUnknown reports whether the transaction may have committed
// despite the error. Falling back to plain inserts then could duplicate the
// order, so those failures are surfaced instead of retried.
func commitOutcomeUnknown(err error) bool {
	var srvErr mongo.ServerError
	return errors.As(err, &srvErr) && srvErr.HasErrorLabel("UnknownTransactionCommitResult")
}

// CreateWithItems inserts the order and its items in one multi-document
// transaction. When the transaction aborts without committing (standalone
// mongod, unsupported configuration, a rejected command) the error is
// wrapped as services.ErrAtomicUnavailable so the POS takes the two-step
// path. Only an ambiguous outcome, where the commit may have landed, is
// returned as-is.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrAtomicUnavailable, err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.orders.InsertOne(sc, order); err != nil {
			return nil, err
		}
		docs := make([]interface{}, 0, len(items))
		for i := range items {
			docs = append(docs, items[i])
		}
		if _, err := r.items.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if commitOutcomeUnknown(err) {
			return err
		}
		return fmt.Errorf("%w: %v", services.ErrAtomicUnavailable, err)
	}
	return nil
}

func (r *OrderRepository) InsertOrder(ctx context.Context, order *models.Order) error {
	_, err := r.orders.InsertOne(ctx, order)
	return err
}

func (r *OrderRepository) InsertItems(ctx context.Context, items []models.OrderItem) error {
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		docs = append(docs, items[i])
	}
	_, err := r.items.InsertMany(ctx, docs)
	return err
}

// SetProof patches only the proof reference; status, totals and items are
// untouched.
func (r *OrderRepository) SetProof(ctx context.Context, orderID, proofPath string) error {
	res, err := r.orders.UpdateOne(
		ctx,
		bson.M{"order_id": orderID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "proof_url", Value: proofPath},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return services.ErrOrderNotFound
	}
	return nil
}

// SetTable stores the table number; a takeaway order gaining a table is
// flipped to dine_in, matching the back-office "set table" action.
func (r *OrderRepository) SetTable(ctx context.Context, orderID, tableNo string, forceDineIn bool) error {
	set := bson.D{
		{Key: "table_no", Value: tableNo},
		{Key: "updated_at", Value: time.Now()},
	}
	if forceDineIn {
		set = append(set, bson.E{Key: "service_type", Value: services.ServiceDineIn})
	}
	res, err := r.orders.UpdateOne(ctx, bson.M{"order_id": orderID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return services.ErrOrderNotFound
	}
	return nil
}

// ListFilter mirrors the order table filters: status, source, service type,
// a creation date range and a free text search that matches either an exact
// order id (when it parses as a uuid) or guest name/contact.
type ListFilter struct {
	Status      string
	Source      string
	ServiceType string
	From        *time.Time
	To          *time.Time
	Search      string
	Limit       int64
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Source != "" {
		q["source"] = f.Source
	}
	if f.ServiceType != "" {
		q["service_type"] = f.ServiceType
	}
	created := bson.M{}
	if f.From != nil {
		created["$gte"] = *f.From
	}
	if f.To != nil {
		created["$lte"] = *f.To
	}
	if len(created) > 0 {
		q["created_at"] = created
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		if _, err := uuid.Parse(s); err == nil {
			q["order_id"] = s
		} else {
			pattern := primitive.Regex{Pattern: s, Options: "i"}
			q["$or"] = bson.A{
				bson.M{"guest_name": pattern},
				bson.M{"contact": pattern},
			}
		}
	}
	return q
}

func (r *OrderRepository) List(ctx context.Context, filter ListFilter) ([]models.Order, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	var orders []models.Order
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.orders.Find(ctx, filter.query(), opts)
		if err != nil {
			return err
		}
		orders = orders[:0]
		return cursor.All(ctx, &orders)
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) ItemsByOrder(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	var items []models.OrderItem
	err := helpers.WithRetry(ctx, func() error {
		cursor, err := r.items.Find(ctx, bson.M{"order_id": orderID}, opts)
		if err != nil {
			return err
		}
		items = items[:0]
		return cursor.All(ctx, &items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

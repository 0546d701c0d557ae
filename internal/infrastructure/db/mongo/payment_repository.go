package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(collectionPayments)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transaction_id"`
	Date          time.Time          `bson:"date"`
	CartIDs       []string           `bson:"cart_ids"`
	MenuItemIDs   []string           `bson:"menu_item_ids,omitempty"`
	Status        string             `bson:"status,omitempty"`
}

func (m mongoPayment) toDomain() domain.Payment {
	return domain.Payment{
		ID:            m.ID.Hex(),
		Email:         m.Email,
		Price:         m.Price,
		TransactionID: m.TransactionID,
		Date:          m.Date,
		CartIDs:       m.CartIDs,
		MenuItemIDs:   m.MenuItemIDs,
		Status:        m.Status,
	}
}

// Insert persists a payment record. There is no uniqueness constraint on
// transaction_id: resubmitting the same confirmation produces a second row.
func (r *PaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		Email:         payment.Email,
		Price:         payment.Price,
		TransactionID: payment.TransactionID,
		Date:          payment.Date,
		CartIDs:       payment.CartIDs,
		MenuItemIDs:   payment.MenuItemIDs,
		Status:        payment.Status,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *payment
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	payments := []domain.Payment{}
	for cur.Next(ctx) {
		var mp mongoPayment
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, mp.toDomain())
	}
	return payments, cur.Err()
}

func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.EstimatedDocumentCount(ctx)
}

// SumPrices totals the price field across all payments in a single grouping
// pass. An empty collection sums to 0.
func (r *PaymentRepository) SumPrices(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode revenue: %w", err)
		}
		return result.TotalRevenue, nil
	}
	if err := cur.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}
	return 0, nil
}

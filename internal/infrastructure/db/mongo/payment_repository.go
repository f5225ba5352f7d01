package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentwise/property-system/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	LeaseID     string             `bson:"lease_id"`
	Amount      float64            `bson:"amount"`
	Status      string             `bson:"status"`
	PaymentDate int64              `bson:"payment_date"`
	CreatedAt   int64              `bson:"created_at"`
}

// List returns payments ordered by payment date, newest first.
func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "payment_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Payment
	for cur.Next(ctx) {
		var doc mongoPayment
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	doc := mongoPayment{
		LeaseID:     payment.LeaseID,
		Amount:      payment.Amount,
		Status:      payment.Status,
		PaymentDate: payment.PaymentDate.Unix(),
		CreatedAt:   payment.CreatedAt.Unix(),
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

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

func (doc *mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:          doc.ID.Hex(),
		LeaseID:     doc.LeaseID,
		Amount:      doc.Amount,
		Status:      doc.Status,
		PaymentDate: unixToTime(doc.PaymentDate),
		CreatedAt:   unixToTime(doc.CreatedAt),
	}
}

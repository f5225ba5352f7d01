package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentwise/property-system/internal/core/domain"
)

const maintenanceCollection = "maintenance_requests"

type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type mongoMaintenanceRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UnitID    string             `bson:"unit_id"`
	Issue     string             `bson:"issue"`
	Priority  string             `bson:"priority"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.MaintenanceRequest
	for cur.Next(ctx) {
		var doc mongoMaintenanceRequest
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode maintenance request: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate maintenance requests: %w", err)
	}
	return out, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	doc := mongoMaintenanceRequest{
		UnitID:    req.UnitID,
		Issue:     req.Issue,
		Priority:  req.Priority,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}

	created := *req
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MaintenanceRepository) CountByStatus(ctx context.Context, status domain.MaintenanceStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count maintenance requests: %w", err)
	}
	return n, nil
}

func (doc *mongoMaintenanceRequest) toDomain() *domain.MaintenanceRequest {
	return &domain.MaintenanceRequest{
		ID:        doc.ID.Hex(),
		UnitID:    doc.UnitID,
		Issue:     doc.Issue,
		Priority:  doc.Priority,
		Status:    domain.MaintenanceStatus(doc.Status),
		CreatedAt: unixToTime(doc.CreatedAt),
	}
}

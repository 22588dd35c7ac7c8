package audit

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Client, dbName string) contracts.AuditLogRepository {
	return &AuditLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAuditLogs),
	}
}

func (repo *AuditLogMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "resourceType", Value: 1}, {Key: "resourceId", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

// Insert is idempotent on the entry id so a redelivered message is stored once.
func (repo *AuditLogMongoRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AuditLogMongoRepository) FindAll(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, int, error) {
	query := bson.M{}
	if filter.ResourceType != "" {
		query["resourceType"] = filter.ResourceType
	}
	if filter.ResourceID != "" {
		query["resourceId"] = filter.ResourceID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.AuditLog, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, int(total), nil
}

func (repo *AuditLogMongoRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	return exceptions.ErrMongoDBImmutableDocument(constvars.MongoCollectionAuditLogs)
}

func (repo *AuditLogMongoRepository) Delete(ctx context.Context, id string) error {
	return exceptions.ErrMongoDBImmutableDocument(constvars.MongoCollectionAuditLogs)
}

package labs

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestResultMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestResultMongoRepository(db *mongo.Client, dbName string) contracts.TestResultRepository {
	return &TestResultMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestResults),
	}
}

func (repo *TestResultMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "registrationId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_registration")},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *TestResultMongoRepository) CreateResult(ctx context.Context, result *models.TestResult) (string, error) {
	inserted, err := repo.Collection.InsertOne(ctx, result)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrTestResultAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TestResultMongoRepository) FindByID(ctx context.Context, resultID string) (*models.TestResult, error) {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var result models.TestResult
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &result, nil
}

func (repo *TestResultMongoRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.TestResult, int, error) {
	query := bson.M{"patientId": patientID}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if pageSize > 0 {
		findOptions.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.TestResult, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, int(total), nil
}

func (repo *TestResultMongoRepository) MarkVerified(ctx context.Context, resultID string, verifiedBy models.Actor, at time.Time) (bool, error) {
	return repo.advance(ctx, resultID, models.TestResultStatusDraft, bson.M{
		"status":     models.TestResultStatusVerified,
		"verifiedBy": verifiedBy,
		"verifiedAt": at,
		"updatedAt":  at,
	})
}

func (repo *TestResultMongoRepository) MarkReleased(ctx context.Context, resultID string, at time.Time) (bool, error) {
	return repo.advance(ctx, resultID, models.TestResultStatusVerified, bson.M{
		"status":     models.TestResultStatusReleased,
		"releasedAt": at,
		"updatedAt":  at,
	})
}

func (repo *TestResultMongoRepository) SetReportObjectName(ctx context.Context, resultID, objectName string) error {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"reportObjectName": objectName, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// advance moves a result forward only while it is still in status from.
func (repo *TestResultMongoRepository) advance(ctx context.Context, resultID string, from models.TestResultStatus, set bson.M) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "status": from}, bson.M{"$set": set})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

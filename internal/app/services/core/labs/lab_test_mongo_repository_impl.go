package labs

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (repo *LabTestMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "testType", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "testName", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *LabTestMongoRepository) CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, labTest)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *LabTestMongoRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var labTest models.LabTest
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&labTest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labTest, nil
}

func (repo *LabTestMongoRepository) FindAll(ctx context.Context, filter models.LabTestFilter) ([]models.LabTest, int, error) {
	query := bson.M{}
	if !filter.IncludeInactive {
		query["isActive"] = true
	}
	if filter.TestType != "" {
		query["testType"] = filter.TestType
	}
	if filter.Search != "" {
		query["testName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "testName", Value: 1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	labTests := make([]models.LabTest, 0)
	if err := cursor.All(ctx, &labTests); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labTests, int(total), nil
}

func (repo *LabTestMongoRepository) UpdateLabTest(ctx context.Context, labTest *models.LabTest) error {
	objectID, err := primitive.ObjectIDFromHex(labTest.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"testName":       labTest.TestName,
		"testType":       labTest.TestType,
		"description":    labTest.Description,
		"unit":           labTest.Unit,
		"referenceRange": labTest.ReferenceRange,
		"price":          labTest.Price,
		"isActive":       labTest.IsActive,
		"updatedAt":      labTest.UpdatedAt,
	}}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// Deactivate soft deletes a catalogue entry; false means it was already inactive or missing.
func (repo *LabTestMongoRepository) Deactivate(ctx context.Context, labTestID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

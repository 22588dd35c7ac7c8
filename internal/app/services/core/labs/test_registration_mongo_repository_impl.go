package labs

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestRegistrationMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestRegistrationMongoRepository(db *mongo.Client, dbName string) contracts.TestRegistrationRepository {
	return &TestRegistrationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestRegistrations),
	}
}

func (repo *TestRegistrationMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "registrationDate", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *TestRegistrationMongoRepository) CreateRegistration(ctx context.Context, registration *models.TestRegistration) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, registration)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TestRegistrationMongoRepository) FindByID(ctx context.Context, registrationID string) (*models.TestRegistration, error) {
	objectID, err := primitive.ObjectIDFromHex(registrationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var registration models.TestRegistration
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&registration)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &registration, nil
}

func (repo *TestRegistrationMongoRepository) FindAll(ctx context.Context, filter models.TestRegistrationFilter) ([]models.TestRegistration, int, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	registrations := make([]models.TestRegistration, 0)
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return registrations, int(total), nil
}

func (repo *TestRegistrationMongoRepository) UpdateStatus(ctx context.Context, registrationID string, from []models.RegistrationStatus, entry models.StatusHistoryEntry) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(registrationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": bson.M{"$in": from}}
	update := bson.M{
		"$set":  bson.M{"status": entry.Status, "updatedAt": entry.ChangedAt},
		"$push": bson.M{"statusHistory": entry},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

package wards

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

type WardMongoRepository struct {
	Collection *mongo.Collection
}

func NewWardMongoRepository(db *mongo.Client, dbName string) contracts.WardRepository {
	return &WardMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWards),
	}
}

func (repo *WardMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "wardNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_ward_number")},
		{Keys: bson.D{{Key: "wardType", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *WardMongoRepository) CreateWard(ctx context.Context, ward *models.Ward) (wardID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, ward)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrWardNumberAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *WardMongoRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	var ward models.Ward
	objectID, err := primitive.ObjectIDFromHex(wardID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&ward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ward, nil
}

func (repo *WardMongoRepository) FindByWardNumber(ctx context.Context, wardNumber string) (*models.Ward, error) {
	var ward models.Ward
	err := repo.Collection.FindOne(ctx, bson.M{"wardNumber": wardNumber}).Decode(&ward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ward, nil
}

func (repo *WardMongoRepository) FindAll(ctx context.Context, filter models.WardFilter) ([]models.Ward, int, error) {
	query := bson.M{}
	if filter.WardType != "" {
		query["wardType"] = filter.WardType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Specialization != "" {
		query["specialization"] = filter.Specialization
	}
	if filter.OnlyAvailable {
		query["$expr"] = bson.M{"$lt": bson.A{"$occupiedBeds", "$totalBeds"}}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "wardNumber", Value: 1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	wards := make([]models.Ward, 0)
	if err := cursor.All(ctx, &wards); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return wards, int(total), nil
}

// UpdateWard writes the descriptive fields and totalBeds together. The
// occupancy count itself only moves through IncrementOccupancy.
func (repo *WardMongoRepository) UpdateWard(ctx context.Context, ward *models.Ward) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(ward.ID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"_id":          objectID,
		"occupiedBeds": bson.M{"$lte": ward.TotalBeds},
	}
	update := bson.M{"$set": bson.M{
		"wardType":       ward.WardType,
		"floor":          ward.Floor,
		"specialization": ward.Specialization,
		"status":         ward.Status,
		"totalBeds":      ward.TotalBeds,
		"updatedAt":      ward.UpdatedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *WardMongoRepository) UpdateCapacity(ctx context.Context, wardID string, totalBeds int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(wardID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"_id":          objectID,
		"occupiedBeds": bson.M{"$lte": totalBeds},
	}
	update := bson.M{"$set": bson.M{"totalBeds": totalBeds, "updatedAt": time.Now().UTC()}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *WardMongoRepository) IncrementOccupancy(ctx context.Context, wardID string, delta int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(wardID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	switch {
	case delta > 0:
		filter["$expr"] = bson.M{"$lte": bson.A{bson.M{"$add": bson.A{"$occupiedBeds", delta}}, "$totalBeds"}}
	case delta < 0:
		filter["occupiedBeds"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"occupiedBeds": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *WardMongoRepository) DeleteEmptyWard(ctx context.Context, wardID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(wardID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "occupiedBeds": 0})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount == 1, nil
}

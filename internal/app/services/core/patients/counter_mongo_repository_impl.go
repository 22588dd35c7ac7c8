package patients

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CounterMongoRepository struct {
	Collection *mongo.Collection
}

func NewCounterMongoRepository(db *mongo.Client, dbName string) contracts.SequenceRepository {
	return &CounterMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCounters),
	}
}

// Next atomically increments the named counter, creating it at 1.
func (repo *CounterMongoRepository) Next(ctx context.Context, key string) (int64, error) {
	var counter struct {
		Sequence int64 `bson:"seq"`
	}

	findOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := repo.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": 1}},
		findOptions,
	).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return counter.Sequence, nil
}

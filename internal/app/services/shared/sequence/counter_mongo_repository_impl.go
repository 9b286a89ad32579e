package sequence

import (
	"context"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type counterMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewCounterMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.CounterRepository {
	return &counterMongoRepository{DB: db, Log: logger}
}

// IncrementAndGet bumps the counter document in one round trip. Upsert plus
// $inc keeps the increment atomic even when two processes race on a counter
// that does not exist yet.
func (r *counterMongoRepository) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	filter := bson.M{"_id": key}
	update := bson.M{"$inc": bson.M{"value": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.SequenceCounter
	err := r.DB.Collection(constvars.MongoCollectionCounters).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrSequenceIncrement(err)
	}
	return counter.Value, nil
}

package claims

import (
	"context"
	"errors"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClaimMongoRepository struct {
	Collection *mongo.Collection
}

func NewClaimMongoRepository(db *mongo.Database) contracts.ClaimRepository {
	return &ClaimMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionClaims),
	}
}

func (repo *ClaimMongoRepository) Create(ctx context.Context, claim *models.Claim) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, claim)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		claim.ID = objectID.Hex()
	}
	return claim.ID, nil
}

func (repo *ClaimMongoRepository) FindByClaimNumber(ctx context.Context, claimNumber string) (*models.Claim, error) {
	var claim models.Claim
	filter := bson.M{"claimNumber": claimNumber, "deletedAt": nil}
	err := repo.Collection.FindOne(ctx, filter).Decode(&claim)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrClaimNotFound(claimNumber)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &claim, nil
}

// ExistsActiveBySEP reports whether a non-cancelled, non-deleted claim already
// references the SEP number.
func (repo *ClaimMongoRepository) ExistsActiveBySEP(ctx context.Context, sepNumber string) (bool, error) {
	filter := bson.M{
		"sepNumber": sepNumber,
		"status":    bson.M{"$ne": models.ClaimStatusCancelled},
		"deletedAt": nil,
	}
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (repo *ClaimMongoRepository) Update(ctx context.Context, claim *models.Claim) error {
	filter := bson.M{"claimNumber": claim.ClaimNumber, "deletedAt": nil}
	update := bson.M{"$set": bson.M{
		"status":               claim.Status,
		"episodeStart":         claim.EpisodeStart,
		"episodeEnd":           claim.EpisodeEnd,
		"dischargeStatus":      claim.DischargeStatus,
		"diagnoses":            claim.Diagnoses,
		"procedures":           claim.Procedures,
		"grouperEngine":        claim.GrouperEngine,
		"grouping":             claim.Grouping,
		"specialCaseCompleted": claim.SpecialCaseCompleted,
		"documentObjectName":   claim.DocumentObjectName,
		"updatedAt":            claim.UpdatedAt,
	}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrClaimNotFound(claim.ClaimNumber)
	}
	return nil
}

// Delete soft-deletes the claim; the document stays behind for audits and the
// SEP number becomes reusable.
func (repo *ClaimMongoRepository) Delete(ctx context.Context, claimNumber string) error {
	now := time.Now()
	filter := bson.M{"claimNumber": claimNumber, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrClaimNotFound(claimNumber)
	}
	return nil
}

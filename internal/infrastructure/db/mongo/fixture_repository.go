package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodchain/portal/internal/core/domain"
)

// Collection names holding the seed data.
const (
	collectionSlots     = "slots"
	collectionHistory   = "donations"
	collectionRewards   = "rewards"
	collectionInventory = "inventory"
	collectionTracking  = "tracking"
	collectionUsers     = "users"
	collectionProfile   = "donor_profile"
)

var errNoProfile = errors.New("donor profile document missing")

// FixtureRepository reads portal seed data from MongoDB. Documents are
// returned in insertion order; the portal never writes back.
type FixtureRepository struct {
	db *mongo.Database
}

func NewFixtureRepository(db *mongo.Database) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// Load reads every collection into a Fixtures value.
func (r *FixtureRepository) Load(ctx context.Context) (domain.Fixtures, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Fixtures
	steps := []struct {
		collection string
		out        any
	}{
		{collectionSlots, &f.Slots},
		{collectionHistory, &f.History},
		{collectionRewards, &f.Rewards},
		{collectionInventory, &f.Inventory},
		{collectionTracking, &f.Donations},
		{collectionUsers, &f.Users},
	}
	for _, s := range steps {
		if err := r.findAll(ctx, s.collection, s.out); err != nil {
			return domain.Fixtures{}, err
		}
	}

	err := r.db.Collection(collectionProfile).FindOne(ctx, bson.M{}).Decode(&f.DonorProfile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Fixtures{}, fmt.Errorf("load fixtures: %w", errNoProfile)
		}
		return domain.Fixtures{}, fmt.Errorf("load fixtures: %s: %w", collectionProfile, err)
	}
	f.RewardPoints = f.DonorProfile.RewardPoints

	return f, nil
}

// Seed replaces the stored seed data with f.
func (r *FixtureRepository) Seed(ctx context.Context, f domain.Fixtures) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f.DonorProfile.RewardPoints = f.RewardPoints
	batches := map[string][]any{
		collectionSlots:     toDocs(f.Slots),
		collectionHistory:   toDocs(f.History),
		collectionRewards:   toDocs(f.Rewards),
		collectionInventory: toDocs(f.Inventory),
		collectionTracking:  toDocs(f.Donations),
		collectionUsers:     toDocs(f.Users),
		collectionProfile:   {f.DonorProfile},
	}
	for name, docs := range batches {
		col := r.db.Collection(name)
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}
		if _, err := col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}

func (r *FixtureRepository) findAll(ctx context.Context, collection string, out any) error {
	cur, err := r.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("load fixtures: %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("load fixtures: %s: %w", collection, err)
	}
	return nil
}

func toDocs[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackagingProfileDocument is the stored form of a packaging profile.
// The buffer is kept as Decimal128 so that 2.5 stays 2.5.
type PackagingProfileDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	BufferPercent primitive.Decimal128 `bson:"buffer_percent"`
	UnitsPerCase  int                  `bson:"units_per_case"`
	Active        bool                 `bson:"active"`
	Version       int                  `bson:"version"`
	CreatedBy     string               `bson:"created_by,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// ToModel converts the document to the domain type.
func (d PackagingProfileDocument) ToModel() (model.PackagingProfile, error) {
	buffer, err := decimal.NewFromString(d.BufferPercent.String())
	if err != nil {
		return model.PackagingProfile{}, err
	}
	return model.PackagingProfile{
		ID:            d.ID.Hex(),
		BufferPercent: buffer,
		UnitsPerCase:  d.UnitsPerCase,
		Active:        d.Active,
		Version:       d.Version,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

// PackagingProfileRepository stores versioned packaging profiles; at most one is active.
type PackagingProfileRepository struct {
	collection *mongo.Collection
}

// NewPackagingProfileRepository creates a new packaging profile repository.
func NewPackagingProfileRepository(db *MongoDB) *PackagingProfileRepository {
	return &PackagingProfileRepository{
		collection: db.PackagingProfiles,
	}
}

// GetActive returns the active profile, or nil when none has been stored.
func (r *PackagingProfileRepository) GetActive(ctx context.Context) (*model.PackagingProfile, error) {
	var doc PackagingProfileDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true},
		options.FindOne().SetSort(bson.M{"version": -1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create stores a new active profile with the next version number and deactivates the previous ones.
func (r *PackagingProfileRepository) Create(ctx context.Context, bufferPercent decimal.Decimal, unitsPerCase int, createdBy string) (*model.PackagingProfile, error) {
	buffer, err := primitive.ParseDecimal128(bufferPercent.String())
	if err != nil {
		return nil, err
	}

	version := 1
	var latest PackagingProfileDocument
	err = r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"version": -1})).Decode(&latest)
	switch {
	case err == nil:
		version = latest.Version + 1
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := r.collection.UpdateMany(ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	); err != nil {
		return nil, err
	}

	doc := PackagingProfileDocument{
		ID:            primitive.NewObjectID(),
		BufferPercent: buffer,
		UnitsPerCase:  unitsPerCase,
		Active:        true,
		Version:       version,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	p, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns profiles newest first. A non-positive limit returns all of them.
func (r *PackagingProfileRepository) List(ctx context.Context, limit int) ([]model.PackagingProfile, error) {
	opts := options.Find().SetSort(bson.M{"version": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PackagingProfileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	profiles := make([]model.PackagingProfile, 0, len(docs))
	for _, d := range docs {
		p, err := d.ToModel()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

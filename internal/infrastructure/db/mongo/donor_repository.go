package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

const collectionDonors = "donors"

type DonorRepository struct {
	col *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{col: db.Collection(collectionDonors)}
}

type donorDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Age          int                `bson:"age"`
	Gender       string             `bson:"gender"`
	BloodGroup   string             `bson:"blood_group"`
	ContactPhone string             `bson:"contact_phone"`
	ContactEmail string             `bson:"contact_email"`
	City         string             `bson:"city"`
	IsAvailable  bool               `bson:"is_available"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d donorDoc) toDomain() *domain.Donor {
	return &domain.Donor{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Age:          d.Age,
		Gender:       domain.Gender(d.Gender),
		BloodGroup:   domain.BloodGroup(d.BloodGroup),
		ContactPhone: d.ContactPhone,
		ContactEmail: d.ContactEmail,
		City:         d.City,
		IsAvailable:  d.IsAvailable,
		CreatedAt:    d.CreatedAt,
	}
}

// Insert persists a new donor document and returns the generated id.
func (r *DonorRepository) Insert(ctx context.Context, d *domain.Donor) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := donorDoc{
		Name:         d.Name,
		Age:          d.Age,
		Gender:       string(d.Gender),
		BloodGroup:   string(d.BloodGroup),
		ContactPhone: d.ContactPhone,
		ContactEmail: d.ContactEmail,
		City:         d.City,
		IsAvailable:  d.IsAvailable,
		CreatedAt:    d.CreatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDonorEmailExists
		}
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Find returns donors matching the filter, newest-first. The city filter is
// compiled into a case-insensitive substring regex, mirroring the public
// search contract.
func (r *DonorRepository) Find(ctx context.Context, filter ports.DonorFilter) ([]*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.OnlyAvailable {
		query["is_available"] = true
	}
	if filter.BloodGroup != "" {
		query["blood_group"] = filter.BloodGroup
	}
	if filter.City != "" {
		query["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	donors := make([]*domain.Donor, 0)
	for cur.Next(ctx) {
		var doc donorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		donors = append(donors, doc.toDomain())
	}
	return donors, cur.Err()
}

// SetAvailability updates the availability flag and returns the updated donor.
func (r *DonorRepository) SetAvailability(ctx context.Context, id string, available bool) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDonorNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"is_available": available}}

	var doc donorDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the donor and returns the removed record.
func (r *DonorRepository) Delete(ctx context.Context, id string) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDonorNotFound
	}

	var doc donorDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the donors collection indexes: a unique index on the
// contact email plus the search indexes from the original schema.
func (r *DonorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "contact_email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "blood_group", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "blood_group", Value: 1}, {Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

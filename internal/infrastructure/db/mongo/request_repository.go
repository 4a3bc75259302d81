package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

const collectionRequests = "blood_requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	PatientName        string             `bson:"patient_name"`
	RequiredBloodGroup string             `bson:"required_blood_group"`
	Location           string             `bson:"location"`
	HospitalName       string             `bson:"hospital_name"`
	BloodUnits         int                `bson:"blood_units"`
	Urgency            string             `bson:"urgency"`
	Status             string             `bson:"status"`
	ContactPhone       string             `bson:"contact_phone"`
	ContactEmail       string             `bson:"contact_email"`
	CreatedAt          time.Time          `bson:"created_at"`
}

func (d requestDoc) toDomain() *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:                 d.ID.Hex(),
		PatientName:        d.PatientName,
		RequiredBloodGroup: domain.BloodGroup(d.RequiredBloodGroup),
		Location:           d.Location,
		HospitalName:       d.HospitalName,
		BloodUnits:         d.BloodUnits,
		Urgency:            domain.Urgency(d.Urgency),
		Status:             domain.RequestStatus(d.Status),
		ContactPhone:       d.ContactPhone,
		ContactEmail:       d.ContactEmail,
		CreatedAt:          d.CreatedAt,
	}
}

// Insert persists a new blood request document and returns the generated id.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.BloodRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		PatientName:        req.PatientName,
		RequiredBloodGroup: string(req.RequiredBloodGroup),
		Location:           req.Location,
		HospitalName:       req.HospitalName,
		BloodUnits:         req.BloodUnits,
		Urgency:            string(req.Urgency),
		Status:             string(req.Status),
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		CreatedAt:          req.CreatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Find returns requests newest-first, optionally restricted to one status.
func (r *RequestRepository) Find(ctx context.Context, status domain.RequestStatus) ([]*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = string(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := make([]*domain.BloodRequest, 0)
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cur.Err()
}

// UpdateStatus sets the request status and returns the updated record.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": string(status)}}

	var doc requestDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the request and returns the removed record.
func (r *RequestRepository) Delete(ctx context.Context, id string) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var doc requestDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the blood_requests collection indexes from the
// original schema.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "required_blood_group", Value: 1}}},
		{Keys: bson.D{{Key: "urgency", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

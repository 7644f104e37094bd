package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the remote backend. Records keep their own "id" field (the
// Mongo _id stays internal) so ids look the same on both backends.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) coll(collection string) *mongo.Collection {
	return s.db.Collection(collection)
}

func (s *MongoStore) List(ctx context.Context, collection string, opts ListOptions) ([]Record, error) {
	filter := bson.M{}
	for k, v := range opts.Filter {
		filter[k] = v
	}

	findOpts := options.Find()
	if opts.NewestFirst {
		findOpts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cursor, err := s.coll(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []Record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	for i := range recs {
		normalize(recs[i])
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (Record, error) {
	var rec Record
	err := s.coll(collection).FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalize(rec)
	return rec, nil
}

func (s *MongoStore) Add(ctx context.Context, collection string, rec Record) (string, error) {
	if rec.ID() == "" {
		rec["id"] = uuid.New().String()
	}
	if _, ok := rec["createdAt"]; !ok {
		rec["createdAt"] = time.Now().UTC()
	}

	if _, err := s.coll(collection).InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, patch Record) (Record, error) {
	after := options.After
	res := s.coll(collection).FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)

	var rec Record
	if err := res.Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalize(rec)
	return rec, nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.coll(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// normalize strips the internal _id and converts BSON datetimes to
// time.Time so records look identical across backends.
func normalize(rec Record) {
	delete(rec, "_id")
	for k, v := range rec {
		if dt, ok := v.(primitive.DateTime); ok {
			rec[k] = dt.Time().UTC()
		}
	}
}

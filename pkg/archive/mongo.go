package archive

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reportsCollection = "reports"

// MongoStore persists reports in a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and uses the given database.
// The connection is verified with a ping before returning.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(reportsCollection),
	}, nil
}

// Save upserts a report by ID.
func (s *MongoStore) Save(ctx context.Context, report Report) error {
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": report.ID},
		report,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Load fetches a report by ID.
func (s *MongoStore) Load(ctx context.Context, id string) (Report, error) {
	var report Report
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

// Recent lists the newest reports for a repository.
func (s *MongoStore) Recent(ctx context.Context, repository string, limit int) ([]Report, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, bson.M{"repository": repository}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []Report
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

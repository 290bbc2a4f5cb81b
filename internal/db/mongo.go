package mbiri

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the Mongo client and the three collections. It implements
// UserStorage, VideoStorage and ViewStorage.
type Store struct {
	mgo    *mongo.Client
	users  *mongo.Collection
	videos *mongo.Collection
	views  *mongo.Collection
}

func NewStore() (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := os.Getenv("MBIRI_MONGO")
	if uri == "" {
		return nil, fmt.Errorf("env MBIRI_MONGO is not set")
	}
	name := os.Getenv("MBIRI_DB")
	if name == "" {
		name = "creator_viewer_app"
	}

	opts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database(name)
	s := &Store{client, db.Collection("users"), db.Collection("videos"), db.Collection("views")}

	err = s.ensureIndexes(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ensureIndexes creates the schema-level invariants: unique email and username,
// unique youtube_id, and the unique (video_id, viewer_id) pair that keeps at
// most one ViewRecord per viewer per video.
func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}
	_, err = s.videos.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "youtube_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}
	_, err = s.views.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "video_id", Value: 1}, {Key: "viewer_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.mgo.Disconnect(ctx)
}

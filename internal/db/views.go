package mbiri

import (
	"context"
	"errors"
	"time"

	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) GetView(ctx context.Context, videoID, viewerID primitive.ObjectID) (*model.ViewRecord, error) {
	var view model.ViewRecord
	err := s.views.FindOne(ctx, bson.M{"video_id": videoID, "viewer_id": viewerID}).Decode(&view)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

// UpsertView applies the engine's patch as one atomic update-or-insert on the
// (video_id, viewer_id) key. watch_duration goes through $max, so a racing
// duplicate report can never regress it; points_earned is only written when
// the engine awarded points this call.
func (s *Store) UpsertView(ctx context.Context, videoID, viewerID primitive.ObjectID, patch model.ViewUpsert) (view model.ViewRecord, err error) {
	set := bson.M{
		"video_duration": patch.VideoDuration,
		"fully_watched":  patch.FullyWatched,
	}
	insert := bson.M{"created_at": time.Now().UTC()}
	if patch.SetPoints {
		set["points_earned"] = patch.PointsEarned
	} else {
		insert["points_earned"] = 0
	}
	update := bson.M{
		"$max":         bson.M{"watch_duration": patch.WatchDuration},
		"$set":         set,
		"$setOnInsert": insert,
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err = s.views.FindOneAndUpdate(ctx, bson.M{"video_id": videoID, "viewer_id": viewerID}, update, opts).Decode(&view)
	if err != nil {
		return view, err
	}
	return view, nil
}

func (s *Store) ViewsByViewer(ctx context.Context, viewerID primitive.ObjectID) ([]model.ViewRecord, error) {
	result, err := s.views.Find(ctx, bson.M{"viewer_id": viewerID})
	if err != nil {
		return nil, err
	}
	return decodeViews(ctx, result)
}

func (s *Store) ViewsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]model.ViewRecord, error) {
	result, err := s.views.Find(ctx, bson.M{"video_id": videoID})
	if err != nil {
		return nil, err
	}
	return decodeViews(ctx, result)
}

func (s *Store) ViewsSince(ctx context.Context, since time.Time) ([]model.ViewRecord, error) {
	result, err := s.views.Find(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	return decodeViews(ctx, result)
}

func decodeViews(ctx context.Context, result *mongo.Cursor) ([]model.ViewRecord, error) {
	var views []model.ViewRecord
	for result.Next(ctx) {
		var view model.ViewRecord
		err := result.Decode(&view)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, result.Err()
}

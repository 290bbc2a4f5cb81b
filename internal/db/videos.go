package mbiri

import (
	"context"
	"errors"
	"fmt"

	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateVideo(ctx context.Context, video model.Video) (primitive.ObjectID, error) {
	res, err := s.videos.InsertOne(ctx, video)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("video %w", model.ErrAlreadyExists)
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Store) GetVideo(ctx context.Context, id primitive.ObjectID) (video model.Video, err error) {
	err = s.videos.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return video, fmt.Errorf("video %w", model.ErrNotFound)
		}
		return video, err
	}
	return video, nil
}

func (s *Store) GetVideoByYoutubeID(ctx context.Context, youtubeID string) (video model.Video, err error) {
	err = s.videos.FindOne(ctx, bson.M{"youtube_id": youtubeID}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return video, fmt.Errorf("video %w", model.ErrNotFound)
		}
		return video, err
	}
	return video, nil
}

func (s *Store) VideosByCreator(ctx context.Context, creatorID primitive.ObjectID, skip, limit int) ([]model.Video, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	result, err := s.videos.Find(ctx, bson.M{"creator_id": creatorID}, opts)
	if err != nil {
		return nil, err
	}
	return decodeVideos(ctx, result)
}

func (s *Store) DiscoverVideos(ctx context.Context, skip, limit int) ([]model.Video, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	result, err := s.videos.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeVideos(ctx, result)
}

func decodeVideos(ctx context.Context, result *mongo.Cursor) ([]model.Video, error) {
	var videos []model.Video
	for result.Next(ctx) {
		var video model.Video
		err := result.Decode(&video)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, result.Err()
}

func (s *Store) UpdateVideo(ctx context.Context, id primitive.ObjectID, patch model.VideoUpdate) (video model.Video, err error) {
	set := bson.M{}
	if patch.Title != "" {
		set["title"] = patch.Title
	}
	if patch.Description != "" {
		set["description"] = patch.Description
	}
	if patch.PointsPerMinute > 0 {
		set["points_per_minute"] = patch.PointsPerMinute
	}
	if patch.DurationSeconds > 0 {
		set["duration_seconds"] = patch.DurationSeconds
	}
	if len(set) == 0 {
		return s.GetVideo(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.videos.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return video, fmt.Errorf("video %w", model.ErrNotFound)
		}
		return video, err
	}
	return video, nil
}

func (s *Store) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.videos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("video %w", model.ErrNotFound)
	}
	return nil
}

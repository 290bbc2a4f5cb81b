package mbiri

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	YoutubeID       string             `bson:"youtube_id" json:"youtube_id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	PointsPerMinute int                `bson:"points_per_minute" json:"points_per_minute"`
	DurationSeconds int                `bson:"duration_seconds" json:"duration_seconds"`
	CreatorID       primitive.ObjectID `bson:"creator_id" json:"creator_id"`
	CreatorUsername string             `bson:"-" json:"creator_username,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

func (v Video) YoutubeURL() string {
	return "https://www.youtube.com/watch?v=" + v.YoutubeID
}

// VideoCreate is the upload payload. YoutubeID accepts either a bare id or a
// full youtube.com / youtu.be URL.
type VideoCreate struct {
	YoutubeID       string `json:"youtube_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PointsPerMinute int    `json:"points_per_minute"`
	DurationSeconds int    `json:"duration_seconds"`
}

// VideoUpdate carries the mutable video fields; zero values are not applied.
type VideoUpdate struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PointsPerMinute int    `json:"points_per_minute"`
	DurationSeconds int    `json:"duration_seconds"`
}

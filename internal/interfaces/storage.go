package mbiri

import (
	"context"
	"time"

	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=mbiri . UserStorage,VideoStorage,ViewStorage,CacheStorage

type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (primitive.ObjectID, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, patch model.UserPatch) (model.User, error)
	// IncPoints adds delta to the user's balance; NotFound when the user is absent.
	IncPoints(ctx context.Context, id primitive.ObjectID, delta int) error
	// TransferPoints debits from and credits to, both or neither. The debit is
	// guarded by the current balance, so the source never goes negative.
	// Callers must verify from exists: an absent source is indistinguishable
	// from an insufficient balance.
	TransferPoints(ctx context.Context, from, to primitive.ObjectID, amount int) error
}

type VideoStorage interface {
	CreateVideo(ctx context.Context, video model.Video) (primitive.ObjectID, error)
	GetVideo(ctx context.Context, id primitive.ObjectID) (model.Video, error)
	GetVideoByYoutubeID(ctx context.Context, youtubeID string) (model.Video, error)
	VideosByCreator(ctx context.Context, creatorID primitive.ObjectID, skip, limit int) ([]model.Video, error)
	DiscoverVideos(ctx context.Context, skip, limit int) ([]model.Video, error)
	UpdateVideo(ctx context.Context, id primitive.ObjectID, patch model.VideoUpdate) (model.Video, error)
	DeleteVideo(ctx context.Context, id primitive.ObjectID) error
}

type ViewStorage interface {
	// GetView returns (nil, nil) when no record exists for the pair.
	GetView(ctx context.Context, videoID, viewerID primitive.ObjectID) (*model.ViewRecord, error)
	// UpsertView is a single atomic update-or-insert keyed on (video, viewer),
	// never a find-then-insert. It returns the record as stored.
	UpsertView(ctx context.Context, videoID, viewerID primitive.ObjectID, patch model.ViewUpsert) (model.ViewRecord, error)
	ViewsByViewer(ctx context.Context, viewerID primitive.ObjectID) ([]model.ViewRecord, error)
	ViewsByVideo(ctx context.Context, videoID primitive.ObjectID) ([]model.ViewRecord, error)
	ViewsSince(ctx context.Context, since time.Time) ([]model.ViewRecord, error)
}

type CacheStorage interface {
	GetPoints(ctx context.Context, user string) (points int, err error)
	SetPoints(ctx context.Context, user string, points int) error
	InvalidatePoints(ctx context.Context, user string) error
}

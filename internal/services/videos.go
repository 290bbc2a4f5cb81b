package mbiri

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	interf "github.com/loktioncode/mbiri-api/internal/interfaces"
	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type VideoService struct {
	logger *zap.Logger
	users  interf.UserStorage
	videos interf.VideoStorage
}

func NewVideoService(logger *zap.Logger, users interf.UserStorage, videos interf.VideoStorage) *VideoService {
	return &VideoService{logger, users, videos}
}

// CreateVideo registers a new video for a creator. Duplicate youtube ids are
// rejected, the unique index backs this check up under races.
func (v *VideoService) CreateVideo(ctx context.Context, creatorID string, in model.VideoCreate) (model.Video, error) {
	cid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return model.Video{}, fmt.Errorf("creator %w", model.ErrNotFound)
	}
	creator, err := v.users.GetUser(ctx, cid)
	if err != nil {
		return model.Video{}, err
	}
	if creator.UserType != model.RoleCreator {
		return model.Video{}, fmt.Errorf("only creators can add videos: %w", model.ErrForbidden)
	}
	if in.YoutubeID == "" || in.Title == "" {
		return model.Video{}, fmt.Errorf("youtube_id and title are required: %w", model.ErrInvalidArgument)
	}

	youtubeID := ExtractYoutubeID(in.YoutubeID)
	_, err = v.videos.GetVideoByYoutubeID(ctx, youtubeID)
	if err == nil {
		return model.Video{}, fmt.Errorf("this YouTube video has already been added: %w", model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Video{}, err
	}

	rate := in.PointsPerMinute
	if rate <= 0 {
		rate = DefaultPointsPerMinute
	}
	video := model.Video{
		YoutubeID:       youtubeID,
		Title:           in.Title,
		Description:     in.Description,
		PointsPerMinute: rate,
		DurationSeconds: in.DurationSeconds,
		CreatorID:       cid,
		CreatedAt:       time.Now().UTC(),
	}
	id, err := v.videos.CreateVideo(ctx, video)
	if err != nil {
		return model.Video{}, err
	}
	video.ID = id
	video.CreatorUsername = creator.Username
	return video, nil
}

// ExtractYoutubeID accepts a bare video id or a full watch URL and returns the id.
func ExtractYoutubeID(raw string) string {
	if !strings.Contains(raw, "youtube.com") && !strings.Contains(raw, "youtu.be") {
		return raw
	}
	if i := strings.Index(raw, "v="); i >= 0 {
		id := raw[i+len("v="):]
		if j := strings.Index(id, "&"); j >= 0 {
			id = id[:j]
		}
		return id
	}
	if i := strings.Index(raw, "youtu.be/"); i >= 0 {
		id := raw[i+len("youtu.be/"):]
		if j := strings.Index(id, "?"); j >= 0 {
			id = id[:j]
		}
		return id
	}
	return raw
}

func (v *VideoService) GetVideo(ctx context.Context, videoID string) (model.Video, error) {
	id, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Video{}, fmt.Errorf("video %w", model.ErrNotFound)
	}
	return v.videos.GetVideo(ctx, id)
}

func (v *VideoService) MyVideos(ctx context.Context, creatorID string, skip, limit int) ([]model.Video, error) {
	cid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, fmt.Errorf("creator %w", model.ErrNotFound)
	}
	return v.videos.VideosByCreator(ctx, cid, skip, limit)
}

// Discover returns the recency-sorted feed with creator usernames attached.
func (v *VideoService) Discover(ctx context.Context, skip, limit int) ([]model.Video, error) {
	videos, err := v.videos.DiscoverVideos(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string)
	for i, video := range videos {
		name, ok := names[video.CreatorID]
		if !ok {
			creator, err := v.users.GetUser(ctx, video.CreatorID)
			if err != nil {
				name = "Unknown"
			} else {
				name = creator.Username
			}
			names[video.CreatorID] = name
		}
		videos[i].CreatorUsername = name
	}
	return videos, nil
}

func (v *VideoService) UpdateVideo(ctx context.Context, videoID, userID string, patch model.VideoUpdate) (model.Video, error) {
	id, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Video{}, fmt.Errorf("video %w", model.ErrNotFound)
	}
	video, err := v.videos.GetVideo(ctx, id)
	if err != nil {
		return model.Video{}, err
	}
	if video.CreatorID.Hex() != userID {
		return model.Video{}, fmt.Errorf("not authorized to update this video: %w", model.ErrForbidden)
	}
	return v.videos.UpdateVideo(ctx, id, patch)
}

func (v *VideoService) DeleteVideo(ctx context.Context, videoID, userID string) error {
	id, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return fmt.Errorf("video %w", model.ErrNotFound)
	}
	video, err := v.videos.GetVideo(ctx, id)
	if err != nil {
		return err
	}
	if video.CreatorID.Hex() != userID {
		return fmt.Errorf("not authorized to delete this video: %w", model.ErrForbidden)
	}
	return v.videos.DeleteVideo(ctx, id)
}

func (v *VideoService) Log(err error) {
	v.logger.Error("Videos",
		zap.String("service", "VideoService"),
		zap.Error(err),
	)
}

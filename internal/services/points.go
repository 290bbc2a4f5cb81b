package mbiri

import (
	"context"
	"fmt"

	events "github.com/loktioncode/mbiri-api/internal/events"
	interf "github.com/loktioncode/mbiri-api/internal/interfaces"
	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	// DefaultPointsPerMinute is the reward rate used when a video has none configured.
	DefaultPointsPerMinute = 10
	// defaultVideoLength is assumed when a video has no known duration.
	defaultVideoLength = 600
	// minRewardedSeconds is the floor below which a session never earns points.
	minRewardedSeconds = 60
	// durationPingLimit marks near-zero reports as duration-discovery pings.
	durationPingLimit = 10
	// completionRatio of the best-known duration counts as fully watched.
	completionRatio = 0.95
)

type PointsService struct {
	logger *zap.Logger
	users  interf.UserStorage
	videos interf.VideoStorage
	views  interf.ViewStorage
	cache  interf.CacheStorage
	events *events.Publisher
}

func NewPointsService(logger *zap.Logger, users interf.UserStorage, videos interf.VideoStorage, views interf.ViewStorage, cache interf.CacheStorage, publisher *events.Publisher) *PointsService {
	return &PointsService{logger, users, videos, views, cache, publisher}
}

// RecordWatchSession converts one watch-progress report into points and an
// updated ViewRecord for the (video, viewer) pair. It returns the stored
// record, the points awarded by this call, and whether the viewer had earned
// points on this pair before this call.
func (p *PointsService) RecordWatchSession(ctx context.Context, videoID, viewerID string, watchDuration int) (model.ViewRecord, int, bool, error) {
	if watchDuration < 0 {
		return model.ViewRecord{}, 0, false, fmt.Errorf("watch duration %w", model.ErrInvalidArgument)
	}
	vid, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return model.ViewRecord{}, 0, false, fmt.Errorf("video %w", model.ErrNotFound)
	}
	uid, err := primitive.ObjectIDFromHex(viewerID)
	if err != nil {
		return model.ViewRecord{}, 0, false, fmt.Errorf("viewer %w", model.ErrNotFound)
	}

	video, err := p.videos.GetVideo(ctx, vid)
	if err != nil {
		return model.ViewRecord{}, 0, false, err
	}
	viewer, err := p.users.GetUser(ctx, uid)
	if err != nil {
		return model.ViewRecord{}, 0, false, err
	}
	if viewer.UserType != model.RoleViewer {
		return model.ViewRecord{}, 0, false, fmt.Errorf("only viewers can earn points: %w", model.ErrForbidden)
	}

	videoLength := video.DurationSeconds
	if videoLength <= 0 {
		videoLength = defaultVideoLength
	}
	rewardRate := video.PointsPerMinute
	if rewardRate <= 0 {
		rewardRate = DefaultPointsPerMinute
	}

	existing, err := p.views.GetView(ctx, vid, uid)
	if err != nil {
		return model.ViewRecord{}, 0, false, err
	}

	// terminal state: a fully watched pair never accrues again, no writes
	if existing != nil && existing.FullyWatched {
		return *existing, 0, true, nil
	}

	// best known duration: prefer what the record already stores
	recordVideoLength := videoLength
	if existing != nil && existing.VideoDuration > 0 {
		recordVideoLength = existing.VideoDuration
	}
	// a near-zero report with a configured duration re-syncs the stored
	// length without granting points
	if watchDuration < durationPingLimit && video.DurationSeconds > 0 {
		recordVideoLength = video.DurationSeconds
	}

	fullyWatched := watchDuration >= completionThreshold(videoLength, recordVideoLength)
	alreadyEarned := existing != nil && existing.PointsEarned > 0

	points := 0
	if watchDuration >= minRewardedSeconds {
		switch {
		case existing == nil:
			points = firstSessionPoints(rewardRate, watchDuration)
		case !fullyWatched && watchDuration > existing.WatchDuration:
			if !alreadyEarned {
				// still an unpaid first session, pay for the full duration
				points = firstSessionPoints(rewardRate, watchDuration)
			} else if videoLength > watchDuration {
				// returning viewer: one poll, one point
				points = 1
			}
		}
	}

	if points > 0 {
		err = p.users.IncPoints(ctx, uid, points)
		if err != nil {
			return model.ViewRecord{}, 0, false, err
		}
		p.invalidate(ctx, viewerID)
	}

	patch := model.ViewUpsert{
		WatchDuration: watchDuration,
		VideoDuration: recordVideoLength,
		FullyWatched:  fullyWatched,
	}
	if points > 0 {
		previous := 0
		if existing != nil {
			previous = existing.PointsEarned
		}
		patch.PointsEarned = previous + points
		patch.SetPoints = true
	}
	record, err := p.views.UpsertView(ctx, vid, uid, patch)
	if err != nil {
		return model.ViewRecord{}, 0, false, err
	}

	p.events.Publish(events.SubjectVideoWatched, "video_watched", viewerID, map[string]any{
		"video_id":       videoID,
		"watch_duration": watchDuration,
		"points_earned":  points,
		"fully_watched":  record.FullyWatched,
	})
	return record, points, alreadyEarned, nil
}

// completionThreshold is the lesser of the video's nominal length and 95% of
// the best-known duration.
func completionThreshold(videoLength, recordVideoLength int) int {
	threshold := int(float64(recordVideoLength) * completionRatio)
	if videoLength < threshold {
		threshold = videoLength
	}
	return threshold
}

// firstSessionPoints pays the full rate for the first minute and a flat point
// per whole minute after that.
func firstSessionPoints(rate, watchDuration int) int {
	minutes := float64(watchDuration) / 60
	if minutes < 1 {
		return int(float64(rate) * minutes)
	}
	return rate + int(minutes-1)
}

// GetUserPoints returns the user's balance and their whole view history.
// The balance is served from cache when possible, like a plain balance read.
func (p *PointsService) GetUserPoints(ctx context.Context, userID string) (total int, history []model.ViewRecord, err error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil, fmt.Errorf("user %w", model.ErrNotFound)
	}

	cached := false
	if p.cache != nil {
		points, cerr := p.cache.GetPoints(ctx, userID)
		if cerr == nil {
			total = points
			cached = true
		}
	}
	if !cached {
		user, err := p.users.GetUser(ctx, uid)
		if err != nil {
			return 0, nil, err
		}
		total = user.Points
		if p.cache != nil {
			err = p.cache.SetPoints(ctx, userID, total)
			if err != nil {
				p.Log(err)
			}
		}
	}

	history, err = p.views.ViewsByViewer(ctx, uid)
	if err != nil {
		return 0, nil, err
	}
	return total, history, nil
}

// TransferPoints moves amount from a creator's balance to another user's.
func (p *PointsService) TransferPoints(ctx context.Context, fromID string, amount int, toID string) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("transfer amount %w", model.ErrInvalidArgument)
	}
	fid, err := primitive.ObjectIDFromHex(fromID)
	if err != nil {
		return false, fmt.Errorf("creator %w", model.ErrNotFound)
	}
	tid, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return false, fmt.Errorf("recipient %w", model.ErrNotFound)
	}

	creator, err := p.users.GetUser(ctx, fid)
	if err != nil {
		return false, err
	}
	if creator.UserType != model.RoleCreator {
		return false, fmt.Errorf("only creators can transfer points: %w", model.ErrForbidden)
	}
	if creator.Points < amount {
		return false, fmt.Errorf("transfer %w", model.ErrInsufficientBalance)
	}
	_, err = p.users.GetUser(ctx, tid)
	if err != nil {
		return false, err
	}

	err = p.users.TransferPoints(ctx, fid, tid, amount)
	if err != nil {
		return false, err
	}
	p.invalidate(ctx, fromID)
	p.invalidate(ctx, toID)

	p.events.Publish(events.SubjectPointsTransferred, "points_transferred", fromID, map[string]any{
		"recipient_id": toID,
		"points":       amount,
	})
	return true, nil
}

func (p *PointsService) invalidate(ctx context.Context, userID string) {
	if p.cache == nil {
		return
	}
	err := p.cache.InvalidatePoints(ctx, userID)
	if err != nil {
		p.Log(err)
	}
}

func (p *PointsService) Log(err error) {
	p.logger.Error("Points",
		zap.String("service", "PointsService"),
		zap.Error(err),
	)
}

package mbiri

import (
	"context"
	"fmt"
	"sort"
	"time"

	interf "github.com/loktioncode/mbiri-api/internal/interfaces"
	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const trendingWindow = 7 * 24 * time.Hour

type AnalyticsService struct {
	logger *zap.Logger
	users  interf.UserStorage
	videos interf.VideoStorage
	views  interf.ViewStorage
}

func NewAnalyticsService(logger *zap.Logger, users interf.UserStorage, videos interf.VideoStorage, views interf.ViewStorage) *AnalyticsService {
	return &AnalyticsService{logger, users, videos, views}
}

// VideoAnalytics aggregates all view records of one video for its owner.
func (a *AnalyticsService) VideoAnalytics(ctx context.Context, videoID, creatorID string) (model.VideoAnalytics, error) {
	id, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return model.VideoAnalytics{}, fmt.Errorf("video %w", model.ErrNotFound)
	}
	video, err := a.videos.GetVideo(ctx, id)
	if err != nil {
		return model.VideoAnalytics{}, err
	}
	if video.CreatorID.Hex() != creatorID {
		return model.VideoAnalytics{}, fmt.Errorf("no permission to view analytics for this video: %w", model.ErrForbidden)
	}

	views, err := a.views.ViewsByVideo(ctx, id)
	if err != nil {
		return model.VideoAnalytics{}, err
	}

	result := model.VideoAnalytics{
		VideoID: videoID,
		Title:   video.Title,
	}
	perViewer := make(map[primitive.ObjectID]*model.ViewerStats)
	perDay := make(map[string]*model.TrendPoint)
	for _, view := range views {
		result.TotalViews++
		result.TotalWatchTime += view.WatchDuration
		result.TotalPointsAwarded += view.PointsEarned

		stats, ok := perViewer[view.ViewerID]
		if !ok {
			stats = &model.ViewerStats{ID: view.ViewerID.Hex()}
			perViewer[view.ViewerID] = stats
		}
		stats.WatchTime += view.WatchDuration
		stats.PointsEarned += view.PointsEarned

		day := view.CreatedAt.Format("2006-01-02")
		trend, ok := perDay[day]
		if !ok {
			trend = &model.TrendPoint{Date: day}
			perDay[day] = trend
		}
		trend.Views++
		trend.WatchTime += view.WatchDuration
		trend.Points += view.PointsEarned
	}
	if result.TotalViews > 0 {
		result.AverageWatchTime = float64(result.TotalWatchTime) / float64(result.TotalViews)
	}
	result.ViewersCount = len(perViewer)

	// usernames are independent lookups, fetch them concurrently
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for viewerID, stats := range perViewer {
		g.Go(func() error {
			viewer, err := a.users.GetUser(gctx, viewerID)
			if err != nil {
				stats.Username = "Unknown"
				return nil
			}
			stats.Username = viewer.Username
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.VideoAnalytics{}, err
	}

	for _, stats := range perViewer {
		result.Viewers = append(result.Viewers, *stats)
	}
	sort.Slice(result.Viewers, func(i, j int) bool { return result.Viewers[i].WatchTime > result.Viewers[j].WatchTime })
	for _, trend := range perDay {
		result.TimeTrends = append(result.TimeTrends, *trend)
	}
	sort.Slice(result.TimeTrends, func(i, j int) bool { return result.TimeTrends[i].Date < result.TimeTrends[j].Date })
	return result, nil
}

// CreatorAnalytics aggregates every video of a creator, most viewed first.
func (a *AnalyticsService) CreatorAnalytics(ctx context.Context, creatorID string) (model.CreatorAnalytics, error) {
	cid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return model.CreatorAnalytics{}, fmt.Errorf("creator %w", model.ErrNotFound)
	}
	videos, err := a.videos.VideosByCreator(ctx, cid, 0, 0)
	if err != nil {
		return model.CreatorAnalytics{}, err
	}

	result := model.CreatorAnalytics{
		CreatorID:   creatorID,
		TotalVideos: len(videos),
		Videos:      []model.CreatorVideoAnalytics{},
	}
	if len(videos) == 0 {
		return result, nil
	}

	perVideo := make([]model.CreatorVideoAnalytics, len(videos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, video := range videos {
		g.Go(func() error {
			views, err := a.views.ViewsByVideo(gctx, video.ID)
			if err != nil {
				return err
			}
			stats := model.CreatorVideoAnalytics{
				VideoID:   video.ID.Hex(),
				Title:     video.Title,
				CreatedAt: video.CreatedAt,
			}
			for _, view := range views {
				stats.TotalViews++
				stats.TotalWatchTime += view.WatchDuration
				stats.TotalPointsAwarded += view.PointsEarned
			}
			if stats.TotalViews > 0 {
				stats.AverageWatchTime = float64(stats.TotalWatchTime) / float64(stats.TotalViews)
			}
			perVideo[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.CreatorAnalytics{}, err
	}

	for _, stats := range perVideo {
		result.TotalViews += stats.TotalViews
		result.TotalWatchTime += stats.TotalWatchTime
		result.TotalPointsAwarded += stats.TotalPointsAwarded
	}
	sort.Slice(perVideo, func(i, j int) bool { return perVideo[i].TotalViews > perVideo[j].TotalViews })
	result.Videos = perVideo
	return result, nil
}

// Trending ranks videos by views recorded inside the trending window.
func (a *AnalyticsService) Trending(ctx context.Context, limit int) ([]model.TrendingVideo, error) {
	if limit <= 0 {
		limit = 10
	}
	views, err := a.views.ViewsSince(ctx, time.Now().UTC().Add(-trendingWindow))
	if err != nil {
		return nil, err
	}

	counts := make(map[primitive.ObjectID]*model.TrendingVideo)
	for _, view := range views {
		t, ok := counts[view.VideoID]
		if !ok {
			t = &model.TrendingVideo{VideoID: view.VideoID.Hex()}
			counts[view.VideoID] = t
		}
		t.RecentViews++
		t.RecentWatchTime += view.WatchDuration
		t.RecentPoints += view.PointsEarned
	}

	ranked := make([]*model.TrendingVideo, 0, len(counts))
	for _, t := range counts {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].RecentViews > ranked[j].RecentViews })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	trending := make([]model.TrendingVideo, 0, len(ranked))
	for _, t := range ranked {
		id, err := primitive.ObjectIDFromHex(t.VideoID)
		if err != nil {
			continue
		}
		video, err := a.videos.GetVideo(ctx, id)
		if err != nil {
			// video removed since the view was recorded
			continue
		}
		t.Title = video.Title
		t.YoutubeID = video.YoutubeID
		t.CreatorID = video.CreatorID.Hex()
		t.CreatedAt = video.CreatedAt
		creator, err := a.users.GetUser(ctx, video.CreatorID)
		if err == nil {
			t.CreatorName = creator.Username
		} else {
			t.CreatorName = "Unknown"
		}
		trending = append(trending, *t)
	}
	return trending, nil
}

func (a *AnalyticsService) Log(err error) {
	a.logger.Error("Analytics",
		zap.String("service", "AnalyticsService"),
		zap.Error(err),
	)
}

package mbiri

import "time"

// Per-viewer contribution to one video.
type ViewerStats struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	WatchTime    int    `json:"watch_time"`
	PointsEarned int    `json:"points_earned"`
}

// One day of views for a video.
type TrendPoint struct {
	Date      string `json:"date"`
	Views     int    `json:"views"`
	WatchTime int    `json:"watch_time"`
	Points    int    `json:"points"`
}

type VideoAnalytics struct {
	VideoID            string        `json:"video_id"`
	Title              string        `json:"title"`
	TotalViews         int           `json:"total_views"`
	TotalWatchTime     int           `json:"total_watch_time"`
	AverageWatchTime   float64       `json:"average_watch_time"`
	TotalPointsAwarded int           `json:"total_points_awarded"`
	ViewersCount       int           `json:"viewers_count"`
	Viewers            []ViewerStats `json:"viewer_data"`
	TimeTrends         []TrendPoint  `json:"time_trends"`
}

type CreatorVideoAnalytics struct {
	VideoID            string    `json:"video_id"`
	Title              string    `json:"title"`
	TotalViews         int       `json:"total_views"`
	TotalWatchTime     int       `json:"total_watch_time"`
	AverageWatchTime   float64   `json:"average_watch_time"`
	TotalPointsAwarded int       `json:"total_points_awarded"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreatorAnalytics struct {
	CreatorID          string                  `json:"creator_id"`
	TotalVideos        int                     `json:"total_videos"`
	TotalViews         int                     `json:"total_views"`
	TotalWatchTime     int                     `json:"total_watch_time"`
	TotalPointsAwarded int                     `json:"total_points_awarded"`
	Videos             []CreatorVideoAnalytics `json:"videos_analytics"`
}

type TrendingVideo struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	YoutubeID       string    `json:"youtube_id"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	RecentViews     int       `json:"recent_views"`
	RecentWatchTime int       `json:"recent_watch_time"`
	RecentPoints    int       `json:"recent_points"`
	CreatedAt       time.Time `json:"created_at"`
}

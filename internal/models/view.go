package mbiri

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ViewRecord is the single per-(video, viewer) watch accumulator. WatchDuration
// and PointsEarned never decrease; FullyWatched is terminal for accrual.
type ViewRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoID       primitive.ObjectID `bson:"video_id" json:"video_id"`
	ViewerID      primitive.ObjectID `bson:"viewer_id" json:"viewer_id"`
	WatchDuration int                `bson:"watch_duration" json:"watch_duration"`
	VideoDuration int                `bson:"video_duration" json:"video_duration"`
	FullyWatched  bool               `bson:"fully_watched" json:"fully_watched"`
	PointsEarned  int                `bson:"points_earned" json:"points_earned"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Completion is the watched share in percent, capped at 100.
func (v ViewRecord) Completion() int {
	if v.VideoDuration <= 0 {
		return 0
	}
	pct := int(float64(v.WatchDuration)/float64(v.VideoDuration)*100 + 0.5)
	if pct > 100 {
		return 100
	}
	return pct
}

// ViewUpsert is the patch applied to a ViewRecord by the accounting engine.
// WatchDuration is applied with $max so a stale report never regresses it.
// PointsEarned is written only when SetPoints is true.
type ViewUpsert struct {
	WatchDuration int
	VideoDuration int
	FullyWatched  bool
	PointsEarned  int
	SetPoints     bool
}

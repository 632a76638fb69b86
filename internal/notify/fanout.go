// Package notify broadcasts newly created jobs to matching seekers.
package notify

import (
	"context"
	"encoding/json"

	"github.com/workhive/workhive-backend/internal/dto"
	"github.com/workhive/workhive-backend/internal/matching"
	"github.com/workhive/workhive-backend/internal/model"
	"go.uber.org/zap"
)

// MatchThreshold is the score a seeker must exceed (strictly) to be
// notified about a new job.
const MatchThreshold = 60

// ProfileLister enumerates seeker profiles for scoring.
type ProfileLister interface {
	AllSeekerProfiles() ([]model.SeekerProfile, error)
}

// Publisher delivers one frame to a user's real-time channel.
type Publisher interface {
	PublishJobUpdate(ctx context.Context, userID string, payload []byte) error
}

// Fanout scores every seeker against a new job and pushes a summary to
// those above the threshold. Invoked synchronously by the job-creation
// path as an explicit post-create hook; at-most-once, best-effort.
type Fanout struct {
	profiles  ProfileLister
	publisher Publisher
	threshold int
	logger    *zap.Logger
}

func New(profiles ProfileLister, publisher Publisher, logger *zap.Logger) *Fanout {
	return &Fanout{
		profiles:  profiles,
		publisher: publisher,
		threshold: MatchThreshold,
		logger:    logger,
	}
}

// OnJobCreated runs the fan-out for one freshly created job. A failed
// delivery to one seeker is logged and skipped; the rest of the batch
// still runs. Returns the number of seekers notified.
func (f *Fanout) OnJobCreated(ctx context.Context, job *model.Job) int {
	seekers, err := f.profiles.AllSeekerProfiles()
	if err != nil {
		f.logger.Error("fanout: listing seeker profiles failed",
			zap.String("job_id", job.ID.String()), zap.Error(err))
		return 0
	}

	summary := dto.NewJobSummary(job)
	notified := 0

	for i := range seekers {
		seeker := &seekers[i]
		score := matching.Score(seeker, job)
		if score <= f.threshold {
			continue
		}

		frame, err := json.Marshal(dto.JobUpdateFrame{
			Type:       "new_job",
			Job:        summary,
			MatchScore: score,
		})
		if err != nil {
			f.logger.Error("fanout: encoding frame failed", zap.Error(err))
			continue
		}

		if err := f.publisher.PublishJobUpdate(ctx, seeker.UserID.String(), frame); err != nil {
			f.logger.Warn("fanout: delivery failed",
				zap.String("job_id", job.ID.String()),
				zap.String("user_id", seeker.UserID.String()),
				zap.Error(err))
			continue
		}
		notified++
	}

	f.logger.Info("fanout complete",
		zap.String("job_id", job.ID.String()),
		zap.Int("seekers", len(seekers)),
		zap.Int("notified", notified))
	return notified
}

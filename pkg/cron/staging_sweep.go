package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"landing_backend/pkg/utils/storage"
)

// InitStagingSweepCron removes staged uploads that were never published, for
// example when the server stopped between staging and publishing. The returned
// scheduler is already started; callers Stop it on shutdown.
func InitStagingSweepCron(schedule string, files storage.FileStorage, ttl time.Duration, log logrus.FieldLogger) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		sweepStaging(context.Background(), files, ttl, log)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

func sweepStaging(ctx context.Context, files storage.FileStorage, ttl time.Duration, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	removed, err := files.SweepStaging(ctx, ttl)
	if err != nil {
		log.WithError(err).Error("staging sweep failed")
		return
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("removed stale staged uploads")
	}
}

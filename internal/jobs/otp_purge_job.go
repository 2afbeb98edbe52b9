package jobs

import (
	"context"
	"log/slog"

	"ghostkitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OTPPurgeJob manages the scheduled cleanup of expired one-time codes.
// Runs every minute so stale codes never accumulate between restarts.
type OTPPurgeJob struct {
	handler commands.PurgeExpiredOTPsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOTPPurgeJob creates a new job for purging expired one-time codes.
// Uses PurgeExpiredOTPsCommandHandler to sweep the code table every minute.
func NewOTPPurgeJob(handler commands.PurgeExpiredOTPsCommandHandler, logger *slog.Logger) *OTPPurgeJob {
	return &OTPPurgeJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "otp_purge_job"),
	}
}

// Start begins the purge job to run every minute.
func (j *OTPPurgeJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredOTPsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "OTP purge job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "OTP purge job started (running every minute)")
	return nil
}

// Stop stops the purge job.
func (j *OTPPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "OTP purge job stopped")
}

package server

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal/logging"
	"github.com/gitCabezas/PontoJovem/internal/server/jobs"
)

// BackgroundJobFunc is the interface for implementing a new background job.
//
// currentTime is the time the job was invoked at, and lastRunAt the time it
// last completed without error.
//
// errors will be logged but will not cause the app to crash.
//
// panics will be caught and logged.
//
// jobs should gracefully exit if their context quits, eg ctx.Done() or ctx.Err()
type BackgroundJobFunc func(ctx context.Context, tx *gorm.DB, lastRunAt, currentTime time.Time) error

func (s *Server) SetupBackgroundJobs(ctx context.Context) {
	s.registerJob(ctx, jobs.RemoveExpiredResetTokens, 15*time.Minute)
}

func (s *Server) registerJob(ctx context.Context, job BackgroundJobFunc, every time.Duration) {
	s.routines = append(s.routines, routine{
		run:  jobWrapper(ctx, s.db, job, every),
		stop: func() {}, // uses the context to stop
	})
}

func jobWrapper(ctx context.Context, tx *gorm.DB, job BackgroundJobFunc, every time.Duration) func() error {
	tx = tx.WithContext(ctx)

	return func() error { // jobs shouldn't return errors, we just do this to be compatible with the "routine" struct.
		t := time.NewTicker(every)
		lastRunAt := time.Time{}

		jobWithRescue := func() {
			if ctx.Err() != nil {
				return
			}
			defer func() {
				if err := recover(); err != nil {
					logging.Errorf("background job %s panic: %s", getFuncName(job), err)
				}
			}()

			startAt := time.Now().UTC()
			logging.Debugf("background job %s starting", getFuncName(job))

			err := job(ctx, tx, lastRunAt, startAt)
			if err != nil {
				logging.Errorf("background job %s error: %s", getFuncName(job), err.Error())
			} else {
				logging.Debugf("background job %s successful, elapsed: %s", getFuncName(job), time.Since(startAt))
				lastRunAt = startAt
			}
		}

		for {
			select {
			case <-t.C:
				jobWithRescue()
			case <-ctx.Done():
				return nil // time to quit.
			}
		}
	}
}

func getFuncName(i interface{}) string {
	name := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	nameParts := strings.Split(name, ".")
	name = nameParts[len(nameParts)-1]
	return strings.TrimSuffix(name, "-fm")
}

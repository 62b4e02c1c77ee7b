package cron

import (
	"context"
	"log"
	"strings"

	"sokohub/config"
	businessRepo "sokohub/database/repository/business"
	postRepo "sokohub/database/repository/post"
	"sokohub/models"
	"sokohub/services/media"
	"sokohub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeOrphanSweep = "media:orphan_sweep"

// OrphanSweeper reconciles the gap left by non-transactional deletes: media
// folders whose entity document is already gone.
type OrphanSweeper struct {
	Media      media.Service
	Businesses businessRepo.BusinessRepository
	Posts      postRepo.PostRepository
}

// InitOrphanSweeper runs the async worker and its periodic schedule in the
// background.
func InitOrphanSweeper(sweeper *OrphanSweeper) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOrphanSweep, sweeper.HandleSweepTask)

	go func() {
		log.Println("[OrphanSweeper] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[OrphanSweeper] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	cronspec := "@every " + config.AppConfig.OrphanSweepEvery
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypeOrphanSweep, nil)); err != nil {
		log.Printf("[OrphanSweeper] failed to register schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[OrphanSweeper] scheduler stopped: %v", err)
		}
	}()
}

// HandleSweepTask walks both entity prefixes and deletes folders whose
// document no longer exists.
func (s *OrphanSweeper) HandleSweepTask(ctx context.Context, task *asynq.Task) error {
	if err := s.sweep(ctx, models.EntityBusiness, s.Businesses.Exists); err != nil {
		return err
	}
	return s.sweep(ctx, models.EntityPost, s.Posts.Exists)
}

func (s *OrphanSweeper) sweep(ctx context.Context, entityType string, exists func(id string) (bool, error)) error {
	logger := utils.GetLogger()

	paths, err := s.Media.List(ctx, entityType+"/")
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		parts := strings.Split(p, "/")
		if len(parts) < 3 || parts[1] == "" {
			continue
		}
		seen[parts[1]] = true
	}

	for id := range seen {
		ok, err := exists(id)
		if err != nil {
			logger.Warn("orphan sweep: existence check failed",
				zap.String("type", entityType), zap.String("id", id), zap.Error(err))
			continue
		}
		if ok {
			continue
		}
		deleted, orphaned, err := s.Media.DeleteAll(ctx, models.MediaFolder(entityType, id))
		if err != nil {
			logger.Warn("orphan sweep: folder partially deleted",
				zap.String("type", entityType), zap.String("id", id),
				zap.Strings("orphaned", orphaned), zap.Error(err))
			continue
		}
		logger.Info("orphan sweep: removed orphaned media folder",
			zap.String("type", entityType), zap.String("id", id), zap.Int("files", deleted))
	}
	return nil
}

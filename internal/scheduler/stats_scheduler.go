package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/shopflow/shopflow-backend/config"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

// StatsScheduler periodically logs store-wide entity counts. With a volatile
// in-memory store this is the operational record of what the process held.
type StatsScheduler struct {
	cron  *cron.Cron
	store storage.Storage
	spec  string
}

func NewStatsScheduler(store storage.Storage, cfg config.StatsConfig) *StatsScheduler {
	return &StatsScheduler{
		cron:  cron.New(),
		store: store,
		spec:  cfg.Spec,
	}
}

func (s *StatsScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		counts := s.store.Counts()
		logger.Info("Store stats", map[string]interface{}{
			"users":       counts.Users,
			"categories":  counts.Categories,
			"products":    counts.Products,
			"orders":      counts.Orders,
			"order_items": counts.OrderItems,
			"cart_items":  counts.CartItems,
		})
	})

	if err != nil {
		logger.Error("Failed to schedule stats report", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stats scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

func (s *StatsScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Stats scheduler stopped")
}

// Package cache removes expired flag image entries from the byte cache.
package cache

import (
	"context"
	"time"

	"github.com/sdko-org/flag-proxy/internal/models"
	"github.com/sdko-org/flag-proxy/internal/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Purger struct {
	logger  *logrus.Logger
	db      *gorm.DB
	storage storage.Storage
}

func NewPurger(logger *logrus.Logger, db *gorm.DB, storage storage.Storage) *Purger {
	return &Purger{
		logger:  logger,
		db:      db,
		storage: storage,
	}
}

func (p *Purger) Start(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	logEntry := p.logger.WithField("component", "cache_purger")
	logEntry.Info("Starting cache purger")

	for {
		select {
		case <-ticker.C:
			p.purgeExpired(ctx, logEntry)
		case <-ctx.Done():
			logEntry.Info("Stopping cache purger")
			return
		}
	}
}

func (p *Purger) purgeExpired(ctx context.Context, log *logrus.Entry) {
	log = log.WithField("operation", "cache_purge")

	var entries []models.FlagCache
	if err := p.db.WithContext(ctx).
		Where("expires_at < ? OR last_access < ?", time.Now(), time.Now().Add(-7*24*time.Hour)).
		Find(&entries).Error; err != nil {
		log.WithError(err).Error("Flag cache purge query failed")
		return
	}

	if len(entries) == 0 {
		return
	}
	log.WithField("count", len(entries)).Info("Processing expired cache entries")

	for _, entry := range entries {
		if err := p.storage.Delete(ctx, entry.Key); err != nil {
			log.WithFields(logrus.Fields{"key": entry.Key, "error": err}).Error("Failed to delete cache entry")
		}
	}
}

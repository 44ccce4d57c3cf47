// Package jobs holds the periodic maintenance tasks run by the server.
package jobs

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal/server/data"
)

func RemoveExpiredResetTokens(ctx context.Context, tx *gorm.DB, lastRunAt, currentTime time.Time) error {
	return data.RemoveExpiredResetTokens(tx)
}

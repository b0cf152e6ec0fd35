package jobs

import (
	"context"

	"equiprent-backend/internal/logger"
)

// ReloadCatalog re-reads the equipment catalog from its source file. A failed
// reload keeps the previously loaded catalog in place.
func (jr *JobRunner) ReloadCatalog() {
	jr.runWithRecovery("ReloadCatalog", func() {
		ctx := context.Background()

		if err := jr.equipmentRepo.Reload(ctx); err != nil {
			logger.Error("Failed to reload equipment catalog", "error", err)
			return
		}

		items, err := jr.equipmentRepo.All(ctx)
		if err != nil {
			logger.Error("Failed to read reloaded catalog", "error", err)
			return
		}
		logger.Info("Equipment catalog reloaded", "items", len(items))
	})
}

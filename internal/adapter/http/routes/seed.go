package routes

import (
	"context"

	repository2 "valuation_report/internal/adapter/persistence/repository"
	"valuation_report/internal/infrastructure/logger"

	"go.uber.org/zap"
)

var defaultOptions = map[string][]string{
	"banks":     {"State Bank of India", "HDFC Bank", "ICICI Bank", "Axis Bank", "Canara Bank"},
	"cities":    {"Chennai", "Coimbatore", "Madurai", "Bengaluru", "Hyderabad"},
	"dsas":      {"Direct", "Sri Sai Associates", "Lakshmi Finserv"},
	"engineers": {"R. Prakash", "S. Meena", "K. Arun"},
}

// seedOptions fills empty option categories of a local table.
func seedOptions(ctx context.Context, repo *repository2.OptionsDynamoRepository) {
	for category, values := range defaultOptions {
		existing, err := repo.GetOptions(ctx, category)
		if err != nil {
			logger.L().Warn("[options][seed] read failed", zap.String("category", category), zap.Error(err))
			continue
		}
		if len(existing) > 0 {
			continue
		}
		if err := repo.PutOptions(ctx, category, values); err != nil {
			logger.L().Warn("[options][seed] write failed", zap.String("category", category), zap.Error(err))
			continue
		}
		logger.L().Info("[options][seed] seeded", zap.String("category", category), zap.Int("count", len(values)))
	}
}

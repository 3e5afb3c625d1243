package usecase

import (
	"context"
	"slices"
	"strings"
	"time"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OptionsCategories are the dropdowns served by the options provider.
var OptionsCategories = []string{"banks", "cities", "dsas", "engineers"}

// IOptionsUseCase lists dropdown values for the valuation form.
type IOptionsUseCase interface {
	GetOptions(ctx context.Context, category string) ([]string, error)
}

type OptionsUseCase struct {
	provider interfaces.IOptionsProvider
	timeout  time.Duration
}

var _ IOptionsUseCase = (*OptionsUseCase)(nil)

func NewOptionsUseCase(provider interfaces.IOptionsProvider, timeout time.Duration) *OptionsUseCase {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &OptionsUseCase{provider: provider, timeout: timeout}
}

func (u *OptionsUseCase) GetOptions(ctx context.Context, category string) ([]string, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if !slices.Contains(OptionsCategories, category) {
		return nil, ErrUnknownOptionsCategory
	}

	rctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	values, err := u.provider.GetOptions(rctx, category)
	if err != nil {
		logger.L().Error("[options][usecase] load failed", zap.String("category", category), zap.Error(err))
		return nil, upstream("load "+category+" options", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "valuation_report/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOptionsUseCase_GetOptions(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		uc := NewOptionsUseCase(nil, 0)
		_, err := uc.GetOptions(context.Background(), "colors")
		if !errors.Is(err, ErrUnknownOptionsCategory) {
			t.Fatalf("expected ErrUnknownOptionsCategory, got %v", err)
		}
	})

	t.Run("normalizes category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIOptionsProvider(ctrl)
		uc := NewOptionsUseCase(provider, 0)
		provider.EXPECT().GetOptions(gomock.Any(), "banks").Return([]string{"SBI", "HDFC"}, nil)

		res, err := uc.GetOptions(context.Background(), " Banks ")
		if err != nil || len(res) != 2 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})

	t.Run("nil list becomes empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIOptionsProvider(ctrl)
		uc := NewOptionsUseCase(provider, 0)
		provider.EXPECT().GetOptions(gomock.Any(), "cities").Return(nil, nil)

		res, err := uc.GetOptions(context.Background(), "cities")
		if err != nil || res == nil || len(res) != 0 {
			t.Fatalf("expected empty list, got %v %v", res, err)
		}
	})

	t.Run("provider error is upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIOptionsProvider(ctrl)
		uc := NewOptionsUseCase(provider, 0)
		provider.EXPECT().GetOptions(gomock.Any(), "engineers").Return(nil, errors.New("db"))

		_, err := uc.GetOptions(context.Background(), "engineers")
		var uerr *UpstreamError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
	})
}

package interfaces

import (
	"context"

	"stamble/internal/types"
)

type PerformanceProvider interface {
	GetPerformance(ctx context.Context, symbol string) (types.StockPerformance, error)
}

package interfaces

import (
	"context"

	"stamble/internal/types"
)

type NewsProvider interface {
	GetNews(ctx context.Context, symbol string, maxItems int) ([]types.NewsItem, error)
}

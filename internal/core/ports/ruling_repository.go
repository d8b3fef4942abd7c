package ports

import (
	"context"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// RulingQuery narrows the public rulings listing.
type RulingQuery struct {
	Category string
	Page     int
	Limit    int
}

// RulingRepository reads published rulings. Writing is owned by out-of-scope
// adjudication tooling.
type RulingRepository interface {
	List(ctx context.Context, q RulingQuery) ([]domain.Ruling, int64, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Ruling, error)
}

// RulingCache stores serialized directory pages so hot listings skip the
// store. A miss is (nil, nil); cache failures are surfaced so callers can
// decide whether to degrade to the repository.
type RulingCache interface {
	Get(ctx context.Context, category string, page, limit int) ([]byte, error)
	Set(ctx context.Context, category string, page, limit int, payload []byte) error
}

package ports

import (
	"context"

	"go.trai.ch/envscan/internal/core/domain"
)

// InventoryBuilder scans the project hierarchy into inventory records.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type InventoryBuilder interface {
	Build(ctx context.Context, settings domain.Settings, sel domain.Selection) ([]domain.InventoryRecord, error)
}

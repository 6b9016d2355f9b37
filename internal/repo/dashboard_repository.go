package repo

import (
	"context"
	"encoding/json"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

// DashboardRepository hands out owner-scoped stores. Handlers never pass an
// owner id per call; they obtain a handle for the authenticated user once
// and every operation through it is filtered to that owner. Accessing
// another owner's dashboard is indistinguishable from it not existing.
type DashboardRepository interface {
	ForOwner(ownerID int) DashboardStore
}

type DashboardStore interface {
	Create(ctx context.Context, name string, layout json.RawMessage) (models.Dashboard, error)
	List(ctx context.Context) ([]models.Dashboard, error)
	GetByID(ctx context.Context, id int) (models.Dashboard, error)
	Update(ctx context.Context, id int, name string, layout json.RawMessage) (models.Dashboard, error)
	Delete(ctx context.Context, id int) error
}

package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	storedomain "github.com/Apurer/afterschool-api/internal/domains/store/domain"
	storeports "github.com/Apurer/afterschool-api/internal/domains/store/ports"
)

// PersistOrderActivityName inserts the caller's order fields.
const PersistOrderActivityName = "store.activities.PersistOrder"

// PersistOrderInput carries the raw order fields across the workflow boundary.
type PersistOrderInput struct {
	Fields map[string]any
}

// Activities groups activities that operate on the store bounded context.
type Activities struct {
	service storeports.Service
}

// NewActivities wires the store service into the Temporal activities bundle.
func NewActivities(service storeports.Service) *Activities {
	return &Activities{service: service}
}

// PersistOrder stores a new order and returns it.
func (a *Activities) PersistOrder(ctx context.Context, input PersistOrderInput) (*storedomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order persist activity not initialized")
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "fieldCount", len(input.Fields))
	order, err := a.service.PlaceOrder(ctx, input.Fields)
	if err != nil {
		logger.Error("PersistOrder activity failed", "error", err)
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", order.ID)
	return order, nil
}

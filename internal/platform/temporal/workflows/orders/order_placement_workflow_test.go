package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	storememory "github.com/Apurer/afterschool-api/internal/domains/store/adapters/memory"
	storeapp "github.com/Apurer/afterschool-api/internal/domains/store/application"
	storedomain "github.com/Apurer/afterschool-api/internal/domains/store/domain"
	orderactivities "github.com/Apurer/afterschool-api/internal/platform/temporal/activities/orders"
)

func TestOrderPlacementWorkflow_PersistsOrder(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	repo := storememory.NewRepository()
	activities := orderactivities.NewActivities(storeapp.NewService(repo))
	env.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})

	fields := map[string]any{"name": "Alice", "spaces": float64(2)}
	env.ExecuteWorkflow(OrderPlacementWorkflow, OrderPlacementWorkflowInput{Fields: fields, TraceID: "trace-1"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var order storedomain.Order
	require.NoError(t, env.GetWorkflowResult(&order))
	require.NotEmpty(t, order.ID)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, fields, stored[0].Fields)
}

func TestOrderPlacementWorkflow_DoesNotRetry(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	calls := 0
	env.RegisterActivityWithOptions(
		func(context.Context, orderactivities.PersistOrderInput) (*storedomain.Order, error) {
			calls++
			return nil, errors.New("insert failed")
		},
		activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName},
	)

	env.ExecuteWorkflow(OrderPlacementWorkflow, OrderPlacementWorkflowInput{Fields: map[string]any{"name": "Bob"}})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	require.Equal(t, 1, calls)
}

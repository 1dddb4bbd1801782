package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDependencies(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.ServiceDependencies(demoRoot(t), "OrderService")
	require.NoError(t, err)
	require.True(t, report.Found)
	assert.Equal(t, "OrderService", report.Service)

	t.Run("Injected Repositories", func(t *testing.T) {
		assert.Equal(t, []string{"OrderRepository", "CustomerRepository"}, report.Repositories)
	})

	t.Run("Public Methods", func(t *testing.T) {
		assert.Equal(t, []string{"createOrder", "getOrder", "listOrders"}, report.PublicMethods)
	})

	t.Run("Thrown Exceptions", func(t *testing.T) {
		assert.Equal(t, []string{
			"CustomerNotFoundException",
			"InvalidOrderException",
			"OrderNotFoundException",
		}, report.ThrownExceptions)
	})

	t.Run("Transactional", func(t *testing.T) {
		assert.True(t, report.Transactional)
	})
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryMethods(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.RepositoryMethods(demoRoot(t), "OrderRepository")
	require.NoError(t, err)
	require.True(t, report.Found)
	assert.Equal(t, "OrderRepository", report.Repository)

	t.Run("Query Methods", func(t *testing.T) {
		require.Len(t, report.Methods, 6)

		names := make([]string, 0, len(report.Methods))
		for _, m := range report.Methods {
			names = append(names, m.Name)
		}
		assert.Equal(t, []string{
			"findByCustomerId",
			"findFirstByStatusOrderByCreatedAtDesc",
			"countByStatus",
			"existsByCustomerIdAndStatus",
			"findExpensiveOrders",
			"deleteByStatus",
		}, names)
	})

	t.Run("Explicit Query Annotation", func(t *testing.T) {
		for _, m := range report.Methods {
			if m.Name == "findExpensiveOrders" {
				assert.True(t, m.HasQuery)
			} else {
				assert.False(t, m.HasQuery, m.Name)
			}
		}
	})

	t.Run("Soft Delete", func(t *testing.T) {
		assert.False(t, report.HasSoftDelete)
	})
}

func TestRepositoryMethods_SoftDelete(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.RepositoryMethods(demoRoot(t), "SubscriptionRepository")
	require.NoError(t, err)
	require.True(t, report.Found)

	assert.True(t, report.HasSoftDelete)
	require.Len(t, report.Methods, 1)
	assert.Equal(t, "findByActiveTrue", report.Methods[0].Name)
}

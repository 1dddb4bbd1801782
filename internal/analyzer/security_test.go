package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtClaims(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.JwtClaims(demoRoot(t))
	require.NoError(t, err)
	require.True(t, report.Found)

	t.Run("Standard Claims", func(t *testing.T) {
		assert.Equal(t, "claims.getSubject()", report.StandardClaims["sub"])
		assert.Equal(t, "claims.getExpiration()", report.StandardClaims["exp"])
		assert.Equal(t, "claims.getIssuedAt()", report.StandardClaims["iat"])
		assert.NotContains(t, report.StandardClaims, "iss")
		assert.NotContains(t, report.StandardClaims, "aud")
	})

	t.Run("Custom Claims", func(t *testing.T) {
		// Token utility claims first, filter claims after, first-seen order.
		assert.Equal(t, []string{"role", "tenantId", "permissions"}, report.CustomClaims)
	})

	t.Run("Recommendation", func(t *testing.T) {
		assert.NotEmpty(t, report.Recommendation)
	})
}

func TestJwtClaims_NoTokenCode(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.JwtClaims(t.TempDir())
	require.NoError(t, err)
	assert.False(t, report.Found)
	assert.Empty(t, report.StandardClaims)
	assert.Empty(t, report.CustomClaims)
}

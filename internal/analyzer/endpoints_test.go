package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerEndpoints(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.ControllerEndpoints(demoRoot(t), "OrderController")
	require.NoError(t, err)
	require.True(t, report.Found)

	t.Run("Base Path", func(t *testing.T) {
		assert.Equal(t, "/api/orders", report.BasePath)
	})

	t.Run("Endpoints", func(t *testing.T) {
		require.Len(t, report.Endpoints, 5)

		assert.Equal(t, Endpoint{Method: "GET", Path: "", Handler: "list"}, report.Endpoints[0])
		assert.Equal(t, Endpoint{Method: "GET", Path: "/{id}", Handler: "get"}, report.Endpoints[1])
		assert.Equal(t, Endpoint{Method: "POST", Path: "", Handler: "create"}, report.Endpoints[2])
		assert.Equal(t, Endpoint{Method: "PUT", Path: "/{id}", Handler: "replace"}, report.Endpoints[3])
		assert.Equal(t, Endpoint{Method: "DELETE", Path: "/{id}", Handler: "remove"}, report.Endpoints[4])
	})

	t.Run("Auth", func(t *testing.T) {
		assert.True(t, report.RequiresAuth, "@PreAuthorize implies authenticated requests")
	})
}

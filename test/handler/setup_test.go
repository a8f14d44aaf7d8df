package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/astrumlab/tzbrief/internal/filestore"
	"github.com/astrumlab/tzbrief/internal/gateway"
	"github.com/astrumlab/tzbrief/internal/handler"
	"github.com/astrumlab/tzbrief/internal/notify"
	"github.com/astrumlab/tzbrief/internal/service"
)

// newTestRouter wires the full API surface over the seed dataset (no backing
// store), the way the server runs when neither database nor blob service is
// configured.
func newTestRouter(production bool, store filestore.Store, notifier notify.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	docSvc := service.NewDocumentService(gateway.New(nil, gateway.Seed()))
	handler.RegisterRoutes(engine.Group("/api"), handler.RouterDeps{
		Documents:  handler.NewDocumentHandler(docSvc),
		Upload:     handler.NewUploadHandler(store),
		Send:       handler.NewSendHandler(service.NewSendService(docSvc, notifier)),
		Production: production,
	})
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	require.Equal(t, message, body["error"])
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finodex/internal/config"
	"finodex/internal/domain"
	"finodex/internal/extract"
	"finodex/internal/handler"
	"finodex/internal/pipeline"
	"finodex/internal/registry"
	"finodex/internal/router"
	"finodex/internal/service"
	"finodex/mocks"
)

type textRunner struct{ text string }

func (r textRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return []byte(r.text), nil, nil
}

func testEngine(t *testing.T, gateway *mocks.MockModelGateway, offers *mocks.MockOfferRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.Default()
	extractor := extract.NewExtractorWithRunner(
		config.OCRConfig{Tesseract: "tesseract", Languages: "deu+eng"},
		textRunner{text: "Kreditangebot über 250.000 EUR"},
	)
	pipelineSvc := pipeline.NewService(reg, registry.DefaultChecklists(), extractor, gateway, offers)

	documentH := handler.NewDocumentHandler(pipelineSvc, reg, service.NewArchiveService(nil, ""))
	offerH := handler.NewOfferHandler(offers)
	healthH := handler.NewHealthHandler(nil)
	return router.Setup(documentH, offerH, healthH, nil)
}

func multipartBody(t *testing.T, fileField string, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := w.CreateFormFile(fileField, name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestProcessEndpoint(t *testing.T) {
	gateway := new(mocks.MockModelGateway)
	gateway.On("Process", mock.Anything, mock.Anything).
		Return(`{"kreditbetrag": 250000, "zinssatz": 3.2, "laufzeit": "25 Jahre"}`, nil).Once()

	engine := testEngine(t, gateway, new(mocks.MockOfferRepo))

	body, contentType := multipartBody(t, "file",
		map[string][]byte{"offer.png": {0x89, 0x50}},
		map[string]string{"document_type": "kreditangebot"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool                 `json:"success"`
		Data    *domain.SingleResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.InDelta(t, 0.75, resp.Data.Confidence, 1e-9)
	assert.Equal(t, float64(250000), resp.Data.ExtractedData["kreditbetrag"])
}

func TestProcessEndpointMissingFields(t *testing.T) {
	engine := testEngine(t, new(mocks.MockModelGateway), new(mocks.MockOfferRepo))

	body, contentType := multipartBody(t, "file", nil, map[string]string{"document_type": "kreditangebot"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestProcessEndpointUnknownType(t *testing.T) {
	engine := testEngine(t, new(mocks.MockModelGateway), new(mocks.MockOfferRepo))

	body, contentType := multipartBody(t, "file",
		map[string][]byte{"offer.png": {1}},
		map[string]string{"document_type": "nope"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DOCUMENT_TYPE_NOT_FOUND")
}

func TestCompareEndpointRequiresTwoFiles(t *testing.T) {
	engine := testEngine(t, new(mocks.MockModelGateway), new(mocks.MockOfferRepo))

	body, contentType := multipartBody(t, "files",
		map[string][]byte{"a.png": {1}},
		map[string]string{"document_type": "kreditangebot"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/compare", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDocumentTypesEndpoint(t *testing.T) {
	engine := testEngine(t, new(mocks.MockModelGateway), new(mocks.MockOfferRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/document-types", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kreditangebot")
	assert.Contains(t, rec.Body.String(), "invoice")
}

func TestHealthEndpoints(t *testing.T) {
	engine := testEngine(t, new(mocks.MockModelGateway), new(mocks.MockOfferRepo))

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestOffersExportEndpoint(t *testing.T) {
	offers := new(mocks.MockOfferRepo)
	offers.On("List", mock.Anything, "", 0, 1000).
		Return([]domain.OfferRecord{}, 0, nil).Once()

	engine := testEngine(t, new(mocks.MockModelGateway), offers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/export", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	offers.AssertExpectations(t)
}

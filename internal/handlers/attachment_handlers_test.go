package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"designmeta/internal/common"
	"designmeta/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAttachmentFixture() (*MockAttachmentService, *MockCapabilityService, *AttachmentHandlers) {
	attachmentSvc := new(MockAttachmentService)
	capabilitySvc := new(MockCapabilityService)
	h := NewAttachmentHandlers(attachmentSvc, capabilitySvc)
	return attachmentSvc, capabilitySvc, h
}

func newGetAttachmentRequest(t *testing.T, userID uuid.UUID, attachmentID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/attachments/"+attachmentID, nil)
	req = req.WithContext(common.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(attachmentID)
	return c, rec
}

func TestUploadUnauthenticated(t *testing.T) {
	_, _, h := newAttachmentFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/attachments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upload(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestUploadForbiddenWithoutCapability(t *testing.T) {
	attachmentSvc, capabilitySvc, h := newAttachmentFixture()

	userID := uuid.New()
	capabilitySvc.On("UserCan", mock.Anything, userID, models.CapabilityEditProducts).Return(false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/attachments", nil)
	req = req.WithContext(common.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upload(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	attachmentSvc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAttachmentNotFound(t *testing.T) {
	attachmentSvc, capabilitySvc, h := newAttachmentFixture()

	userID := uuid.New()
	capabilitySvc.On("UserCan", mock.Anything, userID, models.CapabilityEditProducts).Return(true, nil)
	attachmentSvc.On("Get", mock.Anything, int64(99)).Return(nil, "", nil)

	c, _ := newGetAttachmentRequest(t, userID, "99")
	err := h.Get(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetAttachmentInvalidID(t *testing.T) {
	_, capabilitySvc, h := newAttachmentFixture()

	userID := uuid.New()
	capabilitySvc.On("UserCan", mock.Anything, userID, models.CapabilityEditProducts).Return(true, nil)

	for _, bad := range []string{"abc", "0", "-3"} {
		c, _ := newGetAttachmentRequest(t, userID, bad)
		err := h.Get(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}

func TestGetAttachmentReturnsDescriptor(t *testing.T) {
	attachmentSvc, capabilitySvc, h := newAttachmentFixture()

	userID := uuid.New()
	capabilitySvc.On("UserCan", mock.Anything, userID, models.CapabilityEditProducts).Return(true, nil)
	attachmentSvc.On("Get", mock.Anything, int64(42)).Return(&models.Attachment{
		ID:        42,
		ObjectKey: "attachments/abc/design.png",
	}, "https://minio.local/design.png?sig=1", nil)

	c, rec := newGetAttachmentRequest(t, userID, "42")
	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp attachmentResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "https://minio.local/design.png?sig=1", resp.URL)
	assert.Equal(t, "design.png", resp.Filename)
}

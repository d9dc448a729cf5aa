package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

func setupAuditTest(t *testing.T) (*gin.Engine, *stubHotelRepository, *stubAuditRepository) {
	gin.SetMode(gin.TestMode)

	hotelRepo := newStubHotelRepository()
	auditRepo := &stubAuditRepository{}

	queryService := service.NewHotelQueryService(hotelRepo)
	lifecycleService := service.NewLifecycleService(hotelRepo, auditRepo)
	auditHandler := NewAuditHandler(queryService, lifecycleService, service.NewAuditService(auditRepo))

	router := gin.New()
	admin := router.Group("/audits", fakeAuth("admin-1", model.RoleAdmin))
	{
		admin.GET("/hotels", auditHandler.List)
		admin.GET("/hotels/pending", auditHandler.ListPending)
		admin.GET("/hotels/offline", auditHandler.ListOffline)
		admin.POST("/hotels/:hotelId/approve", auditHandler.Approve)
		admin.POST("/hotels/:hotelId/reject", auditHandler.Reject)
		admin.POST("/hotels/:hotelId/offline", auditHandler.Offline)
		admin.POST("/hotels/:hotelId/restore", auditHandler.Restore)
		admin.GET("/hotels/:hotelId/logs", auditHandler.Logs)
	}
	return router, hotelRepo, auditRepo
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuditHandler_ApproveFlow(t *testing.T) {
	router, hotelRepo, auditRepo := setupAuditTest(t)

	hotel := seedHotel(hotelRepo, "merchant-1", model.HotelStatusPending)

	w := postJSON(router, "/audits/hotels/"+hotel.ID+"/approve", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, model.HotelStatusPublished, hotel.Status)
	require.Len(t, auditRepo.records, 1)
	assert.Equal(t, model.ActionApprove, auditRepo.records[0].Action)
	assert.Equal(t, "admin-1", auditRepo.records[0].OperatorID)
}

func TestAuditHandler_RejectRequiresReason(t *testing.T) {
	router, hotelRepo, auditRepo := setupAuditTest(t)

	hotel := seedHotel(hotelRepo, "merchant-1", model.HotelStatusPending)

	// 空原因被拒绝，不改状态也不写日志
	for _, body := range [...]string{`{}`, `{"reason": ""}`, `{"reason": "   "}`} {
		w := postJSON(router, "/audits/hotels/"+hotel.ID+"/reject", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, response.CodeMissingReason, env.Code)
	}
	assert.Equal(t, model.HotelStatusPending, hotel.Status)
	assert.Empty(t, auditRepo.records)

	w := postJSON(router, "/audits/hotels/"+hotel.ID+"/reject", `{"reason": "材料不完整"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.HotelStatusRejected, hotel.Status)
	assert.Equal(t, "材料不完整", hotel.RejectReason)
}

func TestAuditHandler_OfflineDefaultReason(t *testing.T) {
	router, hotelRepo, _ := setupAuditTest(t)

	hotel := seedHotel(hotelRepo, "merchant-1", model.HotelStatusPublished)

	w := postJSON(router, "/audits/hotels/"+hotel.ID+"/offline", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, model.HotelStatusOffline, hotel.Status)
	assert.True(t, hotel.IsDeleted)
	require.NotNil(t, hotel.OfflineReason)
	assert.Equal(t, service.DefaultOfflineReason, *hotel.OfflineReason)
}

func TestAuditHandler_RestoreOnlyFromOffline(t *testing.T) {
	router, hotelRepo, _ := setupAuditTest(t)

	published := seedHotel(hotelRepo, "merchant-1", model.HotelStatusPublished)

	// 非下线状态恢复使用专门的业务码
	w := postJSON(router, "/audits/hotels/"+published.ID+"/restore", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, response.CodeNotOffline, env.Code)

	// 先下线再恢复
	w = postJSON(router, "/audits/hotels/"+published.ID+"/offline", `{"reason": "虚假信息"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(router, "/audits/hotels/"+published.ID+"/restore", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.HotelStatusPublished, published.Status)
	assert.False(t, published.IsDeleted)
}

func TestAuditHandler_NotFound(t *testing.T) {
	router, _, _ := setupAuditTest(t)

	w := postJSON(router, "/audits/hotels/no-such-hotel/approve", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, response.CodeHotelNotFound, env.Code)
}

func TestAuditHandler_ListPending(t *testing.T) {
	router, hotelRepo, _ := setupAuditTest(t)

	seedHotel(hotelRepo, "merchant-1", model.HotelStatusPending)
	seedHotel(hotelRepo, "merchant-1", model.HotelStatusPublished)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits/hotels/pending", nil))
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data struct {
		Hotels []model.Hotel `json:"hotels"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Hotels, 1)
	assert.Equal(t, model.HotelStatusPending, data.Hotels[0].Status)
}

func TestAuditHandler_Logs(t *testing.T) {
	router, hotelRepo, _ := setupAuditTest(t)

	hotel := seedHotel(hotelRepo, "merchant-1", model.HotelStatusPending)

	require.Equal(t, http.StatusOK, postJSON(router, "/audits/hotels/"+hotel.ID+"/reject", `{"reason": "照片模糊"}`).Code)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits/hotels/"+hotel.ID+"/logs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data struct {
		Logs []model.AuditRecord `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Logs, 1)
	assert.Equal(t, model.ActionReject, data.Logs[0].Action)
	assert.Equal(t, "照片模糊", data.Logs[0].Reason)
	assert.Equal(t, model.HotelStatusPending, data.Logs[0].PreviousStatus)
	assert.Equal(t, model.HotelStatusRejected, data.Logs[0].NewStatus)
}

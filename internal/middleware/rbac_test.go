package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/model"
)

func setupRoleRouter(role string, required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	})
	router.GET("/protected", RequireRole(required...), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		required []string
		wantCode int
	}{
		{"管理员访问管理接口", model.RoleAdmin, []string{model.RoleAdmin}, http.StatusOK},
		{"商户访问管理接口", model.RoleMerchant, []string{model.RoleAdmin}, http.StatusForbidden},
		{"任一角色命中即放行", model.RoleMerchant, []string{model.RoleMerchant, model.RoleAdmin}, http.StatusOK},
		{"上下文缺少角色", "", []string{model.RoleAdmin}, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupRoleRouter(tc.role, tc.required...)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
			if w.Code != tc.wantCode {
				t.Errorf("期望状态码 %d，实际 %d", tc.wantCode, w.Code)
			}
		})
	}
}

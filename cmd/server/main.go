package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/config"
	"github.com/zcyneiya/hotel-backend/internal/database"
	"github.com/zcyneiya/hotel-backend/internal/handler"
	"github.com/zcyneiya/hotel-backend/internal/middleware"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/redis"
	"github.com/zcyneiya/hotel-backend/internal/repository"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库连接
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer database.Close()
	log.Println("数据库连接成功")

	// 初始化 Redis 连接
	if err := redis.Init(&cfg.Redis); err != nil {
		log.Fatalf("初始化 Redis 失败: %v", err)
	}
	defer redis.Close()
	log.Println("Redis 连接成功")

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Hotel{},
		&model.Room{},
		&model.Promotion{},
		&model.AuditRecord{},
	); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	log.Println("数据库迁移完成")

	// 初始化 Repository
	userRepo := repository.NewUserRepository(database.GetDB())
	hotelRepo := repository.NewHotelRepository(database.GetDB())
	auditRepo := repository.NewAuditRecordRepository(database.GetDB())

	// 生成 RSA 密钥对（生产环境应从配置文件加载）
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("生成 RSA 密钥失败: %v", err)
	}

	// 初始化 Service
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)
	tokenService := service.NewTokenService(&service.TokenServiceConfig{
		PrivateKey:    privateKey,
		PublicKey:     &privateKey.PublicKey,
		Issuer:        cfg.JWT.Issuer,
		AccessExpiry:  cfg.JWT.AccessExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})
	sessionService := service.NewSessionService(redis.GetClient(), nil)

	hotelService := service.NewHotelService(hotelRepo)
	queryService := service.NewHotelQueryService(hotelRepo)
	lifecycleService := service.NewLifecycleService(hotelRepo, auditRepo)
	auditService := service.NewAuditService(auditRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(userService, authService, tokenService, sessionService, cfg.JWT.AccessExpiry)
	hotelHandler := handler.NewHotelHandler(hotelService, queryService, lifecycleService)
	auditHandler := handler.NewAuditHandler(queryService, lifecycleService, auditService)

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()

	// 全局中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		// 检查数据库连接
		dbStatus := "ok"
		if err := database.Ping(); err != nil {
			dbStatus = "error"
		}

		// 检查 Redis 连接
		redisStatus := "ok"
		redisClient := redis.GetClient()
		if redisClient == nil {
			redisStatus = "error"
		} else if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "error"
		}

		detail := gin.H{
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
			"redis":    redisStatus,
		}
		if dbStatus != "ok" || redisStatus != "ok" {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Code: response.CodeUnavailable,
				Msg:  "服务暂时不可用",
				Data: detail,
			})
			return
		}

		detail["status"] = "ok"
		response.Success(c, detail)
	})

	// API 路由组
	api := router.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		// 认证路由（公开）
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 需要认证的认证路由
		authRequired := api.Group("/auth")
		authRequired.Use(middleware.JWTAuth(tokenService))
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}

		// 酒店路由
		hotels := api.Group("/hotels")
		{
			// 公开检索与详情
			hotels.GET("", hotelHandler.Search)
			hotels.GET("/:id", hotelHandler.Get)

			// 商户侧维护
			merchant := hotels.Group("")
			merchant.Use(middleware.JWTAuth(tokenService), middleware.RequireRole(model.RoleMerchant, model.RoleAdmin))
			{
				merchant.POST("", hotelHandler.Create)
				merchant.PUT("/:id", hotelHandler.Update)
				merchant.POST("/:id/submit", hotelHandler.Submit)
				merchant.PUT("/:id/rooms/:roomId/price", hotelHandler.UpdateRoomPrice)
				merchant.POST("/:id/promotions", hotelHandler.CreatePromotion)
				merchant.PUT("/:id/promotions/:promotionId", hotelHandler.UpdatePromotion)
			}
		}

		// 审核路由（仅管理员）
		audits := api.Group("/audits")
		audits.Use(middleware.JWTAuth(tokenService), middleware.RequireRole(model.RoleAdmin))
		{
			audits.GET("/hotels", auditHandler.List)
			audits.GET("/hotels/pending", auditHandler.ListPending)
			audits.GET("/hotels/offline", auditHandler.ListOffline)
			audits.POST("/hotels/:hotelId/approve", auditHandler.Approve)
			audits.POST("/hotels/:hotelId/reject", auditHandler.Reject)
			audits.POST("/hotels/:hotelId/offline", auditHandler.Offline)
			audits.POST("/hotels/:hotelId/restore", auditHandler.Restore)
			audits.GET("/hotels/:hotelId/logs", auditHandler.Logs)
		}
	}

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		log.Printf("服务启动，监听地址: %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，等待 5 秒
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务关闭失败: %v", err)
	}

	// 关闭数据库和 Redis 连接
	database.Close()
	redis.Close()

	log.Println("服务已关闭")
}

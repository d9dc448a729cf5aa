// 将现有用户提升为平台管理员的工具
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/zcyneiya/hotel-backend/internal/config"
	"github.com/zcyneiya/hotel-backend/internal/database"
	"github.com/zcyneiya/hotel-backend/internal/repository"
	"github.com/zcyneiya/hotel-backend/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("用法: assign-admin <用户名>")
		fmt.Println("示例: assign-admin admin01")
		os.Exit(1)
	}

	username := os.Args[1]

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer database.Close()

	ctx := context.Background()

	userRepo := repository.NewUserRepository(database.GetDB())
	userService := service.NewUserService(userRepo)

	if err := userService.PromoteToAdmin(ctx, username); err != nil {
		log.Fatalf("提升管理员失败: %v", err)
	}

	user, err := userService.GetByUsername(ctx, username)
	if err != nil {
		log.Fatalf("查询用户失败: %v", err)
	}

	fmt.Printf("成功将用户 %s (%s) 提升为管理员\n", user.Username, user.Email)
}

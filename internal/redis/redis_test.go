package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/zcyneiya/hotel-backend/internal/config"
)

// 用 miniredis 提供进程内 Redis，测试不依赖外部实例
func setupRedis(t *testing.T) func() {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("启动 miniredis 失败: %v", err)
	}

	if err := Init(&config.RedisConfig{Addr: mr.Addr()}); err != nil {
		mr.Close()
		t.Fatalf("初始化 Redis 失败: %v", err)
	}

	return func() {
		Close()
		mr.Close()
	}
}

func TestInit(t *testing.T) {
	cleanup := setupRedis(t)
	defer cleanup()

	client := GetClient()
	if client == nil {
		t.Fatal("GetClient() 返回 nil")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Errorf("初始化后 Ping 失败: %v", err)
	}
}

func TestInitUnreachable(t *testing.T) {
	if err := Init(&config.RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("不可达地址应返回错误")
		Close()
	}
}

func TestCloseNil(t *testing.T) {
	client = nil

	if err := Close(); err != nil {
		t.Errorf("Close nil 客户端应该不报错: %v", err)
	}
}

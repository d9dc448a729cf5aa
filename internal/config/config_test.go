package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad 测试配置加载
func TestLoad(t *testing.T) {
	// 创建临时配置文件
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
server:
  addr: ":9090"
  mode: "release"
  read_timeout: "15s"
  write_timeout: "15s"

database:
  driver: "mysql"
  mysql:
    host: "testhost"
    port: 3307
    user: "hotel"
    password: "testpass"
    dbname: "hotel_platform_test"
    charset: "utf8mb4"
    parse_time: true
    loc: "Local"

redis:
  addr: "testredis:6380"
  password: "redispass"
  db: 1

jwt:
  issuer: "hotel-platform-test"
  access_expiry: "1h"
  refresh_expiry: "24h"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	// 测试从文件加载配置
	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	// 验证服务器配置
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr 期望 :9090, 实际 %s", cfg.Server.Addr)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode 期望 release, 实际 %s", cfg.Server.Mode)
	}

	// 验证数据库配置，驱动可按部署切换为 mysql
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Database.Driver 期望 mysql, 实际 %s", cfg.Database.Driver)
	}
	if cfg.Database.MySQL.Host != "testhost" {
		t.Errorf("Database.MySQL.Host 期望 testhost, 实际 %s", cfg.Database.MySQL.Host)
	}
	if cfg.Database.MySQL.Port != 3307 {
		t.Errorf("Database.MySQL.Port 期望 3307, 实际 %d", cfg.Database.MySQL.Port)
	}
	if cfg.Database.MySQL.DBName != "hotel_platform_test" {
		t.Errorf("Database.MySQL.DBName 期望 hotel_platform_test, 实际 %s", cfg.Database.MySQL.DBName)
	}

	// 验证 Redis 配置
	if cfg.Redis.Addr != "testredis:6380" {
		t.Errorf("Redis.Addr 期望 testredis:6380, 实际 %s", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 1 {
		t.Errorf("Redis.DB 期望 1, 实际 %d", cfg.Redis.DB)
	}

	// 验证 JWT 配置
	if cfg.JWT.Issuer != "hotel-platform-test" {
		t.Errorf("JWT.Issuer 期望 hotel-platform-test, 实际 %s", cfg.JWT.Issuer)
	}
}

// TestLoadDefaults 测试默认配置
func TestLoadDefaults(t *testing.T) {
	// 创建空配置文件
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	// 验证默认值
	if cfg.Server.Addr != ":8080" {
		t.Errorf("默认 Server.Addr 期望 :8080, 实际 %s", cfg.Server.Addr)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("默认 Database.Driver 期望 postgres, 实际 %s", cfg.Database.Driver)
	}
	if cfg.Database.Postgres.DBName != "hotel_platform" {
		t.Errorf("默认 Database.Postgres.DBName 期望 hotel_platform, 实际 %s", cfg.Database.Postgres.DBName)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("默认 Redis.Addr 期望 localhost:6379, 实际 %s", cfg.Redis.Addr)
	}
	if cfg.JWT.Issuer != "hotel-platform" {
		t.Errorf("默认 JWT.Issuer 期望 hotel-platform, 实际 %s", cfg.JWT.Issuer)
	}
	if cfg.JWT.AccessExpiry != 2*time.Hour {
		t.Errorf("默认 JWT.AccessExpiry 期望 2h, 实际 %s", cfg.JWT.AccessExpiry)
	}
}

// TestGet 测试获取全局配置
func TestGet(t *testing.T) {
	// 创建临时配置文件
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
server:
  addr: ":8888"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	// 加载配置
	_, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	// 获取全局配置
	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() 返回 nil")
	}
	if cfg.Server.Addr != ":8888" {
		t.Errorf("Get().Server.Addr 期望 :8888, 实际 %s", cfg.Server.Addr)
	}
}

// TestLoadFromFileNotFound 测试加载不存在的配置文件
func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("期望返回错误，但没有")
	}
}

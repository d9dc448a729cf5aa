package service

import (
	"context"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
)

// AuditService 审核日志服务接口
// 日志由生命周期服务写入，这里只提供查询
type AuditService interface {
	// ListByHotel 查询指定酒店的审核日志，按时间倒序，带出操作者身份
	ListByHotel(ctx context.Context, hotelID string) ([]*model.AuditRecord, error)
}

// auditService 审核日志服务实现
type auditService struct {
	auditRepo repository.AuditRecordRepository
}

// NewAuditService 创建审核日志服务
func NewAuditService(auditRepo repository.AuditRecordRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// ListByHotel 查询审核日志
func (s *auditService) ListByHotel(ctx context.Context, hotelID string) ([]*model.AuditRecord, error) {
	return s.auditRepo.ListByHotelID(ctx, hotelID)
}

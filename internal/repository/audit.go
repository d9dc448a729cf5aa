package repository

import (
	"context"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"gorm.io/gorm"
)

// AuditRecordRepository 审核日志数据访问接口
// 仅追加与查询，不提供更新和删除
type AuditRecordRepository interface {
	Create(ctx context.Context, record *model.AuditRecord) error
	ListByHotelID(ctx context.Context, hotelID string) ([]*model.AuditRecord, error)
}

// auditRecordRepository 审核日志数据访问实现
type auditRecordRepository struct {
	db *gorm.DB
}

// NewAuditRecordRepository 创建审核日志数据访问实例
func NewAuditRecordRepository(db *gorm.DB) AuditRecordRepository {
	return &auditRecordRepository{db: db}
}

// Create 追加审核日志
func (r *auditRecordRepository) Create(ctx context.Context, record *model.AuditRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByHotelID 查询指定酒店的审核日志，按时间倒序，带出操作者
func (r *auditRecordRepository) ListByHotelID(ctx context.Context, hotelID string) ([]*model.AuditRecord, error) {
	var records []*model.AuditRecord
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Preload("Operator").
		Find(&records).Error
	return records, err
}

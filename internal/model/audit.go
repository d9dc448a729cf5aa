package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRecord 审核日志，仅追加，不提供更新和删除
// 每次成功的状态迁移写入一条记录
type AuditRecord struct {
	ID             string      `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID        string      `gorm:"type:char(36);index;not null" json:"hotel_id"`
	OperatorID     string      `gorm:"type:char(36);index;not null" json:"operator_id"`
	Action         AuditAction `gorm:"type:varchar(20);not null" json:"action"`
	Reason         string      `gorm:"type:varchar(500)" json:"reason,omitempty"`
	PreviousStatus HotelStatus `gorm:"type:varchar(20)" json:"previous_status"`
	NewStatus      HotelStatus `gorm:"type:varchar(20)" json:"new_status"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// 关联，展示时带出操作者身份
	Operator *User `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
}

// TableName 指定表名
func (AuditRecord) TableName() string {
	return "audit_records"
}

// BeforeCreate 创建前自动生成 UUID
func (a *AuditRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

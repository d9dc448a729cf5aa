package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// HotelStatus 酒店发布状态
type HotelStatus string

const (
	HotelStatusDraft     HotelStatus = "draft"     // 草稿，商户可编辑
	HotelStatusPending   HotelStatus = "pending"   // 待审核
	HotelStatusPublished HotelStatus = "published" // 已发布，对外可见
	HotelStatusRejected  HotelStatus = "rejected"  // 已驳回，商户可编辑后重新提交
	HotelStatusOffline   HotelStatus = "offline"   // 已下线，对外不可见
)

// AuditAction 审核动作
type AuditAction string

const (
	ActionSubmit  AuditAction = "submit"  // 提交审核
	ActionApprove AuditAction = "approve" // 审核通过
	ActionReject  AuditAction = "reject"  // 审核驳回
	ActionOffline AuditAction = "offline" // 下线
	ActionRestore AuditAction = "restore" // 恢复上线
)

// Transition 状态迁移：动作将酒店从 Src 状态迁移到 Dst 状态
type Transition struct {
	Action AuditAction
	Src    HotelStatus
	Dst    HotelStatus
}

// Transitions 酒店生命周期的全部合法状态迁移
// 不在表内的 (状态, 动作) 组合一律拒绝，不修改实体也不写审核日志
var Transitions = []Transition{
	{Action: ActionSubmit, Src: HotelStatusDraft, Dst: HotelStatusPending},
	{Action: ActionSubmit, Src: HotelStatusRejected, Dst: HotelStatusPending},
	{Action: ActionApprove, Src: HotelStatusPending, Dst: HotelStatusPublished},
	{Action: ActionReject, Src: HotelStatusPending, Dst: HotelStatusRejected},
	{Action: ActionOffline, Src: HotelStatusDraft, Dst: HotelStatusOffline},
	{Action: ActionOffline, Src: HotelStatusPending, Dst: HotelStatusOffline},
	{Action: ActionOffline, Src: HotelStatusPublished, Dst: HotelStatusOffline},
	{Action: ActionOffline, Src: HotelStatusRejected, Dst: HotelStatusOffline},
	{Action: ActionRestore, Src: HotelStatusOffline, Dst: HotelStatusPublished},
}

// StringList JSON 数组字段（设施、图片等）
type StringList []string

// Value 实现 driver.Valuer 接口，用于数据库存储
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口，用于数据库读取
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("无法将值转换为 []byte")
	}
	return json.Unmarshal(bytes, l)
}

// Contains 检查列表是否包含指定项
func (l StringList) Contains(item string) bool {
	for _, v := range l {
		if v == item {
			return true
		}
	}
	return false
}

// NearbyPOI 周边信息（由外部地理服务填充）
type NearbyPOI struct {
	Attractions    []string `json:"attractions"`    // 周边景点
	Transportation []string `json:"transportation"` // 周边交通
	Shopping       []string `json:"shopping"`       // 周边购物
}

// Value 实现 driver.Valuer 接口
func (n NearbyPOI) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan 实现 sql.Scanner 接口
func (n *NearbyPOI) Scan(value interface{}) error {
	if value == nil {
		*n = NearbyPOI{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("无法将值转换为 []byte")
	}
	return json.Unmarshal(bytes, n)
}

// Hotel 酒店模型，归属于唯一商户
type Hotel struct {
	BaseModel
	MerchantID    string      `gorm:"type:char(36);index;not null" json:"merchant_id"`
	NameCN        string      `gorm:"type:varchar(255);not null" json:"name_cn"`
	NameEN        string      `gorm:"type:varchar(255);not null" json:"name_en"`
	Address       string      `gorm:"type:varchar(500)" json:"address"`
	City          string      `gorm:"type:varchar(100);index" json:"city"`
	StarLevel     int         `gorm:"default:1" json:"star_level"`
	Facilities    StringList  `gorm:"type:json" json:"facilities"`
	Images        StringList  `gorm:"type:json" json:"images"`
	Nearby        NearbyPOI   `gorm:"type:json" json:"nearby"`
	Status        HotelStatus `gorm:"type:varchar(20);default:draft;index" json:"status"`
	RejectReason  string      `gorm:"type:varchar(500)" json:"reject_reason,omitempty"`
	IsDeleted     bool        `gorm:"default:false;index" json:"is_deleted"`
	OfflineDate   *time.Time  `json:"offline_date,omitempty"`
	OfflineReason *string     `gorm:"type:varchar(500)" json:"offline_reason,omitempty"`

	// 关联
	Merchant   *User       `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
	Rooms      []Room      `gorm:"foreignKey:HotelID" json:"rooms"`
	Promotions []Promotion `gorm:"foreignKey:HotelID" json:"promotions"`
}

// TableName 指定表名
func (Hotel) TableName() string {
	return "hotels"
}

// Editable 检查酒店当前是否允许商户编辑
// 仅草稿与已驳回状态可编辑
func (h *Hotel) Editable() bool {
	return h.Status == HotelStatusDraft || h.Status == HotelStatusRejected
}

// Room 房型模型
type Room struct {
	BaseModel
	HotelID        string     `gorm:"type:char(36);index;not null" json:"hotel_id"`
	Type           string     `gorm:"type:varchar(100);not null" json:"type"`
	Price          float64    `gorm:"not null" json:"price"`
	TotalRooms     int        `gorm:"default:1" json:"total_rooms"`
	AvailableRooms int        `gorm:"default:0" json:"available_rooms"`
	Capacity       int        `gorm:"default:1" json:"capacity"`
	Facilities     StringList `gorm:"type:json" json:"facilities"`
	Images         StringList `gorm:"type:json" json:"images"`
}

// TableName 指定表名
func (Room) TableName() string {
	return "rooms"
}

// 房型字段约束错误
var (
	ErrRoomTypeRequired     = errors.New("房型名称不能为空")
	ErrRoomPriceNegative    = errors.New("房型价格不能为负")
	ErrRoomTotalInvalid     = errors.New("房型总数不能小于 1")
	ErrRoomAvailableInvalid = errors.New("可用房数必须在 0 到总数之间")
	ErrRoomCapacityInvalid  = errors.New("可住人数不能小于 1")
)

// Validate 校验房型字段约束
func (r *Room) Validate() error {
	if r.Type == "" {
		return ErrRoomTypeRequired
	}
	if r.Price < 0 {
		return ErrRoomPriceNegative
	}
	if r.TotalRooms < 1 {
		return ErrRoomTotalInvalid
	}
	if r.AvailableRooms < 0 || r.AvailableRooms > r.TotalRooms {
		return ErrRoomAvailableInvalid
	}
	if r.Capacity < 1 {
		return ErrRoomCapacityInvalid
	}
	return nil
}

// Promotion 促销活动模型
type Promotion struct {
	BaseModel
	HotelID     string     `gorm:"type:char(36);index;not null" json:"hotel_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Discount    float64    `json:"discount"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// TableName 指定表名
func (Promotion) TableName() string {
	return "promotions"
}

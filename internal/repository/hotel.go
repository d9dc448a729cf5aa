// Package repository 数据访问层
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"gorm.io/gorm"
)

// 错误定义
var (
	ErrHotelNotFound     = errors.New("酒店不存在")
	ErrRoomNotFound      = errors.New("房型不存在")
	ErrPromotionNotFound = errors.New("促销活动不存在")
)

// HotelFilter 酒店查询过滤器
// 由查询参数解析器构造，与 SQL 构造解耦
type HotelFilter struct {
	City        string            // 城市（模糊匹配，输入已去除尾部“市”）
	Keyword     string            // 关键字，匹配中英文名称或地址
	StarLevel   *int              // 星级（精确匹配）
	MinPrice    *float64          // 价格下界（存在一个房型满足即可）
	MaxPrice    *float64          // 价格上界
	Facilities  []string          // 设施列表，要求全部具备
	Status      model.HotelStatus // 状态过滤，空值表示不限
	WithDeleted bool              // 是否包含已下线（is_deleted=true）的记录
}

// Pagination 分页参数
type Pagination struct {
	Page     int // 页码，从 1 开始
	PageSize int // 每页数量
}

// HotelRepository 酒店数据访问接口
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	GetByID(ctx context.Context, id string) (*model.Hotel, error)
	// GetByIDOwned 按商户归属加载酒店
	// 不存在与不属于该商户统一返回 ErrHotelNotFound，避免泄露资源是否存在
	GetByIDOwned(ctx context.Context, id, merchantID string) (*model.Hotel, error)
	Save(ctx context.Context, hotel *model.Hotel) error
	Search(ctx context.Context, filter *HotelFilter, page *Pagination) ([]*model.Hotel, int64, error)
	ListOffline(ctx context.Context, page *Pagination) ([]*model.Hotel, int64, error)
	SaveRoom(ctx context.Context, room *model.Room) error
	CreatePromotion(ctx context.Context, promotion *model.Promotion) error
	SavePromotion(ctx context.Context, promotion *model.Promotion) error
}

// hotelRepository 酒店数据访问实现
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository 创建酒店数据访问实例
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

// Create 创建酒店（连同房型、促销）
func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

// GetByID 根据 ID 获取酒店
func (r *hotelRepository) GetByID(ctx context.Context, id string) (*model.Hotel, error) {
	var hotel model.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Promotions").
		Where("id = ?", id).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// GetByIDOwned 按商户归属获取酒店
func (r *hotelRepository) GetByIDOwned(ctx context.Context, id, merchantID string) (*model.Hotel, error) {
	var hotel model.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Promotions").
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// Save 保存酒店
func (r *hotelRepository) Save(ctx context.Context, hotel *model.Hotel) error {
	result := r.db.WithContext(ctx).Omit("Rooms", "Promotions", "Merchant").Save(hotel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}

// Search 按过滤器查询酒店列表
func (r *hotelRepository) Search(ctx context.Context, filter *HotelFilter, page *Pagination) ([]*model.Hotel, int64, error) {
	var hotels []*model.Hotel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Hotel{})

	// 应用过滤条件
	if filter != nil {
		if !filter.WithDeleted {
			query = query.Where("is_deleted = ?", false)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.City != "" {
			query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
		}
		if filter.Keyword != "" {
			kw := "%" + strings.ToLower(filter.Keyword) + "%"
			query = query.Where("LOWER(name_cn) LIKE ? OR LOWER(name_en) LIKE ? OR LOWER(address) LIKE ?", kw, kw, kw)
		}
		if filter.StarLevel != nil {
			query = query.Where("star_level = ?", *filter.StarLevel)
		}
		// 价格为存在量词：任一房型价格落在区间内即命中
		if filter.MinPrice != nil || filter.MaxPrice != nil {
			sub := "EXISTS (SELECT 1 FROM rooms WHERE rooms.hotel_id = hotels.id AND rooms.deleted_at IS NULL"
			var args []interface{}
			if filter.MinPrice != nil {
				sub += " AND rooms.price >= ?"
				args = append(args, *filter.MinPrice)
			}
			if filter.MaxPrice != nil {
				sub += " AND rooms.price <= ?"
				args = append(args, *filter.MaxPrice)
			}
			sub += ")"
			query = query.Where(sub, args...)
		}
		// 设施为全称量词：列出的设施必须全部具备
		// PostgreSQL 的 json 列没有到文本的隐式转换，LIKE 前需显式 CAST
		facilitiesExpr := "facilities LIKE ?"
		if r.db.Dialector.Name() == "postgres" {
			facilitiesExpr = "CAST(facilities AS TEXT) LIKE ?"
		}
		for _, f := range filter.Facilities {
			query = query.Where(facilitiesExpr, `%"`+f+`"%`)
		}
	}

	// 统计总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	if page != nil && page.Page > 0 && page.PageSize > 0 {
		offset := (page.Page - 1) * page.PageSize
		query = query.Offset(offset).Limit(page.PageSize)
	}

	// 按创建时间倒序
	if err := query.Order("created_at DESC").Preload("Rooms").Preload("Promotions").Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, total, nil
}

// ListOffline 查询已下线酒店，按下线时间倒序
func (r *hotelRepository) ListOffline(ctx context.Context, page *Pagination) ([]*model.Hotel, int64, error) {
	var hotels []*model.Hotel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Hotel{}).
		Where("status = ?", model.HotelStatusOffline)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page != nil && page.Page > 0 && page.PageSize > 0 {
		offset := (page.Page - 1) * page.PageSize
		query = query.Offset(offset).Limit(page.PageSize)
	}

	if err := query.Order("offline_date DESC").Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, total, nil
}

// SaveRoom 保存房型
func (r *hotelRepository) SaveRoom(ctx context.Context, room *model.Room) error {
	result := r.db.WithContext(ctx).Save(room)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// CreatePromotion 创建促销活动
func (r *hotelRepository) CreatePromotion(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

// SavePromotion 保存促销活动
func (r *hotelRepository) SavePromotion(ctx context.Context, promotion *model.Promotion) error {
	result := r.db.WithContext(ctx).Save(promotion)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

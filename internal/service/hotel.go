package service

import (
	"context"
	"errors"
	"strings"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
)

// 酒店相关错误
var (
	ErrHotelNameRequired = errors.New("酒店中英文名称均不能为空")
	ErrStarLevelInvalid  = errors.New("星级必须在 1 到 5 之间")
	ErrHotelNotEditable  = errors.New("当前状态下酒店不可编辑")
	ErrPriceInvalid      = errors.New("价格不能为负")
	ErrPromotionTitle    = errors.New("促销标题不能为空")
)

// HotelService 商户侧酒店服务接口
// 所有变更操作均按商户归属加载目标酒店
type HotelService interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	GetOwned(ctx context.Context, id, merchantID string) (*model.Hotel, error)
	// Update 保存商户对酒店的编辑，仅草稿和已驳回状态允许
	Update(ctx context.Context, hotel *model.Hotel) error
	// UpdateRoomPrice 调整房型价格
	UpdateRoomPrice(ctx context.Context, hotelID, merchantID, roomID string, price float64) (*model.Room, error)
	CreatePromotion(ctx context.Context, hotelID, merchantID string, promotion *model.Promotion) error
	UpdatePromotion(ctx context.Context, hotelID, merchantID, promotionID string, title, description string, discount *float64) (*model.Promotion, error)
}

// hotelService 商户侧酒店服务实现
type hotelService struct {
	hotelRepo repository.HotelRepository
}

// NewHotelService 创建商户侧酒店服务
func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

// Create 创建酒店，初始状态为草稿
func (s *hotelService) Create(ctx context.Context, hotel *model.Hotel) error {
	if err := validateHotel(hotel); err != nil {
		return err
	}

	hotel.Status = model.HotelStatusDraft
	hotel.IsDeleted = false
	return s.hotelRepo.Create(ctx, hotel)
}

// GetOwned 按商户归属获取酒店
func (s *hotelService) GetOwned(ctx context.Context, id, merchantID string) (*model.Hotel, error) {
	return s.hotelRepo.GetByIDOwned(ctx, id, merchantID)
}

// Update 保存商户编辑
func (s *hotelService) Update(ctx context.Context, hotel *model.Hotel) error {
	if !hotel.Editable() {
		return ErrHotelNotEditable
	}
	if err := validateHotel(hotel); err != nil {
		return err
	}
	return s.hotelRepo.Save(ctx, hotel)
}

// UpdateRoomPrice 调整房型价格
func (s *hotelService) UpdateRoomPrice(ctx context.Context, hotelID, merchantID, roomID string, price float64) (*model.Room, error) {
	if price < 0 {
		return nil, ErrPriceInvalid
	}

	hotel, err := s.hotelRepo.GetByIDOwned(ctx, hotelID, merchantID)
	if err != nil {
		return nil, err
	}

	for i := range hotel.Rooms {
		if hotel.Rooms[i].ID == roomID {
			room := &hotel.Rooms[i]
			room.Price = price
			if err := s.hotelRepo.SaveRoom(ctx, room); err != nil {
				return nil, err
			}
			return room, nil
		}
	}
	return nil, repository.ErrRoomNotFound
}

// CreatePromotion 创建促销活动
func (s *hotelService) CreatePromotion(ctx context.Context, hotelID, merchantID string, promotion *model.Promotion) error {
	promotion.Title = strings.TrimSpace(promotion.Title)
	if promotion.Title == "" {
		return ErrPromotionTitle
	}

	hotel, err := s.hotelRepo.GetByIDOwned(ctx, hotelID, merchantID)
	if err != nil {
		return err
	}

	promotion.HotelID = hotel.ID
	return s.hotelRepo.CreatePromotion(ctx, promotion)
}

// UpdatePromotion 更新促销活动
func (s *hotelService) UpdatePromotion(ctx context.Context, hotelID, merchantID, promotionID string, title, description string, discount *float64) (*model.Promotion, error) {
	hotel, err := s.hotelRepo.GetByIDOwned(ctx, hotelID, merchantID)
	if err != nil {
		return nil, err
	}

	for i := range hotel.Promotions {
		if hotel.Promotions[i].ID == promotionID {
			promotion := &hotel.Promotions[i]
			if title != "" {
				promotion.Title = title
			}
			if description != "" {
				promotion.Description = description
			}
			if discount != nil {
				promotion.Discount = *discount
			}
			if err := s.hotelRepo.SavePromotion(ctx, promotion); err != nil {
				return nil, err
			}
			return promotion, nil
		}
	}
	return nil, repository.ErrPromotionNotFound
}

// validateHotel 校验酒店基础字段
func validateHotel(hotel *model.Hotel) error {
	hotel.NameCN = strings.TrimSpace(hotel.NameCN)
	hotel.NameEN = strings.TrimSpace(hotel.NameEN)
	if hotel.NameCN == "" || hotel.NameEN == "" {
		return ErrHotelNameRequired
	}
	if hotel.StarLevel < 1 || hotel.StarLevel > 5 {
		return ErrStarLevelInvalid
	}
	for i := range hotel.Rooms {
		if err := hotel.Rooms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

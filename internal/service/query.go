package service

import (
	"context"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
)

// PageInfo 分页信息
type PageInfo struct {
	Total int64 `json:"total"` // 命中总数
	Page  int   `json:"page"`  // 当前页码
	Limit int   `json:"limit"` // 每页数量
	Pages int   `json:"pages"` // 总页数
}

// newPageInfo 计算分页信息，总页数向上取整
func newPageInfo(total int64, page *repository.Pagination) *PageInfo {
	pages := int((total + int64(page.PageSize) - 1) / int64(page.PageSize))
	return &PageInfo{
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize,
		Pages: pages,
	}
}

// HotelQueryService 酒店列表查询服务接口
type HotelQueryService interface {
	// SearchPublished 公开检索
	// 无条件限定 status=published 且 is_deleted=false，任何调用方过滤器都无法放宽可见性
	SearchPublished(ctx context.Context, filter *repository.HotelFilter, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error)
	// GetPublished 公开详情，仅返回已发布且未删除的酒店
	GetPublished(ctx context.Context, id string) (*model.Hotel, error)
	// ListByStatus 管理端列表，默认排除已删除记录，支持按状态过滤
	ListByStatus(ctx context.Context, status model.HotelStatus, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error)
	// ListOffline 管理端下线列表，按下线时间倒序
	ListOffline(ctx context.Context, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error)
}

// hotelQueryService 酒店列表查询服务实现
type hotelQueryService struct {
	hotelRepo repository.HotelRepository
}

// NewHotelQueryService 创建酒店列表查询服务
func NewHotelQueryService(hotelRepo repository.HotelRepository) HotelQueryService {
	return &hotelQueryService{hotelRepo: hotelRepo}
}

// SearchPublished 公开检索
func (s *hotelQueryService) SearchPublished(ctx context.Context, filter *repository.HotelFilter, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error) {
	if filter == nil {
		filter = &repository.HotelFilter{}
	}
	// 强制可见性谓词，先于任何用户过滤条件
	filter.Status = model.HotelStatusPublished
	filter.WithDeleted = false

	page = normalizePagination(page)

	hotels, total, err := s.hotelRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return hotels, newPageInfo(total, page), nil
}

// GetPublished 公开详情
func (s *hotelQueryService) GetPublished(ctx context.Context, id string) (*model.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel.Status != model.HotelStatusPublished || hotel.IsDeleted {
		return nil, repository.ErrHotelNotFound
	}
	return hotel, nil
}

// ListByStatus 管理端列表
func (s *hotelQueryService) ListByStatus(ctx context.Context, status model.HotelStatus, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error) {
	filter := &repository.HotelFilter{Status: status}
	// 默认视图排除已删除记录；显式查询下线状态时例外，否则该过滤永远为空
	if status == model.HotelStatusOffline {
		filter.WithDeleted = true
	}

	page = normalizePagination(page)

	hotels, total, err := s.hotelRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return hotels, newPageInfo(total, page), nil
}

// ListOffline 管理端下线列表
func (s *hotelQueryService) ListOffline(ctx context.Context, page *repository.Pagination) ([]*model.Hotel, *PageInfo, error) {
	page = normalizePagination(page)

	hotels, total, err := s.hotelRepo.ListOffline(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return hotels, newPageInfo(total, page), nil
}

// normalizePagination 设置默认分页
func normalizePagination(page *repository.Pagination) *repository.Pagination {
	if page == nil {
		return &repository.Pagination{Page: 1, PageSize: 10}
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 || page.PageSize > 100 {
		page.PageSize = 10
	}
	return page
}

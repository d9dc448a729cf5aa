package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

// HotelHandler 酒店处理器，覆盖公开检索与商户侧维护
type HotelHandler struct {
	hotelService     service.HotelService
	queryService     service.HotelQueryService
	lifecycleService service.LifecycleService
}

// NewHotelHandler 创建酒店处理器
func NewHotelHandler(hotelSvc service.HotelService, querySvc service.HotelQueryService, lifecycleSvc service.LifecycleService) *HotelHandler {
	return &HotelHandler{
		hotelService:     hotelSvc,
		queryService:     querySvc,
		lifecycleService: lifecycleSvc,
	}
}

// Search 公开酒店检索
// GET /hotels
func (h *HotelHandler) Search(c *gin.Context) {
	filter := service.ParseHotelFilter(service.ListQuery{
		City:       c.Query("city"),
		Keyword:    c.Query("keyword"),
		StarLevel:  c.Query("starLevel"),
		PriceRange: c.Query("priceRange"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		Facilities: c.Query("facilities"),
		Rating:     c.Query("rating"),
	})
	page := service.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	hotels, pagination, err := h.queryService.SearchPublished(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"hotels":     hotels,
		"pagination": pagination,
	})
}

// Get 公开酒店详情
// GET /hotels/:id
func (h *HotelHandler) Get(c *gin.Context) {
	hotel, err := h.queryService.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, hotel)
}

// RoomRequest 房型请求
type RoomRequest struct {
	Type           string   `json:"type" binding:"required"`
	Price          float64  `json:"price"`
	TotalRooms     int      `json:"total_rooms"`
	AvailableRooms int      `json:"available_rooms"`
	Capacity       int      `json:"capacity"`
	Facilities     []string `json:"facilities"`
	Images         []string `json:"images"`
}

// CreateHotelRequest 创建酒店请求
type CreateHotelRequest struct {
	NameCN     string           `json:"name_cn" binding:"required"`
	NameEN     string           `json:"name_en" binding:"required"`
	Address    string           `json:"address"`
	City       string           `json:"city"`
	StarLevel  int              `json:"star_level" binding:"required"`
	Facilities []string         `json:"facilities"`
	Images     []string         `json:"images"`
	Nearby     *model.NearbyPOI `json:"nearby"`
	Rooms      []RoomRequest    `json:"rooms"`
}

// Create 商户创建酒店，初始状态为草稿
// POST /hotels
func (h *HotelHandler) Create(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	hotel := &model.Hotel{
		MerchantID: currentUserID(c),
		NameCN:     req.NameCN,
		NameEN:     req.NameEN,
		Address:    req.Address,
		City:       req.City,
		StarLevel:  req.StarLevel,
		Facilities: req.Facilities,
		Images:     req.Images,
	}
	if req.Nearby != nil {
		hotel.Nearby = *req.Nearby
	}
	for _, r := range req.Rooms {
		hotel.Rooms = append(hotel.Rooms, model.Room{
			Type:           r.Type,
			Price:          r.Price,
			TotalRooms:     r.TotalRooms,
			AvailableRooms: r.AvailableRooms,
			Capacity:       r.Capacity,
			Facilities:     r.Facilities,
			Images:         r.Images,
		})
	}

	if err := h.hotelService.Create(c.Request.Context(), hotel); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, hotel)
}

// UpdateHotelRequest 更新酒店请求，所有字段可选
type UpdateHotelRequest struct {
	NameCN     *string          `json:"name_cn"`
	NameEN     *string          `json:"name_en"`
	Address    *string          `json:"address"`
	City       *string          `json:"city"`
	StarLevel  *int             `json:"star_level"`
	Facilities []string         `json:"facilities"`
	Images     []string         `json:"images"`
	Nearby     *model.NearbyPOI `json:"nearby"`
}

// Update 商户编辑酒店
// PUT /hotels/:id
func (h *HotelHandler) Update(c *gin.Context) {
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	hotel, err := h.hotelService.GetOwned(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if req.NameCN != nil {
		hotel.NameCN = *req.NameCN
	}
	if req.NameEN != nil {
		hotel.NameEN = *req.NameEN
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.StarLevel != nil {
		hotel.StarLevel = *req.StarLevel
	}
	if req.Facilities != nil {
		hotel.Facilities = req.Facilities
	}
	if req.Images != nil {
		hotel.Images = req.Images
	}
	if req.Nearby != nil {
		hotel.Nearby = *req.Nearby
	}

	if err := h.hotelService.Update(c.Request.Context(), hotel); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotel)
}

// Submit 商户提交审核
// POST /hotels/:id/submit
func (h *HotelHandler) Submit(c *gin.Context) {
	hotel, err := h.lifecycleService.Submit(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, hotel)
}

// UpdateRoomPriceRequest 调整房型价格请求
type UpdateRoomPriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// UpdateRoomPrice 商户调整房型价格
// PUT /hotels/:id/rooms/:roomId/price
func (h *HotelHandler) UpdateRoomPrice(c *gin.Context) {
	var req UpdateRoomPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	room, err := h.hotelService.UpdateRoomPrice(c.Request.Context(), c.Param("id"), currentUserID(c), c.Param("roomId"), *req.Price)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

// PromotionRequest 促销活动请求
type PromotionRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Discount    *float64   `json:"discount"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CreatePromotion 商户创建促销活动
// POST /hotels/:id/promotions
func (h *HotelHandler) CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	promotion := &model.Promotion{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Discount != nil {
		promotion.Discount = *req.Discount
	}

	if err := h.hotelService.CreatePromotion(c.Request.Context(), c.Param("id"), currentUserID(c), promotion); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, promotion)
}

// UpdatePromotion 商户更新促销活动
// PUT /hotels/:id/promotions/:promotionId
func (h *HotelHandler) UpdatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	promotion, err := h.hotelService.UpdatePromotion(c.Request.Context(), c.Param("id"), currentUserID(c), c.Param("promotionId"), req.Title, req.Description, req.Discount)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, promotion)
}

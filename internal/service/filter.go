package service

import (
	"strconv"
	"strings"

	"github.com/zcyneiya/hotel-backend/internal/repository"
)

// ListQuery 列表接口的原始查询参数
// 全部为不可信的字符串，由 ParseHotelFilter 解析为类型化过滤器
type ListQuery struct {
	City       string
	Keyword    string
	StarLevel  string
	PriceRange string
	MinPrice   string
	MaxPrice   string
	Facilities string
	Rating     string
}

// ParseHotelFilter 将查询参数解析为类型化过滤器
// 纯函数，不涉及数据库，可独立测试
func ParseHotelFilter(q ListQuery) *repository.HotelFilter {
	filter := &repository.HotelFilter{
		City:    StripCitySuffix(strings.TrimSpace(q.City)),
		Keyword: strings.TrimSpace(q.Keyword),
	}

	// 星级：非法整数直接忽略
	if star, err := strconv.Atoi(strings.TrimSpace(q.StarLevel)); err == nil {
		filter.StarLevel = &star
	}

	// 价格：优先使用 priceRange 区间串，否则使用 minPrice/maxPrice
	if min, max, ok := ParsePriceRange(q.PriceRange); ok {
		filter.MinPrice = min
		filter.MaxPrice = max
	} else {
		if v, err := strconv.ParseFloat(strings.TrimSpace(q.MinPrice), 64); err == nil {
			filter.MinPrice = &v
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(q.MaxPrice), 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	filter.Facilities = ParseFacilities(q.Facilities)

	// rating 参数按现有契约接收但不参与过滤

	return filter
}

// StripCitySuffix 去除城市输入末尾的一个“市”字
// “北京市”可命中存储的“北京”
func StripCitySuffix(city string) string {
	return strings.TrimSuffix(city, "市")
}

// ParsePriceRange 解析价格区间串
// 语法："min-max" 为闭区间，"N-" 为 price >= N 上不封顶
// 解析失败返回 ok=false
func ParsePriceRange(s string) (min, max *float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, false
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, nil, false
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, nil, false
	}
	min = &lo

	upper := strings.TrimSpace(parts[1])
	if upper != "" {
		hi, err := strconv.ParseFloat(upper, 64)
		if err != nil {
			return nil, nil, false
		}
		max = &hi
	}

	return min, max, true
}

// ParseFacilities 解析逗号分隔的设施列表，去除空白项
func ParseFacilities(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var facilities []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			facilities = append(facilities, f)
		}
	}
	return facilities
}

// ParsePagination 解析分页参数，页码从 1 开始
func ParsePagination(pageStr, limitStr string) *repository.Pagination {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	return &repository.Pagination{Page: page, PageSize: limit}
}

package service

import (
	"reflect"
	"testing"
)

func TestStripCitySuffix(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"武汉市", "武汉"},
		{"北京市", "北京"},
		{"上海", "上海"},
		{"市", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripCitySuffix(tc.input); got != tc.want {
			t.Errorf("StripCitySuffix(%q) = %q，期望 %q", tc.input, got, tc.want)
		}
	}
}

func TestParsePriceRange(t *testing.T) {
	min, max, ok := ParsePriceRange("200-500")
	if !ok || min == nil || max == nil {
		t.Fatal("200-500 应解析成功")
	}
	if *min != 200 || *max != 500 {
		t.Errorf("期望 [200, 500]，实际 [%v, %v]", *min, *max)
	}

	// 上不封顶
	min, max, ok = ParsePriceRange("1000-")
	if !ok || min == nil {
		t.Fatal("1000- 应解析成功")
	}
	if *min != 1000 || max != nil {
		t.Errorf("期望下界 1000 无上界，实际 [%v, %v]", *min, max)
	}

	for _, invalid := range []string{"", "abc", "100", "a-b", "-"} {
		if _, _, ok := ParsePriceRange(invalid); ok {
			t.Errorf("%q 不应解析成功", invalid)
		}
	}
}

func TestParseFacilities(t *testing.T) {
	got := ParseFacilities("wifi, parking ,pool")
	want := []string{"wifi", "parking", "pool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期望 %v，实际 %v", want, got)
	}

	if got := ParseFacilities("  ,, "); got != nil {
		t.Errorf("空白项应被忽略，实际 %v", got)
	}
	if got := ParseFacilities(""); got != nil {
		t.Errorf("空串应返回 nil，实际 %v", got)
	}
}

func TestParseHotelFilter(t *testing.T) {
	filter := ParseHotelFilter(ListQuery{
		City:       " 武汉市 ",
		Keyword:    " 江景 ",
		StarLevel:  "5",
		PriceRange: "300-800",
		Facilities: "wifi,gym",
	})

	if filter.City != "武汉" {
		t.Errorf("城市应去除尾部“市”，实际 %q", filter.City)
	}
	if filter.Keyword != "江景" {
		t.Errorf("关键字应去除首尾空白，实际 %q", filter.Keyword)
	}
	if filter.StarLevel == nil || *filter.StarLevel != 5 {
		t.Error("星级应解析为 5")
	}
	if filter.MinPrice == nil || *filter.MinPrice != 300 || filter.MaxPrice == nil || *filter.MaxPrice != 800 {
		t.Error("价格区间应解析为 [300, 800]")
	}
	if !reflect.DeepEqual(filter.Facilities, []string{"wifi", "gym"}) {
		t.Errorf("设施解析不正确: %v", filter.Facilities)
	}
}

func TestParseHotelFilter_InvalidStarIgnored(t *testing.T) {
	filter := ParseHotelFilter(ListQuery{StarLevel: "five"})
	if filter.StarLevel != nil {
		t.Error("非法星级应被忽略")
	}
}

func TestParseHotelFilter_PriceRangePrecedence(t *testing.T) {
	// priceRange 优先于 minPrice/maxPrice
	filter := ParseHotelFilter(ListQuery{
		PriceRange: "100-200",
		MinPrice:   "500",
		MaxPrice:   "900",
	})
	if filter.MinPrice == nil || *filter.MinPrice != 100 || filter.MaxPrice == nil || *filter.MaxPrice != 200 {
		t.Error("priceRange 应优先于单独的价格参数")
	}

	// priceRange 非法时回退到 minPrice/maxPrice
	filter = ParseHotelFilter(ListQuery{
		PriceRange: "bogus",
		MinPrice:   "500",
	})
	if filter.MinPrice == nil || *filter.MinPrice != 500 || filter.MaxPrice != nil {
		t.Error("priceRange 非法时应回退到 minPrice")
	}
}

func TestParseHotelFilter_RatingIgnored(t *testing.T) {
	filter := ParseHotelFilter(ListQuery{Rating: "4.5"})
	empty := ParseHotelFilter(ListQuery{})
	if !reflect.DeepEqual(filter, empty) {
		t.Error("rating 参数不应影响过滤器")
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		page, limit  string
		wantPage     int
		wantPageSize int
	}{
		{"2", "20", 2, 20},
		{"", "", 1, 10},
		{"0", "0", 1, 10},
		{"-1", "200", 1, 10},
		{"abc", "xyz", 1, 10},
		{"1", "100", 1, 100},
		{"1", "101", 1, 10},
	}
	for _, tc := range cases {
		got := ParsePagination(tc.page, tc.limit)
		if got.Page != tc.wantPage || got.PageSize != tc.wantPageSize {
			t.Errorf("ParsePagination(%q, %q) = {%d, %d}，期望 {%d, %d}",
				tc.page, tc.limit, got.Page, got.PageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}

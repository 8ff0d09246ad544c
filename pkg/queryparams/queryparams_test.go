package queryparams

import "testing"

func TestShopParamsValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       ShopParams
		wantPage int
		wantSize int
		wantSort string
	}{
		{name: "defaults", in: ShopParams{}, wantPage: 1, wantSize: DefaultPerPage, wantSort: SortByName},
		{name: "kept when valid", in: ShopParams{PageNumber: 3, PageSize: 20, Sort: SortByPriceDesc}, wantPage: 3, wantSize: 20, wantSort: SortByPriceDesc},
		{name: "oversized page clamped", in: ShopParams{PageSize: 500}, wantPage: 1, wantSize: MaxPerPage, wantSort: SortByName},
		{name: "unknown sort falls back", in: ShopParams{Sort: "cheapest"}, wantPage: 1, wantSize: DefaultPerPage, wantSort: SortByName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Validate()
			if tc.in.PageNumber != tc.wantPage {
				t.Errorf("PageNumber = %d, want %d", tc.in.PageNumber, tc.wantPage)
			}
			if tc.in.PageSize != tc.wantSize {
				t.Errorf("PageSize = %d, want %d", tc.in.PageSize, tc.wantSize)
			}
			if tc.in.Sort != tc.wantSort {
				t.Errorf("Sort = %q, want %q", tc.in.Sort, tc.wantSort)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ShopParams{PageNumber: 3, PageSize: 6}
	if got := p.CalculateOffset(); got != 12 {
		t.Errorf("CalculateOffset() = %d, want 12", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int64
		perPage    int
		want       int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
		{25, 6, 5},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := CalculateTotalPages(tc.totalItems, tc.perPage); got != tc.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tc.totalItems, tc.perPage, got, tc.want)
		}
	}
}

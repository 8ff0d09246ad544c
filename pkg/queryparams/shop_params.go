package queryparams

// Product sort keys accepted by the shop listing.
const (
	SortByName      = "name"
	SortByPriceAsc  = "priceAsc"
	SortByPriceDesc = "priceDesc"
)

// ShopParams is the filter set of the product listing endpoint. Zero BrandID
// or TypeID means "all".
type ShopParams struct {
	BrandID    uint   `query:"brandId"`
	TypeID     uint   `query:"typeId"`
	Search     string `query:"search"`
	Sort       string `query:"sort"`
	PageNumber int    `query:"pageNumber"`
	PageSize   int    `query:"pageSize"`
}

// Validate clamps paging and falls back to name sorting for unknown keys.
func (p *ShopParams) Validate() {
	if p.PageNumber <= 0 {
		p.PageNumber = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPerPage
	}
	if p.PageSize > MaxPerPage {
		p.PageSize = MaxPerPage
	}
	switch p.Sort {
	case SortByName, SortByPriceAsc, SortByPriceDesc:
	default:
		p.Sort = SortByName
	}
}

// CalculateOffset returns the SQL offset for the current page.
func (p ShopParams) CalculateOffset() int {
	return (p.PageNumber - 1) * p.PageSize
}

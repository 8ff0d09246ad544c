package client

import (
	"fmt"
	"net/url"

	"sharpcut.app/dto"
	"sharpcut.app/pkg/queryparams"
)

// ShopBrowser holds the shop's filter/sort/pagination state and re-issues
// the listing request whenever a parameter changes. Filter and search
// changes reset the page to 1; a sort change keeps the page; a page change
// only fires when the page actually changed.
type ShopBrowser struct {
	api *APIClient

	Params     queryparams.ShopParams
	Products   []dto.ProductDto
	Pagination queryparams.PaginationMeta
}

func NewShopBrowser(api *APIClient) *ShopBrowser {
	b := &ShopBrowser{api: api}
	b.Params.Validate()
	return b
}

// Load fetches the current page. The server may clamp paging values; the
// local state follows what it answered.
func (b *ShopBrowser) Load() error {
	values := url.Values{}
	if b.Params.BrandID != 0 {
		values.Set("brandId", fmt.Sprint(b.Params.BrandID))
	}
	if b.Params.TypeID != 0 {
		values.Set("typeId", fmt.Sprint(b.Params.TypeID))
	}
	if b.Params.Search != "" {
		values.Set("search", b.Params.Search)
	}
	if b.Params.Sort != "" {
		values.Set("sort", b.Params.Sort)
	}
	values.Set("pageNumber", fmt.Sprint(b.Params.PageNumber))
	values.Set("pageSize", fmt.Sprint(b.Params.PageSize))

	var result struct {
		Data       []dto.ProductDto           `json:"data"`
		Pagination queryparams.PaginationMeta `json:"pagination"`
	}
	if err := b.api.get("/api/products?"+values.Encode(), &result); err != nil {
		return err
	}

	b.Products = result.Data
	b.Pagination = result.Pagination
	b.Params.PageNumber = result.Pagination.CurrentPage
	b.Params.PageSize = result.Pagination.PerPage
	return nil
}

func (b *ShopBrowser) OnBrandSelected(brandID uint) error {
	b.Params.BrandID = brandID
	b.Params.PageNumber = 1
	return b.Load()
}

func (b *ShopBrowser) OnTypeSelected(typeID uint) error {
	b.Params.TypeID = typeID
	b.Params.PageNumber = 1
	return b.Load()
}

func (b *ShopBrowser) OnSortSelected(sort string) error {
	b.Params.Sort = sort
	return b.Load()
}

func (b *ShopBrowser) OnPageChanged(page int) error {
	if b.Params.PageNumber == page {
		return nil
	}
	b.Params.PageNumber = page
	return b.Load()
}

func (b *ShopBrowser) OnSearch(term string) error {
	b.Params.Search = term
	b.Params.PageNumber = 1
	return b.Load()
}

// OnReset restores default parameters and reloads.
func (b *ShopBrowser) OnReset() error {
	b.Params = queryparams.ShopParams{}
	b.Params.Validate()
	return b.Load()
}

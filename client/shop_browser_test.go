package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpcut.app/dto"
	"sharpcut.app/pkg/queryparams"
)

// shopServer records the query of each listing request and answers with an
// echo of the paging values it received.
type shopServer struct {
	requests []map[string]string
}

func (s *shopServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		seen := map[string]string{}
		for key := range q {
			seen[key] = q.Get(key)
		}
		s.requests = append(s.requests, seen)

		page, _ := strconv.Atoi(q.Get("pageNumber"))
		size, _ := strconv.Atoi(q.Get("pageSize"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []dto.ProductDto{{ID: 1, Name: "Matte Clay"}},
			"pagination": queryparams.PaginationMeta{
				CurrentPage: page,
				PerPage:     size,
				TotalItems:  1,
				TotalPages:  1,
			},
		})
	}
}

func (s *shopServer) last() map[string]string {
	return s.requests[len(s.requests)-1]
}

func newShopFixture(t *testing.T) (*shopServer, *ShopBrowser) {
	t.Helper()
	backend := &shopServer{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return backend, NewShopBrowser(NewAPIClient(srv.URL, "token"))
}

func TestShopBrowser_FilterChangesResetPage(t *testing.T) {
	backend, browser := newShopFixture(t)

	browser.Params.PageNumber = 4
	require.NoError(t, browser.OnBrandSelected(2))
	assert.Equal(t, "1", backend.last()["pageNumber"])
	assert.Equal(t, "2", backend.last()["brandId"])

	browser.Params.PageNumber = 4
	require.NoError(t, browser.OnTypeSelected(3))
	assert.Equal(t, "1", backend.last()["pageNumber"])

	browser.Params.PageNumber = 4
	require.NoError(t, browser.OnSearch("clay"))
	assert.Equal(t, "1", backend.last()["pageNumber"])
	assert.Equal(t, "clay", backend.last()["search"])
}

func TestShopBrowser_SortKeepsPage(t *testing.T) {
	backend, browser := newShopFixture(t)

	browser.Params.PageNumber = 4
	require.NoError(t, browser.OnSortSelected(queryparams.SortByPriceDesc))
	assert.Equal(t, "4", backend.last()["pageNumber"])
	assert.Equal(t, queryparams.SortByPriceDesc, backend.last()["sort"])
}

func TestShopBrowser_PageChangeOnlyWhenDifferent(t *testing.T) {
	backend, browser := newShopFixture(t)

	require.NoError(t, browser.OnPageChanged(2))
	require.Len(t, backend.requests, 1)

	// Same page again: no request.
	require.NoError(t, browser.OnPageChanged(2))
	assert.Len(t, backend.requests, 1)

	require.NoError(t, browser.OnPageChanged(3))
	assert.Len(t, backend.requests, 2)
	assert.Equal(t, "3", backend.last()["pageNumber"])
}

func TestShopBrowser_ResetRestoresDefaults(t *testing.T) {
	backend, browser := newShopFixture(t)

	browser.Params.BrandID = 2
	browser.Params.Search = "clay"
	browser.Params.PageNumber = 4

	require.NoError(t, browser.OnReset())
	last := backend.last()
	assert.Equal(t, "1", last["pageNumber"])
	assert.NotContains(t, last, "brandId")
	assert.NotContains(t, last, "search")
}

func TestShopBrowser_StateFollowsResponse(t *testing.T) {
	_, browser := newShopFixture(t)

	require.NoError(t, browser.Load())
	require.Len(t, browser.Products, 1)
	assert.Equal(t, "Matte Clay", browser.Products[0].Name)
	assert.Equal(t, browser.Pagination.CurrentPage, browser.Params.PageNumber)
}

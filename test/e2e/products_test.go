package e2e

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
	"github.com/restopos/pos-e2e/test"
)

type ProductsSuite struct {
	test.BaseSuite
}

func TestProductsSuite(t *testing.T) {
	test.Run(t, new(ProductsSuite))
}

func (s *ProductsSuite) newRequest() types.CreateProductRequest {
	return types.CreateProductRequest{
		Name:            test.UniqueName("X-Burger"),
		Description:     "Bread, burger, cheese",
		Price:           decimal.RequireFromString("25.90"),
		SKU:             test.UniqueSKU(),
		EstablishmentID: s.EstablishmentID(),
	}
}

func (s *ProductsSuite) TestCreate() {
	category := s.CreateCategory()
	req := s.newRequest()
	req.CategoryID = category.ID

	resp, err := s.Auth().Post(s.Ctx, routes.ProductsURL(nil), req)
	s.Require().NoError(err)
	test.RequireStatus(s.T(), resp, http.StatusCreated)

	product := test.Decode[types.Product](s.T(), resp)
	s.Session.Track(test.Products, product.ID)
	s.NotEmpty(product.ID)
	s.Equal(req.Name, product.Name)
	s.Equal(req.SKU, product.SKU)
	s.True(req.Price.Equal(product.Price), "price %s", product.Price)
	s.Equal(category.ID, product.CategoryID)
	s.True(product.IsAvailable)
}

func (s *ProductsSuite) TestCreateInvalidPayload() {
	tests := []struct {
		name   string
		mutate func(*types.CreateProductRequest)
		want   int
	}{
		{"missing establishment", func(r *types.CreateProductRequest) { r.EstablishmentID = "" }, http.StatusBadRequest},
		{"missing name", func(r *types.CreateProductRequest) { r.Name = "" }, http.StatusBadRequest},
		{"missing sku", func(r *types.CreateProductRequest) { r.SKU = "" }, http.StatusBadRequest},
		{"negative price", func(r *types.CreateProductRequest) { r.Price = decimal.NewFromInt(-1) }, http.StatusBadRequest},
		{"unknown establishment", func(r *types.CreateProductRequest) { r.EstablishmentID = test.NonExistentID }, http.StatusNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.newRequest()
			tt.mutate(&req)
			resp, err := s.Auth().Post(s.Ctx, routes.ProductsURL(nil), req)
			s.Require().NoError(err)
			test.AssertStatus(s.T(), resp, tt.want)
		})
	}
}

func (s *ProductsSuite) TestCreateDuplicateSKU() {
	existing := s.CreateProduct("10.00")
	req := s.newRequest()
	req.SKU = existing.SKU

	resp, err := s.Auth().Post(s.Ctx, routes.ProductsURL(nil), req)
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusConflict)
}

func (s *ProductsSuite) TestGet() {
	product := s.CreateProduct("12.50")

	resp, err := s.Auth().Get(s.Ctx, routes.ProductURL(product.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	got := test.Decode[types.Product](s.T(), resp)
	s.Equal(product.SKU, got.SKU)
	s.Equal("12.5", got.Price.String())
}

func (s *ProductsSuite) TestGetNonExistent() {
	resp, err := s.Auth().Get(s.Ctx, routes.ProductURL(test.NonExistentID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}

func (s *ProductsSuite) TestListPagination() {
	for i := 0; i < 3; i++ {
		s.CreateProduct("5.00")
	}

	q := url.Values{}
	q.Set("establishment_id", s.EstablishmentID())
	q.Set("page", "1")
	q.Set("limit", "2")
	resp, err := s.Auth().Get(s.Ctx, routes.ProductsURL(q))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	page1 := test.Decode[types.ListResponse[types.Product]](s.T(), resp)
	s.Len(page1.Data, 2)
	s.Equal(1, page1.Page)
	s.Equal(2, page1.Limit)
	s.GreaterOrEqual(page1.Total, int64(3))

	q.Set("page", "2")
	resp, err = s.Auth().Get(s.Ctx, routes.ProductsURL(q))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	page2 := test.Decode[types.ListResponse[types.Product]](s.T(), resp)
	s.NotEmpty(page2.Data)
	s.NotEqual(page1.Data[0].ID, page2.Data[0].ID)
}

func (s *ProductsSuite) TestListByCategory() {
	category := s.CreateCategory()
	req := s.newRequest()
	req.CategoryID = category.ID
	resp, err := s.Auth().Post(s.Ctx, routes.ProductsURL(nil), req)
	s.Require().NoError(err)
	test.RequireStatus(s.T(), resp, http.StatusCreated)
	inCategory := test.Decode[types.Product](s.T(), resp)
	s.Session.Track(test.Products, inCategory.ID)
	s.CreateProduct("3.00")

	q := url.Values{}
	q.Set("establishment_id", s.EstablishmentID())
	q.Set("category_id", category.ID)
	resp, err = s.Auth().Get(s.Ctx, routes.ProductsURL(q))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	list := test.Decode[types.ListResponse[types.Product]](s.T(), resp)
	s.Require().Len(list.Data, 1)
	s.Equal(inCategory.ID, list.Data[0].ID)
}

func (s *ProductsSuite) TestUpdate() {
	product := s.CreateProduct("20.00")
	price := decimal.RequireFromString("22.00")
	unavailable := false

	resp, err := s.Auth().Patch(s.Ctx, routes.ProductURL(product.ID), types.UpdateProductRequest{
		Price:       &price,
		IsAvailable: &unavailable,
	})
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	got := test.Decode[types.Product](s.T(), resp)
	s.True(price.Equal(got.Price))
	s.False(got.IsAvailable)
	s.Equal(product.Name, got.Name)
}

func (s *ProductsSuite) TestDelete() {
	product := s.CreateProduct("1.00")

	resp, err := s.Auth().Delete(s.Ctx, routes.ProductURL(product.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNoContent)

	resp, err = s.Auth().Get(s.Ctx, routes.ProductURL(product.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}

package e2e

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
	"github.com/restopos/pos-e2e/test"
)

type CategoriesSuite struct {
	test.BaseSuite
}

func TestCategoriesSuite(t *testing.T) {
	test.Run(t, new(CategoriesSuite))
}

func (s *CategoriesSuite) TestCreate() {
	req := types.CreateCategoryRequest{
		Name:            test.UniqueName("Drinks"),
		Description:     "Cold and hot drinks",
		EstablishmentID: s.EstablishmentID(),
	}
	resp, err := s.Auth().Post(s.Ctx, routes.CategoriesURL(nil), req)
	s.Require().NoError(err)
	test.RequireStatus(s.T(), resp, http.StatusCreated)

	category := test.Decode[types.Category](s.T(), resp)
	s.Session.Track(test.Categories, category.ID)
	s.NotEmpty(category.ID)
	s.Equal(req.Name, category.Name)
	s.Equal(req.Description, category.Description)
	s.Equal(req.EstablishmentID, category.EstablishmentID)
}

func (s *CategoriesSuite) TestCreateWithoutEstablishment() {
	resp, err := s.Auth().Post(s.Ctx, routes.CategoriesURL(nil), types.CreateCategoryRequest{
		Name: test.UniqueName("Orphan"),
	})
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusBadRequest)
}

func (s *CategoriesSuite) TestCreateUnderUnknownEstablishment() {
	resp, err := s.Auth().Post(s.Ctx, routes.CategoriesURL(nil), types.CreateCategoryRequest{
		Name:            test.UniqueName("Orphan"),
		EstablishmentID: test.NonExistentID,
	})
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}

func (s *CategoriesSuite) TestGet() {
	category := s.CreateCategory()

	resp, err := s.Auth().Get(s.Ctx, routes.CategoryURL(category.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)
	s.Equal(category.Name, test.Decode[types.Category](s.T(), resp).Name)
}

func (s *CategoriesSuite) TestGetNonExistent() {
	resp, err := s.Auth().Get(s.Ctx, routes.CategoryURL(test.NonExistentID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}

func (s *CategoriesSuite) TestList() {
	first := s.CreateCategory()
	second := s.CreateCategory()

	q := url.Values{}
	q.Set("establishment_id", s.EstablishmentID())
	resp, err := s.Auth().Get(s.Ctx, routes.CategoriesURL(q))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	list := test.Decode[types.ListResponse[types.Category]](s.T(), resp)
	s.GreaterOrEqual(list.Total, int64(2))
	ids := make([]string, 0, len(list.Data))
	for _, c := range list.Data {
		s.Equal(s.EstablishmentID(), c.EstablishmentID)
		ids = append(ids, c.ID)
	}
	s.Contains(ids, first.ID)
	s.Contains(ids, second.ID)
}

func (s *CategoriesSuite) TestListRequiresEstablishment() {
	resp, err := s.Auth().Get(s.Ctx, routes.CategoriesURL(nil))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusBadRequest)
}

func (s *CategoriesSuite) TestUpdate() {
	category := s.CreateCategory()
	name := test.UniqueName("Desserts")

	resp, err := s.Auth().Patch(s.Ctx, routes.CategoryURL(category.ID), types.UpdateCategoryRequest{Name: &name})
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)
	s.Equal(name, test.Decode[types.Category](s.T(), resp).Name)
}

func (s *CategoriesSuite) TestDelete() {
	category := s.CreateCategory()

	resp, err := s.Auth().Delete(s.Ctx, routes.CategoryURL(category.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNoContent)

	resp, err = s.Auth().Get(s.Ctx, routes.CategoryURL(category.ID))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}

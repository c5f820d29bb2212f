package test

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
)

// Helpers that create a resource under the suite's establishment, require a 201, decode it and
// track it for cleanup. Tests exercising creation itself post their own payloads.

// create posts body to path, requires 201 and tracks the decoded resource
func create[T any](s *BaseSuite, path string, body interface{}, category Category, id func(T) string) T {
	s.T().Helper()
	resp, err := s.Auth().Post(s.Ctx, path, body)
	s.Require().NoError(err)
	RequireStatus(s.T(), resp, http.StatusCreated, "create %s", category)
	v := Decode[T](s.T(), resp)
	if category != "" {
		s.Session.Track(category, id(v))
	}
	return v
}

// CreateCategory creates a category
func (s *BaseSuite) CreateCategory() types.Category {
	return create(s, routes.CategoriesURL(nil), types.CreateCategoryRequest{
		Name:            UniqueName("Category"),
		Description:     "created by the e2e suite",
		EstablishmentID: s.EstablishmentID(),
	}, Categories, func(c types.Category) string { return c.ID })
}

// CreateProduct creates an available product with the given price, e.g. "25.90"
func (s *BaseSuite) CreateProduct(price string) types.Product {
	return create(s, routes.ProductsURL(nil), types.CreateProductRequest{
		Name:            UniqueName("Product"),
		Price:           decimal.RequireFromString(price),
		SKU:             UniqueSKU(),
		EstablishmentID: s.EstablishmentID(),
	}, Products, func(p types.Product) string { return p.ID })
}

// CreateCustomer creates a customer with a unique phone, email and CPF
func (s *BaseSuite) CreateCustomer() types.Customer {
	return create(s, routes.CustomersURL(nil), types.CreateCustomerRequest{
		Name:            UniqueName("Customer"),
		Email:           UniqueEmail(),
		Phone:           UniquePhone(),
		CPF:             UniqueCPF(),
		EstablishmentID: s.EstablishmentID(),
	}, Customers, func(c types.Customer) string { return c.ID })
}

// CreateTable creates a four-seat table with a unique number
func (s *BaseSuite) CreateTable() types.Table {
	return create(s, routes.TablesURL(nil), types.CreateTableRequest{
		Number:          UniqueTableNumber(),
		Capacity:        4,
		EstablishmentID: s.EstablishmentID(),
	}, Tables, func(t types.Table) string { return t.ID })
}

// CreateCoupon creates an active coupon without usage limit
func (s *BaseSuite) CreateCoupon(discountType, value string) types.Coupon {
	return create(s, routes.CouponsURL(nil), types.CreateCouponRequest{
		Code:            UniqueCouponCode(),
		DiscountType:    discountType,
		DiscountValue:   decimal.RequireFromString(value),
		EstablishmentID: s.EstablishmentID(),
	}, Coupons, func(c types.Coupon) string { return c.ID })
}

// CreateOrder creates a pending takeout order of quantity units of product
func (s *BaseSuite) CreateOrder(productID string, quantity int) types.Order {
	return create(s, routes.OrdersURL(nil), types.CreateOrderRequest{
		EstablishmentID: s.EstablishmentID(),
		Type:            types.OrderTypeTakeout,
		Items:           []types.CreateOrderItem{{ProductID: productID, Quantity: quantity}},
	}, Orders, func(o types.Order) string { return o.ID })
}

// AddStock records an inbound movement of quantity units
func (s *BaseSuite) AddStock(productID string, quantity int) types.StockMovement {
	return create(s, routes.StockMovementsURL(nil), types.CreateStockMovementRequest{
		ProductID: productID,
		Type:      types.StockIn,
		Quantity:  quantity,
		Reason:    "e2e restock",
	}, "", func(types.StockMovement) string { return "" })
}

// Package handlers provides the HTTP handlers of the stand-in POS API
package handlers

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/repos"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
)

// APIHandler carries the dependencies shared by every handler
type APIHandler struct {
	repos  *repos.Repositories
	issuer *auth.Issuer
	now    func() time.Time
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(r *repos.Repositories, issuer *auth.Issuer) *APIHandler {
	return &APIHandler{
		repos:  r,
		issuer: issuer,
		now:    time.Now,
	}
}

// publicRoutes are served without a bearer token
var publicRoutes = map[string]bool{
	routes.HealthCheck: true,
	routes.Register:    true,
	routes.Login:       true,
	routes.Refresh:     true,
}

// IsPublic reports whether the named route skips authentication
func IsPublic(routeName string) bool {
	return publicRoutes[routeName]
}

// Handlers maps every route name of the routes table to its handler
func (h *APIHandler) Handlers() map[string]fiber.Handler {
	authH := NewAuthHandler(h)
	users := NewUserHandler(h)
	establishments := NewEstablishmentHandler(h)
	catalog := NewCatalogHandler(h)
	customers := NewCustomerHandler(h)
	tables := NewTableHandler(h)
	coupons := NewCouponHandler(h)
	orders := NewOrderHandler(h)
	payments := NewPaymentHandler(h)
	loyalty := NewLoyaltyHandler(h)
	stock := NewStockHandler(h)
	cashier := NewCashierHandler(h)
	delivery := NewDeliveryHandler(h)

	return map[string]fiber.Handler{
		routes.HealthCheck: h.HealthCheck,

		routes.Register: authH.Register,
		routes.Login:    authH.Login,
		routes.Refresh:  authH.Refresh,
		routes.Profile:  authH.Profile,

		routes.GetUser:    users.GetUser,
		routes.UpdateUser: users.UpdateUser,
		routes.DeleteUser: users.DeleteUser,

		routes.ListEstablishments:  establishments.ListEstablishments,
		routes.GetEstablishment:    establishments.GetEstablishment,
		routes.CreateEstablishment: establishments.CreateEstablishment,
		routes.UpdateEstablishment: establishments.UpdateEstablishment,
		routes.DeleteEstablishment: establishments.DeleteEstablishment,

		routes.ListCategories: catalog.ListCategories,
		routes.GetCategory:    catalog.GetCategory,
		routes.CreateCategory: catalog.CreateCategory,
		routes.UpdateCategory: catalog.UpdateCategory,
		routes.DeleteCategory: catalog.DeleteCategory,

		routes.ListProducts:  catalog.ListProducts,
		routes.GetProduct:    catalog.GetProduct,
		routes.CreateProduct: catalog.CreateProduct,
		routes.UpdateProduct: catalog.UpdateProduct,
		routes.DeleteProduct: catalog.DeleteProduct,

		routes.ListCustomers:  customers.ListCustomers,
		routes.GetCustomer:    customers.GetCustomer,
		routes.CreateCustomer: customers.CreateCustomer,
		routes.UpdateCustomer: customers.UpdateCustomer,
		routes.DeleteCustomer: customers.DeleteCustomer,

		routes.ListTables:   tables.ListTables,
		routes.GetTableByQR: tables.GetTableByQR,
		routes.GetTable:     tables.GetTable,
		routes.CreateTable:  tables.CreateTable,
		routes.UpdateTable:  tables.UpdateTable,
		routes.DeleteTable:  tables.DeleteTable,

		routes.ListCoupons:    coupons.ListCoupons,
		routes.GetCoupon:      coupons.GetCoupon,
		routes.ValidateCoupon: coupons.ValidateCoupon,
		routes.CreateCoupon:   coupons.CreateCoupon,
		routes.UpdateCoupon:   coupons.UpdateCoupon,
		routes.DeleteCoupon:   coupons.DeleteCoupon,

		routes.ListOrders:      orders.ListOrders,
		routes.GetOrder:        orders.GetOrder,
		routes.CreateOrder:     orders.CreateOrder,
		routes.TransitionOrder: orders.TransitionOrder,
		routes.DeleteOrder:     orders.DeleteOrder,

		routes.ListOrderPayments: payments.ListOrderPayments,
		routes.GetPayment:        payments.GetPayment,
		routes.CreatePayment:     payments.CreatePayment,

		routes.LoyaltyBalance: loyalty.Balance,
		routes.EarnPoints:     loyalty.EarnPoints,
		routes.RedeemPoints:   loyalty.RedeemPoints,

		routes.ListStockMovements:  stock.ListMovements,
		routes.GetStockLevel:       stock.GetLevel,
		routes.CreateStockMovement: stock.CreateMovement,

		routes.CurrentCashierSession: cashier.CurrentSession,
		routes.OpenCashierSession:    cashier.OpenSession,
		routes.CloseCashierSession:   cashier.CloseSession,

		routes.CalculateDeliveryFee: delivery.CalculateFee,
	}
}

// HealthCheck reports that the API is serving
func (h *APIHandler) HealthCheck(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

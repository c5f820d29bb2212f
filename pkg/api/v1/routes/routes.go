// Package routes is the single table of POS API endpoints. The API client builds its URLs from
// it and the stand-in server mounts its handlers on it.
package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Group by resource area, in the order of the table below
2. Within an area, order routes GET, POST, PATCH, DELETE
	a. Static segments (/qr/:code, /validate) before param segments (/:id), otherwise fiber
	   interprets the static segment as the param.
3. Naming should match the action (i.e. GetProduct, DeleteProduct)

*/

// API base configuration
const (
	// DefaultPort is the default port of the stand-in API
	DefaultPort = "3000"
	// APIv1Prefix is the prefix the stand-in mounts every endpoint under
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s%s", DefaultPort, APIv1Prefix)

// Route names for lookup
const (
	HealthCheck = "HealthCheck"

	Register = "Register"
	Login    = "Login"
	Refresh  = "Refresh"
	Profile  = "Profile"

	GetUser    = "GetUser"
	UpdateUser = "UpdateUser"
	DeleteUser = "DeleteUser"

	ListEstablishments  = "ListEstablishments"
	GetEstablishment    = "GetEstablishment"
	CreateEstablishment = "CreateEstablishment"
	UpdateEstablishment = "UpdateEstablishment"
	DeleteEstablishment = "DeleteEstablishment"

	ListCategories = "ListCategories"
	GetCategory    = "GetCategory"
	CreateCategory = "CreateCategory"
	UpdateCategory = "UpdateCategory"
	DeleteCategory = "DeleteCategory"

	ListProducts  = "ListProducts"
	GetProduct    = "GetProduct"
	CreateProduct = "CreateProduct"
	UpdateProduct = "UpdateProduct"
	DeleteProduct = "DeleteProduct"

	ListCustomers  = "ListCustomers"
	GetCustomer    = "GetCustomer"
	CreateCustomer = "CreateCustomer"
	UpdateCustomer = "UpdateCustomer"
	DeleteCustomer = "DeleteCustomer"

	ListTables   = "ListTables"
	GetTableByQR = "GetTableByQR"
	GetTable     = "GetTable"
	CreateTable  = "CreateTable"
	UpdateTable  = "UpdateTable"
	DeleteTable  = "DeleteTable"

	ListCoupons    = "ListCoupons"
	GetCoupon      = "GetCoupon"
	ValidateCoupon = "ValidateCoupon"
	CreateCoupon   = "CreateCoupon"
	UpdateCoupon   = "UpdateCoupon"
	DeleteCoupon   = "DeleteCoupon"

	ListOrders      = "ListOrders"
	GetOrder        = "GetOrder"
	CreateOrder     = "CreateOrder"
	TransitionOrder = "TransitionOrder"
	DeleteOrder     = "DeleteOrder"

	ListOrderPayments = "ListOrderPayments"
	GetPayment        = "GetPayment"
	CreatePayment     = "CreatePayment"

	LoyaltyBalance = "LoyaltyBalance"
	EarnPoints     = "EarnPoints"
	RedeemPoints   = "RedeemPoints"

	ListStockMovements  = "ListStockMovements"
	GetStockLevel       = "GetStockLevel"
	CreateStockMovement = "CreateStockMovement"

	CurrentCashierSession = "CurrentCashierSession"
	OpenCashierSession    = "OpenCashierSession"
	CloseCashierSession   = "CloseCashierSession"

	CalculateDeliveryFee = "CalculateDeliveryFee"
)

// Route is one endpoint: a name, an HTTP method and a fiber-style path relative to the base URL
type Route struct {
	Name   string
	Method string
	Path   string
}

var table = []Route{
	{HealthCheck, http.MethodGet, "/health"},

	{Profile, http.MethodGet, "/auth/profile"},
	{Register, http.MethodPost, "/auth/register"},
	{Login, http.MethodPost, "/auth/login"},
	{Refresh, http.MethodPost, "/auth/refresh"},

	{GetUser, http.MethodGet, "/users/:id"},
	{UpdateUser, http.MethodPatch, "/users/:id"},
	{DeleteUser, http.MethodDelete, "/users/:id"},

	{ListEstablishments, http.MethodGet, "/establishments"},
	{GetEstablishment, http.MethodGet, "/establishments/:id"},
	{CreateEstablishment, http.MethodPost, "/establishments"},
	{UpdateEstablishment, http.MethodPatch, "/establishments/:id"},
	{DeleteEstablishment, http.MethodDelete, "/establishments/:id"},

	{ListCategories, http.MethodGet, "/categories"},
	{GetCategory, http.MethodGet, "/categories/:id"},
	{CreateCategory, http.MethodPost, "/categories"},
	{UpdateCategory, http.MethodPatch, "/categories/:id"},
	{DeleteCategory, http.MethodDelete, "/categories/:id"},

	{ListProducts, http.MethodGet, "/products"},
	{GetProduct, http.MethodGet, "/products/:id"},
	{CreateProduct, http.MethodPost, "/products"},
	{UpdateProduct, http.MethodPatch, "/products/:id"},
	{DeleteProduct, http.MethodDelete, "/products/:id"},

	{ListCustomers, http.MethodGet, "/customers"},
	{GetCustomer, http.MethodGet, "/customers/:id"},
	{CreateCustomer, http.MethodPost, "/customers"},
	{UpdateCustomer, http.MethodPatch, "/customers/:id"},
	{DeleteCustomer, http.MethodDelete, "/customers/:id"},

	{ListTables, http.MethodGet, "/tables"},
	{GetTableByQR, http.MethodGet, "/tables/qr/:code"},
	{GetTable, http.MethodGet, "/tables/:id"},
	{CreateTable, http.MethodPost, "/tables"},
	{UpdateTable, http.MethodPatch, "/tables/:id"},
	{DeleteTable, http.MethodDelete, "/tables/:id"},

	{ListCoupons, http.MethodGet, "/coupons"},
	{GetCoupon, http.MethodGet, "/coupons/:id"},
	{ValidateCoupon, http.MethodPost, "/coupons/validate"},
	{CreateCoupon, http.MethodPost, "/coupons"},
	{UpdateCoupon, http.MethodPatch, "/coupons/:id"},
	{DeleteCoupon, http.MethodDelete, "/coupons/:id"},

	{ListOrders, http.MethodGet, "/orders"},
	{GetOrder, http.MethodGet, "/orders/:id"},
	{CreateOrder, http.MethodPost, "/orders"},
	{TransitionOrder, http.MethodPatch, "/orders/:id/:action"},
	{DeleteOrder, http.MethodDelete, "/orders/:id"},

	{ListOrderPayments, http.MethodGet, "/payments/order/:orderId"},
	{GetPayment, http.MethodGet, "/payments/:id"},
	{CreatePayment, http.MethodPost, "/payments"},

	{LoyaltyBalance, http.MethodGet, "/loyalty/customers/:customerId/balance"},
	{EarnPoints, http.MethodPost, "/loyalty/points/earn"},
	{RedeemPoints, http.MethodPost, "/loyalty/points/redeem"},

	{ListStockMovements, http.MethodGet, "/stock/movements"},
	{GetStockLevel, http.MethodGet, "/stock/products/:productId"},
	{CreateStockMovement, http.MethodPost, "/stock/movements"},

	{CurrentCashierSession, http.MethodGet, "/cashier/sessions/current"},
	{OpenCashierSession, http.MethodPost, "/cashier/sessions/open"},
	{CloseCashierSession, http.MethodPost, "/cashier/sessions/:id/close"},

	{CalculateDeliveryFee, http.MethodPost, "/delivery/calculate-fee"},
}

// routeCache indexes the table by name
var (
	routeCache     map[string]Route
	routeCacheInit sync.Once
)

func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]Route, len(table))
		for _, r := range table {
			routeCache[r.Name] = r
		}
	})
}

// All returns every route in registration order
func All() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// GetRoute returns the route registered under name, and false when there is none
func GetRoute(name string) (Route, bool) {
	initRouteCache()
	r, ok := routeCache[name]
	return r, ok
}

// BuildURL builds a path for the given route name and parameters.
// It returns an empty string for unknown names.
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	r, ok := GetRoute(routeName)
	if !ok {
		return ""
	}

	path := r.Path
	for param, value := range params {
		path = strings.ReplaceAll(path, ":"+param, url.PathEscape(value))
	}

	if len(queryParams) > 0 {
		path = fmt.Sprintf("%s?%s", path, queryParams.Encode())
	}

	return path
}

// ResourcePath returns the item path of a resource collection, e.g. ("products", id) gives
// "/products/<id>". Cleanup uses it to delete tracked IDs without knowing route names.
func ResourcePath(collection, id string) string {
	return "/" + strings.Trim(collection, "/") + "/" + url.PathEscape(id)
}

// Health route helper

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// Auth route helpers

// RegisterURL returns the URL for registering a user
func RegisterURL() string {
	return BuildURL(Register, nil, nil)
}

// LoginURL returns the URL for logging in
func LoginURL() string {
	return BuildURL(Login, nil, nil)
}

// RefreshURL returns the URL for exchanging a refresh token
func RefreshURL() string {
	return BuildURL(Refresh, nil, nil)
}

// ProfileURL returns the URL of the authenticated user's profile
func ProfileURL() string {
	return BuildURL(Profile, nil, nil)
}

// UserURL returns the URL of a user
func UserURL(id string) string {
	return BuildURL(GetUser, map[string]string{"id": id}, nil)
}

// Establishment route helpers

// EstablishmentsURL returns the establishments collection URL
func EstablishmentsURL(queryParams url.Values) string {
	return BuildURL(ListEstablishments, nil, queryParams)
}

// EstablishmentURL returns the URL of an establishment
func EstablishmentURL(id string) string {
	return BuildURL(GetEstablishment, map[string]string{"id": id}, nil)
}

// Catalog route helpers

// CategoriesURL returns the categories collection URL
func CategoriesURL(queryParams url.Values) string {
	return BuildURL(ListCategories, nil, queryParams)
}

// CategoryURL returns the URL of a category
func CategoryURL(id string) string {
	return BuildURL(GetCategory, map[string]string{"id": id}, nil)
}

// ProductsURL returns the products collection URL
func ProductsURL(queryParams url.Values) string {
	return BuildURL(ListProducts, nil, queryParams)
}

// ProductURL returns the URL of a product
func ProductURL(id string) string {
	return BuildURL(GetProduct, map[string]string{"id": id}, nil)
}

// Customer route helpers

// CustomersURL returns the customers collection URL
func CustomersURL(queryParams url.Values) string {
	return BuildURL(ListCustomers, nil, queryParams)
}

// CustomerURL returns the URL of a customer
func CustomerURL(id string) string {
	return BuildURL(GetCustomer, map[string]string{"id": id}, nil)
}

// Table route helpers

// TablesURL returns the tables collection URL
func TablesURL(queryParams url.Values) string {
	return BuildURL(ListTables, nil, queryParams)
}

// TableURL returns the URL of a table
func TableURL(id string) string {
	return BuildURL(GetTable, map[string]string{"id": id}, nil)
}

// TableByQRURL returns the URL resolving a table from its QR code
func TableByQRURL(code string) string {
	return BuildURL(GetTableByQR, map[string]string{"code": code}, nil)
}

// Coupon route helpers

// CouponsURL returns the coupons collection URL
func CouponsURL(queryParams url.Values) string {
	return BuildURL(ListCoupons, nil, queryParams)
}

// CouponURL returns the URL of a coupon
func CouponURL(id string) string {
	return BuildURL(GetCoupon, map[string]string{"id": id}, nil)
}

// ValidateCouponURL returns the coupon validation URL
func ValidateCouponURL() string {
	return BuildURL(ValidateCoupon, nil, nil)
}

// Order route helpers

// OrdersURL returns the orders collection URL
func OrdersURL(queryParams url.Values) string {
	return BuildURL(ListOrders, nil, queryParams)
}

// OrderURL returns the URL of an order
func OrderURL(id string) string {
	return BuildURL(GetOrder, map[string]string{"id": id}, nil)
}

// OrderTransitionURL returns the URL moving an order with the given action (confirm, prepare,
// ready, complete, cancel)
func OrderTransitionURL(id, action string) string {
	return BuildURL(TransitionOrder, map[string]string{"id": id, "action": action}, nil)
}

// Payment route helpers

// PaymentsURL returns the payments collection URL
func PaymentsURL() string {
	return BuildURL(CreatePayment, nil, nil)
}

// PaymentURL returns the URL of a payment
func PaymentURL(id string) string {
	return BuildURL(GetPayment, map[string]string{"id": id}, nil)
}

// OrderPaymentsURL returns the URL listing the payments of an order
func OrderPaymentsURL(orderID string) string {
	return BuildURL(ListOrderPayments, map[string]string{"orderId": orderID}, nil)
}

// Loyalty route helpers

// EarnPointsURL returns the URL crediting loyalty points
func EarnPointsURL() string {
	return BuildURL(EarnPoints, nil, nil)
}

// RedeemPointsURL returns the URL debiting loyalty points
func RedeemPointsURL() string {
	return BuildURL(RedeemPoints, nil, nil)
}

// LoyaltyBalanceURL returns the balance URL of a customer at an establishment
func LoyaltyBalanceURL(customerID, establishmentID string) string {
	q := url.Values{}
	if establishmentID != "" {
		q.Set("establishment_id", establishmentID)
	}
	return BuildURL(LoyaltyBalance, map[string]string{"customerId": customerID}, q)
}

// Stock route helpers

// StockMovementsURL returns the stock movements collection URL
func StockMovementsURL(queryParams url.Values) string {
	return BuildURL(ListStockMovements, nil, queryParams)
}

// StockLevelURL returns the stock level URL of a product
func StockLevelURL(productID string) string {
	return BuildURL(GetStockLevel, map[string]string{"productId": productID}, nil)
}

// Cashier route helpers

// OpenCashierSessionURL returns the URL opening a cashier session
func OpenCashierSessionURL() string {
	return BuildURL(OpenCashierSession, nil, nil)
}

// CloseCashierSessionURL returns the URL closing a cashier session
func CloseCashierSessionURL(id string) string {
	return BuildURL(CloseCashierSession, map[string]string{"id": id}, nil)
}

// CurrentCashierSessionURL returns the URL of the open session of an establishment
func CurrentCashierSessionURL(establishmentID string) string {
	q := url.Values{}
	q.Set("establishment_id", establishmentID)
	return BuildURL(CurrentCashierSession, nil, q)
}

// Delivery route helpers

// DeliveryFeeURL returns the delivery fee calculation URL
func DeliveryFeeURL() string {
	return BuildURL(CalculateDeliveryFee, nil, nil)
}

package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		route  string
		params map[string]string
		query  url.Values
		want   string
	}{
		{name: "static", route: Register, want: "/auth/register"},
		{name: "param", route: GetProduct, params: map[string]string{"id": "abc"}, want: "/products/abc"},
		{
			name:   "two params",
			route:  TransitionOrder,
			params: map[string]string{"id": "o1", "action": "confirm"},
			want:   "/orders/o1/confirm",
		},
		{
			name:  "query",
			route: ListProducts,
			query: url.Values{"establishment_id": []string{"e1"}, "page": []string{"2"}},
			want:  "/products?establishment_id=e1&page=2",
		},
		{name: "escaped param", route: GetTableByQR, params: map[string]string{"code": "a b"}, want: "/tables/qr/a%20b"},
		{name: "unknown route", route: "Nope", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(tt.route, tt.params, tt.query))
		})
	}
}

func TestRouteTableIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range All() {
		assert.False(t, seen[r.Name], "duplicate route name %s", r.Name)
		seen[r.Name] = true
		assert.NotEmpty(t, r.Method, r.Name)
		assert.Equal(t, byte('/'), r.Path[0], r.Name)
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "/loyalty/customers/c1/balance?establishment_id=e1", LoyaltyBalanceURL("c1", "e1"))
	assert.Equal(t, "/cashier/sessions/s1/close", CloseCashierSessionURL("s1"))
	assert.Equal(t, "/payments/order/o1", OrderPaymentsURL("o1"))
	assert.Equal(t, "/coupons/c1", ResourcePath("coupons", "c1"))
	assert.Equal(t, "/coupons/c1", ResourcePath("/coupons/", "c1"))
}

package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name    string
		cpf     string
		wantErr bool
	}{
		{name: "bare digits", cpf: "52998224725"},
		{name: "formatted", cpf: "529.982.247-25"},
		{name: "wrong check digit", cpf: "52998224724", wantErr: true},
		{name: "repeated digits", cpf: "11111111111", wantErr: true},
		{name: "too short", cpf: "5299822472", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCPF(tt.cpf)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name    string
		cnpj    string
		wantErr bool
	}{
		{name: "bare digits", cnpj: "11222333000181"},
		{name: "formatted", cnpj: "11.222.333/0001-81"},
		{name: "wrong check digit", cnpj: "11222333000182", wantErr: true},
		{name: "repeated digits", cnpj: "00000000000000", wantErr: true},
		{name: "too long", cnpj: "112223330001811", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCNPJ(tt.cnpj)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckDigits(t *testing.T) {
	d, err := CPFCheckDigits("529982247")
	require.NoError(t, err)
	assert.Equal(t, "25", d)

	d, err = CNPJCheckDigits("112223330001")
	require.NoError(t, err)
	assert.Equal(t, "81", d)

	_, err = CPFCheckDigits("12a")
	assert.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("test_1700000000@test.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestNextOrderStatus(t *testing.T) {
	tests := []struct {
		current string
		action  string
		want    string
		wantErr bool
	}{
		{current: OrderStatusPending, action: OrderActionConfirm, want: OrderStatusConfirmed},
		{current: OrderStatusConfirmed, action: OrderActionPrepare, want: OrderStatusPreparing},
		{current: OrderStatusPreparing, action: OrderActionReady, want: OrderStatusReady},
		{current: OrderStatusReady, action: OrderActionComplete, want: OrderStatusCompleted},
		{current: OrderStatusReady, action: OrderActionCancel, want: OrderStatusCancelled},
		{current: OrderStatusPending, action: OrderActionPrepare, wantErr: true},
		{current: OrderStatusCompleted, action: OrderActionCancel, wantErr: true},
		{current: OrderStatusCancelled, action: OrderActionCancel, wantErr: true},
		{current: OrderStatusPending, action: "refund", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.current+"/"+tt.action, func(t *testing.T) {
			got, err := NextOrderStatus(tt.current, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCouponDiscountFor(t *testing.T) {
	total := decimal.RequireFromString("80.00")

	pct := Coupon{DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromInt(10)}
	assert.True(t, decimal.RequireFromString("8").Equal(pct.DiscountFor(total)))

	fixed := Coupon{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(100)}
	assert.True(t, total.Equal(fixed.DiscountFor(total)), "fixed discount is capped at the total")
}

func TestCreateProductRequestValidate(t *testing.T) {
	req := CreateProductRequest{Name: "X-Burger", SKU: "SKU-1", Price: decimal.RequireFromString("25.90")}
	assert.Error(t, req.Validate(), "establishment_id is required")

	req.EstablishmentID = "est"
	assert.NoError(t, req.Validate())

	req.Price = decimal.NewFromInt(-1)
	assert.Error(t, req.Validate())
}

package repos

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

type RepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestCRUD() {
	est := s.createTestEstablishment("11222333000181")
	s.NotEmpty(est.ID)

	found, err := s.repos.Establishments.Get(s.ctx, est.ID)
	s.Require().NoError(err)
	s.Equal("Cantina", found.Name)

	found.Name = "Cantina da Nona"
	s.Require().NoError(s.repos.Establishments.Update(s.ctx, found))
	found, err = s.repos.Establishments.Get(s.ctx, est.ID)
	s.Require().NoError(err)
	s.Equal("Cantina da Nona", found.Name)

	s.Require().NoError(s.repos.Establishments.Delete(s.ctx, est.ID))
	_, err = s.repos.Establishments.Get(s.ctx, est.ID)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(s.repos.Establishments.Delete(s.ctx, est.ID), ErrNotFound)
}

func (s *RepositoryTestSuite) TestDuplicateKey() {
	s.createTestEstablishment("11222333000181")
	err := s.repos.Establishments.Create(s.ctx, &models.Establishment{Name: "Other", CNPJ: "11222333000181", OwnerID: "o"})
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))

	est := s.createTestEstablishment("11444777000161")
	s.createTestProduct(est.ID, "SKU-1")
	err = s.repos.Products.Create(s.ctx, &models.Product{Name: "dup", SKU: "SKU-1", EstablishmentID: est.ID})
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *RepositoryTestSuite) TestListPaginationAndFilters() {
	est := s.createTestEstablishment("11222333000181")
	other := s.createTestEstablishment("11444777000161")
	for i := 0; i < 5; i++ {
		s.createTestProduct(est.ID, fmt.Sprintf("SKU-%d", i))
	}
	s.createTestProduct(other.ID, "SKU-X")

	items, total, err := s.repos.Products.List(s.ctx, &models.ListOptions{
		Limit:   2,
		Offset:  2,
		Filters: map[string]interface{}{"establishment_id": est.ID},
	})
	s.Require().NoError(err)
	s.Len(items, 2)
	s.EqualValues(5, total)

	items, total, err = s.repos.Products.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(items, 6)
	s.EqualValues(6, total)
}

func (s *RepositoryTestSuite) TestUserByEmail() {
	u := &models.User{Name: "Ana", Email: "ana@test.com", PasswordHash: "h"}
	s.Require().NoError(s.repos.Users.Create(s.ctx, u))

	found, err := s.repos.Users.GetByEmail(s.ctx, "ANA@test.com")
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)

	_, err = s.repos.Users.GetByEmail(s.ctx, "nobody@test.com")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestTableByQRCode() {
	est := s.createTestEstablishment("11222333000181")
	table := &models.Table{Number: 7, Capacity: 4, QRCode: "QR-7", Status: types.TableStatusAvailable, EstablishmentID: est.ID}
	s.Require().NoError(s.repos.Tables.Create(s.ctx, table))

	found, err := s.repos.Tables.GetByQRCode(s.ctx, "QR-7")
	s.Require().NoError(err)
	s.Equal(7, found.Number)

	dup := &models.Table{Number: 7, Capacity: 2, QRCode: "QR-8", EstablishmentID: est.ID}
	s.True(errors.Is(s.repos.Tables.Create(s.ctx, dup), gorm.ErrDuplicatedKey))
}

func (s *RepositoryTestSuite) TestCouponUsage() {
	est := s.createTestEstablishment("11222333000181")
	c := &models.Coupon{Code: "E2E10", DiscountType: types.DiscountPercentage, DiscountValue: decimal.NewFromInt(10), IsActive: true, EstablishmentID: est.ID}
	s.Require().NoError(s.repos.Coupons.Create(s.ctx, c))

	s.Require().NoError(s.repos.Coupons.IncrementUsage(s.ctx, c.ID))
	found, err := s.repos.Coupons.GetByCode(s.ctx, est.ID, "E2E10")
	s.Require().NoError(err)
	s.Equal(1, found.UsedCount)

	_, err = s.repos.Coupons.GetByCode(s.ctx, "other", "E2E10")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestOrderWithItems() {
	est := s.createTestEstablishment("11222333000181")
	p := s.createTestProduct(est.ID, "SKU-1")
	order := &models.Order{
		EstablishmentID: est.ID,
		Type:            types.OrderTypeTakeout,
		Status:          types.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: p.ID, Quantity: 2, UnitPrice: p.Price, Subtotal: p.Price.Mul(decimal.NewFromInt(2))},
		},
	}
	s.Require().NoError(s.repos.Orders.Create(s.ctx, order))

	found, err := s.repos.Orders.Get(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Items, 1)
	s.Equal(2, found.Items[0].Quantity)

	s.Require().NoError(s.repos.Orders.UpdateStatus(s.ctx, found, types.OrderStatusCancelled, "customer left"))
	found, err = s.repos.Orders.Get(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Equal(types.OrderStatusCancelled, found.Status)
	s.Equal("customer left", found.CancellationReason)

	s.Require().NoError(s.repos.Orders.Delete(s.ctx, order.ID))
	var items int64
	s.Require().NoError(s.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	s.Zero(items)
	s.ErrorIs(s.repos.Orders.Delete(s.ctx, order.ID), ErrNotFound)
}

func (s *RepositoryTestSuite) TestLoyaltyBalance() {
	earn := &models.LoyaltyTransaction{CustomerID: "c1", EstablishmentID: "e1", Type: types.LoyaltyEarn, Points: 100}
	after, err := s.repos.Loyalty.Record(s.ctx, earn)
	s.Require().NoError(err)
	s.Equal(100, after)

	redeem := &models.LoyaltyTransaction{CustomerID: "c1", EstablishmentID: "e1", Type: types.LoyaltyRedeem, Points: 30}
	after, err = s.repos.Loyalty.Record(s.ctx, redeem)
	s.Require().NoError(err)
	s.Equal(70, after)

	tooMuch := &models.LoyaltyTransaction{CustomerID: "c1", EstablishmentID: "e1", Type: types.LoyaltyRedeem, Points: 71}
	_, err = s.repos.Loyalty.Record(s.ctx, tooMuch)
	s.ErrorIs(err, ErrInsufficientPoints)

	balance, err := s.repos.Loyalty.Balance(s.ctx, "c1", "e1")
	s.Require().NoError(err)
	s.Equal(70, balance)

	balance, err = s.repos.Loyalty.Balance(s.ctx, "c1", "other")
	s.Require().NoError(err)
	s.Zero(balance)
}

func (s *RepositoryTestSuite) TestStockMovements() {
	est := s.createTestEstablishment("11222333000181")
	p := s.createTestProduct(est.ID, "SKU-1")

	after, err := s.repos.Stock.ApplyMovement(s.ctx, &models.StockMovement{ProductID: p.ID, Type: types.StockIn, Quantity: 10})
	s.Require().NoError(err)
	s.Equal(10, after)

	_, err = s.repos.Stock.ApplyMovement(s.ctx, &models.StockMovement{ProductID: p.ID, Type: types.StockOut, Quantity: 11})
	s.ErrorIs(err, models.ErrInsufficientStock)

	level, err := s.repos.Stock.Level(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(10, level, "a refused movement leaves the quantity untouched")

	_, total, err := s.repos.Stock.List(s.ctx, &models.ListOptions{Limit: 10, Filters: map[string]interface{}{"product_id": p.ID}})
	s.Require().NoError(err)
	s.EqualValues(1, total)

	_, err = s.repos.Stock.ApplyMovement(s.ctx, &models.StockMovement{ProductID: "missing", Type: types.StockIn, Quantity: 1})
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestCashierSessionLifecycle() {
	session := &models.CashierSession{EstablishmentID: "e1", OpenedBy: "u1", OpeningAmount: decimal.NewFromInt(100)}
	s.Require().NoError(s.repos.Cashier.Open(s.ctx, session))
	s.Equal(types.CashierSessionOpen, session.Status)

	s.ErrorIs(s.repos.Cashier.Open(s.ctx, &models.CashierSession{EstablishmentID: "e1", OpenedBy: "u1"}), ErrSessionAlreadyOpen)

	current, err := s.repos.Cashier.Current(s.ctx, "e1")
	s.Require().NoError(err)
	s.Equal(session.ID, current.ID)

	closed, err := s.repos.Cashier.Close(s.ctx, session.ID, decimal.NewFromInt(250))
	s.Require().NoError(err)
	s.Equal(types.CashierSessionClosed, closed.Status)
	s.NotNil(closed.ClosedAt)

	_, err = s.repos.Cashier.Close(s.ctx, session.ID, decimal.NewFromInt(250))
	s.ErrorIs(err, ErrSessionClosed)

	_, err = s.repos.Cashier.Current(s.ctx, "e1")
	s.ErrorIs(err, ErrNotFound)
}

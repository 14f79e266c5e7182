package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"backend/entity"
	"backend/events"
	"backend/pkg/gateway"
	"backend/repository"
	"backend/services"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The shared-cache DSN keeps
// every pooled connection on the same database; a plain ":memory:" gives each
// connection its own empty one.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Admin{},
		&entity.Table{},
		&entity.Menu{},
		&entity.Cart{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedTable(t *testing.T, db *gorm.DB, name string) *entity.Table {
	t.Helper()
	table := &entity.Table{Name: name}
	if err := db.Create(table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func seedMenu(t *testing.T, db *gorm.DB, name, price string, status entity.MenuStatus) *entity.Menu {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("seed menu price: %v", err)
	}
	menu := &entity.Menu{
		Name:     name,
		Price:    p,
		Category: entity.CategoryFood,
		Status:   status,
	}
	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return menu
}

// fixture bundles the services most tests need, with a recorder as the event
// transport and a fake gateway.
type fixture struct {
	DB       *gorm.DB
	Recorder *events.Recorder
	Gateway  *fakeGateway

	Carts    *services.CartService
	Orders   *services.OrderService
	Payments *services.PaymentService
}

const testServerKey = "test-server-key"

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	rec := events.NewRecorder()
	gw := &fakeGateway{status: "pending", fraud: "accept"}

	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return &fixture{
		DB:       db,
		Recorder: rec,
		Gateway:  gw,
		Carts:    services.NewCartService(db, cartRepo, menuRepo, tableRepo),
		Orders:   services.NewOrderService(db, orderRepo, cartRepo, rec),
		Payments: services.NewPaymentService(db, orderRepo, gw, rec, testServerKey),
	}
}

// checkout seeds a one-line cart and turns it into an order.
func (f *fixture) checkout(t *testing.T, table *entity.Table, menu *entity.Menu, qty int) *entity.Order {
	t.Helper()
	if _, err := f.Carts.Add(table.ID, menu.ID, qty); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	order, err := f.Orders.Checkout(table.ID, "Budi")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return order
}

func (f *fixture) reloadOrder(t *testing.T, id uint) *entity.Order {
	t.Helper()
	var o entity.Order
	if err := f.DB.First(&o, id).Error; err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return &o
}

type fakeGateway struct {
	createErr error
	status    string
	fraud     string
	checkErr  error

	lastReq *gateway.ChargeRequest
	calls   int
}

func (g *fakeGateway) CreateTransaction(req *gateway.ChargeRequest) (*gateway.Session, error) {
	g.calls++
	g.lastReq = req
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &gateway.Session{Token: "snap-token", RedirectURL: "https://app.sandbox.midtrans.com/snap/v4/redirection/snap-token"}, nil
}

func (g *fakeGateway) CheckTransaction(orderRef string) (string, string, error) {
	if g.checkErr != nil {
		return "", "", g.checkErr
	}
	return g.status, g.fraud, nil
}

// expirePayment backdates the order's payment window.
func expirePayment(t *testing.T, db *gorm.DB, orderID uint, ago time.Duration) {
	t.Helper()
	past := time.Now().Add(-ago)
	if err := db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_expires_at", past).Error; err != nil {
		t.Fatalf("expire payment: %v", err)
	}
}

package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
	"github.com/inventorywise/api/pkg/logger"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) UpdateStock(string, int) error                { return nil }
func (f *fakeProductRepo) Delete(string) error                          { return nil }
func (f *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	return f.products, f.err
}

type fakeUserRepo struct {
	users     []*entity.User
	err       error
	lastRoles []string
}

func (f *fakeUserRepo) Create(*entity.User) error               { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error)    { return nil, nil }
func (f *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	f.lastRoles = roles
	return f.users, f.err
}

type fakePDF struct {
	out   []byte
	err   error
	calls int
}

func (f *fakePDF) GenerateStockReportPDF(_ context.Context, _ *dto.StockReportDTO) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

type fakeMailer struct {
	err            error
	calls          int
	lastRecipients []string
	lastPDF        []byte
}

func (f *fakeMailer) SendStockReport(_ context.Context, recipients []string, _ *dto.StockReportDTO, pdf []byte) error {
	f.calls++
	f.lastRecipients = recipients
	f.lastPDF = pdf
	return f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func product(sku string, stock, min, max int, price string) *entity.Product {
	return &entity.Product{
		SKU:               sku,
		Name:              "Producto " + sku,
		Price:             decimal.RequireFromString(price),
		StockQuantity:     stock,
		MinStockThreshold: min,
		MaxStockThreshold: max,
	}
}

func newUseCase(pr repository.ProductRepository, ur repository.UserRepository, pdf PDFGenerator, mail EmailSender, retries int) *StockReportUseCase {
	return NewStockReportUseCase(pr, ur, pdf, mail, Config{
		CompanyName: "InventoryWise",
		MaxRetries:  retries,
	}, testLogger())
}

// ─────────────────────────────────────────────
// Build
// ─────────────────────────────────────────────

func TestBuild_AdjuntaMetadatos(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 2, 10, 100, "25.00"),
		product("SKU-2", 80, 10, 100, "5.00"),
	}}
	uc := newUseCase(repo, &fakeUserRepo{}, &fakePDF{}, &fakeMailer{}, 1)

	report, err := uc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "InventoryWise", report.CompanyName)
	assert.Equal(t, ReportTypeLowStock, report.ReportType)
	assert.False(t, report.GeneratedAt.IsZero(), "debe llevar fecha de generación")
	assert.Equal(t, 2, report.TotalProducts)
	assert.Equal(t, 1, report.LowStockCount)
	require.NotNil(t, report.TotalInventoryValue, "todos los productos tienen precio")
	assert.True(t, report.TotalInventoryValue.Equal(decimal.RequireFromString("450.00")),
		"2*25 + 80*5 = 450, obtuvo %s", report.TotalInventoryValue)
}

func TestBuild_RegistroInvalido_PropagaError(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", -3, 10, 100, "25.00"),
	}}
	uc := newUseCase(repo, &fakeUserRepo{}, &fakePDF{}, &fakeMailer{}, 1)

	_, err := uc.Build(context.Background())
	assert.Error(t, err)
}

func TestBuild_FallaRepositorio(t *testing.T) {
	repo := &fakeProductRepo{err: fmt.Errorf("conexión perdida")}
	uc := newUseCase(repo, &fakeUserRepo{}, &fakePDF{}, &fakeMailer{}, 1)

	_, err := uc.Build(context.Background())
	assert.ErrorContains(t, err, "listar productos")
}

// ─────────────────────────────────────────────
// Send
// ─────────────────────────────────────────────

func TestSend_SinStockBajo_NoEnvia(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 80, 10, 100, "5.00"),
	}}
	pdf := &fakePDF{out: []byte("%PDF")}
	mail := &fakeMailer{}
	uc := newUseCase(repo, &fakeUserRepo{}, pdf, mail, 1)

	resp, err := uc.Send(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.Sent)
	assert.Zero(t, pdf.calls, "sin alertas no se genera PDF")
	assert.Zero(t, mail.calls, "sin alertas no se envía correo")
}

func TestSend_ConStockBajo_EnviaADestinatarios(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 2, 10, 100, "25.00"),
		product("SKU-2", 0, 10, 100, "5.00"),
	}}
	users := &fakeUserRepo{users: []*entity.User{
		{Email: "admin@example.com", Role: entity.RoleAdmin},
		{Email: "bodega@example.com", Role: entity.RoleStockManager},
	}}
	pdf := &fakePDF{out: []byte("%PDF")}
	mail := &fakeMailer{}
	uc := newUseCase(repo, users, pdf, mail, 3)

	resp, err := uc.Send(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Sent)
	assert.Equal(t, 2, resp.Recipients)
	assert.Equal(t, 2, resp.LowStockCount)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, []string{"admin@example.com", "bodega@example.com"}, mail.lastRecipients)
	assert.Equal(t, []byte("%PDF"), mail.lastPDF)
	assert.ElementsMatch(t, []string{entity.RoleAdmin, entity.RoleStockManager}, users.lastRoles)
}

func TestSend_SinDestinatarios_Error(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 2, 10, 100, "25.00"),
	}}
	uc := newUseCase(repo, &fakeUserRepo{}, &fakePDF{out: []byte("%PDF")}, &fakeMailer{}, 1)

	_, err := uc.Send(context.Background())
	assert.ErrorContains(t, err, "destinatarios")
}

func TestSend_FallaPDF(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 2, 10, 100, "25.00"),
	}}
	users := &fakeUserRepo{users: []*entity.User{{Email: "admin@example.com", Role: entity.RoleAdmin}}}
	mail := &fakeMailer{}
	uc := newUseCase(repo, users, &fakePDF{err: fmt.Errorf("maroto falló")}, mail, 1)

	_, err := uc.Send(context.Background())
	assert.ErrorContains(t, err, "generar PDF")
	assert.Zero(t, mail.calls)
}

func TestSend_FalloSMTP_AgotaIntentos(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		product("SKU-1", 2, 10, 100, "25.00"),
	}}
	users := &fakeUserRepo{users: []*entity.User{{Email: "admin@example.com", Role: entity.RoleAdmin}}}
	mail := &fakeMailer{err: fmt.Errorf("smtp: connection refused")}
	uc := newUseCase(repo, users, &fakePDF{out: []byte("%PDF")}, mail, 1)

	_, err := uc.Send(context.Background())
	assert.ErrorContains(t, err, "envío fallido")
	assert.Equal(t, 1, mail.calls)
}

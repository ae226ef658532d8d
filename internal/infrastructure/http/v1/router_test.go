package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/domain/catalogs/location"
	"stallbook/internal/domain/catalogs/product"
	"stallbook/internal/domain/reports"
	"stallbook/internal/domain/sales"
	"stallbook/pkg/logger"
)

// --- in-memory fakes ---

type memTxManager struct{}

func (memTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memSalesRepo struct {
	lines []sales.Line
}

func (r *memSalesRepo) InsertLines(_ context.Context, lines []sales.Line) error {
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *memSalesRepo) ListByDayLocation(_ context.Context, recordDate time.Time, loc string) ([]sales.Line, error) {
	var out []sales.Line
	for _, l := range r.lines {
		if l.RecordDate.Equal(recordDate) && l.Location == loc {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memSalesRepo) DeleteBatch(_ context.Context, recordDate time.Time, loc string, createdAt time.Time) (int64, error) {
	var kept []sales.Line
	var deleted int64
	for _, l := range r.lines {
		if l.RecordDate.Equal(recordDate) && l.Location == loc && l.CreatedAt.Equal(createdAt) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.lines = kept
	return deleted, nil
}

type memLocationRepo struct {
	items      map[id.ID]*location.Location
	referenced map[string]bool
}

func newMemLocationRepo() *memLocationRepo {
	return &memLocationRepo{
		items:      make(map[id.ID]*location.Location),
		referenced: make(map[string]bool),
	}
}

func (r *memLocationRepo) Create(_ context.Context, l *location.Location) error {
	for _, existing := range r.items {
		if existing.Name == l.Name {
			return apperror.NewDuplicate("location", "name", l.Name)
		}
	}
	r.items[l.ID] = l
	return nil
}

func (r *memLocationRepo) GetByID(_ context.Context, locationID id.ID) (*location.Location, error) {
	l, ok := r.items[locationID]
	if !ok {
		return nil, apperror.NewNotFound("location", locationID.String())
	}
	return l, nil
}

func (r *memLocationRepo) List(context.Context) ([]*location.Location, error) {
	out := make([]*location.Location, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	return out, nil
}

func (r *memLocationRepo) Delete(_ context.Context, locationID id.ID) error {
	delete(r.items, locationID)
	return nil
}

func (r *memLocationRepo) ReferencedBySales(_ context.Context, name string) (bool, error) {
	return r.referenced[name], nil
}

type memProductRepo struct {
	items map[id.ID]*product.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[id.ID]*product.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *product.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return apperror.NewNotFound("product", p.ID.String())
	}
	r.items[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, productID id.ID) (*product.Product, error) {
	p, ok := r.items[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (r *memProductRepo) ListActive(context.Context) ([]*product.Product, error) {
	out := make([]*product.Product, 0)
	for _, p := range r.items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) SetActive(_ context.Context, productID id.ID, active bool) error {
	p, ok := r.items[productID]
	if !ok {
		return apperror.NewNotFound("product", productID.String())
	}
	p.IsActive = active
	return nil
}

type fixture struct {
	router       *gin.Engine
	salesRepo    *memSalesRepo
	locationRepo *memLocationRepo
	productRepo  *memProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	salesRepo := &memSalesRepo{}
	locationRepo := newMemLocationRepo()
	productRepo := newMemProductRepo()

	salesService := sales.NewService(salesRepo, memTxManager{})

	router := NewRouter(RouterConfig{
		Logger:          logger.Default(),
		ProductService:  product.NewService(productRepo),
		LocationService: location.NewService(locationRepo),
		SalesService:    salesService,
		ReportService:   reports.NewService(salesService),
	})

	return &fixture{
		router:       router,
		salesRepo:    salesRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func bulkBody(items ...map[string]any) map[string]any {
	return map[string]any{
		"date":     "2026-03-14",
		"location": "East Gate",
		"items":    items,
	}
}

func shrimpItem() map[string]any {
	return map[string]any{
		"product_name":    "Dried Shrimp",
		"unit_type":       "weight",
		"price":           "100",
		"cost_price":      "60",
		"purchase_parts":  map[string]any{"jin": 0, "tael": 10},
		"return_parts":    map[string]any{"jin": 0, "tael": 2},
		"commission_rate": "0.16",
	}
}

func TestSalesBulkCreateAndReport(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/sales/bulk", bulkBody(shrimpItem()))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	assert.Equal(t, "East Gate", created["location"])
	assert.EqualValues(t, 1, created["line_count"])
	require.NotEmpty(t, created["created_at"])

	w = f.do(t, http.MethodGet, "/sales/report?date=2026-03-14&location=East+Gate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	report := decode(t, w)
	items := report["items"].([]any)
	require.Len(t, items, 1)

	line := items[0].(map[string]any)
	breakdown := line["breakdown"].(map[string]any)
	assert.EqualValues(t, 1000, breakdown["shipped_value"])
	assert.EqualValues(t, 200, breakdown["returned_value"])
	assert.EqualValues(t, 800, breakdown["net_sales"])
	assert.EqualValues(t, 128, breakdown["commission"])
	assert.EqualValues(t, 672, breakdown["net_revenue"])

	totals := report["totals"].(map[string]any)
	assert.EqualValues(t, 672, totals["net_revenue"])
}

func TestSalesBulkCreateRejectsTaelOverflow(t *testing.T) {
	f := newFixture(t)

	item := shrimpItem()
	item["purchase_parts"] = map[string]any{"jin": 1, "tael": 16}

	w := f.do(t, http.MethodPost, "/sales/bulk", bulkBody(item))
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, f.salesRepo.lines)
}

func TestSalesDeleteBatch(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/sales/bulk", bulkBody(shrimpItem()))
	require.Equal(t, http.StatusCreated, w.Code)
	createdAt := decode(t, w)["created_at"].(string)

	key := map[string]any{
		"date":       "2026-03-14",
		"location":   "East Gate",
		"created_at": createdAt,
	}

	w = f.do(t, http.MethodDelete, "/sales/batch", key)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, f.salesRepo.lines)

	// Second delete of the same batch finds nothing.
	w = f.do(t, http.MethodDelete, "/sales/batch", key)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSalesReplaceBatch(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/sales/bulk", bulkBody(shrimpItem()))
	require.Equal(t, http.StatusCreated, w.Code)
	createdAt := decode(t, w)["created_at"].(string)

	replacement := map[string]any{
		"date":       "2026-03-14",
		"location":   "East Gate",
		"created_at": createdAt,
		"items":      []map[string]any{shrimpItem(), shrimpItem()},
	}

	w = f.do(t, http.MethodPut, "/sales/batch", replacement)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.EqualValues(t, 2, body["line_count"])
	assert.NotEqual(t, createdAt, body["created_at"])
	assert.Len(t, f.salesRepo.lines, 2)
}

func TestLocationEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/locations", map[string]any{"name": "East Gate"})
	require.Equal(t, http.StatusCreated, w.Code)
	locationID := decode(t, w)["id"].(string)

	// Duplicate name conflicts.
	w = f.do(t, http.MethodPost, "/locations", map[string]any{"name": "East Gate"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Referenced locations cannot be deleted.
	f.locationRepo.referenced["East Gate"] = true
	w = f.do(t, http.MethodDelete, "/locations/"+locationID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	f.locationRepo.referenced["East Gate"] = false
	w = f.do(t, http.MethodDelete, "/locations/"+locationID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/products", map[string]any{
		"name":         "Dried Shrimp",
		"unit_type":    "weight",
		"cost_price":   "60",
		"retail_price": "100",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := decode(t, w)["id"].(string)

	w = f.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Dried Shrimp", listed[0]["name"])

	// Deactivation removes it from the list but keeps the row.
	w = f.do(t, http.MethodDelete, "/products/"+productID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/products", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	pid := id.MustParse(productID)
	stored, err := f.productRepo.GetByID(context.Background(), pid)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/application/product/usecases"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/interfaces/dto"
	"subcommerce/internal/interfaces/http/handlers/testutil"
	"subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/services/markdown"
)

type mockCreateProductUC struct {
	result *product.Product
	err    error
	cmd    usecases.CreateProductCommand
}

func (m *mockCreateProductUC) Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*product.Product, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetProductUC struct {
	result *product.Product
	err    error
}

func (m *mockGetProductUC) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	return m.result, m.err
}

type mockListProductsUC struct {
	result *usecases.ListProductsResult
	err    error
	query  usecases.ListProductsQuery
}

func (m *mockListProductsUC) Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockUpdateProductUC struct {
	result *product.Product
	err    error
	cmd    usecases.UpdateProductCommand
}

func (m *mockUpdateProductUC) Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*product.Product, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteProductUC struct {
	err       error
	productID uint
}

func (m *mockDeleteProductUC) Execute(ctx context.Context, productID uint) error {
	m.productID = productID
	return m.err
}

func createTestProduct() *product.Product {
	desc := "**Monthly** plan"
	now := time.Now().UTC()
	return product.ReconstructProduct(product.ReconstructParams{
		ID:           7,
		Title:        "Pro",
		Description:  &desc,
		PriceMinor:   9999,
		Status:       product.StatusActive,
		DurationDays: 30,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

type productHandlerMocks struct {
	create *mockCreateProductUC
	get    *mockGetProductUC
	list   *mockListProductsUC
	update *mockUpdateProductUC
	delete *mockDeleteProductUC
}

func newTestProductHandler() (*ProductHandler, *productHandlerMocks) {
	m := &productHandlerMocks{
		create: &mockCreateProductUC{},
		get:    &mockGetProductUC{},
		list:   &mockListProductsUC{},
		update: &mockUpdateProductUC{},
		delete: &mockDeleteProductUC{},
	}
	h := NewProductHandler(m.create, m.get, m.list, m.update, m.delete, markdown.NewMarkdownService(), testutil.NewMockLogger())
	return h, m
}

func TestProductHandler_Create_ParsesDecimalPrice(t *testing.T) {
	handler, m := newTestProductHandler()
	m.create.result = createTestProduct()

	c, w := testutil.NewTestContext(http.MethodPost, "/products", map[string]any{
		"title": "Pro",
		"price": 99.99,
	})
	testutil.SetAuthContextWithRole(c, 1, "admin")

	handler.CreateProduct(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(9999), m.create.cmd.PriceMinor)
	assert.Equal(t, "Pro", m.create.cmd.Title)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.ProductResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "99.99", data.Price)
	assert.Contains(t, data.DescriptionHTML, "<strong>Monthly</strong>")
}

func TestProductHandler_Create_RejectsBadPrice(t *testing.T) {
	tests := []struct {
		name  string
		price any
	}{
		{"too many decimals", "1.999"},
		{"not a number", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestProductHandler()

			c, w := testutil.NewTestContext(http.MethodPost, "/products", map[string]any{
				"title": "Pro",
				"price": tt.price,
			})

			handler.CreateProduct(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, m.create.cmd.Title, "use case must not run")
		})
	}
}

func TestProductHandler_List_PassesFilters(t *testing.T) {
	handler, m := newTestProductHandler()
	m.list.result = &usecases.ListProductsResult{
		Products: []*product.Product{createTestProduct()},
		Total:    1,
		Page:     2,
		PerPage:  5,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":    "active",
		"search":    "pro",
		"min_price": "10.00",
		"page":      "2",
		"per_page":  "5",
	})

	handler.ListProducts(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active", m.list.query.Status)
	assert.Equal(t, "pro", m.list.query.Search)
	assert.Equal(t, "10.00", m.list.query.MinPrice)
	assert.Equal(t, 2, m.list.query.Page)
	assert.Equal(t, 5, m.list.query.PerPage)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		Items      []dto.ProductResponse `json:"items"`
		Total      int64                 `json:"total"`
		TotalPages int                   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Items, 1)
	assert.Equal(t, int64(1), data.Total)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	handler, _ := newTestProductHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/products/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	handler, m := newTestProductHandler()
	m.get.err = errors.NewNotFoundError("product not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/products/9", nil)
	testutil.SetURLParam(c, "id", "9")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_Update_OnlyPresentFields(t *testing.T) {
	handler, m := newTestProductHandler()
	m.update.result = createTestProduct()

	c, w := testutil.NewTestContext(http.MethodPut, "/products/7", map[string]any{"price": "12.50"})
	testutil.SetURLParam(c, "id", "7")

	handler.UpdateProduct(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.update.cmd.ProductID)
	require.NotNil(t, m.update.cmd.PriceMinor)
	assert.Equal(t, int64(1250), *m.update.cmd.PriceMinor)
	assert.Nil(t, m.update.cmd.Title)
	assert.Nil(t, m.update.cmd.Status)
}

func TestProductHandler_Delete(t *testing.T) {
	handler, m := newTestProductHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/products/7", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.DeleteProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.delete.productID)
}

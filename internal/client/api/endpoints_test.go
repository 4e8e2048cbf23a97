package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/pkg/api"
)

// recordedRequest хранит то, что увидел тестовый сервер
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// newRecordingServer отвечает fixed body и записывает последний запрос
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		rec.Body = string(data)
		if len(data) > 0 {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func TestClient_Login(t *testing.T) {
	server, rec := newRecordingServer(t, http.StatusOK,
		`{"access":"a","refresh":"r","user":{"id":7,"username":"jane","email":"jane@example.com"}}`)
	client, _ := newTestClient(t, server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{Username: "jane", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/login/", rec.Path)
	assert.JSONEq(t, `{"username":"jane","password":"secret123"}`, rec.Body)
	assert.Equal(t, "a", resp.Access)
	assert.Equal(t, "r", resp.Refresh)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestClient_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTokens bool
		wantID     int64
	}{
		{name: "tokens returned", body: `{"access":"a","refresh":"r","user":{"id":3,"email":"x@y.z"}}`, wantTokens: true},
		{name: "only id returned", body: `{"id":42}`, wantID: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newRecordingServer(t, http.StatusCreated, tt.body)
			client, _ := newTestClient(t, server.URL)

			resp, err := client.Register(context.Background(), api.RegisterRequest{
				Username:        "jane",
				Email:           "jane@example.com",
				Password:        "secret123",
				PasswordConfirm: "secret123",
			})
			require.NoError(t, err)

			assert.Equal(t, "/api/register/", rec.Path)
			assert.JSONEq(t,
				`{"username":"jane","email":"jane@example.com","password":"secret123","password_confirm":"secret123"}`,
				rec.Body)
			assert.Equal(t, tt.wantTokens, resp.HasTokens())
			assert.Equal(t, tt.wantID, resp.ID)
		})
	}
}

func TestClient_RegisterFieldErrors(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusBadRequest,
		`{"username":["A user with that username already exists."],"email":["Enter a valid email address."]}`)
	client, _ := newTestClient(t, server.URL)

	_, err := client.Register(context.Background(), api.RegisterRequest{Username: "jane"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, http.StatusBadRequest, validationErr.StatusCode)
	assert.Len(t, validationErr.Fields, 2)
	assert.Contains(t, err.Error(), "email: Enter a valid email address.; username: A user with that username already exists.")
}

func TestClient_Products(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		filter    ProductFilter
		wantQuery string
		wantLen   int
	}{
		{
			name:    "bare array",
			body:    `[{"id":1,"name":"Pen","price":"1.50","category":2},{"id":2,"name":"Ink","price":"3.00"}]`,
			wantLen: 2,
		},
		{
			name:      "paginated envelope with search",
			body:      `{"count":1,"next":null,"results":[{"id":1,"name":"Red pen","price":"1.50"}]}`,
			filter:    ProductFilter{Search: "red pen"},
			wantQuery: "search=red+pen",
			wantLen:   1,
		},
		{
			name:      "category filter",
			body:      `[]`,
			filter:    ProductFilter{CategoryID: 4},
			wantQuery: "category=4",
			wantLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newRecordingServer(t, http.StatusOK, tt.body)
			client, _ := newTestClient(t, server.URL)

			products, err := client.Products(context.Background(), tt.filter)
			require.NoError(t, err)

			assert.Equal(t, http.MethodGet, rec.Method)
			assert.Equal(t, "/api/products/", rec.Path)
			assert.Equal(t, tt.wantQuery, rec.Query)
			assert.Len(t, products, tt.wantLen)
		})
	}
}

func TestClient_SearchAndCategoryShortcuts(t *testing.T) {
	server, rec := newRecordingServer(t, http.StatusOK, `[]`)
	client, _ := newTestClient(t, server.URL)

	_, err := client.SearchProducts(context.Background(), "mug")
	require.NoError(t, err)
	assert.Equal(t, "search=mug", rec.Query)

	_, err = client.ProductsByCategory(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "category=9", rec.Query)
}

func TestClient_Product(t *testing.T) {
	server, rec := newRecordingServer(t, http.StatusOK,
		`{"id":5,"name":"Mug","price":"9.99","category":"Kitchen","in_stock":true}`)
	client, _ := newTestClient(t, server.URL)

	product, err := client.Product(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/api/products/5/", rec.Path)
	assert.Equal(t, "Mug", product.Name)
	assert.Equal(t, "Kitchen", product.CategoryLabel())
	require.NotNil(t, product.InStock)
	assert.True(t, *product.InStock)
}

func TestClient_ProductNotFound(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusNotFound, `{"detail":"Not found."}`)
	client, _ := newTestClient(t, server.URL)

	_, err := client.Product(context.Background(), 404)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, http.StatusNotFound, validationErr.StatusCode)
	assert.Equal(t, "Not found.", validationErr.Message)
}

func TestClient_CartOperations(t *testing.T) {
	t.Run("get cart", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusOK,
			`{"items":[{"id":11,"quantity":2,"subtotal":"3.00","product":{"id":1,"name":"Pen","price":"1.50"}}]}`)
		client, _ := newTestClient(t, server.URL)

		cart, err := client.Cart(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/cart/", rec.Path)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("add", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusCreated, `{"message":"added"}`)
		client, _ := newTestClient(t, server.URL)

		require.NoError(t, client.AddToCart(context.Background(), 1, 3))
		assert.Equal(t, http.MethodPost, rec.Method)
		assert.Equal(t, "/api/cart/add/", rec.Path)
		assert.JSONEq(t, `{"product_id":1,"quantity":3}`, rec.Body)
	})

	t.Run("remove", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusNoContent, ``)
		client, _ := newTestClient(t, server.URL)

		require.NoError(t, client.RemoveFromCart(context.Background(), 11))
		assert.Equal(t, http.MethodDelete, rec.Method)
		assert.Equal(t, "/api/cart/remove/11/", rec.Path)
		assert.Empty(t, rec.Body)
	})

	t.Run("update", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusOK, `{}`)
		client, _ := newTestClient(t, server.URL)

		require.NoError(t, client.UpdateCartItem(context.Background(), 11, 5))
		assert.Equal(t, http.MethodPatch, rec.Method)
		assert.Equal(t, "/api/cart/update/11/", rec.Path)
		assert.JSONEq(t, `{"quantity":5}`, rec.Body)
	})
}

func TestClient_Orders(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusCreated,
			`{"id":1,"order_number":"ORD-1","status":"pending","total":"118.80","shipping_address":"Main st 1","created_at":"2024-05-01T10:00:00Z","items_count":2}`)
		client, _ := newTestClient(t, server.URL)

		order, err := client.CreateOrder(context.Background(), api.CreateOrderRequest{
			ShippingAddress: "Main st 1",
			PaymentMethod:   api.PaymentCashOnDelivery,
		})
		require.NoError(t, err)
		assert.Equal(t, "/api/orders/create/", rec.Path)
		assert.JSONEq(t, `{"shipping_address":"Main st 1","payment_method":"cash_on_delivery"}`, rec.Body)
		assert.Equal(t, "ORD-1", order.OrderNumber)
	})

	t.Run("list paginated", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusOK,
			`{"results":[{"id":1,"order_number":"ORD-1"},{"id":2,"order_number":"ORD-2"}]}`)
		client, _ := newTestClient(t, server.URL)

		orders, err := client.Orders(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/orders/", rec.Path)
		require.Len(t, orders, 2)
		assert.Equal(t, "ORD-2", orders[1].OrderNumber)
	})

	t.Run("detail", func(t *testing.T) {
		server, rec := newRecordingServer(t, http.StatusOK,
			`{"id":2,"order_number":"ORD-2","items":[{"id":1,"product_name":"Pen","price":"1.50","quantity":2}]}`)
		client, _ := newTestClient(t, server.URL)

		order, err := client.Order(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "/api/orders/2/", rec.Path)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Pen", order.Items[0].ProductName)
	})
}

func TestClient_Profile(t *testing.T) {
	server, rec := newRecordingServer(t, http.StatusOK,
		`{"id":7,"username":"jane","email":"jane@example.com","first_name":"Jane"}`)
	client, store := newTestClient(t, server.URL)
	seedTokens(t, store, "access-1", "refresh-1")

	user, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/profile/", rec.Path)
	assert.Equal(t, "Jane", user.FirstName)

	firstName := "Janet"
	_, err = client.UpdateProfile(context.Background(), api.UpdateProfileRequest{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.Method)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.Body), &sent))
	assert.Equal(t, map[string]any{"first_name": "Janet"}, sent)
}

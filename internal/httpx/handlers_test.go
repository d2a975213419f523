package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ariefcatur/go-shopfront.git/internal/catalog"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	t      *testing.T
	srv    *httptest.Server
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	sessions := session.NewManager(func(string) kvstore.Store { return kvstore.NewMemory() }, nil, "test")
	home := catalog.Home()
	men := catalog.Men()

	router := NewRouter()
	(&CatalogHandler{Sections: map[string]*catalog.Catalog{"home": home, "men": men}}).Register(router)
	(&CartHandler{Sessions: sessions, Catalogs: []*catalog.Catalog{home, men}}).Register(router)
	(&CheckoutHandler{Sessions: sessions}).Register(router)
	(&AuthHandler{Sessions: sessions}).Register(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testClient{t: t, srv: srv}
}

func (c *testClient) do(method, path, body string) (*http.Response, []byte) {
	c.t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, rdr)
	require.NoError(c.t, err)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return resp, b
}

func (c *testClient) doJSON(method, path, body string, out any) *http.Response {
	c.t.Helper()
	resp, b := c.do(method, path, body)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(b, out))
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	c := newTestClient(t)

	var cr cartResp
	resp := c.doJSON(http.MethodGet, "/cart", "", &cr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, cr.LineCount)

	// add 2x polo M, lalu 1x lagi -> merge jadi satu baris qty 3
	resp = c.doJSON(http.MethodPost, "/cart/items",
		`{"product_id":1,"selected_size":"M","quantity":2}`, &cr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = c.doJSON(http.MethodPost, "/cart/items",
		`{"product_id":1,"selected_size":"M","quantity":1}`, &cr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, cr.LineCount)
	assert.Equal(t, 3, cr.ItemCount)
	assert.InDelta(t, 150.0, cr.Total, 1e-9)

	// varian lain = baris sendiri
	c.doJSON(http.MethodPost, "/cart/items",
		`{"product_id":1,"selected_size":"L","quantity":1}`, &cr)
	assert.Equal(t, 2, cr.LineCount)

	// delta clamp: no-op tapi tetap 200
	c.doJSON(http.MethodPatch, "/cart/items",
		`{"product_id":1,"selected_size":"M","delta":100}`, &cr)
	assert.Equal(t, 3, cr.Items[0].Quantity)

	c.doJSON(http.MethodPatch, "/cart/items",
		`{"product_id":1,"selected_size":"M","delta":1}`, &cr)
	assert.Equal(t, 4, cr.Items[0].Quantity)

	// hapus scoped, lalu bulk
	c.doJSON(http.MethodDelete, "/cart/items?product_id=1&selected_size=M", "", &cr)
	assert.Equal(t, 1, cr.LineCount)
	c.doJSON(http.MethodDelete, "/cart/items?product_id=1", "", &cr)
	assert.Zero(t, cr.LineCount)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	c := newTestClient(t)
	resp, _ := c.do(http.MethodPost, "/cart/items", `{"product_id":99999}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCart_SessionIsolation(t *testing.T) {
	c1 := newTestClient(t)

	var cr cartResp
	c1.doJSON(http.MethodPost, "/cart/items", `{"product_id":2,"quantity":1}`, &cr)
	require.Equal(t, 1, cr.LineCount)

	// request tanpa cookie = sesi lain, cart kosong
	c2 := &testClient{t: t, srv: c1.srv}
	c2.doJSON(http.MethodGet, "/cart", "", &cr)
	assert.Zero(t, cr.LineCount)
}

func TestCheckoutFlow(t *testing.T) {
	c := newTestClient(t)

	// begin di cart kosong = guard
	resp, _ := c.do(http.MethodPost, "/checkout/begin", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var cr cartResp
	c.doJSON(http.MethodPost, "/cart/items", `{"product_id":1,"selected_size":"M","quantity":2}`, &cr)

	var st checkoutResp
	resp = c.doJSON(http.MethodPost, "/checkout/begin", "", &st)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// confirm sebagai guest ditolak presentasi layer
	resp, _ = c.do(http.MethodPost, "/checkout/confirm", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/auth/signin",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.doJSON(http.MethodPost, "/checkout/confirm", "", &st)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, st.Order)
	assert.Equal(t, "budi@example.com", st.Order.Email)
	assert.Equal(t, "Processing", st.Order.Status)
	assert.Zero(t, st.Items) // cart sudah kosong

	var acked checkoutResp
	resp = c.doJSON(http.MethodPost, "/checkout/ack", "", &acked)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, acked.Order)

	var orders struct {
		Orders []json.RawMessage `json:"orders"`
	}
	c.doJSON(http.MethodGet, "/orders", "", &orders)
	assert.Len(t, orders.Orders, 1)
}

func TestAuth_SignUpPasswordMismatch(t *testing.T) {
	c := newTestClient(t)
	resp, _ := c.do(http.MethodPost, "/auth/signup",
		`{"name":"Budi","email":"budi@example.com","password":"a","confirm_password":"b"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth_MeReflectsSignInAndOut(t *testing.T) {
	c := newTestClient(t)

	var me struct {
		Guest bool          `json:"guest"`
		User  *session.User `json:"user"`
	}
	c.doJSON(http.MethodGet, "/auth/me", "", &me)
	assert.True(t, me.Guest)

	c.do(http.MethodPost, "/auth/signin", `{"name":"Budi","email":"budi@example.com","password":"x"}`)
	c.doJSON(http.MethodGet, "/auth/me", "", &me)
	require.False(t, me.Guest)
	assert.Equal(t, "Budi", me.User.Name)

	c.do(http.MethodPost, "/auth/signout", "")
	c.doJSON(http.MethodGet, "/auth/me", "", &me)
	assert.True(t, me.Guest)
}

func TestCatalog_QueryParams(t *testing.T) {
	c := newTestClient(t)

	var pr productsResp
	resp := c.doJSON(http.MethodGet, "/catalog/men/products?min_price=50&max_price=100&sort=price-low", "", &pr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotZero(t, pr.Count)
	for i, p := range pr.Products {
		assert.GreaterOrEqual(t, p.Price, 50.0)
		assert.LessOrEqual(t, p.Price, 100.0)
		if i > 0 {
			assert.LessOrEqual(t, pr.Products[i-1].Price, p.Price)
		}
	}

	resp, _ = c.do(http.MethodGet, "/catalog/unknown/products", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var cats struct {
		Categories []string `json:"categories"`
	}
	c.doJSON(http.MethodGet, "/catalog/men/categories", "", &cats)
	require.NotEmpty(t, cats.Categories)
	assert.Equal(t, "All", cats.Categories[0])
}

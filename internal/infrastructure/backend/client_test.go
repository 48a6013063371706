package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fruito/storefront/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), zerolog.Nop()), srv
}

func TestLoginUser_SuccessReturnsBodyVerbatim(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1,"name":"A"}`))
	})

	payload, err := client.LoginUser(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("LoginUser returned error: %v", err)
	}
	if string(payload) != `{"id":1,"name":"A"}` {
		t.Fatalf("payload reshaped: %s", payload)
	}
	if gotMethod != http.MethodPost || gotPath != "/auth/user/login" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}

	var req map[string]string
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("request body not json: %v", err)
	}
	if req["email"] != "a@b.com" || req["password"] != "x" {
		t.Fatalf("unexpected request body: %s", gotBody)
	}
}

func TestLoginUser_RejectionSurfacesDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"wrong password"}`))
	})

	_, err := client.LoginUser(context.Background(), "a@b.com", "bad")
	re, ok := domain.AsRequestError(err)
	if !ok {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "wrong password" {
		t.Fatalf("expected backend detail, got %q", re.Message)
	}
	if re.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", re.StatusCode)
	}
}

func TestLoginUser_RejectionWithoutDetailFallsBack(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "<html>gateway timeout</html>"},
		{"json without detail", `{"message":"nope"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.LoginUser(context.Background(), "a@b.com", "x")
			re, ok := domain.AsRequestError(err)
			if !ok {
				t.Fatalf("expected RequestError, got %v", err)
			}
			if re.Message != "Login failed" {
				t.Fatalf("expected fallback, got %q", re.Message)
			}
		})
	}
}

func TestLoginUser_TransportFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(srv.URL, srv.Client(), zerolog.Nop())
	srv.Close()

	_, err := client.LoginUser(context.Background(), "a@b.com", "x")
	re, ok := domain.AsRequestError(err)
	if !ok {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "Login failed" {
		t.Fatalf("expected fallback, got %q", re.Message)
	}
	if re.StatusCode != 0 {
		t.Fatalf("transport failures carry no status, got %d", re.StatusCode)
	}
}

func TestSignupUser_FallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/user/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.SignupUser(context.Background(), "Jane", "j@e.com", "pw")
	re, ok := domain.AsRequestError(err)
	if !ok || re.Message != "Signup failed" {
		t.Fatalf("expected signup fallback, got %v", err)
	}
}

func TestLoginAdmin_DiscardsPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/admin/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"admin":"profile","token":"abc"}`))
	})

	if err := client.LoginAdmin(context.Background(), "root@fruito.dev", "pw"); err != nil {
		t.Fatalf("LoginAdmin returned error: %v", err)
	}
}

func TestListProducts_DecodesCatalogue(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Kiwi","description":"green","price":1.5,"stock":12}]`))
	})

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Name != "Kiwi" || p.Price != 1.5 || p.Stock != 12 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestListProducts_MalformedSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops": "not an array"}`))
	})

	_, err := client.ListProducts(context.Background())
	re, ok := domain.AsRequestError(err)
	if !ok || re.Message != "Failed" {
		t.Fatalf("expected generic fallback, got %v", err)
	}
}

func TestLoginUser_MalformedSuccessBodyFallsBack(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"html page", "<html>upstream proxy page</html>"},
		{"empty body", ""},
		{"truncated json", `{"id":1,"name"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tc.body))
			})

			payload, err := client.LoginUser(context.Background(), "a@b.com", "x")
			re, ok := domain.AsRequestError(err)
			if !ok {
				t.Fatalf("expected RequestError, got payload %q err %v", payload, err)
			}
			if re.Message != "Login failed" {
				t.Fatalf("expected fallback, got %q", re.Message)
			}
			if re.StatusCode != http.StatusOK {
				t.Fatalf("expected the backend status, got %d", re.StatusCode)
			}
			if payload != nil {
				t.Fatalf("an unparseable body must never be handed back: %q", payload)
			}
		})
	}
}

func TestLoginAdmin_MalformedSuccessBodyFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	err := client.LoginAdmin(context.Background(), "root@fruito.dev", "pw")
	re, ok := domain.AsRequestError(err)
	if !ok || re.Message != "Login failed" {
		t.Fatalf("expected login fallback, got %v", err)
	}
}

func TestCreateProduct_MalformedSuccessBodyFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	_, err := client.CreateProduct(context.Background(),
		domain.ProductFields{Name: "Mango"}, domain.AdminCredentials{Email: "root@fruito.dev", Password: "pw"})
	re, ok := domain.AsRequestError(err)
	if !ok || re.Message != "Failed" {
		t.Fatalf("expected generic fallback, got %v", err)
	}
}

func TestCreateProduct_SendsFieldsAndCredentials(t *testing.T) {
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9}`))
	})

	fields := domain.ProductFields{Name: "Mango", Description: "ripe", Price: 2.5, Stock: 7}
	creds := domain.AdminCredentials{Email: "root@fruito.dev", Password: "pw"}
	if _, err := client.CreateProduct(context.Background(), fields, creds); err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}

	var req struct {
		Product     domain.ProductFields    `json:"product"`
		Credentials domain.AdminCredentials `json:"credentials"`
	}
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("request body not json: %v", err)
	}
	if req.Product != fields {
		t.Fatalf("unexpected product fields: %+v", req.Product)
	}
	if req.Credentials != creds {
		t.Fatalf("credentials not re-sent: %+v", req.Credentials)
	}
}

func TestCreateProduct_BackendRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"name required"}`))
	})

	_, err := client.CreateProduct(context.Background(),
		domain.ProductFields{}, domain.AdminCredentials{Email: "root@fruito.dev", Password: "pw"})
	re, ok := domain.AsRequestError(err)
	if !ok {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "name required" {
		t.Fatalf("expected backend detail, got %q", re.Message)
	}
}

package ports

import (
	"context"
	"encoding/json"

	"github.com/fruito/storefront/internal/core/domain"
)

// Gateway translates storefront intents into HTTP calls against the remote
// backend API. Success bodies are returned verbatim; the frontend never
// validates or reshapes backend output. Failures surface as
// *domain.RequestError carrying the backend's message or a fixed fallback.
// No call retries and none sets its own deadline beyond the request context.
type Gateway interface {
	SignupUser(ctx context.Context, name, email, password string) (json.RawMessage, error)
	LoginUser(ctx context.Context, email, password string) (json.RawMessage, error)
	// LoginAdmin discards the backend payload; only success or failure matters.
	LoginAdmin(ctx context.Context, email, password string) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// CreateProduct re-sends admin credentials on every call. The backend is
	// the sole authority; no local check precedes the request.
	CreateProduct(ctx context.Context, fields domain.ProductFields, creds domain.AdminCredentials) (json.RawMessage, error)
}

package ports

import (
	"context"

	"github.com/fruito/storefront/internal/core/domain"
)

// StorefrontService defines the use-case operations behind the storefront
// pages: the gateway call plus whatever session write follows it. Within one
// operation the session write always happens before the caller redirects.
type StorefrontService interface {
	// Signup creates an account. Success persists no identity; the visitor
	// still has to log in.
	Signup(ctx context.Context, name, email, password string) error
	// Login authenticates and persists the returned payload in the session.
	Login(ctx context.Context, sid, email, password string) error
	// Logout clears the user payload only. The admin flag is untouched.
	Logout(ctx context.Context, sid string) error
	// AdminLogin records the admin flag on success; the payload is discarded.
	AdminLogin(ctx context.Context, sid, email, password string) error
	// Browse fetches the product list fresh; there is no cache.
	Browse(ctx context.Context) ([]domain.Product, error)
	// AddProduct forwards the fields and credentials to the backend.
	AddProduct(ctx context.Context, fields domain.ProductFields, creds domain.AdminCredentials) error
	// CurrentIdentity reads the session for page chrome. Store failures
	// degrade to guest rather than erroring.
	CurrentIdentity(ctx context.Context, sid string) domain.Identity
	// IsAdmin reports the session's admin flag for route gating.
	IsAdmin(ctx context.Context, sid string) bool
}

package ports

import (
	"context"
	"encoding/json"
)

// SessionStore keeps each visitor's identity across requests, addressed by
// session id. The user payload and the admin flag live under separate keys
// and never clear each other.
//
// Decode policy: a stored payload that is no longer valid JSON is treated as
// absent. A corrupt session must never break a page render; it silently
// degrades the visitor to guest.
type SessionStore interface {
	// GetUser returns the persisted user payload, or nil when absent or
	// undecodable.
	GetUser(ctx context.Context, sid string) (json.RawMessage, error)
	// SetUser persists the backend-issued payload verbatim.
	SetUser(ctx context.Context, sid string, payload json.RawMessage) error
	ClearUser(ctx context.Context, sid string) error

	// GetAdminFlag reports whether an admin login succeeded for this session.
	GetAdminFlag(ctx context.Context, sid string) (bool, error)
	SetAdminFlag(ctx context.Context, sid string) error
	// ClearAdminFlag exists for completeness; no storefront route calls it.
	// The admin flag outlives user logout, matching long-standing behaviour.
	ClearAdminFlag(ctx context.Context, sid string) error
}

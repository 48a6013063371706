package domain

import "encoding/json"

// UserIdentity is the user payload issued by the backend on signup/login.
// The frontend keeps it verbatim and never interprets it beyond pulling a
// display name out for page chrome.
type UserIdentity struct {
	Raw json.RawMessage
}

// DisplayName extracts the "name" field from the stored payload, best effort.
// Returns empty when the payload has no usable name.
func (u *UserIdentity) DisplayName() string {
	if u == nil || len(u.Raw) == 0 {
		return ""
	}
	var partial struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(u.Raw, &partial); err != nil {
		return ""
	}
	return partial.Name
}

// Identity is what the frontend believes about the current visitor.
//
// User and Admin are persisted independently and are NOT mutually exclusive:
// logging in as a user does not clear the admin flag, and an admin login does
// not touch the user payload. Both can be set at once. This mirrors the two
// disjoint storage keys the storefront has always used.
type Identity struct {
	User  *UserIdentity
	Admin bool
}

// LoggedIn reports whether a user payload is present.
func (i Identity) LoggedIn() bool {
	return i.User != nil
}

package handler

import "github.com/fruito/storefront/internal/core/domain"

// Layout captures the chrome shared by every page: title and the visitor's
// identity as far as the session store knows it.
type Layout struct {
	Title    string
	LoggedIn bool
	UserName string
	Admin    bool
}

func layoutFor(title string, identity domain.Identity) Layout {
	return Layout{
		Title:    title,
		LoggedIn: identity.LoggedIn(),
		UserName: identity.User.DisplayName(),
		Admin:    identity.Admin,
	}
}

// FormPage backs the login, signup, and admin login views. Error is the
// message re-rendered above the form after a failed submit.
type FormPage struct {
	Layout Layout
	Error  string
}

// ShopPage backs the product grid.
type ShopPage struct {
	Layout   Layout
	Error    string
	Products []domain.Product
}

// DashboardPage backs the admin dashboard. ShowInventory is false when the
// product list was deliberately not refreshed (after a failed create).
type DashboardPage struct {
	Layout        Layout
	Error         string
	Success       string
	ShowInventory bool
	Products      []domain.Product
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fruito/storefront/internal/core/domain"
	"github.com/fruito/storefront/internal/core/ports"
)

// AdminHandler serves the admin gate page and the gated dashboard.
type AdminHandler struct {
	service ports.StorefrontService
}

func NewAdminHandler(service ports.StorefrontService) *AdminHandler {
	return &AdminHandler{service: service}
}

// productForm carries the raw dashboard form. Price and stock stay strings
// here: empty or junk input coerces to zero instead of failing the bind, and
// whether the resulting product is acceptable is the backend's call. No
// validate tags on purpose; a rejected product surfaces the backend's own
// message.
type productForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Stock       string `form:"stock"`
	Email       string `form:"email"`
	Password    string `form:"password"`
}

// Gate handles GET /admin, the public landing page for the admin area.
func (h *AdminHandler) Gate(c echo.Context) error {
	identity := h.service.CurrentIdentity(c.Request().Context(), sessionID(c))
	return c.Render(http.StatusOK, "admin_gate.html", FormPage{Layout: layoutFor("Admin Area", identity)})
}

// Dashboard handles GET /admin/dashboard (behind the AdminGate middleware).
// Renders the add-product form and a fresh inventory listing.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return h.renderDashboard(c, dashboardState{refreshInventory: true})
}

// CreateProduct handles POST /admin/products (behind the AdminGate
// middleware). On failure the dashboard re-renders with the surfaced message
// and the inventory is not refreshed.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return h.renderDashboard(c, dashboardState{errMsg: "Failed"})
	}

	fields := domain.ProductFields{
		Name:        form.Name,
		Description: form.Description,
		Price:       parseFloatOrZero(form.Price),
		Stock:       parseIntOrZero(form.Stock),
	}
	creds := domain.AdminCredentials{Email: form.Email, Password: form.Password}

	if err := h.service.AddProduct(c.Request().Context(), fields, creds); err != nil {
		if re, ok := domain.AsRequestError(err); ok {
			return h.renderDashboard(c, dashboardState{errMsg: re.Message})
		}
		return err
	}

	return h.renderDashboard(c, dashboardState{success: "Product created", refreshInventory: true})
}

type dashboardState struct {
	errMsg           string
	success          string
	refreshInventory bool
}

func (h *AdminHandler) renderDashboard(c echo.Context, state dashboardState) error {
	ctx := c.Request().Context()
	identity := h.service.CurrentIdentity(ctx, sessionID(c))

	page := DashboardPage{
		Layout:  layoutFor("Admin Dashboard", identity),
		Error:   state.errMsg,
		Success: state.success,
	}

	if state.refreshInventory {
		products, err := h.service.Browse(ctx)
		if err != nil {
			if re, ok := domain.AsRequestError(err); ok && page.Error == "" {
				page.Error = re.Message
			}
		} else {
			page.ShowInventory = true
			page.Products = products
		}
	}

	return c.Render(http.StatusOK, "admin_dashboard.html", page)
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fruito/storefront/internal/core/domain"
	"github.com/fruito/storefront/internal/core/ports"
)

// ShopHandler serves the public pages: home and the product grid.
type ShopHandler struct {
	service ports.StorefrontService
}

func NewShopHandler(service ports.StorefrontService) *ShopHandler {
	return &ShopHandler{service: service}
}

// Home handles GET /.
func (h *ShopHandler) Home(c echo.Context) error {
	identity := h.service.CurrentIdentity(c.Request().Context(), sessionID(c))
	return c.Render(http.StatusOK, "home.html", FormPage{Layout: layoutFor("Fresh fruit", identity)})
}

// Shop handles GET /shop. The product list is fetched fresh on every visit;
// a backend failure renders the page with the surfaced message and an empty
// grid rather than an error page.
func (h *ShopHandler) Shop(c echo.Context) error {
	ctx := c.Request().Context()
	identity := h.service.CurrentIdentity(ctx, sessionID(c))

	page := ShopPage{Layout: layoutFor("Shop", identity)}
	products, err := h.service.Browse(ctx)
	if err != nil {
		if re, ok := domain.AsRequestError(err); ok {
			page.Error = re.Message
		} else {
			return err
		}
	}
	page.Products = products

	return c.Render(http.StatusOK, "shop.html", page)
}

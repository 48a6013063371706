package domain

// Product is the read-only projection of a backend product. The frontend
// never mutates products; each listing fully replaces the previous one.
type Product struct {
	// ID is an opaque backend identifier; the backend may issue numbers or
	// strings, so it is decoded without assuming either.
	ID          any     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ProductFields carries the admin-entered fields for a new product.
type ProductFields struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// AdminCredentials are re-sent with every product creation. The backend
// verifies them on each call; the session's admin flag never authorizes a
// request, it only gates client-side rendering.
type AdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

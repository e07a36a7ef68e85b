package resources

import (
	"time"

	"github.com/dev-saiful/go-storefront/core"
)

type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	CategoryID  int64    `json:"category_id,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Total    float64    `json:"total"`
}

type Order struct {
	ID        int64       `json:"id"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Review struct {
	ID        int64      `json:"id"`
	ProductID int64      `json:"product_id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	Author    string     `json:"author,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type WishlistItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Page is one page of a listed collection plus the backend's pagination
// meta.
type Page[T any] struct {
	Items []T
	Meta  core.PageMeta
}

func decodePage[T any](envelope core.Envelope) (Page[T], error) {
	page := Page[T]{}
	if err := envelope.DecodeData(&page.Items); err != nil {
		return Page[T]{}, err
	}
	if envelope.Meta != nil {
		page.Meta = *envelope.Meta
	}
	return page, nil
}

func decodeOne[T any](envelope core.Envelope) (T, error) {
	var value T
	if err := envelope.DecodeData(&value); err != nil {
		return value, err
	}
	return value, nil
}

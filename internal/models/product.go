// internal/models/product.go
package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/javajoker/storefront/internal/utils"
)

// Default stock per variant when the caller does not supply one.
const (
	DefaultProductQuantity  = 0
	DefaultDigitalQuantity  = 1
	DefaultPhysicalQuantity = 0
)

// Product is the capability set shared by every catalog variant. The set of
// implementations is closed: BaseProduct, DigitalProduct and PhysicalProduct.
type Product interface {
	ID() string
	Name() string
	Price() float64
	Quantity() int
	Type() ProductType
	Details() Details
	UpdateQuantity(delta int) error
	ApplyDiscount(percent float64) error
	String() string

	base() *BaseProduct
}

// ProductParams are the fields common to every variant. A nil Quantity selects
// the variant default; an empty ID is replaced by a generated one.
type ProductParams struct {
	ID       string  `json:"product_id"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0,finite"`
	Quantity *int    `json:"quantity" validate:"omitempty,min=0"`
}

// BaseProduct is the generic catalog item.
type BaseProduct struct {
	id       string
	name     string
	price    float64
	quantity int
}

func NewProduct(params ProductParams) (*BaseProduct, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	p := newBaseProduct(params, DefaultProductQuantity)
	return &p, nil
}

func newBaseProduct(params ProductParams, defaultQuantity int) BaseProduct {
	p := BaseProduct{
		id:       params.ID,
		name:     params.Name,
		price:    params.Price,
		quantity: defaultQuantity,
	}
	if p.id == "" {
		p.id = uuid.NewString()
	}
	if params.Quantity != nil {
		p.quantity = *params.Quantity
	}
	return p
}

func validateParams(params interface{}) error {
	if err := utils.ValidateStruct(params); err != nil {
		return invalidArgument("%s", utils.ValidationMessage(err))
	}
	return nil
}

func (p *BaseProduct) ID() string        { return p.id }
func (p *BaseProduct) Name() string      { return p.name }
func (p *BaseProduct) Price() float64    { return p.price }
func (p *BaseProduct) Quantity() int     { return p.quantity }
func (p *BaseProduct) Type() ProductType { return ProductTypeGeneric }
func (p *BaseProduct) base() *BaseProduct {
	return p
}

func (p *BaseProduct) Details() Details {
	return p.details(ProductTypeGeneric)
}

func (p *BaseProduct) details(t ProductType) Details {
	return Details{
		"product_id": p.id,
		"name":       p.name,
		"price":      p.price,
		"quantity":   p.quantity,
		"type":       string(t),
	}
}

// UpdateQuantity applies delta to the stock. The result may reach zero but
// never go below it.
func (p *BaseProduct) UpdateQuantity(delta int) error {
	if p.quantity+delta < 0 {
		return invalidState("quantity cannot be reduced below zero (current %d, change %d)", p.quantity, delta)
	}
	p.quantity += delta
	return nil
}

// ApplyDiscount lowers the price by percent (0 to 100 inclusive) and rounds
// the result to cents.
func (p *BaseProduct) ApplyDiscount(percent float64) error {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return invalidArgument("discount percentage must be between 0 and 100, got %v", percent)
	}
	p.price = RoundMoney(p.price * (1 - percent/100))
	return nil
}

func (p *BaseProduct) String() string {
	return fmt.Sprintf("Product(name='%s', price=%v, id='%s', quantity=%d)", p.name, p.price, p.id, p.quantity)
}

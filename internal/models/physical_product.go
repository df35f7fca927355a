// internal/models/physical_product.go
package models

import (
	"fmt"
	"math"
	"strings"
)

// DefaultVolumetricFactor converts cubic centimetres to kilograms.
const DefaultVolumetricFactor = 5000

// Dimensions holds length, width and height in centimetres.
type Dimensions [3]float64

// Volume returns the box volume in cubic centimetres.
func (d Dimensions) Volume() float64 {
	return d[0] * d[1] * d[2]
}

type PhysicalProductParams struct {
	ProductParams
	WeightKg   float64    `json:"weight_kg" validate:"gt=0,finite"`
	Dimensions Dimensions `json:"shipping_dimensions_cm" validate:"dive,gt=0,finite"`
}

type PhysicalProduct struct {
	BaseProduct
	weightKg   float64
	dimensions Dimensions
}

func NewPhysicalProduct(params PhysicalProductParams) (*PhysicalProduct, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	return &PhysicalProduct{
		BaseProduct: newBaseProduct(params.ProductParams, DefaultPhysicalQuantity),
		weightKg:    params.WeightKg,
		dimensions:  params.Dimensions,
	}, nil
}

func (p *PhysicalProduct) Type() ProductType      { return ProductTypePhysical }
func (p *PhysicalProduct) WeightKg() float64      { return p.weightKg }
func (p *PhysicalProduct) Dimensions() Dimensions { return p.dimensions }

func (p *PhysicalProduct) Details() Details {
	details := p.details(ProductTypePhysical)
	details["weight_kg"] = p.weightKg
	details["shipping_dimensions_cm"] = p.dimensions
	return details
}

// CalculateShippingCost charges ratePerKg on the greater of the actual and the
// volumetric weight.
func (p *PhysicalProduct) CalculateShippingCost(ratePerKg float64, volumetricFactor int) (float64, error) {
	if math.IsNaN(ratePerKg) || math.IsInf(ratePerKg, 0) || ratePerKg <= 0 {
		return 0, invalidArgument("rate per kg must be a positive finite number")
	}
	if volumetricFactor <= 0 {
		return 0, invalidArgument("volumetric factor must be a positive integer")
	}

	volumetricWeight := p.dimensions.Volume() / float64(volumetricFactor)
	chargeable := math.Max(p.weightKg, volumetricWeight)
	return RoundMoney(chargeable * ratePerKg), nil
}

func (p *PhysicalProduct) String() string {
	return fmt.Sprintf("PhysicalProduct(name='%s', price=%v, id='%s', weight=%vkg)", p.name, p.price, p.id, p.weightKg)
}

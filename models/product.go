package models

import (
	"math"
	"time"
)

// SizeUniverse is the fixed set of shoe size codes the storefront renders
// availability for, whether or not a product carries them.
var SizeUniverse = []int{220, 230, 240, 250, 260, 265, 270, 275, 280, 285, 290, 295, 300, 305, 310}

// Product mirrors the upstream (Mongo-backed) product document.
type Product struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	DiscountRate   float64   `json:"discountRate"`
	Categories     []string  `json:"categories"`
	Materials      []string  `json:"materials"`
	AvailableSizes []int     `json:"availableSizes"`
	Images         []string  `json:"images"`
	Ranking        int       `json:"ranking,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// ProductView carries the presentation fields derived once per fetch.
type ProductView struct {
	Product
	DiscountedPrice int          `json:"discountedPrice"`
	IsSale          bool         `json:"isSale"`
	SizeStock       map[int]bool `json:"sizeStock"`
	ImageURLs       []string     `json:"imageUrls"`
}

// DiscountedPrice applies the discount rate to a raw price and rounds once.
// It must always be fed raw inputs, never a previously rounded result.
func DiscountedPrice(price, discountRate float64) int {
	return int(math.Round(price * (1 - discountRate/100)))
}

// SizeStock crosses the fixed size universe against a product's available
// sizes, yielding an availability flag per known size code.
func (p Product) SizeStock() map[int]bool {
	available := make(map[int]bool, len(p.AvailableSizes))
	for _, s := range p.AvailableSizes {
		available[s] = true
	}
	stock := make(map[int]bool, len(SizeUniverse))
	for _, s := range SizeUniverse {
		stock[s] = available[s]
	}
	return stock
}

package models

// Product represents a strawberry package offered in the storefront.
// Price is in whole won.
type Product struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Tagline   string     `json:"tagline" yaml:"tagline"`
	Price     int64      `json:"price" yaml:"price"`
	Unit      string     `json:"unit" yaml:"unit"`
	Image     string     `json:"image" yaml:"image"`
	Features  []string   `json:"features" yaml:"features"`
	Badge     string     `json:"badge,omitempty" yaml:"badge,omitempty"`
	IsPremium bool       `json:"isPremium,omitempty" yaml:"isPremium,omitempty"`
	Origin    *Origin    `json:"origin,omitempty" yaml:"origin,omitempty"`
	Nutrition *Nutrition `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
}

// Origin describes where a product is grown. Description may contain markdown.
type Origin struct {
	Location    string `json:"location" yaml:"location"`
	FarmName    string `json:"farmName" yaml:"farmName"`
	Description string `json:"description" yaml:"description"`
}

// Nutrition holds display strings, not measured values
type Nutrition struct {
	Calories     string `json:"calories" yaml:"calories"`
	SugarContent string `json:"sugarContent" yaml:"sugarContent"`
	VitaminC     string `json:"vitaminC" yaml:"vitaminC"`
	Fiber        string `json:"fiber" yaml:"fiber"`
}

// HasDetails reports whether the product carries an origin or nutrition block
func (p Product) HasDetails() bool {
	return p.Origin != nil || p.Nutrition != nil
}

// ProductDraft is the state of the admin "add product" form.
// Price is zero when the input was empty or not a number.
type ProductDraft struct {
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Price    int64    `json:"price"`
	Unit     string   `json:"unit"`
	Image    string   `json:"image"`
	Features []string `json:"features,omitempty"`
}

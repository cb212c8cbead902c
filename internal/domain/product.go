package domain

// RawProduct is an unvalidated product record as returned by Open Food
// Facts. Any field may be absent, null, or wrongly typed; consumers must
// degrade to documented defaults instead of failing.
type RawProduct map[string]any

// Product is the canonical summary entity normalized from a RawProduct.
type Product struct {
	Code             string         `json:"code"`
	Name             string         `json:"name"`
	Brand            string         `json:"brand"`
	Categories       string         `json:"categories"`
	Nutriscore       *string        `json:"nutriscore"`
	NovaGroup        *int           `json:"novaGroup"`
	Ecoscore         *string        `json:"ecoscore"`
	Ingredients      string         `json:"ingredients"`
	Allergens        string         `json:"allergens"`
	ImageURL         *string        `json:"imageUrl"`
	NutritionPer100g *Nutrition100g `json:"nutritionPer100g"`
}

// Nutrition100g holds the per-100g macronutrients of the summary view.
// Each field is independently nullable; the whole block is nil when the
// raw record carries no nutriment container at all.
type Nutrition100g struct {
	EnergyKcal    *float64 `json:"energy_kcal"`
	Fat           *float64 `json:"fat"`
	SaturatedFat  *float64 `json:"saturated_fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Sugars        *float64 `json:"sugars"`
	Fiber         *float64 `json:"fiber"`
	Protein       *float64 `json:"protein"`
	Salt          *float64 `json:"salt"`
	Sodium        *float64 `json:"sodium"`
}

// ProductLookup is the decoded envelope of a lookup-by-barcode response.
// Status 1 is the single "found" sentinel; any other value means the
// product does not exist and Product may be entirely absent.
type ProductLookup struct {
	Status        int        `json:"status"`
	StatusVerbose string     `json:"status_verbose"`
	Product       RawProduct `json:"product"`
}

// ProductList is the decoded envelope of the search/category/brand
// listing responses. Count is the upstream-reported approximate total,
// which may exceed len(Products).
type ProductList struct {
	Count    int          `json:"count"`
	Products []RawProduct `json:"products"`
}

package domain

// NutritionDetail is the extended projection served by the nutrition
// endpoint. It assumes the caller already confirmed the record is a
// found product.
type NutritionDetail struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	ServingSize string           `json:"servingSize"`
	Nutriscore  NutriscoreDetail `json:"nutriscore"`
	Nova        NovaDetail       `json:"nova"`
	Ecoscore    EcoscoreDetail   `json:"ecoscore"`
	Per100g     NutrientSet      `json:"nutritionPer100g"`
	PerServing  *NutrientSet     `json:"nutritionPerServing"`
	Ingredients IngredientsInfo  `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
}

// NutriscoreDetail carries the Nutri-Score letter grade and its
// underlying numeric score.
type NutriscoreDetail struct {
	Grade *string `json:"grade"`
	Score *int    `json:"score"`
}

// NovaDetail carries the NOVA processing group and its human name.
type NovaDetail struct {
	Group *int   `json:"group"`
	Name  string `json:"name"`
}

// EcoscoreDetail carries the Eco-Score letter grade and numeric score.
type EcoscoreDetail struct {
	Grade *string `json:"grade"`
	Score *int    `json:"score"`
}

// NutrientSet is the extended nutrient block used per 100g and, when a
// serving size is known, per serving. Each field is independently
// nullable.
type NutrientSet struct {
	EnergyKcal    *float64 `json:"energy_kcal"`
	Fat           *float64 `json:"fat"`
	SaturatedFat  *float64 `json:"saturated_fat"`
	TransFat      *float64 `json:"trans_fat"`
	Cholesterol   *float64 `json:"cholesterol"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Sugars        *float64 `json:"sugars"`
	Fiber         *float64 `json:"fiber"`
	Protein       *float64 `json:"protein"`
	Salt          *float64 `json:"salt"`
	Sodium        *float64 `json:"sodium"`
	Calcium       *float64 `json:"calcium"`
	Iron          *float64 `json:"iron"`
	Potassium     *float64 `json:"potassium"`
}

// IngredientsInfo summarizes the ingredient list of a product.
type IngredientsInfo struct {
	Text         string `json:"text"`
	Count        int    `json:"count"`
	PalmOilCount int    `json:"palmOilCount"`
}

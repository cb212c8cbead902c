package openfoodfacts

import (
	"strconv"
	"strings"

	"github.com/nutrigate/backend/internal/domain"
)

// Candidate upstream field names, in fallback order.
var (
	codeFields  = []string{"code", "_id"}
	nameFields  = []string{"product_name", "product_name_en", "generic_name"}
	imageFields = []string{"image_url", "image_front_url"}
)

// novaGroupNames maps NOVA processing groups to their standard names.
var novaGroupNames = map[int]string{
	1: "Unprocessed or minimally processed foods",
	2: "Processed culinary ingredients",
	3: "Processed foods",
	4: "Ultra-processed foods",
}

// MapToProduct converts one raw upstream record into the canonical
// summary Product. A nil record maps to nil; callers building lists must
// drop those entries. Every field degrades independently to its
// documented default, so the function never fails on partial data.
func MapToProduct(raw domain.RawProduct) *domain.Product {
	if raw == nil {
		return nil
	}

	return &domain.Product{
		Code:             stringField(raw, "", codeFields...),
		Name:             stringField(raw, "Unknown", nameFields...),
		Brand:            stringField(raw, "Unknown", "brands"),
		Categories:       stringField(raw, "", "categories"),
		Nutriscore:       stringPtr(raw, "nutriscore_grade"),
		NovaGroup:        intPtr(raw, "nova_group"),
		Ecoscore:         stringPtr(raw, "ecoscore_grade"),
		Ingredients:      stringField(raw, "", "ingredients_text"),
		Allergens:        stringField(raw, "", "allergens"),
		ImageURL:         stringPtr(raw, imageFields...),
		NutritionPer100g: mapNutrition100g(raw),
	}
}

// MapToNutritionDetail converts a raw record into the extended
// NutritionDetail projection. The caller must already have confirmed the
// record represents a found product.
func MapToNutritionDetail(raw domain.RawProduct) *domain.NutritionDetail {
	servingSize := stringField(raw, "", "serving_size")
	nutriments := nutrimentContainer(raw)

	detail := &domain.NutritionDetail{
		Code:        stringField(raw, "", codeFields...),
		Name:        stringField(raw, "Unknown", nameFields...),
		Brand:       stringField(raw, "Unknown", "brands"),
		ServingSize: servingSize,
		Nutriscore: domain.NutriscoreDetail{
			Grade: stringPtr(raw, "nutriscore_grade"),
			Score: intPtr(raw, "nutriscore_score"),
		},
		Nova: domain.NovaDetail{
			Group: intPtr(raw, "nova_group"),
		},
		Ecoscore: domain.EcoscoreDetail{
			Grade: stringPtr(raw, "ecoscore_grade"),
			Score: intPtr(raw, "ecoscore_score"),
		},
		Ingredients: domain.IngredientsInfo{
			Text:         stringField(raw, "", "ingredients_text"),
			Count:        intValue(raw, "ingredients_n"),
			PalmOilCount: intValue(raw, "ingredients_from_palm_oil_n"),
		},
		Allergens: allergenTags(raw),
	}

	if detail.Nova.Group != nil {
		detail.Nova.Name = novaGroupNames[*detail.Nova.Group]
	}

	if nutriments != nil {
		detail.Per100g = nutrientSet(nutriments, "_100g")
		// Per-serving block only when a serving size is actually known;
		// otherwise the whole block stays nil, never partially filled.
		if servingSize != "" {
			perServing := nutrientSet(nutriments, "_serving")
			detail.PerServing = &perServing
		}
	}

	return detail
}

// mapNutrition100g builds the summary nutrient block. The block exists
// only when the record carries a nutriment container; individual fields
// stay nil when absent.
func mapNutrition100g(raw domain.RawProduct) *domain.Nutrition100g {
	nutriments := nutrimentContainer(raw)
	if nutriments == nil {
		return nil
	}

	return &domain.Nutrition100g{
		EnergyKcal:    floatPtr(nutriments, "energy-kcal_100g"),
		Fat:           floatPtr(nutriments, "fat_100g"),
		SaturatedFat:  floatPtr(nutriments, "saturated-fat_100g"),
		Carbohydrates: floatPtr(nutriments, "carbohydrates_100g"),
		Sugars:        floatPtr(nutriments, "sugars_100g"),
		Fiber:         floatPtr(nutriments, "fiber_100g"),
		Protein:       floatPtr(nutriments, "proteins_100g"),
		Salt:          floatPtr(nutriments, "salt_100g"),
		Sodium:        floatPtr(nutriments, "sodium_100g"),
	}
}

// nutrientSet reads the extended nutrient block for a key suffix
// ("_100g" or "_serving").
func nutrientSet(nutriments map[string]any, suffix string) domain.NutrientSet {
	return domain.NutrientSet{
		EnergyKcal:    floatPtr(nutriments, "energy-kcal"+suffix),
		Fat:           floatPtr(nutriments, "fat"+suffix),
		SaturatedFat:  floatPtr(nutriments, "saturated-fat"+suffix),
		TransFat:      floatPtr(nutriments, "trans-fat"+suffix),
		Cholesterol:   floatPtr(nutriments, "cholesterol"+suffix),
		Carbohydrates: floatPtr(nutriments, "carbohydrates"+suffix),
		Sugars:        floatPtr(nutriments, "sugars"+suffix),
		Fiber:         floatPtr(nutriments, "fiber"+suffix),
		Protein:       floatPtr(nutriments, "proteins"+suffix),
		Salt:          floatPtr(nutriments, "salt"+suffix),
		Sodium:        floatPtr(nutriments, "sodium"+suffix),
		Calcium:       floatPtr(nutriments, "calcium"+suffix),
		Iron:          floatPtr(nutriments, "iron"+suffix),
		Potassium:     floatPtr(nutriments, "potassium"+suffix),
	}
}

// nutrimentContainer returns the nutriment map of a record, or nil when
// the record carries none.
func nutrimentContainer(raw domain.RawProduct) map[string]any {
	if m, ok := raw["nutriments"].(map[string]any); ok {
		return m
	}
	return nil
}

// allergenTags reads the upstream allergen tag list and strips the
// 3-character locale prefix ("en:") from each tag, preserving order.
// Tags without a locale prefix pass through unchanged.
func allergenTags(raw domain.RawProduct) []string {
	items, ok := raw["allergens_tags"].([]any)
	if !ok {
		return []string{}
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		tag, ok := item.(string)
		if !ok {
			continue
		}
		tags = append(tags, stripLocalePrefix(tag))
	}
	return tags
}

// stripLocalePrefix removes a leading "xx:" locale marker from a tag.
func stripLocalePrefix(tag string) string {
	if len(tag) > 3 && tag[2] == ':' {
		return tag[3:]
	}
	return tag
}

// stringField returns the first candidate field that is present and
// non-empty, coercing numeric values to their decimal form (barcodes
// sometimes arrive as numbers). Otherwise it returns def.
func stringField(raw domain.RawProduct, def string, keys ...string) string {
	for _, key := range keys {
		if s := coerceString(raw[key]); s != "" {
			return s
		}
	}
	return def
}

// stringPtr is stringField with a nil default, for nullable fields.
func stringPtr(raw domain.RawProduct, keys ...string) *string {
	for _, key := range keys {
		if s := coerceString(raw[key]); s != "" {
			return &s
		}
	}
	return nil
}

// intPtr reads the first candidate as an integer, accepting numbers and
// numeric strings. Absent or non-numeric values yield nil.
func intPtr(raw domain.RawProduct, keys ...string) *int {
	for _, key := range keys {
		if f, ok := coerceFloat(raw[key]); ok {
			n := int(f)
			return &n
		}
	}
	return nil
}

// intValue is intPtr collapsed to a zero default.
func intValue(raw domain.RawProduct, keys ...string) int {
	if n := intPtr(raw, keys...); n != nil {
		return *n
	}
	return 0
}

// floatPtr reads one nutriment value, accepting numbers and numeric
// strings. Absent or non-numeric values yield nil.
func floatPtr(m map[string]any, key string) *float64 {
	if f, ok := coerceFloat(m[key]); ok {
		return &f
	}
	return nil
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

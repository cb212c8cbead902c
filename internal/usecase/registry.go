package usecase

// EndpointSpec is the static declaration of one priced endpoint: its
// key, human description, input schema, and price in smallest currency
// units. The registry is built once at startup and read-only afterwards;
// the overview catalog is generated from it so the two can never drift.
type EndpointSpec struct {
	Key         string            `json:"key"`
	Description string            `json:"description"`
	Input       map[string]string `json:"input"`
	Price       int64             `json:"price"`
}

var endpointSpecs = []EndpointSpec{
	{
		Key:         "overview",
		Description: "Free capability overview with one live sample product",
		Input:       map[string]string{},
		Price:       0,
	},
	{
		Key:         "barcode",
		Description: "Look up a single product by barcode",
		Input:       map[string]string{"barcode": "product barcode, non-empty"},
		Price:       1000,
	},
	{
		Key:         "search",
		Description: "Full-text product search",
		Input: map[string]string{
			"query": "free-text search terms",
			"limit": "max results, 1-50, default 10",
		},
		Price: 2000,
	},
	{
		Key:         "category",
		Description: "List products in a category",
		Input: map[string]string{
			"category": "category name, slugged server-side",
			"limit":    "max results, 1-50, default 10",
		},
		Price: 2000,
	},
	{
		Key:         "brand",
		Description: "List products of a brand",
		Input: map[string]string{
			"brand": "brand name, slugged server-side",
			"limit": "max results, 1-50, default 10",
		},
		Price: 2000,
	},
	{
		Key:         "nutrition",
		Description: "Extended nutrition analysis for one product",
		Input:       map[string]string{"barcode": "product barcode, non-empty"},
		Price:       3000,
	},
}

// Endpoints returns the full endpoint registry. The result is a copy so
// callers cannot mutate the process-wide declarations.
func Endpoints() []EndpointSpec {
	specs := make([]EndpointSpec, len(endpointSpecs))
	copy(specs, endpointSpecs)
	return specs
}

// EndpointByKey returns the spec for one endpoint key.
func EndpointByKey(key string) (EndpointSpec, bool) {
	for _, spec := range endpointSpecs {
		if spec.Key == key {
			return spec, true
		}
	}
	return EndpointSpec{}, false
}

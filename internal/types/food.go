package types

// FoodSource marks where a food item came from. It is used for merge
// ordering only: curated local entries always rank before remote ones.
type FoodSource string

const (
	FoodSourceLocal         FoodSource = "local"
	FoodSourceOpenFoodFacts FoodSource = "openfoodfacts"
)

// NutritionInfo holds nutrient values for one stated serving.
// Fiber, sugar and sodium are optional and stay nil when the source item
// never carried them.
type NutritionInfo struct {
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *int     `json:"sodium,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `json:"serving_unit"`
}

// FoodItem is the normalized food record produced by the search
// aggregator. Items are built fresh on every search and read-only once
// returned. Local and remote id namespaces are disjoint ("th_" vs "off_").
type FoodItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	NameEn    string        `json:"name_en"`
	Brand     *string       `json:"brand,omitempty"`
	Category  string        `json:"category"`
	Nutrition NutritionInfo `json:"nutrition"`
	Image     *string       `json:"image,omitempty"`
	Barcode   *string       `json:"barcode,omitempty"`
	Source    FoodSource    `json:"source"`
	Emoji     *string       `json:"emoji,omitempty"`
}

// SearchResult is one page of merged search results.
type SearchResult struct {
	Foods   []FoodItem `json:"foods"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	HasMore bool       `json:"has_more"`
}

// SearchOptions controls a combined food search.
type SearchOptions struct {
	Category   string
	IncludeAPI bool
	Page       int
	PageSize   int
}

// FoodCategory is one entry of the fixed category list.
type FoodCategory struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
	Icon   string `json:"icon"`
}

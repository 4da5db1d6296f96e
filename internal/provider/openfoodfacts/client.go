// Package openfoodfacts is a thin client for the Open Food Facts search
// and product APIs. It normalizes remote products into the common food
// item schema at the ingestion boundary; callers decide how to handle
// its errors.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bytetrack/backend/internal/types"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "ByteTrack/1.0 (https://bytetrack.app)"

	searchFields = "code,product_name,product_name_en,brands,categories,image_url,nutriments,serving_size,serving_quantity"
)

// Client talks to the Open Food Facts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type product struct {
	Code          string  `json:"code"`
	ProductName   string  `json:"product_name"`
	ProductNameEn string  `json:"product_name_en"`
	Brands        string  `json:"brands"`
	Categories    string  `json:"categories"`
	ImageURL      string  `json:"image_url"`
	ServingSize   string  `json:"serving_size"`
	Nutriments    struct {
		EnergyKcal100g    float64 `json:"energy-kcal_100g"`
		Proteins100g      float64 `json:"proteins_100g"`
		Carbohydrates100g float64 `json:"carbohydrates_100g"`
		Fat100g           float64 `json:"fat_100g"`
		Fiber100g         float64 `json:"fiber_100g"`
		Sugars100g        float64 `json:"sugars_100g"`
		Sodium100g        float64 `json:"sodium_100g"`
	} `json:"nutriments"`
}

type searchResponse struct {
	Count    int       `json:"count"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Products []product `json:"products"`
}

type productResponse struct {
	Status  int     `json:"status"`
	Product product `json:"product"`
}

// Search queries the free-text search endpoint. Pages are 1-based.
// Products without a name in any language are dropped from the result.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (types.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	u, err := url.Parse(c.baseURL + "/cgi/search.pl")
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("parse search URL: %w", err)
	}
	q := u.Query()
	q.Set("search_terms", query)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	q.Set("fields", searchFields)
	u.RawQuery = q.Encode()

	var parsed searchResponse
	if err := c.get(ctx, u.String(), &parsed); err != nil {
		return types.SearchResult{}, err
	}

	foods := make([]types.FoodItem, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if item := normalize(p); item != nil {
			foods = append(foods, *item)
		}
	}

	return types.SearchResult{
		Foods:   foods,
		Total:   parsed.Count,
		Page:    parsed.Page,
		HasMore: parsed.Page*parsed.PageSize < parsed.Count,
	}, nil
}

// Barcode looks up a single product by its barcode.
func (c *Client) Barcode(ctx context.Context, barcode string) (*types.FoodItem, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(barcode))

	var parsed productResponse
	if err := c.get(ctx, u, &parsed); err != nil {
		return nil, err
	}
	if parsed.Status != 1 {
		return nil, fmt.Errorf("no product found for barcode %q", barcode)
	}

	item := normalize(parsed.Product)
	if item == nil {
		return nil, fmt.Errorf("product %q has no usable name", barcode)
	}
	return item, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// normalize maps a remote product onto the common schema. Per-100g
// nutrient values become the canonical payload; absent fields coerce to
// zero so downstream arithmetic stays safe. Returns nil for products
// missing a name in every language.
func normalize(p product) *types.FoodItem {
	if p.ProductName == "" && p.ProductNameEn == "" {
		return nil
	}

	name := p.ProductName
	if name == "" {
		name = p.ProductNameEn
	}
	nameEn := p.ProductNameEn
	if nameEn == "" {
		nameEn = p.ProductName
	}

	size, unit := parseServingSize(p.ServingSize)

	item := &types.FoodItem{
		ID:       "off_" + p.Code,
		Name:     name,
		NameEn:   nameEn,
		Category: firstCategory(p.Categories),
		Nutrition: types.NutritionInfo{
			Calories:    int(p.Nutriments.EnergyKcal100g + 0.5),
			Protein:     roundOne(p.Nutriments.Proteins100g),
			Carbs:       roundOne(p.Nutriments.Carbohydrates100g),
			Fat:         roundOne(p.Nutriments.Fat100g),
			ServingSize: size,
			ServingUnit: unit,
		},
		Source: types.FoodSourceOpenFoodFacts,
	}

	if p.Nutriments.Fiber100g > 0 {
		v := roundOne(p.Nutriments.Fiber100g)
		item.Nutrition.Fiber = &v
	}
	if p.Nutriments.Sugars100g > 0 {
		v := roundOne(p.Nutriments.Sugars100g)
		item.Nutrition.Sugar = &v
	}
	if p.Nutriments.Sodium100g > 0 {
		v := int(p.Nutriments.Sodium100g + 0.5)
		item.Nutrition.Sodium = &v
	}
	if p.Code != "" {
		code := p.Code
		item.Barcode = &code
	}
	if p.ImageURL != "" {
		img := p.ImageURL
		item.Image = &img
	}
	if p.Brands != "" {
		brand := p.Brands
		item.Brand = &brand
	}

	return item
}

var servingSizeRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(g|ml|oz|cup|tbsp|tsp)?`)

// parseServingSize parses strings like "30 g" or "250ml" heuristically,
// defaulting to 100 g when unparseable.
func parseServingSize(servingSize string) (float64, string) {
	if servingSize == "" {
		return 100, "g"
	}
	m := servingSizeRe.FindStringSubmatch(servingSize)
	if m == nil {
		return 100, "g"
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil || size <= 0 {
		return 100, "g"
	}
	unit := strings.ToLower(m[2])
	if unit == "" {
		unit = "g"
	}
	return size, unit
}

func firstCategory(categories string) string {
	if categories == "" {
		return "other"
	}
	if i := strings.IndexByte(categories, ','); i >= 0 {
		categories = categories[:i]
	}
	return strings.TrimSpace(categories)
}

func roundOne(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

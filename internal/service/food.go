package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bytetrack/backend/internal/catalog"
	"github.com/bytetrack/backend/internal/types"
)

// barcodeCacheTTL is how long Open Food Facts barcode lookups are kept
// in Redis before they are fetched again.
const barcodeCacheTTL = 7 * 24 * time.Hour

// FoodProvider is the contract the aggregator requires from the remote
// nutrition lookup service.
type FoodProvider interface {
	Search(ctx context.Context, query string, page, pageSize int) (types.SearchResult, error)
	Barcode(ctx context.Context, barcode string) (*types.FoodItem, error)
}

var _ IFoodService = (*FoodService)(nil)

// FoodService resolves food searches against the curated local catalog
// and the remote lookup service. Remote failures never surface to the
// caller; the service degrades to local-only results.
type FoodService struct {
	provider FoodProvider
	redis    *redis.Client
}

// NewFoodService creates a new FoodService. The Redis client is optional;
// without one, barcode lookups simply skip the cache.
func NewFoodService(provider FoodProvider, redisClient *redis.Client) *FoodService {
	return &FoodService{
		provider: provider,
		redis:    redisClient,
	}
}

// SearchLocal filters the curated catalog by category and query.
func (s *FoodService) SearchLocal(query, category string) []types.FoodItem {
	return catalog.Search(query, category)
}

// Categories returns the fixed category list.
func (s *FoodService) Categories() []types.FoodCategory {
	return catalog.Categories()
}

// SearchFoods merges local and remote results into one page. Local
// results are curated and always rank first; page 1 carries all of them,
// later pages are remote-only. The function never fails: any remote
// error is logged and contributes an empty result set.
func (s *FoodService) SearchFoods(ctx context.Context, query string, opts types.SearchOptions) types.SearchResult {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	local := catalog.Search(query, opts.Category)

	// Local-only path: the remote service is never contacted when the
	// caller opted out or local matches already fill the page.
	if !opts.IncludeAPI || len(local) >= pageSize {
		start := (page - 1) * pageSize
		end := start + pageSize
		if start > len(local) {
			start = len(local)
		}
		if end > len(local) {
			end = len(local)
		}
		return types.SearchResult{
			Foods:   local[start:end],
			Total:   len(local),
			Page:    page,
			HasMore: (page-1)*pageSize+pageSize < len(local),
		}
	}

	remote := s.searchRemote(ctx, query, page, pageSize-len(local))

	foods := remote.Foods
	if page == 1 {
		foods = append(append([]types.FoodItem{}, local...), remote.Foods...)
	}

	return types.SearchResult{
		Foods:   foods,
		Total:   len(local) + remote.Total,
		Page:    page,
		HasMore: remote.HasMore,
	}
}

// searchRemote wraps the provider call with the degradation contract: a
// failed or absent provider yields the empty result set.
func (s *FoodService) searchRemote(ctx context.Context, query string, page, pageSize int) types.SearchResult {
	empty := types.SearchResult{Foods: []types.FoodItem{}, Total: 0, Page: 1, HasMore: false}

	if s.provider == nil {
		return empty
	}

	result, err := s.provider.Search(ctx, query, page, pageSize)
	if err != nil {
		log.Printf("food search: remote lookup failed, falling back to local results: %v", err)
		return empty
	}
	if result.Foods == nil {
		result.Foods = []types.FoodItem{}
	}
	return result
}

// LookupBarcode resolves a product by barcode, consulting the Redis
// cache before the remote service.
func (s *FoodService) LookupBarcode(ctx context.Context, barcode string) (*types.FoodItem, error) {
	key := "off:barcode:" + barcode

	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var cached types.FoodItem
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	if s.provider == nil {
		return nil, fmt.Errorf("no food provider configured")
	}

	item, err := s.provider.Barcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(item); err == nil {
			if err := s.redis.Set(ctx, key, data, barcodeCacheTTL).Err(); err != nil {
				log.Printf("food search: failed to cache barcode %s: %v", barcode, err)
			}
		}
	}

	return item, nil
}

// ServingNutrition scales a food's nutrition to the given number of
// servings. Calories round to whole kcal, macro grams to one decimal.
// Optional fields absent on the source stay absent; scaling never
// fabricates data the item never carried.
func (s *FoodService) ServingNutrition(food types.FoodItem, servings float64) types.NutritionInfo {
	n := food.Nutrition

	out := types.NutritionInfo{
		Calories:    int(math.Round(float64(n.Calories) * servings)),
		Protein:     roundTenth(n.Protein * servings),
		Carbs:       roundTenth(n.Carbs * servings),
		Fat:         roundTenth(n.Fat * servings),
		ServingSize: math.Round(n.ServingSize * servings),
		ServingUnit: n.ServingUnit,
	}

	if n.Fiber != nil {
		v := roundTenth(*n.Fiber * servings)
		out.Fiber = &v
	}
	if n.Sugar != nil {
		v := roundTenth(*n.Sugar * servings)
		out.Sugar = &v
	}
	if n.Sodium != nil {
		v := int(math.Round(float64(*n.Sodium) * servings))
		out.Sodium = &v
	}

	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

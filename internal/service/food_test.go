package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetrack/backend/internal/types"
)

// stubProvider is a scripted FoodProvider for aggregator tests.
type stubProvider struct {
	result    types.SearchResult
	item      *types.FoodItem
	err       error
	calls     int
	lastQuery string
	lastPage  int
	lastSize  int
}

func (p *stubProvider) Search(ctx context.Context, query string, page, pageSize int) (types.SearchResult, error) {
	p.calls++
	p.lastQuery = query
	p.lastPage = page
	p.lastSize = pageSize
	if p.err != nil {
		return types.SearchResult{}, p.err
	}
	return p.result, nil
}

func (p *stubProvider) Barcode(ctx context.Context, barcode string) (*types.FoodItem, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.item, nil
}

func remoteFood(id, name string) types.FoodItem {
	return types.FoodItem{
		ID:     "off_" + id,
		Name:   name,
		NameEn: name,
		Source: types.FoodSourceOpenFoodFacts,
		Nutrition: types.NutritionInfo{
			Calories:    100,
			ServingSize: 100,
			ServingUnit: "g",
		},
	}
}

func TestSearchFoodsLocalOnlyWhenAPIDisabled(t *testing.T) {
	provider := &stubProvider{}
	s := NewFoodService(provider, nil)

	result := s.SearchFoods(context.Background(), "xyzzznonexistent", types.SearchOptions{
		IncludeAPI: false,
		Page:       1,
		PageSize:   20,
	})

	assert.NotNil(t, result.Foods)
	assert.Empty(t, result.Foods)
	assert.Equal(t, 0, result.Total)
	assert.False(t, result.HasMore)
	assert.Zero(t, provider.calls, "remote service must not be contacted")
}

func TestSearchFoodsLocalFillsPage(t *testing.T) {
	provider := &stubProvider{}
	s := NewFoodService(provider, nil)

	// 20 local entries against a page size of 5: remote never called
	result := s.SearchFoods(context.Background(), "", types.SearchOptions{
		IncludeAPI: true,
		Page:       1,
		PageSize:   5,
	})

	require.Len(t, result.Foods, 5)
	assert.Equal(t, "th_1", result.Foods[0].ID)
	assert.Equal(t, 20, result.Total)
	assert.True(t, result.HasMore)
	assert.Zero(t, provider.calls)

	// later pages slice deeper into the local catalog
	page4 := s.SearchFoods(context.Background(), "", types.SearchOptions{
		IncludeAPI: true,
		Page:       4,
		PageSize:   5,
	})
	require.Len(t, page4.Foods, 5)
	assert.Equal(t, "th_16", page4.Foods[0].ID)
	assert.False(t, page4.HasMore)
}

func TestSearchFoodsMergesLocalAndRemote(t *testing.T) {
	provider := &stubProvider{
		result: types.SearchResult{
			Foods:   []types.FoodItem{remoteFood("100", "Curry Paste"), remoteFood("101", "Curry Powder")},
			Total:   50,
			Page:    1,
			HasMore: true,
		},
	}
	s := NewFoodService(provider, nil)

	result := s.SearchFoods(context.Background(), "curry", types.SearchOptions{
		IncludeAPI: true,
		Page:       1,
		PageSize:   20,
	})

	// two local curries rank first, remote results follow
	require.Len(t, result.Foods, 4)
	assert.Equal(t, "th_3", result.Foods[0].ID)
	assert.Equal(t, "th_13", result.Foods[1].ID)
	assert.Equal(t, "off_100", result.Foods[2].ID)
	assert.Equal(t, "off_101", result.Foods[3].ID)

	assert.Equal(t, 52, result.Total)
	assert.True(t, result.HasMore)

	// the remote request asked only for the remainder of the page
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "curry", provider.lastQuery)
	assert.Equal(t, 18, provider.lastSize)
}

func TestSearchFoodsPageTwoIsRemoteOnly(t *testing.T) {
	provider := &stubProvider{
		result: types.SearchResult{
			Foods:   []types.FoodItem{remoteFood("200", "Curry Sauce")},
			Total:   50,
			Page:    2,
			HasMore: false,
		},
	}
	s := NewFoodService(provider, nil)

	result := s.SearchFoods(context.Background(), "curry", types.SearchOptions{
		IncludeAPI: true,
		Page:       2,
		PageSize:   20,
	})

	require.Len(t, result.Foods, 1)
	assert.Equal(t, "off_200", result.Foods[0].ID)
	assert.Equal(t, 52, result.Total)
	assert.False(t, result.HasMore)
}

func TestSearchFoodsRemoteFailureDegradesToLocal(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	s := NewFoodService(provider, nil)

	result := s.SearchFoods(context.Background(), "curry", types.SearchOptions{
		IncludeAPI: true,
		Page:       1,
		PageSize:   20,
	})

	// local matches survive, remote contributes nothing, no error escapes
	require.Len(t, result.Foods, 2)
	assert.Equal(t, "th_3", result.Foods[0].ID)
	assert.Equal(t, 2, result.Total)
	assert.False(t, result.HasMore)
}

func TestSearchFoodsNilProvider(t *testing.T) {
	s := NewFoodService(nil, nil)

	result := s.SearchFoods(context.Background(), "curry", types.SearchOptions{
		IncludeAPI: true,
		Page:       1,
		PageSize:   20,
	})

	require.Len(t, result.Foods, 2)
	assert.Equal(t, 2, result.Total)
}

func TestSearchFoodsNoDuplicateIDs(t *testing.T) {
	provider := &stubProvider{
		result: types.SearchResult{
			Foods: []types.FoodItem{remoteFood("300", "Tom Yum Cup"), remoteFood("301", "Tom Yum Paste")},
			Total: 2,
			Page:  1,
		},
	}
	s := NewFoodService(provider, nil)

	result := s.SearchFoods(context.Background(), "tom yum", types.SearchOptions{
		IncludeAPI: true,
		Page:       1,
		PageSize:   20,
	})

	seen := make(map[string]bool)
	for _, item := range result.Foods {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestLookupBarcode(t *testing.T) {
	want := remoteFood("8850123456789", "Instant Noodles")
	provider := &stubProvider{item: &want}
	s := NewFoodService(provider, nil)

	item, err := s.LookupBarcode(context.Background(), "8850123456789")
	require.NoError(t, err)
	assert.Equal(t, &want, item)

	provider.err = errors.New("not found")
	_, err = s.LookupBarcode(context.Background(), "0000000000000")
	assert.Error(t, err)
}

func TestLookupBarcodeWithoutProvider(t *testing.T) {
	s := NewFoodService(nil, nil)

	_, err := s.LookupBarcode(context.Background(), "8850123456789")
	assert.Error(t, err)
}

func TestServingNutritionDoubles(t *testing.T) {
	s := NewFoodService(nil, nil)

	fiber := 2.5
	food := types.FoodItem{
		Nutrition: types.NutritionInfo{
			Calories:    350,
			Protein:     18,
			Carbs:       45.3,
			Fat:         12,
			Fiber:       &fiber,
			ServingSize: 250,
			ServingUnit: "g",
		},
	}

	scaled := s.ServingNutrition(food, 2)

	assert.Equal(t, 700, scaled.Calories)
	assert.InDelta(t, 36.0, scaled.Protein, 0.001)
	assert.InDelta(t, 90.6, scaled.Carbs, 0.001)
	assert.InDelta(t, 24.0, scaled.Fat, 0.001)
	require.NotNil(t, scaled.Fiber)
	assert.InDelta(t, 5.0, *scaled.Fiber, 0.001)
	assert.InDelta(t, 500.0, scaled.ServingSize, 0.001)
	assert.Equal(t, "g", scaled.ServingUnit)

	// absent optionals stay absent
	assert.Nil(t, scaled.Sugar)
	assert.Nil(t, scaled.Sodium)
}

func TestServingNutritionFractional(t *testing.T) {
	s := NewFoodService(nil, nil)

	food := types.FoodItem{
		Nutrition: types.NutritionInfo{
			Calories:    333,
			Protein:     10.1,
			ServingSize: 100,
			ServingUnit: "g",
		},
	}

	scaled := s.ServingNutrition(food, 0.5)

	assert.Equal(t, 167, scaled.Calories)
	assert.InDelta(t, 5.1, scaled.Protein, 0.001)
	assert.InDelta(t, 50.0, scaled.ServingSize, 0.001)
}

// Package catalog holds the curated Thai food database bundled with the
// application. The catalog is fixed at startup and safe to share across
// concurrent searches; every lookup returns fresh copies.
package catalog

import (
	"strings"

	"github.com/bytetrack/backend/internal/types"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

// thaiFoods is the curated catalog, in stable insertion order. Nutrition
// is per the stated serving size, not per 100g.
var thaiFoods = []types.FoodItem{
	food("th_1", "ข้าวผัดกุ้ง", "Fried Rice with Shrimp", "rice", 350, 18, 45, 12, f(2), 250, "🍤"),
	food("th_2", "ผัดไทย", "Pad Thai", "noodles", 400, 15, 55, 14, f(3), 300, "🍜"),
	food("th_3", "แกงเขียวหวานไก่", "Green Curry with Chicken", "curry", 280, 25, 8, 18, f(2), 200, "🍛"),
	food("th_4", "ต้มยำกุ้ง", "Tom Yum Goong", "soup", 120, 15, 8, 3, f(1), 250, "🍲"),
	food("th_5", "ข้าวมันไก่", "Hainanese Chicken Rice", "rice", 480, 28, 55, 16, f(1), 350, "🍗"),
	food("th_6", "ส้มตำ", "Papaya Salad", "salad", 150, 3, 30, 2, f(8), 200, "🥗"),
	food("th_7", "ไก่ย่าง", "Grilled Chicken", "grilled", 250, 35, 0, 12, nil, 150, "🍖"),
	food("th_8", "ผัดกะเพราหมูสับ", "Stir-fried Basil with Minced Pork", "stir-fry", 320, 20, 15, 22, f(2), 200, "🥘"),
	food("th_9", "มะม่วงข้าวเหนียว", "Mango Sticky Rice", "dessert", 380, 6, 70, 12, f(3), 180, "🥭"),
	food("th_10", "ข้าวต้มหมู", "Rice Porridge with Pork", "soup", 200, 15, 25, 5, f(1), 300, "🍲"),
	food("th_11", "ลาบหมู", "Spicy Minced Pork Salad", "salad", 180, 22, 5, 9, f(2), 150, "🥗"),
	food("th_12", "ก๋วยเตี๋ยวน้ำใส", "Clear Noodle Soup", "noodles", 280, 18, 35, 8, f(2), 400, "🍜"),
	food("th_13", "แกงมัสมั่นไก่", "Massaman Curry with Chicken", "curry", 350, 22, 20, 22, f(3), 250, "🍛"),
	food("th_14", "ข้าวขาหมู", "Braised Pork Leg on Rice", "rice", 550, 30, 50, 25, f(1), 350, "🍖"),
	food("th_15", "ยำวุ้นเส้น", "Glass Noodle Salad", "salad", 220, 12, 30, 6, f(2), 200, "🥗"),
	food("th_16", "ต้มข่าไก่", "Chicken in Coconut Soup", "soup", 250, 18, 8, 18, f(1), 250, "🍲"),
	food("th_17", "ผัดซีอิ๊ว", "Stir-fried Noodles with Soy Sauce", "noodles", 380, 15, 50, 14, f(2), 300, "🍜"),
	food("th_18", "หมูสะเต๊ะ", "Pork Satay", "grilled", 300, 25, 12, 18, f(1), 150, "🍢"),
	food("th_19", "ข้าวเหนียวหมูปิ้ง", "Sticky Rice with Grilled Pork", "grilled", 420, 22, 45, 18, f(2), 250, "🍖"),
	food("th_20", "ไข่เจียว", "Thai Omelette", "stir-fry", 280, 14, 2, 24, nil, 120, "🍳"),
}

func food(id, name, nameEn, category string, calories int, protein, carbs, fat float64, fiber *float64, servingSize float64, emoji string) types.FoodItem {
	return types.FoodItem{
		ID:       id,
		Name:     name,
		NameEn:   nameEn,
		Category: category,
		Nutrition: types.NutritionInfo{
			Calories:    calories,
			Protein:     protein,
			Carbs:       carbs,
			Fat:         fat,
			Fiber:       fiber,
			ServingSize: servingSize,
			ServingUnit: "g",
		},
		Source: types.FoodSourceLocal,
		Emoji:  s(emoji),
	}
}

// categories is the fixed category list shown in the meal log UI.
var categories = []types.FoodCategory{
	{ID: "all", Name: "ทั้งหมด", NameEn: "All", Icon: "🍽️"},
	{ID: "rice", Name: "ข้าว", NameEn: "Rice & Grains", Icon: "🍚"},
	{ID: "noodles", Name: "เส้น", NameEn: "Noodles", Icon: "🍜"},
	{ID: "curry", Name: "แกง", NameEn: "Curry", Icon: "🍛"},
	{ID: "stir-fry", Name: "ผัด", NameEn: "Stir-fry", Icon: "🥘"},
	{ID: "soup", Name: "ต้ม", NameEn: "Soup", Icon: "🍲"},
	{ID: "salad", Name: "ยำ", NameEn: "Salad", Icon: "🥗"},
	{ID: "grilled", Name: "ย่าง", NameEn: "Grilled", Icon: "🍖"},
	{ID: "dessert", Name: "ของหวาน", NameEn: "Dessert", Icon: "🍮"},
}

// Search filters the catalog by exact category tag, then by
// case-insensitive substring match against the Thai and English names.
// An empty query with no category returns the full catalog in insertion
// order. The returned slice is freshly allocated on every call.
func Search(query, category string) []types.FoodItem {
	results := make([]types.FoodItem, 0, len(thaiFoods))
	lower := strings.ToLower(query)

	for _, item := range thaiFoods {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), lower) &&
			!strings.Contains(strings.ToLower(item.NameEn), lower) {
			continue
		}
		results = append(results, item)
	}

	return results
}

// ByID returns the catalog entry with the given id, or false.
func ByID(id string) (types.FoodItem, bool) {
	for _, item := range thaiFoods {
		if item.ID == id {
			return item, true
		}
	}
	return types.FoodItem{}, false
}

// All returns the full catalog in insertion order.
func All() []types.FoodItem {
	return Search("", "")
}

// Categories returns the fixed category list.
func Categories() []types.FoodCategory {
	out := make([]types.FoodCategory, len(categories))
	copy(out, categories)
	return out
}

// Size reports the number of curated entries.
func Size() int {
	return len(thaiFoods)
}

package mealplan

type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryCarb      Category = "carb"
	CategoryFat       Category = "fat"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
)

// Food is a catalog entry. Nutrient values are per 100 units.
type Food struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Unit     string   `json:"unit"`
}

const servingSize = 100

// catalog order matters: selection indexes into the category-filtered slice.
var catalog = []Food{
	{ID: "chicken_breast", Name: "Chicken Breast", Category: CategoryProtein, Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Unit: "g"},
	{ID: "salmon", Name: "Salmon", Category: CategoryProtein, Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Unit: "g"},
	{ID: "eggs", Name: "Whole Eggs", Category: CategoryProtein, Calories: 143, Protein: 13, Carbs: 0.7, Fat: 9.5, Unit: "g"},
	{ID: "greek_yogurt", Name: "Greek Yogurt", Category: CategoryProtein, Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Unit: "g"},
	{ID: "tofu", Name: "Tofu", Category: CategoryProtein, Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Unit: "g"},

	{ID: "brown_rice", Name: "Brown Rice (cooked)", Category: CategoryCarb, Calories: 112, Protein: 2.6, Carbs: 23, Fat: 0.9, Unit: "g"},
	{ID: "sweet_potato", Name: "Sweet Potato", Category: CategoryCarb, Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Unit: "g"},
	{ID: "oats", Name: "Oats", Category: CategoryCarb, Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Unit: "g"},
	{ID: "quinoa", Name: "Quinoa (cooked)", Category: CategoryCarb, Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9, Unit: "g"},
	{ID: "whole_wheat_bread", Name: "Whole Wheat Bread", Category: CategoryCarb, Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Unit: "g"},

	{ID: "avocado", Name: "Avocado", Category: CategoryFat, Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, Unit: "g"},
	{ID: "olive_oil", Name: "Olive Oil", Category: CategoryFat, Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Unit: "ml"},
	{ID: "almonds", Name: "Almonds", Category: CategoryFat, Calories: 579, Protein: 21.2, Carbs: 21.7, Fat: 49.9, Unit: "g"},
	{ID: "peanut_butter", Name: "Peanut Butter", Category: CategoryFat, Calories: 588, Protein: 25, Carbs: 20, Fat: 50, Unit: "g"},

	{ID: "broccoli", Name: "Broccoli", Category: CategoryVegetable, Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Unit: "g"},
	{ID: "spinach", Name: "Spinach", Category: CategoryVegetable, Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Unit: "g"},

	{ID: "banana", Name: "Banana", Category: CategoryFruit, Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Unit: "g"},
	{ID: "apple", Name: "Apple", Category: CategoryFruit, Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Unit: "g"},
	{ID: "berries", Name: "Mixed Berries", Category: CategoryFruit, Calories: 57, Protein: 0.7, Carbs: 13.8, Fat: 0.3, Unit: "g"},
}

// Foods returns a copy of the catalog in its fixed order.
func Foods() []Food {
	out := make([]Food, len(catalog))
	copy(out, catalog)
	return out
}

// FoodsIn returns the catalog entries of one category, in catalog order.
func FoodsIn(c Category) []Food {
	var out []Food
	for _, f := range catalog {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

func LookupFood(id string) (Food, bool) {
	for _, f := range catalog {
		if f.ID == id {
			return f, true
		}
	}
	return Food{}, false
}

package model

// IngredientSlots is the number of indexed ingredient/measure fields a meal carries.
const IngredientSlots = 20

// Meal is the domain model for a recipe as returned by the remote API.
// Filter endpoints only populate ID, Name and Thumbnail.
type Meal struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Category     string `json:"category,omitempty"`
	Area         string `json:"area,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Video        string `json:"video,omitempty"`
	Tags         string `json:"tags,omitempty"`
	Source       string `json:"source,omitempty"`

	// Slot i holds the API's strIngredient{i+1} / strMeasure{i+1}.
	Ingredients [IngredientSlots]string `json:"-"`
	Measures    [IngredientSlots]string `json:"-"`
}

// Ingredient is one usable (ingredient, measure) pair of a meal.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

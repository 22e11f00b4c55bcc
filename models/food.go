package models

// A catalog food entry. Calories are derived from the macros at creation
// (4 kcal/g protein and carbs, 9 kcal/g fat), never supplied by clients.
type Food struct {
	ID       int     `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // "g", "ml", "unidade", ...
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

type InsertFood struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *float64 `json:"quantity" binding:"required"`
	Unit     string   `json:"unit" binding:"required"`
	Protein  *float64 `json:"protein" binding:"required"`
	Carbs    *float64 `json:"carbs" binding:"required"`
	Fat      *float64 `json:"fat" binding:"required"`
}

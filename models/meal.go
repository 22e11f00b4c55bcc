package models

import (
	"time"

	"gorm.io/datatypes"
)

// MealFood is a value snapshot of a food line item embedded in a meal.
// It never links back to the catalog entry it was composed from.
type MealFood struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal is a named eating event owned by a user. The aggregate macro fields
// come from the client; Calories is computed server-side at creation from
// the embedded foods and is not recomputed on update.
type Meal struct {
	ID        int                           `json:"id" gorm:"primaryKey"`
	UserID    int                           `json:"userId" gorm:"index;not null"`
	Name      string                        `json:"name" gorm:"not null"`
	Time      string                        `json:"time"`
	Date      string                        `json:"date" gorm:"index;not null"` // YYYY-MM-DD
	Foods     datatypes.JSONSlice[MealFood] `json:"foods"`
	Protein   float64                       `json:"protein"`
	Carbs     float64                       `json:"carbs"`
	Fat       float64                       `json:"fat"`
	Calories  float64                       `json:"calories"`
	CreatedAt time.Time                     `json:"createdAt"`
}

type InsertMeal struct {
	UserID  int        `json:"userId" binding:"required"`
	Name    string     `json:"name" binding:"required"`
	Time    string     `json:"time" binding:"required"`
	Date    string     `json:"date" binding:"required,datetime=2006-01-02"`
	Foods   []MealFood `json:"foods" binding:"required,dive"`
	Protein float64    `json:"protein"`
	Carbs   float64    `json:"carbs"`
	Fat     float64    `json:"fat"`
}

// MealPatch merges onto an existing meal. Derived fields are deliberately
// left untouched: patching foods does not recompute calories.
type MealPatch struct {
	UserID  *int        `json:"userId"`
	Name    *string     `json:"name"`
	Time    *string     `json:"time"`
	Date    *string     `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Foods   *[]MealFood `json:"foods"`
	Protein *float64    `json:"protein"`
	Carbs   *float64    `json:"carbs"`
	Fat     *float64    `json:"fat"`
}

func (p MealPatch) Apply(m *Meal) {
	if p.UserID != nil {
		m.UserID = *p.UserID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Foods != nil {
		m.Foods = datatypes.NewJSONSlice(*p.Foods)
	}
	if p.Protein != nil {
		m.Protein = *p.Protein
	}
	if p.Carbs != nil {
		m.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		m.Fat = *p.Fat
	}
}

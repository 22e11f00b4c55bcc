package models

import "time"

// Gender and activity level values accepted on user payloads.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// User profile. Physical attributes stay nil until the profile is completed.
type User struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Age              *int      `json:"age"`
	Weight           *float64  `json:"weight"` // kg
	Height           *int      `json:"height"` // cm
	Gender           *string   `json:"gender"`
	ActivityLevel    *string   `json:"activityLevel"`
	DailyCalorieGoal *int      `json:"dailyCalorieGoal"`
	CreatedAt        time.Time `json:"createdAt"`
}

type InsertUser struct {
	Name             string   `json:"name" binding:"required"`
	Age              *int     `json:"age"`
	Weight           *float64 `json:"weight"`
	Height           *int     `json:"height"`
	Gender           *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel    *string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	DailyCalorieGoal *int     `json:"dailyCalorieGoal"`
}

// UserPatch carries an arbitrary subset of updatable fields. Nil means
// "leave the stored value alone".
type UserPatch struct {
	Name             *string  `json:"name"`
	Age              *int     `json:"age"`
	Weight           *float64 `json:"weight"`
	Height           *int     `json:"height"`
	Gender           *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel    *string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	DailyCalorieGoal *int     `json:"dailyCalorieGoal"`
}

// Apply overlays the supplied fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Age != nil {
		u.Age = p.Age
	}
	if p.Weight != nil {
		u.Weight = p.Weight
	}
	if p.Height != nil {
		u.Height = p.Height
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.ActivityLevel != nil {
		u.ActivityLevel = p.ActivityLevel
	}
	if p.DailyCalorieGoal != nil {
		u.DailyCalorieGoal = p.DailyCalorieGoal
	}
}

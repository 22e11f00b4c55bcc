package services

import (
	"context"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
	"github.com/Yukirp/NutriEmp/utils"
)

type UserService struct {
	store storage.Storage
}

func NewUserService(store storage.Storage) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in models.InsertUser) (*models.User, error) {
	return s.store.CreateUser(ctx, in)
}

func (s *UserService) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	return s.store.UpdateUser(ctx, id, patch)
}

// BodyMetrics is what the profile screen shows next to the calorie goal.
type BodyMetrics struct {
	BMI                 float64 `json:"bmi"`
	BMICategory         string  `json:"bmiCategory,omitempty"`
	RecommendedCalories int     `json:"recommendedCalories"`
}

// Metrics derives BMI and the Harris-Benedict recommendation from whatever
// profile fields the user has filled in. Missing fields read as zero and
// the calculators guard accordingly.
func (s *UserService) Metrics(u *models.User) BodyMetrics {
	var weight float64
	var height, age int
	var gender, activity string

	if u.Weight != nil {
		weight = *u.Weight
	}
	if u.Height != nil {
		height = *u.Height
	}
	if u.Age != nil {
		age = *u.Age
	}
	if u.Gender != nil {
		gender = *u.Gender
	}
	if u.ActivityLevel != nil {
		activity = *u.ActivityLevel
	}

	m := BodyMetrics{
		BMI:                 utils.BMI(weight, float64(height)),
		RecommendedCalories: utils.RecommendedDailyCalories(weight, float64(height), age, gender, activity),
	}
	if m.BMI > 0 {
		m.BMICategory = utils.BMICategory(m.BMI)
	}
	return m
}

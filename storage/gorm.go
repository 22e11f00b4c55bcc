package storage

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Yukirp/NutriEmp/models"
)

// GormStorage is the durable Storage variant on Postgres. It honors the
// same contract as MemoryStorage: absence is nil/nil, validation and
// referential integrity stay with the callers.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(dsn string) (*GormStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.ContactMessage{},
	); err != nil {
		return nil, err
	}

	s := &GormStorage{db: db}
	if err := s.seedFoods(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedFoods loads the common catalog on a fresh database only.
func (s *GormStorage) seedFoods() error {
	var count int64
	if err := s.db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, in := range commonFoods {
		if _, err := s.CreateFood(context.Background(), in); err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	u := models.User{
		Name:             in.Name,
		Age:              in.Age,
		Weight:           in.Weight,
		Height:           in.Height,
		Gender:           in.Gender,
		ActivityLevel:    in.ActivityLevel,
		DailyCalorieGoal: in.DailyCalorieGoal,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStorage) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	patch.Apply(u)
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (s *GormStorage) GetMeal(ctx context.Context, id int) (*models.Meal, error) {
	var m models.Meal
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStorage) ListMealsByUser(ctx context.Context, userID int) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&meals).Error
	return meals, err
}

func (s *GormStorage) GetMealsByUserAndDate(ctx context.Context, userID int, date string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("id").
		Find(&meals).Error
	return meals, err
}

func (s *GormStorage) GetMealsByUserAndDateRange(ctx context.Context, userID int, startDate, endDate string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("id").
		Find(&meals).Error
	return meals, err
}

func (s *GormStorage) CreateMeal(ctx context.Context, in models.InsertMeal) (*models.Meal, error) {
	m := models.Meal{
		UserID:   in.UserID,
		Name:     in.Name,
		Time:     in.Time,
		Date:     in.Date,
		Foods:    datatypes.NewJSONSlice(in.Foods),
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Calories: mealCalories(in.Foods),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStorage) UpdateMeal(ctx context.Context, id int, patch models.MealPatch) (*models.Meal, error) {
	m, err := s.GetMeal(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	patch.Apply(m)
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *GormStorage) DeleteMeal(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Meal{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStorage) GetFood(ctx context.Context, id int) (*models.Food, error) {
	var f models.Food
	err := s.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GormStorage) GetFoodByName(ctx context.Context, name string) (*models.Food, error) {
	var f models.Food
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id").
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GormStorage) ListFoods(ctx context.Context) ([]models.Food, error) {
	foods := []models.Food{}
	err := s.db.WithContext(ctx).Order("id").Find(&foods).Error
	return foods, err
}

func (s *GormStorage) CreateFood(ctx context.Context, in models.InsertFood) (*models.Food, error) {
	f := models.Food{
		Name:     in.Name,
		Quantity: *in.Quantity,
		Unit:     in.Unit,
		Protein:  *in.Protein,
		Carbs:    *in.Carbs,
		Fat:      *in.Fat,
		Calories: foodCalories(in),
	}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GormStorage) CreateContactMessage(ctx context.Context, in models.InsertContactMessage) (*models.ContactMessage, error) {
	m := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

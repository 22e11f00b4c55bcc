package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/Yukirp/NutriEmp/models"
)

// MemoryStorage is the reference Storage: plain maps with per-kind
// sequential id counters. One mutex keeps each call atomic; there is no
// atomicity across calls. Everything vanishes when the process exits.
type MemoryStorage struct {
	mu sync.Mutex

	users           map[int]models.User
	meals           map[int]models.Meal
	foods           map[int]models.Food
	contactMessages map[int]models.ContactMessage

	nextUserID           int
	nextMealID           int
	nextFoodID           int
	nextContactMessageID int
}

func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		users:                make(map[int]models.User),
		meals:                make(map[int]models.Meal),
		foods:                make(map[int]models.Food),
		contactMessages:      make(map[int]models.ContactMessage),
		nextUserID:           1,
		nextMealID:           1,
		nextFoodID:           1,
		nextContactMessageID: 1,
	}
	s.seed()
	return s
}

func (s *MemoryStorage) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStorage) CreateUser(_ context.Context, in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:               s.nextUserID,
		Name:             in.Name,
		Age:              in.Age,
		Weight:           in.Weight,
		Height:           in.Height,
		Gender:           in.Gender,
		ActivityLevel:    in.ActivityLevel,
		DailyCalorieGoal: in.DailyCalorieGoal,
		CreatedAt:        time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStorage) UpdateUser(_ context.Context, id int, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&u)
	s.users[id] = u
	return &u, nil
}

func (s *MemoryStorage) GetMeal(_ context.Context, id int) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meals[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *MemoryStorage) ListMealsByUser(_ context.Context, userID int) ([]models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterMeals(func(m models.Meal) bool {
		return m.UserID == userID
	}), nil
}

func (s *MemoryStorage) GetMealsByUserAndDate(_ context.Context, userID int, date string) ([]models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterMeals(func(m models.Meal) bool {
		return m.UserID == userID && m.Date == date
	}), nil
}

func (s *MemoryStorage) GetMealsByUserAndDateRange(_ context.Context, userID int, startDate, endDate string) ([]models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Inclusive on both ends. Plain string comparison is correct because
	// dates are zero-padded YYYY-MM-DD.
	return s.filterMeals(func(m models.Meal) bool {
		return m.UserID == userID && m.Date >= startDate && m.Date <= endDate
	}), nil
}

func (s *MemoryStorage) CreateMeal(_ context.Context, in models.InsertMeal) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Meal{
		ID:        s.nextMealID,
		UserID:    in.UserID,
		Name:      in.Name,
		Time:      in.Time,
		Date:      in.Date,
		Foods:     datatypes.NewJSONSlice(in.Foods),
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		Calories:  mealCalories(in.Foods),
		CreatedAt: time.Now(),
	}
	s.nextMealID++
	s.meals[m.ID] = m
	return &m, nil
}

func (s *MemoryStorage) UpdateMeal(_ context.Context, id int, patch models.MealPatch) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meals[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&m)
	s.meals[id] = m
	return &m, nil
}

func (s *MemoryStorage) DeleteMeal(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meals[id]; !ok {
		return false, nil
	}
	delete(s.meals, id)
	return true, nil
}

func (s *MemoryStorage) GetFood(_ context.Context, id int) (*models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.foods[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (s *MemoryStorage) GetFoodByName(_ context.Context, name string) (*models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.foods) {
		f := s.foods[id]
		if strings.EqualFold(f.Name, name) {
			return &f, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) ListFoods(_ context.Context) ([]models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Food, 0, len(s.foods))
	for _, id := range sortedKeys(s.foods) {
		out = append(out, s.foods[id])
	}
	return out, nil
}

func (s *MemoryStorage) CreateFood(_ context.Context, in models.InsertFood) (*models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createFoodLocked(in), nil
}

func (s *MemoryStorage) createFoodLocked(in models.InsertFood) *models.Food {
	f := models.Food{
		ID:       s.nextFoodID,
		Name:     in.Name,
		Quantity: *in.Quantity,
		Unit:     in.Unit,
		Protein:  *in.Protein,
		Carbs:    *in.Carbs,
		Fat:      *in.Fat,
		Calories: foodCalories(in),
	}
	s.nextFoodID++
	s.foods[f.ID] = f
	return &f
}

func (s *MemoryStorage) CreateContactMessage(_ context.Context, in models.InsertContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.ContactMessage{
		ID:        s.nextContactMessageID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.nextContactMessageID++
	s.contactMessages[m.ID] = m
	return &m, nil
}

// filterMeals walks ids in ascending order so results come back in
// insertion order. Callers must hold the mutex.
func (s *MemoryStorage) filterMeals(keep func(models.Meal) bool) []models.Meal {
	out := []models.Meal{}
	for _, id := range sortedKeys(s.meals) {
		if m := s.meals[id]; keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

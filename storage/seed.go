package storage

import (
	"time"

	"github.com/Yukirp/NutriEmp/models"
)

// commonFoods is the starter catalog every fresh store gets.
var commonFoods = []models.InsertFood{
	{Name: "Arroz Branco", Quantity: ptr(100.0), Unit: "g", Protein: ptr(2.7), Carbs: ptr(28.2), Fat: ptr(0.3)},
	{Name: "Feijão", Quantity: ptr(100.0), Unit: "g", Protein: ptr(6.7), Carbs: ptr(14.0), Fat: ptr(0.9)},
	{Name: "Frango Grelhado", Quantity: ptr(100.0), Unit: "g", Protein: ptr(31.0), Carbs: ptr(0.0), Fat: ptr(3.6)},
	{Name: "Carne Bovina", Quantity: ptr(100.0), Unit: "g", Protein: ptr(26.0), Carbs: ptr(0.0), Fat: ptr(15.0)},
	{Name: "Ovo", Quantity: ptr(1.0), Unit: "unidade", Protein: ptr(6.0), Carbs: ptr(0.6), Fat: ptr(5.0)},
	{Name: "Pão Francês", Quantity: ptr(1.0), Unit: "unidade", Protein: ptr(4.0), Carbs: ptr(15.0), Fat: ptr(1.0)},
	{Name: "Banana", Quantity: ptr(1.0), Unit: "unidade", Protein: ptr(1.1), Carbs: ptr(22.8), Fat: ptr(0.3)},
	{Name: "Maçã", Quantity: ptr(1.0), Unit: "unidade", Protein: ptr(0.3), Carbs: ptr(13.8), Fat: ptr(0.2)},
	{Name: "Leite", Quantity: ptr(250.0), Unit: "ml", Protein: ptr(8.3), Carbs: ptr(12.2), Fat: ptr(7.9)},
}

// seed loads the default users and the common food catalog. The client
// creates its own user on first load, but user 1 must exist so a fresh
// install has something to show.
func (s *MemoryStorage) seed() {
	s.users[1] = models.User{
		ID:               1,
		Name:             "Usuário Teste",
		Age:              ptr(30),
		Weight:           ptr(75.0),
		Height:           ptr(175),
		Gender:           ptr(models.GenderMale),
		ActivityLevel:    ptr(models.ActivityModerate),
		DailyCalorieGoal: ptr(2500),
		CreatedAt:        time.Now(),
	}
	s.users[2] = models.User{
		ID:               2,
		Name:             "Segundo Usuário",
		Age:              ptr(25),
		Weight:           ptr(65.0),
		Height:           ptr(168),
		Gender:           ptr(models.GenderFemale),
		ActivityLevel:    ptr(models.ActivityActive),
		DailyCalorieGoal: ptr(2300),
		CreatedAt:        time.Now(),
	}
	s.nextUserID = 3

	for _, f := range commonFoods {
		s.createFoodLocked(f)
	}
}

func ptr[T any](v T) *T { return &v }

package services

import (
	"context"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
)

type FoodService struct {
	store storage.Storage
}

func NewFoodService(store storage.Storage) *FoodService {
	return &FoodService{store: store}
}

func (s *FoodService) Get(ctx context.Context, id int) (*models.Food, error) {
	return s.store.GetFood(ctx, id)
}

func (s *FoodService) GetByName(ctx context.Context, name string) (*models.Food, error) {
	return s.store.GetFoodByName(ctx, name)
}

func (s *FoodService) List(ctx context.Context) ([]models.Food, error) {
	return s.store.ListFoods(ctx)
}

func (s *FoodService) Create(ctx context.Context, in models.InsertFood) (*models.Food, error) {
	return s.store.CreateFood(ctx, in)
}

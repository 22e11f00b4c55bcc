package services

import (
	"context"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
)

// ContactService records messages and nothing else: no mail goes out.
type ContactService struct {
	store storage.Storage
}

func NewContactService(store storage.Storage) *ContactService {
	return &ContactService{store: store}
}

func (s *ContactService) Create(ctx context.Context, in models.InsertContactMessage) (*models.ContactMessage, error) {
	return s.store.CreateContactMessage(ctx, in)
}

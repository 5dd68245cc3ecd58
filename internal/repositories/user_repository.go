package repositories

import (
	"marche/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(role string, page, perPage int) ([]models.User, Pagination, error)
	SetActive(id string, active bool) error
}

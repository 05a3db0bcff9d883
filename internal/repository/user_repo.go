package repository

import (
	"context"

	"github.com/JhonatanMorais-py/meupdv/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByName(ctx context.Context, name string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error
	return &u, err
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

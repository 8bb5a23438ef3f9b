package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
)

// WriteHook roda depois de cada escrita confirmada (ex.: invalidar cache).
type WriteHook func(ctx context.Context)

// EntityGormRepository é o CRUD de tabela única usado pelas entidades
// sem regra de negócio. Update e Delete de id inexistente devolvem
// httperr.CodeNotFound.
type EntityGormRepository[T any] struct {
	db      *gorm.DB
	onWrite WriteHook
}

func NewEntityGormRepository[T any](db *gorm.DB, onWrite WriteHook) *EntityGormRepository[T] {
	return &EntityGormRepository[T]{db: db, onWrite: onWrite}
}

func (r *EntityGormRepository[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EntityGormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, httperr.FromDB(err)
	}
	return &e, nil
}

func (r *EntityGormRepository[T]) Create(ctx context.Context, e *T) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return httperr.FromDB(err)
	}
	r.written(ctx)
	return nil
}

// Update sobrescreve todas as colunas menos id e created_at.
func (r *EntityGormRepository[T]) Update(ctx context.Context, id uint, e *T) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(e)
	if res.Error != nil {
		return httperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	r.written(ctx)
	return nil
}

func (r *EntityGormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return httperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	r.written(ctx)
	return nil
}

func (r *EntityGormRepository[T]) written(ctx context.Context) {
	if r.onWrite != nil {
		r.onWrite(ctx)
	}
}

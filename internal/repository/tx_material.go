package repository

import (
	"context"
	"database/sql"

	"github.com/haeunpark/studyplan/internal/db"
	"github.com/haeunpark/studyplan/internal/domain"
)

// TxMaterialRepo is a MaterialRepo whose multi-statement writes (a material
// row plus its section rows) run inside one transaction. Reads and
// single-statement writes delegate to a plain repo on the shared *sql.DB.
type TxMaterialRepo struct {
	base *SQLiteMaterialRepo
	uow  db.UnitOfWork
}

// NewTxMaterialRepo creates a transactional material repo over database.
func NewTxMaterialRepo(database *sql.DB) *TxMaterialRepo {
	return &TxMaterialRepo{
		base: NewSQLiteMaterialRepo(database),
		uow:  db.NewSQLiteUnitOfWork(database),
	}
}

func (r *TxMaterialRepo) Create(ctx context.Context, m *domain.Material) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteMaterialRepo(tx).Create(ctx, m)
	})
}

func (r *TxMaterialRepo) Update(ctx context.Context, m *domain.Material) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteMaterialRepo(tx).Update(ctx, m)
	})
}

func (r *TxMaterialRepo) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	return r.base.GetByID(ctx, id)
}

func (r *TxMaterialRepo) List(ctx context.Context) ([]*domain.Material, error) {
	return r.base.List(ctx)
}

func (r *TxMaterialRepo) UpdateProgress(ctx context.Context, id string, value int) error {
	return r.base.UpdateProgress(ctx, id, value)
}

func (r *TxMaterialRepo) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}

func (r *TxMaterialRepo) Clear(ctx context.Context) error {
	return r.base.Clear(ctx)
}

var _ MaterialRepo = (*TxMaterialRepo)(nil)

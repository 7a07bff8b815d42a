package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sekolahku/akademik-api/internal/models"
)

// ParentRepository handles parent persistence.
type ParentRepository struct {
	db *sqlx.DB
}

// NewParentRepository creates a new parent repository.
func NewParentRepository(db *sqlx.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// FindByUserID returns the parent profile owned by a user account.
func (r *ParentRepository) FindByUserID(ctx context.Context, userID string) (*models.Parent, error) {
	const query = `SELECT id, user_id, full_name, student_id, phone, created_at, updated_at
        FROM parents WHERE user_id = $1`
	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, query, userID); err != nil {
		return nil, err
	}
	return &parent, nil
}

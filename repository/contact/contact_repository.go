package contact

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	List(ctx context.Context) ([]model.ContactEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error)
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	Update(ctx context.Context, id uint64, data *model.ContactEntity) (*model.ContactEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	UpdateFavorite(ctx context.Context, id uint64, favorite bool) (*model.ContactEntity, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	listContactsQuery = `SELECT id, name, email, phone, favorite, created_at, updated_at FROM contact ORDER BY id`
	getContactQuery   = `SELECT id, name, email, phone, favorite, created_at, updated_at FROM contact WHERE id = ?`

	insertContactQuery = `INSERT INTO contact (name, email, phone, favorite, created_at) VALUES (?, ?, ?, ?, NOW())`

	updateContactQuery  = `UPDATE contact SET name = ?, email = ?, phone = ?, updated_at = NOW() WHERE id = ?`
	updateFavoriteQuery = `UPDATE contact SET favorite = ?, updated_at = NOW() WHERE id = ?`

	deleteContactQuery = `DELETE FROM contact WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.ContactEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listContactsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]model.ContactEntity, 0)
	for rows.Next() {
		var entity model.ContactEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		contacts = append(contacts, entity)
	}

	return contacts, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, getContactQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery, data.Name, data.Email, data.Phone, data.Favorite)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Update writes the full set of writable fields and returns the updated row,
// nil when the id does not exist.
func (s *SQL) Update(ctx context.Context, id uint64, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, updateContactQuery, data.Name, data.Email, data.Phone, id)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// MySQL reports zero affected rows for a no-op update as well,
		// so check existence before reporting not found.
		existing, err := s.GetByID(ctx, id)
		if err != nil || existing == nil {
			return nil, err
		}
		return existing, nil
	}

	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteContactQuery, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdateFavorite flips only the favorite flag and returns the updated row,
// nil when the id does not exist. Applying the same value twice is a no-op.
func (s *SQL) UpdateFavorite(ctx context.Context, id uint64, favorite bool) (*model.ContactEntity, error) {
	if _, err := s.conn.ExecContext(ctx, updateFavoriteQuery, favorite, id); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

package account

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	UpdateToken(ctx context.Context, id uint64, token string) error
	UpdateVerificationToken(ctx context.Context, id uint64, verificationToken string) error
	MarkVerified(ctx context.Context, id uint64, verificationToken string) (bool, error)
	UpdateAvatarURL(ctx context.Context, id uint64, avatarURL string) error
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO account (email, password_hash, subscription, verification_token, verify, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getAccountBase     = `SELECT id, email, password_hash, subscription, token, verification_token, verify, avatar_url, created_at, updated_at FROM account WHERE true`

	updateTokenQuery = `UPDATE account SET token = ?, updated_at = NOW() WHERE id = ?`

	updateVerificationTokenQuery = `UPDATE account SET verification_token = ?, updated_at = NOW() WHERE id = ?`

	// Flips the verified flag and clears the stored token in one statement
	// so both changes apply together or not at all. The token predicate
	// rejects reused or tampered tokens.
	markVerifiedQuery = `UPDATE account SET verify = true, verification_token = NULL, updated_at = NOW() WHERE id = ? AND verification_token = ?`

	updateAvatarURLQuery = `UPDATE account SET avatar_url = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.Email, data.PasswordHash, data.Subscription, data.VerificationToken, data.Verify)
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

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateToken(ctx context.Context, id uint64, token string) error {
	_, err := s.conn.ExecContext(ctx, updateTokenQuery, token, id)
	return err
}

func (s *SQL) UpdateVerificationToken(ctx context.Context, id uint64, verificationToken string) error {
	_, err := s.conn.ExecContext(ctx, updateVerificationTokenQuery, verificationToken, id)
	return err
}

func (s *SQL) MarkVerified(ctx context.Context, id uint64, verificationToken string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, markVerifiedQuery, id, verificationToken)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) UpdateAvatarURL(ctx context.Context, id uint64, avatarURL string) error {
	_, err := s.conn.ExecContext(ctx, updateAvatarURLQuery, avatarURL, id)
	return err
}

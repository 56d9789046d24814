package user

import (
	"context"
	"database/sql"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, user *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (number, name, role, address, verified, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, number, name, role, address, verified, created_at, updated_at FROM user WHERE true`
	updateUserQuery = `UPDATE user SET name = ?, address = ?, verified = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Number, data.Name, data.Role, data.Address, data.Verified)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Number != "" {
		query += " AND number = ?"
		args = append(args, filter.Number)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, user *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery, user.Name, user.Address, user.Verified, user.ID)
	return err
}

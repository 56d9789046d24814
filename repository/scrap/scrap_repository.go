package scrap

import (
	"context"
	"encoding/json"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ScrapRepository interface {
	InsertAll(ctx context.Context, categories []model.ScrapCategory) error
	GetAll(ctx context.Context) ([]model.ScrapCategory, error)
}

func NewScrapRepository(conn *sqlx.DB) ScrapRepository {
	return &SQL{conn: conn}
}

const (
	insertCategoryQuery = `INSERT INTO scrap_category (category_id, name, is_selected, types, created_at) VALUES (?, ?, ?, ?, NOW())`
	getCategoriesQuery  = `SELECT id, category_id, name, is_selected, types FROM scrap_category ORDER BY category_id`
)

type categoryRow struct {
	ID         uint64 `db:"id"`
	CategoryID int    `db:"category_id"`
	Name       string `db:"name"`
	IsSelected bool   `db:"is_selected"`
	Types      []byte `db:"types"`
}

func (s *SQL) InsertAll(ctx context.Context, categories []model.ScrapCategory) error {
	for _, c := range categories {
		types, err := json.Marshal(c.Types)
		if err != nil {
			return err
		}
		if _, err := s.conn.ExecContext(ctx, insertCategoryQuery, c.CategoryID, c.Name, c.IsSelected, types); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) GetAll(ctx context.Context) ([]model.ScrapCategory, error) {
	var rows []categoryRow
	if err := s.conn.SelectContext(ctx, &rows, getCategoriesQuery); err != nil {
		return nil, err
	}

	categories := make([]model.ScrapCategory, 0, len(rows))
	for _, row := range rows {
		c := model.ScrapCategory{
			ID:         row.ID,
			CategoryID: row.CategoryID,
			Name:       row.Name,
			IsSelected: row.IsSelected,
		}
		if len(row.Types) > 0 {
			if err := json.Unmarshal(row.Types, &c.Types); err != nil {
				return nil, err
			}
		}
		categories = append(categories, c)
	}
	return categories, nil
}

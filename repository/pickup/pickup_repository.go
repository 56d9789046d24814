package pickup

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateRequestID means another writer already took this request id;
// callers should re-read the count and retry.
var ErrDuplicateRequestID = errors.New("duplicate request id")

type SQL struct {
	conn *sqlx.DB
}

type PickupRepository interface {
	Create(ctx context.Context, req *model.PickupRequest) error
	Count(ctx context.Context) (int64, error)
	ListByToken(ctx context.Context, authToken string, ownerID uint64) ([]*model.PickupRequest, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.PickupRequest, error)
}

func NewPickupRepository(conn *sqlx.DB) PickupRepository {
	return &SQL{conn: conn}
}

const (
	insertPickupQuery = `INSERT INTO pickup_request
		(request_id, auth_token, owner_id, items, name, image, pick_up_date, pick_up_time, location, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	countPickupsQuery = `SELECT COUNT(*) FROM pickup_request`
	getPickupBase     = `SELECT id, request_id, auth_token, owner_id, items, name, image, pick_up_date, pick_up_time, location, latitude, longitude, created_at FROM pickup_request`
)

const mysqlDuplicateEntry = 1062

type pickupRow struct {
	model.PickupRequest
	ItemsJSON []byte `db:"items"`
}

func (s *SQL) Create(ctx context.Context, req *model.PickupRequest) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return err
	}

	result, err := s.conn.ExecContext(ctx, insertPickupQuery,
		req.RequestID, req.AuthToken, req.OwnerID, items, req.Name, req.Image,
		req.PickUpDate, req.PickUpTime, req.Location, req.Latitude, req.Longitude)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateRequestID
		}
		return err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	req.ID = uint64(lastID)
	return nil
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countPickupsQuery); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) ListByToken(ctx context.Context, authToken string, ownerID uint64) ([]*model.PickupRequest, error) {
	var rows []pickupRow
	query := getPickupBase + ` WHERE auth_token = ? AND owner_id = ? ORDER BY created_at`
	if err := s.conn.SelectContext(ctx, &rows, query, authToken, ownerID); err != nil {
		return nil, err
	}

	requests := make([]*model.PickupRequest, 0, len(rows))
	for i := range rows {
		req, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (s *SQL) GetByRequestID(ctx context.Context, requestID string) (*model.PickupRequest, error) {
	var row pickupRow
	query := getPickupBase + ` WHERE request_id = ?`
	if err := s.conn.GetContext(ctx, &row, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toModel()
}

func (r *pickupRow) toModel() (*model.PickupRequest, error) {
	req := r.PickupRequest
	if len(r.ItemsJSON) > 0 {
		if err := json.Unmarshal(r.ItemsJSON, &req.Items); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

package persistence

import (
	"context"
	"database/sql"
	"time"

	"jarayid-admin/domain/model"
)

// AuditRepository records operator actions in PostgreSQL (native sql.DB).
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Record(ctx context.Context, actions []*model.OperatorAction) error {
	if len(actions) == 0 {
		return nil
	}
	q := `INSERT INTO operator_actions (operator, action, resource, record_id, detail, created_at) VALUES ($1,$2,$3,$4,$5,$6)`
	now := time.Now().UTC()
	for _, a := range actions {
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		_, err := r.db.ExecContext(ctx, q, a.Operator, a.Action, a.Resource, a.RecordID, a.Detail, a.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*model.OperatorAction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, operator, action, resource, record_id, detail, created_at FROM operator_actions ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.OperatorAction
	for rows.Next() {
		a := &model.OperatorAction{}
		var recordID sql.NullInt64
		var detail sql.NullString
		if err := rows.Scan(&a.ID, &a.Operator, &a.Action, &a.Resource, &recordID, &detail, &a.CreatedAt); err != nil {
			return nil, err
		}
		if recordID.Valid {
			a.RecordID = &recordID.Int64
		}
		if detail.Valid {
			a.Detail = &detail.String
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

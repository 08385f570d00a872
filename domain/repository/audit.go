package repository

import (
	"context"

	"jarayid-admin/domain/model"
)

// IAuditLog appends operator actions to the local audit table.
type IAuditLog interface {
	Record(ctx context.Context, actions []*model.OperatorAction) error
	ListRecent(ctx context.Context, limit int) ([]*model.OperatorAction, error)
}

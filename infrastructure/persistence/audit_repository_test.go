package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"jarayid-admin/domain/model"
)

func TestAuditRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)

	recordID := int64(11)
	detail := "wrong tone"
	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO operator_actions (operator, action, resource, record_id, detail, created_at) VALUES ($1,$2,$3,$4,$5,$6)`)).
		WithArgs("admin", "bulletin.reject", "script-generation", recordID, detail, createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repository.Record(context.Background(), []*model.OperatorAction{{
		Operator:  "admin",
		Action:    "bulletin.reject",
		Resource:  "script-generation",
		RecordID:  &recordID,
		Detail:    &detail,
		CreatedAt: createdAt,
	}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Record_FillsCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO operator_actions`)).
		WithArgs("admin", "sponsor.create", "sponsor", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	action := &model.OperatorAction{
		Operator: "admin",
		Action:   "sponsor.create",
		Resource: "sponsor",
	}
	err = repository.Record(context.Background(), []*model.OperatorAction{action})
	require.NoError(t, err)
	require.False(t, action.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Record_EmptyBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)

	err = repository.Record(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)

	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, operator, action, resource, record_id, detail, created_at FROM operator_actions ORDER BY created_at DESC, id DESC LIMIT $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "operator", "action", "resource", "record_id", "detail", "created_at"}).
			AddRow(2, "admin", "bulletin.approve", "script-generation", 11, nil, createdAt).
			AddRow(1, "admin", "source.toggle", "country-sources/sources", 12, "activated", createdAt))

	list, err := repository.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "bulletin.approve", list[0].Action)
	require.Nil(t, list[0].Detail)
	require.NotNil(t, list[1].Detail)
	require.Equal(t, "activated", *list[1].Detail)
	require.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestFindOrCreateByName_UpsertsOnce(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	ctx := context.Background()

	// Two submissions with the same label resolve to the same row; the
	// unique-name upsert is the only statement either issues.
	for range 2 {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO services").
			WithArgs("Coloring", DefaultDurationMinutes).
			WillReturnRows(pgxmock.NewRows([]string{"service_id"}).AddRow(int64(7)))
		mock.ExpectCommit()

		tx, err := mock.Begin(ctx)
		if err != nil {
			t.Fatalf("begin: %v", err)
		}
		id, err := FindOrCreateByName(ctx, tx, "Coloring", DefaultDurationMinutes)
		if err != nil {
			t.Fatalf("FindOrCreateByName: %v", err)
		}
		if id != 7 {
			t.Fatalf("id = %d, want 7", id)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("commit: %v", err)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

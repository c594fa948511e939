// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; the mock rejects its queries

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil {
		t.Fatal("expected error for unsupported dialect, got nil")
	}

	if !strings.Contains(err.Error(), "unsupported migration dialect") {
		t.Errorf("expected unsupported dialect error, got: %v", err)
	}
}

func TestMigrationsDir(t *testing.T) {
	tests := []struct {
		dialect string
		dir     string
		wantErr bool
	}{
		{"pgx", "postgres", false},
		{"sqlite3", "sqlite", false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			dir, err := migrationsDir(tt.dialect)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir != tt.dir {
				t.Errorf("expected dir %q, got %q", tt.dir, dir)
			}
		})
	}
}

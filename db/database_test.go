package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsConnectionNotAcceptingError(t *testing.T) {
	t.Parallel()

	notAccepting := &pgconn.PgError{Code: "57P03", Message: "the database system is starting up"}
	if !IsConnectionNotAcceptingError(notAccepting) {
		t.Fatal("expected 57P03 to be detected")
	}
	if !IsConnectionNotAcceptingError(fmt.Errorf("open postgres: %w", notAccepting)) {
		t.Fatal("expected wrapped 57P03 to be detected")
	}
	if IsConnectionNotAcceptingError(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a connection acceptance error")
	}
	if IsConnectionNotAcceptingError(errors.New("connection refused")) {
		t.Fatal("non-pg error is not a connection acceptance error")
	}
}

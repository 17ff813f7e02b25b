package store

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/db"
)

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("HOLDEM_PG_DSN")
	if dsn == "" {
		t.Skip("HOLDEM_PG_DSN is not set")
	}

	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := db.MigrateDB(conn, "../../sql"); err != nil {
		t.Fatal(err)
	}

	exerciseRepository(t, NewPostgresStore(logrus.StandardLogger(), conn))
}

package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "farmlink/internal/log"
)

// OpenDB opens the product store. With the default ":memory:" DSN the catalog
// lives only as long as the process.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// every pooled connection to :memory: would get its own empty database
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- AUTOINCREMENT keeps ids from being handed out twice, even after deletes.
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  quantity TEXT NOT NULL,
  submitted_date TEXT NOT NULL,
  price TEXT NOT NULL,
  price_value TEXT NOT NULL,
  currency TEXT NOT NULL DEFAULT '$',
  status TEXT NOT NULL CHECK (status IN ('Pending','Verified','Approved','Paid')),
  image TEXT NOT NULL,
  images_json TEXT NOT NULL DEFAULT '[]',
  location TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_status    ON products(status);
CREATE INDEX IF NOT EXISTS idx_products_submitted ON products(submitted_date);
`
	_, err := db.Exec(schema)
	return err
}

// SeedDemo inserts the sample catalog if the store is empty. Oldest first, so
// the last row inserted is shown at the top.
func SeedDemo(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	applog.Info(nil, "seed.demo", map[string]any{"at": time.Now().UTC().Format(time.RFC3339)})

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	tx.MustExec(`INSERT INTO products(name,category,quantity,submitted_date,price,price_value,currency,status,image,location) VALUES
	  ('Heirloom Tomatoes','Vegetables','15 kg','2023-11-12','$38.25','38.25','$','Approved','/static/images/tomatoes.svg','Local Farm'),
	  ('Fresh Carrots','Vegetables','18 kg','2023-11-14','$32.75','32.75','$','Verified','/static/images/carrots.svg','Local Farm'),
	  ('Organic Apples','Fruits','25 kg','2023-11-15','$45.50','45.50','$','Pending','/static/images/apples.svg','Local Farm')`)
	return tx.Commit()
}

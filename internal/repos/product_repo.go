package repos

import (
	"strconv"

	"farmlink/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
    CAST(id AS TEXT) AS id, name, category, quantity, submitted_date, price, price_value,
    currency, status, image, images_json, location`

// Insert stores p and sets p.ID from the sequence.
func (r *ProductRepo) Insert(p *domain.Product) error {
	if p.ImagesJSON == "" {
		p.ImagesJSON = "[]"
	}
	res, err := r.db.Exec(`
	  INSERT INTO products
	    (name, category, quantity, submitted_date, price, price_value, currency, status, image, images_json, location)
	  VALUES (?,?,?,?,?,?,?,?,?,?,?)
	`, p.Name, p.Category, p.Quantity, p.SubmittedDate, p.Price, p.PriceValue.String(),
		p.Currency, string(p.Status), p.Image, p.ImagesJSON, p.Location)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = strconv.FormatInt(id, 10)
	return nil
}

// List returns every product, newest first.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT`+productCols+` FROM products ORDER BY id DESC`)
	return out, err
}

// Get returns sql.ErrNoRows from sqlx when the id is unknown.
func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Delete reports whether a row was removed.
func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type StatusCount struct {
	Status domain.Status `db:"status"`
	N      int           `db:"n"`
}

// CountByStatusInMonth groups products submitted in month ("2006-01") by status.
func (r *ProductRepo) CountByStatusInMonth(month string) ([]StatusCount, error) {
	var out []StatusCount
	err := r.db.Select(&out, `
	  SELECT status, COUNT(*) AS n
	  FROM products
	  WHERE substr(submitted_date, 1, 7) = ?
	  GROUP BY status
	`, month)
	return out, err
}

package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/internal/domain"
	"farmlink/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func product(name, date string, st domain.Status) domain.Product {
	return domain.Product{
		Name: name, Category: "Vegetables", Quantity: "1 kg", SubmittedDate: date,
		Price: "$1.00", PriceValue: decimal.NewFromInt(1), Currency: "$",
		Status: st, Image: "/static/placeholder.svg", Location: "Local Farm",
	}
}

func TestSeedDemoOrder(t *testing.T) {
	db := memdb(t)
	require.NoError(t, repos.SeedDemo(db))
	require.NoError(t, repos.SeedDemo(db), "second seed is a no-op")

	ps, err := repos.NewProductRepo(db).List()
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "Organic Apples", ps[0].Name)
	assert.Equal(t, "Heirloom Tomatoes", ps[2].Name)
	assert.True(t, ps[0].PriceValue.Equal(decimal.RequireFromString("45.50")))
}

func TestInsertPrependsAndIdsAreNotReused(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))

	a := product("A", "2024-05-01", domain.StatusPending)
	b := product("B", "2024-05-02", domain.StatusPending)
	require.NoError(t, r.Insert(&a))
	require.NoError(t, r.Insert(&b))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "[]", b.ImagesJSON)

	ok, err := r.Delete(b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	c := product("C", "2024-05-03", domain.StatusPending)
	require.NoError(t, r.Insert(&c))
	assert.NotEqual(t, b.ID, c.ID)

	ps, err := r.List()
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, []string{c.ID, a.ID}, []string{ps[0].ID, ps[1].ID})
}

func TestGetAndDeleteMissing(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))

	_, err := r.Get("404")
	assert.Error(t, err)

	ok, err := r.Delete("404")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountByStatusInMonth(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	for _, p := range []domain.Product{
		product("a", "2024-05-01", domain.StatusPending),
		product("b", "2024-05-20", domain.StatusPending),
		product("c", "2024-05-31", domain.StatusPaid),
		product("d", "2024-04-30", domain.StatusApproved),
	} {
		p := p
		require.NoError(t, r.Insert(&p))
	}

	rows, err := r.CountByStatusInMonth("2024-05")
	require.NoError(t, err)
	got := map[domain.Status]int{}
	for _, row := range rows {
		got[row.Status] = row.N
	}
	assert.Equal(t, map[domain.Status]int{domain.StatusPending: 2, domain.StatusPaid: 1}, got)
}

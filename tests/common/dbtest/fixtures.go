//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash is the bcrypt hash of "password123".
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, 'Test', 'User', $4, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateHotel(t *testing.T, db DBLike, name string, pricePerNight string, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO hotels (name, city, country, star_rating, price_per_night, is_active)
		VALUES ($1, 'Kyoto', 'Japan', 4, $2, $3) RETURNING id`, name, pricePerNight, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateFlight(t *testing.T, db DBLike, flightNumber string, price string, seats int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO flights (airline, flight_number, origin, destination, departure_time, price, available_seats)
		VALUES ('AeroJet', $1, 'HND', 'CDG', now() + interval '30 days', $2, $3) RETURNING id`, flightNumber, price, seats).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateCar(t *testing.T, db DBLike, model string, pricePerDay string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO cars (make, model, location, price_per_day)
		VALUES ('Toyota', $1, 'Osaka', $2) RETURNING id`, model, pricePerDay).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreatePackage stores the tag columns verbatim so malformed JSON can be seeded.
func CreatePackage(t *testing.T, db DBLike, name string, price string, activities, styles, tags string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO packages (name, description, price, duration_days, activities, travel_styles, tags, dest_region)
		VALUES ($1, 'seeded', $2, 5, $3, $4, $5, 'Asia') RETURNING id`, name, price, activities, styles, tags).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData is a hook for rows every test expects. The schema currently needs none.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

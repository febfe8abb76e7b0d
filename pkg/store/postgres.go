package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/kass/go-iso6709/pkg/coord"
	"github.com/kass/go-iso6709/pkg/iso6709"
)

// PostgresStore keeps waypoints in a Postgres table with the position held
// as an ISO 6709 text column. The database never sees the decoded value.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool to the given database.
func NewPostgresStore(host, user, password, dbname string, port int) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// InitSchema creates the waypoints table.
func (p *PostgresStore) InitSchema() error {
	query := `CREATE TABLE IF NOT EXISTS waypoints (
		id TEXT PRIMARY KEY,
		position TEXT NOT NULL
	);`
	if _, err := p.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Insert stores a waypoint, replacing any previous position for the id.
func (p *PostgresStore) Insert(id string, c coord.Coordinate) error {
	query := `INSERT INTO waypoints (id, position) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position;`
	if _, err := p.db.Exec(query, id, iso6709.Write(c)); err != nil {
		return fmt.Errorf("failed to insert waypoint %s: %w", id, err)
	}
	return nil
}

// Get loads one waypoint by id.
func (p *PostgresStore) Get(id string) (coord.Coordinate, error) {
	var position string
	err := p.db.QueryRow(`SELECT position FROM waypoints WHERE id = $1;`, id).Scan(&position)
	if err != nil {
		return coord.Coordinate{}, fmt.Errorf("failed to load waypoint %s: %w", id, err)
	}
	c, err := iso6709.Parse(position)
	if err != nil {
		return coord.Coordinate{}, fmt.Errorf("waypoint %s: %w", id, err)
	}
	return c, nil
}

// List loads all stored waypoints in id order.
func (p *PostgresStore) List() (coord.List, error) {
	rows, err := p.db.Query(`SELECT position FROM waypoints ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}
	defer rows.Close()

	var list coord.List
	for rows.Next() {
		var position string
		if err := rows.Scan(&position); err != nil {
			return nil, fmt.Errorf("failed to scan waypoint: %w", err)
		}
		c, err := iso6709.Parse(position)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate waypoints: %w", err)
	}
	return list, nil
}

// Close releases the connection pool.
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

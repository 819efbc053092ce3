package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/annberg/bookmart/internal/domain/consts"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
	storerrors "github.com/annberg/bookmart/internal/storage/errors"
)

// DBStorage persists each session cart as a single row: the whole item
// list is serialized and written in one statement, mirroring the one
// localStorage record the browser client kept under a fixed key.
type DBStorage struct {
	conn *pgx.Conn
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	conn, err := pgx.Connect(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &DBStorage{
		conn: conn,
	}, nil
}

func (dbs *DBStorage) GetCart(sid string) ([]models.CartItem, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var raw []byte
	row := dbs.conn.QueryRow(ctx,
		"SELECT items FROM carts WHERE session_id = $1 AND storage_key = $2",
		sid, consts.CartStorageKey)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error().Err(err).Msg("failed scan cart row")
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return items, nil
}

func (dbs *DBStorage) SaveCart(sid string, items []models.CartItem) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	_, err = dbs.conn.Exec(ctx,
		"INSERT INTO carts (session_id, storage_key, items, updated_at) VALUES ($1, $2, $3, now())",
		sid, consts.CartStorageKey, raw)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		_, err = dbs.conn.Exec(ctx,
			"UPDATE carts SET items = $1, updated_at = now() WHERE session_id = $2 AND storage_key = $3",
			raw, sid, consts.CartStorageKey)
		if err != nil {
			log.Error().Err(err).Msg("failed to update cart row")
			return err
		}
		return nil
	}
	log.Error().Err(err).Msg("failed to insert cart row")
	return err
}

func (dbs *DBStorage) DeleteCart(sid string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	tag, err := dbs.conn.Exec(ctx,
		"DELETE FROM carts WHERE session_id = $1 AND storage_key = $2",
		sid, consts.CartStorageKey)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storerrors.ErrCartNotExist
	}
	return nil
}

func (dbs *DBStorage) Close(ctx context.Context) error {
	return dbs.conn.Close(ctx)
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations apply")
	return nil
}

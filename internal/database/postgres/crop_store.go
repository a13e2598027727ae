package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
	"github.com/osse101/NoriFarm_Go/internal/storage"
)

// CropStore implements repository.CropStore on PostgreSQL. It keeps the same
// layout as the file store: baseline and user rows in crops, and one
// override per baseline id in crop_overrides.
type CropStore struct {
	db *pgxpool.Pool
}

// NewCropStore creates a new crop store
func NewCropStore(db *pgxpool.Pool) *CropStore {
	return &CropStore{db: db}
}

// ListCrops returns the merged crop collection
func (s *CropStore) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	baseline, err := listNamespace(ctx, tx, NamespaceBaseline)
	if err != nil {
		return nil, err
	}
	user, err := listNamespace(ctx, tx, NamespaceUser)
	if err != nil {
		return nil, err
	}
	overrides, err := listOverrides(ctx, tx)
	if err != nil {
		return nil, err
	}
	return storage.Merge(baseline, overrides, user), nil
}

// PutCrop updates a user crop, overrides a baseline crop, or inserts a new user crop
func (s *CropStore) PutCrop(ctx context.Context, crop domain.Crop) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		ns, err := namespaceOf(ctx, tx, crop.ID)
		if err != nil {
			return err
		}
		switch ns {
		case NamespaceUser:
			return updateCrop(ctx, tx, NamespaceUser, crop)
		case NamespaceBaseline:
			return putOverride(ctx, tx, storage.Upsert(crop))
		default:
			return insertCrop(ctx, tx, NamespaceUser, crop)
		}
	})
}

// DeleteCrop removes a user crop or tombstones a baseline crop. Unknown ids are a no-op.
func (s *CropStore) DeleteCrop(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		ns, err := namespaceOf(ctx, tx, id)
		if err != nil {
			return err
		}
		switch ns {
		case NamespaceUser:
			if _, err := tx.Exec(ctx, `DELETE FROM crops WHERE namespace = $1 AND id = $2`, NamespaceUser, id); err != nil {
				return fmt.Errorf("failed to delete crop %s: %w", id, err)
			}
			return nil
		case NamespaceBaseline:
			return putOverride(ctx, tx, storage.Tombstone(id))
		default:
			return nil
		}
	})
}

// SeedBaseline inserts baseline crops that are not present yet. Existing rows
// and their overrides are left alone.
func (s *CropStore) SeedBaseline(ctx context.Context, crops []domain.Crop) error {
	inserted := 0
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		for _, c := range crops {
			tag, err := tx.Exec(ctx, `
				INSERT INTO crops (namespace, `+cropColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				ON CONFLICT (namespace, id) DO NOTHING`,
				NamespaceBaseline, c.ID, c.Name, c.Type, c.PlantedAt, c.HarvestAt, c.NFTTokenID,
				c.ImageURL, c.Description, c.ExpectedYield, c.ActualYield, c.Rarity)
			if err != nil {
				return fmt.Errorf("failed to seed crop %s: %w", c.ID, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgBaselineSeeded, "inserted", inserted, "total", len(crops))
	return nil
}

func (s *CropStore) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// namespaceOf returns "" for unknown ids. User rows win over baseline rows.
func namespaceOf(ctx context.Context, tx pgx.Tx, id string) (string, error) {
	var ns string
	err := tx.QueryRow(ctx, `
		SELECT namespace FROM crops WHERE id = $1
		ORDER BY CASE namespace WHEN 'user' THEN 0 ELSE 1 END
		LIMIT 1 FOR UPDATE`, id).Scan(&ns)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up crop %s: %w", id, err)
	}
	return ns, nil
}

func listNamespace(ctx context.Context, tx pgx.Tx, ns string) ([]domain.Crop, error) {
	rows, err := tx.Query(ctx, `SELECT `+cropColumns+` FROM crops WHERE namespace = $1 ORDER BY position`, ns)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s crops: %w", ns, err)
	}
	defer rows.Close()

	crops := []domain.Crop{}
	for rows.Next() {
		var c domain.Crop
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.PlantedAt, &c.HarvestAt, &c.NFTTokenID,
			&c.ImageURL, &c.Description, &c.ExpectedYield, &c.ActualYield, &c.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan crop: %w", err)
		}
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s crops: %w", ns, err)
	}
	return crops, nil
}

func listOverrides(ctx context.Context, tx pgx.Tx) ([]storage.Override, error) {
	rows, err := tx.Query(ctx, `SELECT crop_id, kind, crop FROM crop_overrides ORDER BY updated_at, crop_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []storage.Override
	for rows.Next() {
		var id, kind string
		var payload []byte
		if err := rows.Scan(&id, &kind, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		switch storage.OverrideKind(kind) {
		case storage.OverrideUpsert:
			var c domain.Crop
			if err := json.Unmarshal(payload, &c); err != nil {
				return nil, fmt.Errorf("failed to decode override %s: %w", id, err)
			}
			c.ID = id
			overrides = append(overrides, storage.Upsert(c))
		case storage.OverrideTombstone:
			overrides = append(overrides, storage.Tombstone(id))
		default:
			return nil, fmt.Errorf("unknown override kind %q for %s", kind, id)
		}
	}
	return overrides, rows.Err()
}

func insertCrop(ctx context.Context, tx pgx.Tx, ns string, c domain.Crop) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO crops (namespace, `+cropColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		ns, c.ID, c.Name, c.Type, c.PlantedAt, c.HarvestAt, c.NFTTokenID,
		c.ImageURL, c.Description, c.ExpectedYield, c.ActualYield, c.Rarity)
	if err != nil {
		return fmt.Errorf("failed to insert crop %s: %w", c.ID, err)
	}
	return nil
}

func updateCrop(ctx context.Context, tx pgx.Tx, ns string, c domain.Crop) error {
	_, err := tx.Exec(ctx, `
		UPDATE crops SET name = $3, type = $4, planted_at = $5, harvest_at = $6, nft_token_id = $7,
			image_url = $8, description = $9, expected_yield = $10, actual_yield = $11, rarity = $12,
			updated_at = NOW()
		WHERE namespace = $1 AND id = $2`,
		ns, c.ID, c.Name, c.Type, c.PlantedAt, c.HarvestAt, c.NFTTokenID,
		c.ImageURL, c.Description, c.ExpectedYield, c.ActualYield, c.Rarity)
	if err != nil {
		return fmt.Errorf("failed to update crop %s: %w", c.ID, err)
	}
	return nil
}

func putOverride(ctx context.Context, tx pgx.Tx, o storage.Override) error {
	var payload []byte
	if o.Kind == storage.OverrideUpsert {
		var err error
		if payload, err = json.Marshal(o.Crop); err != nil {
			return fmt.Errorf("failed to encode override %s: %w", o.ID, err)
		}
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO crop_overrides (crop_id, kind, crop, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (crop_id) DO UPDATE SET kind = EXCLUDED.kind, crop = EXCLUDED.crop, updated_at = NOW()`,
		o.ID, string(o.Kind), payload)
	if err != nil {
		return fmt.Errorf("failed to store override %s: %w", o.ID, err)
	}
	return nil
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"HospitalRecords/cache"
)

const cacheExpiry = 24 * time.Hour

// crud is the shared add/update/delete/view engine behind the entity
// repositories. Each repository configures it with its model type, key
// column, validators and referential checks instead of repeating the
// same control flow per entity.
//
// Every operation validates before touching the store, runs the
// configured existence checks before any mutating statement, and maps
// store outcomes onto the shared error taxonomy.
type crud[T any] struct {
	db          *gorm.DB
	cache       *cache.Cache
	entity      string // lower-case name used in wrapped errors
	keyColumn   string
	nameColumn  string // empty when the entity has no searchable name
	cachePrefix string
	validate    func(*T) error
	validateID  func(string) error
	refChecks   []func(db *gorm.DB, e *T) error
	keyOf       func(*T) string
}

// Create validates, verifies references, and inserts. A unique-key
// conflict comes back as ErrDuplicate and leaves the table unchanged.
func (r *crud[T]) Create(ctx context.Context, e *T) error {
	if err := r.validate(e); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)
	for _, check := range r.refChecks {
		if err := check(db, e); err != nil {
			return err
		}
	}
	if err := db.Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	r.invalidate(ctx, r.keyOf(e))
	return nil
}

// Update replaces the full row identified by the primary key. Zero
// affected rows means the id does not exist.
func (r *crud[T]) Update(ctx context.Context, e *T) error {
	if err := r.validate(e); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)
	for _, check := range r.refChecks {
		if err := check(db, e); err != nil {
			return err
		}
	}
	res := db.Model(new(T)).
		Where(r.keyColumn+" = ?", r.keyOf(e)).
		Select("*").
		Updates(e)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s: %w", r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx, r.keyOf(e))
	return nil
}

// Delete removes the row by primary key after checking the id format.
func (r *crud[T]) Delete(ctx context.Context, id string) error {
	if err := r.validateID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(new(T), r.keyColumn+" = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx, id)
	return nil
}

// GetByID fetches one row, going through the cache when one is wired.
func (r *crud[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, r.itemCacheKey(id))
		if err == nil {
			var e T
			if uerr := json.Unmarshal([]byte(cached), &e); uerr == nil {
				return &e, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("entity", r.entity).Msg("cache read failed")
		}
	}

	var e T
	err := r.db.WithContext(ctx).First(&e, r.keyColumn+" = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.entity, err)
	}

	r.cacheSet(ctx, r.itemCacheKey(id), &e)
	return &e, nil
}

// GetAll returns every row in key order, so repeated calls with no
// intervening writes return identical sequences.
func (r *crud[T]) GetAll(ctx context.Context) ([]T, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, r.listCacheKey())
		if err == nil {
			var rows []T
			if uerr := json.Unmarshal([]byte(cached), &rows); uerr == nil {
				return rows, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("entity", r.entity).Msg("cache read failed")
		}
	}

	var rows []T
	if err := r.db.WithContext(ctx).Order(r.keyColumn).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %ss: %w", r.entity, err)
	}

	r.cacheSet(ctx, r.listCacheKey(), rows)
	return rows, nil
}

// SearchByName does a case-insensitive substring match on the entity's
// name column. An empty result is not an error.
func (r *crud[T]) SearchByName(ctx context.Context, substring string) ([]T, error) {
	var rows []T
	pattern := "%" + strings.ToLower(substring) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER("+r.nameColumn+") LIKE ?", pattern).
		Order(r.keyColumn).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search %ss: %w", r.entity, err)
	}
	return rows, nil
}

func (r *crud[T]) cacheSet(ctx context.Context, key string, value any) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, cacheExpiry); err != nil {
		log.Warn().Err(err).Str("entity", r.entity).Msg("cache write failed")
	}
}

// invalidate drops the item and list cache entries after any write.
func (r *crud[T]) invalidate(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, r.itemCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("entity", r.entity).Msg("cache invalidation failed")
	}
	if err := r.cache.DeleteAll(ctx, r.listCacheKey()); err != nil {
		log.Warn().Err(err).Str("entity", r.entity).Msg("cache invalidation failed")
	}
}

func (r *crud[T]) itemCacheKey(id string) string {
	return fmt.Sprintf("%s_cache:%s", r.cachePrefix, id)
}

func (r *crud[T]) listCacheKey() string {
	return r.cachePrefix + "s_cache"
}

// exists runs a single-row existence check against the given table.
func exists(db *gorm.DB, model any, column, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed existence check on %s: %w", column, err)
	}
	return count > 0, nil
}

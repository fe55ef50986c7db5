package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quickcalc/internal/calibration"
)

const profileID = 1

// profileRepo implements ProfileRepo.
type profileRepo struct {
	db querier
}

func (r *profileRepo) Load(ctx context.Context) (Profile, error) {
	p := Profile{Level: calibration.MinLevel}

	query, args := builder().Select("level", "updated_at").
		From(entsql.Table(ProfileTable.Name)).
		Where(entsql.EQ("id", profileID)).
		Query()
	var updated int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.Level, &updated)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Profile{}, fmt.Errorf("query profile: %w", err)
	default:
		p.Level = calibration.Clamp(p.Level)
		p.UpdatedAt = time.UnixMilli(updated)
	}

	learned, err := r.LearnedTechniques(ctx)
	if err != nil {
		return Profile{}, err
	}
	p.Learned = learned
	return p, nil
}

func (r *profileRepo) SaveLevel(ctx context.Context, level int) error {
	query, args := builder().Insert(ProfileTable.Name).
		Columns("id", "level", "updated_at").
		Values(profileID, calibration.Clamp(level), time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	return nil
}

func (r *profileRepo) LearnTechnique(ctx context.Context, slug string) error {
	query, args := builder().Insert(LearnedTechniquesTable.Name).
		Columns("slug", "learned_at").
		Values(slug, time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("slug"), entsql.DoNothing()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("learn technique %q: %w", slug, err)
	}
	return nil
}

func (r *profileRepo) LearnedTechniques(ctx context.Context) ([]string, error) {
	query, args := builder().Select("slug").
		From(entsql.Table(LearnedTechniquesTable.Name)).
		OrderBy("learned_at", "slug").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query learned techniques: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan learned technique: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

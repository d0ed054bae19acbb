package repositories

import (
	"context"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// RecordRepository reads and writes rows of a single entity table.
// Statements run on the request transaction when one is present in the context.
type RecordRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	entity   *schema.Entity
}

// NewRecordRepository creates a repository for entity.
func NewRecordRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, entity *schema.Entity) *RecordRepository {
	return &RecordRepository{db: db, txGetter: txGetter, entity: entity}
}

func (r *RecordRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// scoped adds the owner condition when owner is set.
func scoped[B interface{ Where(any, ...any) B }](b B, owner string) B {
	if owner == "" {
		return b
	}
	return b.Where(squirrel.Eq{models.ColumnUserID: owner})
}

// List returns one page of rows matching q and the total number of matching rows.
// Filters must already be validated against the entity.
func (r *RecordRepository) List(ctx context.Context, q models.ListQuery) ([]models.Record, int64, error) {
	count := scoped(psql.Select("COUNT(*)").From(r.entity.Table), q.Owner)
	page := scoped(psql.Select(r.entity.Columns()...).From(r.entity.Table), q.Owner)

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cond := squirrel.Eq{k: q.Filters[k]}
		count = count.Where(cond)
		page = page.Where(cond)
	}

	var total int64
	query, args, err := count.ToSql()
	if err != nil {
		return nil, 0, err
	}
	err = sqlx.GetContext(ctx, r.executor(ctx), &total, query, args...)
	logQuery(ctx, query, args, total, err)
	if err != nil {
		return nil, 0, mapError(err)
	}

	page = page.OrderBy(r.orderBy(q.Sort)...).
		Offset(uint64(q.Skip)).
		Limit(uint64(q.Limit))

	query, args, err = page.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.executor(ctx).QueryxContext(ctx, query, args...)
	if err != nil {
		logQuery(ctx, query, args, nil, err)
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	items := make([]models.Record, 0, q.Limit)
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, 0, err
		}
		rec, err := r.entity.Normalize(row)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	err = rows.Err()
	logQuery(ctx, query, args, len(items), err)
	if err != nil {
		return nil, 0, mapError(err)
	}

	return items, total, nil
}

// orderBy resolves the sort expression; unknown fields fall back to id DESC.
func (r *RecordRepository) orderBy(sortExpr string) []string {
	col, desc, ok := r.entity.SortColumn(sortExpr)
	if !ok {
		return []string{models.ColumnID + " DESC"}
	}
	dir := " ASC"
	if desc {
		dir = " DESC"
	}
	if col == models.ColumnID {
		return []string{col + dir}
	}
	return []string{col + dir, models.ColumnID + " DESC"}
}

// GetByID returns the row with id, restricted to owner when owner is set.
// It returns sql.ErrNoRows when no row matches.
func (r *RecordRepository) GetByID(ctx context.Context, id int64, owner string) (models.Record, error) {
	b := scoped(psql.Select(r.entity.Columns()...).From(r.entity.Table).
		Where(squirrel.Eq{models.ColumnID: id}), owner)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryRow(ctx, query, args)
}

// Insert stores a new row and returns it with the generated id.
func (r *RecordRepository) Insert(ctx context.Context, values map[string]any) (models.Record, error) {
	query, args, err := psql.Insert(r.entity.Table).
		SetMap(values).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryRow(ctx, query, args)
}

// Update applies values to the row with id owned by owner and returns the new row.
// It returns sql.ErrNoRows when no row matches.
func (r *RecordRepository) Update(ctx context.Context, id int64, owner string, values map[string]any) (models.Record, error) {
	b := scoped(psql.Update(r.entity.Table).
		SetMap(values).
		Where(squirrel.Eq{models.ColumnID: id}), owner)

	query, args, err := b.Suffix(r.returning()).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryRow(ctx, query, args)
}

// Delete removes the row with id owned by owner and reports whether it existed.
func (r *RecordRepository) Delete(ctx context.Context, id int64, owner string) (bool, error) {
	b := scoped(psql.Delete(r.entity.Table).
		Where(squirrel.Eq{models.ColumnID: id}), owner)

	query, args, err := b.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)
	if err != nil {
		return false, mapError(err)
	}

	return rowsAffected > 0, nil
}

func (r *RecordRepository) returning() string {
	return "RETURNING " + strings.Join(r.entity.Columns(), ", ")
}

func (r *RecordRepository) queryRow(ctx context.Context, query string, args []any) (models.Record, error) {
	row := map[string]any{}
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).MapScan(row)
	logQuery(ctx, query, args, row, err)
	if err != nil {
		return nil, mapError(err)
	}
	return r.entity.Normalize(row)
}

// logQuery logs the statement on a single line with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func logCache(ctx context.Context, op, key string, err error) {
	logger.FromContext(ctx).Debugw("cache",
		"op", op,
		"key", key,
		"error", err,
	)
}

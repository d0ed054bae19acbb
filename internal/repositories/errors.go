package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// mapError converts PostgreSQL data errors to schema.ErrValidation.
// Everything else, including sql.ErrNoRows, passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", // not_null_violation
			"23514", // check_violation
			"22P02", // invalid_text_representation
			"22003": // numeric_value_out_of_range
			return fmt.Errorf("%w: %s", schema.ErrValidation, pgErr.Message)
		}
	}

	return err
}

package repositories

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds every statement in this package with $N placeholders; filter
// values are always bound, never interpolated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// searchPredicate ORs a case-insensitive substring match over the given
// columns.
func searchPredicate(term string, columns ...string) sq.Sqlizer {
	pattern := "%" + term + "%"
	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

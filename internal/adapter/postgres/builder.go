package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// psql is the statement builder shared by all repositories.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return psql
}

// WhereScope restricts b to the scope's church unless it spans all churches.
func WhereScope(b sq.SelectBuilder, column string, scope domain.TenantScope) sq.SelectBuilder {
	if scope.IsAll() {
		return b
	}
	return b.Where(sq.Eq{column: scope.ChurchID()})
}

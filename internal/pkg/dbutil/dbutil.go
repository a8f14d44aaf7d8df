package dbutil

import (
	"github.com/jmoiron/sqlx"
)

// Finalize rewrites a gendry-built query ("?" placeholders) into the dollar
// placeholders lib/pq expects.
func Finalize(query string, args []interface{}) (string, []interface{}) {
	return sqlx.Rebind(sqlx.DOLLAR, query), args
}

package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

var userColumns = []any{"id", "username", "email", "api_token", "created_at"}

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable for the given database.
func NewUsersTable(db *sql.DB) UsersTable {
	return UsersTable{exec: bob.NewDB(db)}
}

// FindByToken retrieves the user holding the given API token.
// Returns (nil, nil) when the token is unknown.
func (t *UsersTable) FindByToken(ctx context.Context, token string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("api_token").EQ(psql.Arg(token))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new user and returns the persisted row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "username", "email", "api_token"),
		im.Values(psql.Arg(create.Username, create.Email, create.APIToken)),
		im.Returning(userColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
}

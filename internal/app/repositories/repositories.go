package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql is the statement builder every repository uses
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository      *MemberRepository
	UserAccountRepository *UserAccountRepository
	BookRepository        *BookRepository
	AuthorRepository      *AuthorRepository
	BookIssueRepository   *BookIssueRepository
	LookupRepository      *LookupRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		MemberRepository:      NewMemberRepository(db),
		UserAccountRepository: NewUserAccountRepository(db),
		BookRepository:        NewBookRepository(db),
		AuthorRepository:      NewAuthorRepository(db),
		BookIssueRepository:   NewBookIssueRepository(db),
		LookupRepository:      NewLookupRepository(db),
	}
}

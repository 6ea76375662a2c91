package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errUniqueEmail = errors.New(`ERROR: duplicate key value violates unique constraint "idx_vendors_email" (SQLSTATE 23505)`)

type recordedStatement struct {
	sql  string
	args []any
}

// recordingConnPool captures every statement gorm sends. Queries always fail
// because rows cannot be built without a server; the SQL is what matters.
type recordingConnPool struct {
	statements   []recordedStatement
	execErr      error
	rowsAffected int64
}

func (p *recordingConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("prepared statements are not supported")
}

func (p *recordingConnPool) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	p.statements = append(p.statements, recordedStatement{sql: query, args: args})
	if p.execErr != nil {
		return nil, p.execErr
	}

	return driver.RowsAffected(p.rowsAffected), nil
}

func (p *recordingConnPool) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	p.statements = append(p.statements, recordedStatement{sql: query, args: args})

	return nil, errors.New("connection refused")
}

func (p *recordingConnPool) QueryRowContext(_ context.Context, query string, args ...any) *sql.Row {
	p.statements = append(p.statements, recordedStatement{sql: query, args: args})

	return nil
}

func (p *recordingConnPool) last(t *testing.T) recordedStatement {
	t.Helper()
	require.NotEmpty(t, p.statements)

	return p.statements[len(p.statements)-1]
}

func newRecordingDB(t *testing.T) (*gorm.DB, *recordingConnPool) {
	t.Helper()

	pool := &recordingConnPool{rowsAffected: 1}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: pool}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, pool
}

func requireDatabaseError(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "got %v", err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestPrincipalRepository_RoleSelectsTable(t *testing.T) {
	tests := []struct {
		role  entity.Role
		table string
	}{
		{entity.RoleUser, `"users"`},
		{entity.RoleVendor, `"vendors"`},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			db, pool := newRecordingDB(t)
			repo := NewPrincipalRepository(db)

			_, err := repo.FindByEmail(context.Background(), tt.role, "shared@example.com")
			requireDatabaseError(t, err)

			stmt := pool.last(t)
			assert.Contains(t, stmt.sql, "FROM "+tt.table)
			assert.Contains(t, stmt.sql, "email = $1")
			assert.Equal(t, "shared@example.com", stmt.args[0])
		})
	}
}

func TestPrincipalRepository_UnknownRoleNeverQueries(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewPrincipalRepository(db)

	_, err := repo.FindByEmail(context.Background(), entity.Role("admin"), "a@example.com")
	require.Error(t, err)

	err = repo.Create(context.Background(), &entity.Principal{Role: entity.Role("admin"), Email: "a@example.com"})
	require.Error(t, err)

	assert.Empty(t, pool.statements)
}

func TestPrincipalRepository_CreateSameEmailAcrossRoles(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewPrincipalRepository(db)
	ctx := context.Background()

	user := &entity.Principal{Role: entity.RoleUser, FullName: "Ada", Email: "shared@example.com", Mobile: "555", PasswordHash: "h1"}
	vendor := &entity.Principal{Role: entity.RoleVendor, FullName: "Ada", Email: "shared@example.com", Mobile: "555", PasswordHash: "h2"}

	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Create(ctx, vendor))

	require.Len(t, pool.statements, 2)
	assert.True(t, strings.HasPrefix(pool.statements[0].sql, `INSERT INTO "users"`), pool.statements[0].sql)
	assert.True(t, strings.HasPrefix(pool.statements[1].sql, `INSERT INTO "vendors"`), pool.statements[1].sql)
	assert.Contains(t, pool.statements[0].args, "shared@example.com")
	assert.Contains(t, pool.statements[1].args, "shared@example.com")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, user.ID, vendor.ID)
	assert.False(t, vendor.CreatedAt.IsZero())
}

func TestPrincipalRepository_CreateMapsErrors(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewPrincipalRepository(db)
	principal := func() *entity.Principal {
		return &entity.Principal{Role: entity.RoleVendor, Email: "v@example.com", PasswordHash: "h"}
	}

	pool.execErr = errUniqueEmail
	require.ErrorIs(t, repo.Create(context.Background(), principal()), repository.ErrEmailTaken)

	pool.execErr = errors.New("connection reset by peer")
	err := repo.Create(context.Background(), principal())
	assert.NotErrorIs(t, err, repository.ErrEmailTaken)
	requireDatabaseError(t, err)
}

func TestPrincipalRepository_UpdateProfileImage(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewPrincipalRepository(db)
	id := uuid.New()

	require.NoError(t, repo.UpdateProfileImage(context.Background(), entity.RoleUser, id, "https://cdn.example.com/a.png"))
	stmt := pool.last(t)
	assert.True(t, strings.HasPrefix(stmt.sql, `UPDATE "users"`), stmt.sql)
	assert.Contains(t, stmt.args, "https://cdn.example.com/a.png")
	assert.Contains(t, stmt.args, id)

	pool.rowsAffected = 0
	err := repo.UpdateProfileImage(context.Background(), entity.RoleVendor, id, "https://cdn.example.com/b.png")
	require.ErrorIs(t, err, repository.ErrPrincipalNotFound)
}

func TestCafeRepository_ListByVendorFilters(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewCafeRepository(db)

	_, err := repo.ListByVendor(context.Background(), "a@example.com")
	requireDatabaseError(t, err)

	stmt := pool.last(t)
	assert.Contains(t, stmt.sql, `FROM "cafes" WHERE vendor_email = $1`)
	assert.Contains(t, stmt.sql, "ORDER BY created_at DESC")
	assert.Equal(t, []any{"a@example.com"}, stmt.args)
}

func TestCafeRepository_CreateMapsDuplicateName(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewCafeRepository(db)
	cafe := &entity.Cafe{Name: "Bean There", VendorEmail: "a@example.com", Images: []string{"g1"}}

	require.NoError(t, repo.Create(context.Background(), cafe))
	assert.NotEqual(t, uuid.Nil, cafe.ID)
	assert.True(t, strings.HasPrefix(pool.last(t).sql, `INSERT INTO "cafes"`))

	pool.execErr = errors.Wrap(gorm.ErrDuplicatedKey, "insert cafe")
	err := repo.Create(context.Background(), &entity.Cafe{Name: "Bean There", VendorEmail: "a@example.com"})
	require.ErrorIs(t, err, repository.ErrCafeNameTaken)
}

func TestItemRepository_ListScopes(t *testing.T) {
	db, pool := newRecordingDB(t)
	repo := NewItemRepository(db)

	_, err := repo.ListByVendor(context.Background(), "a@example.com")
	requireDatabaseError(t, err)
	byVendor := pool.last(t)
	assert.Contains(t, byVendor.sql, `FROM "items" WHERE vendor_email = $1`)
	assert.Equal(t, []any{"a@example.com"}, byVendor.args)

	_, err = repo.ListAll(context.Background())
	requireDatabaseError(t, err)
	all := pool.last(t)
	assert.Contains(t, all.sql, `FROM "items"`)
	assert.NotContains(t, all.sql, "WHERE")
	assert.Empty(t, all.args)
}

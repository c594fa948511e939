package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/jackc/pgerrcode"
)

// userColumns lists the users table columns in scan order.
var userColumns = []string{"id", "email", "hashed_password", "session_id", "reset_token"}

// userRepository is the SQL-backed implementation of [UserRepository].
// The same code serves PostgreSQL and SQLite: all statements are built with
// squirrel using the placeholder format carried by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// AddUser persists a new user record and returns the fully populated
// [models.User] with its server-assigned ID.
//
// The INSERT carries a RETURNING clause, so the caller receives the
// canonical database representation of the newly created account. A failed
// insert never yields a partially constructed user.
//
// Error handling:
//   - unique violation on email (either engine) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) AddUser(ctx context.Context, email string, hashedPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.User{}.TableName()).
		Columns("email", "hashed_password").
		Values(email, hashedPassword).
		Suffix("RETURNING id, email, hashed_password, session_id, reset_token").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("email", email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		r.logRetryability(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserBy retrieves the single user matching all supplied criteria
// conjunctively. When several rows match, the one with the lowest id wins,
// which keeps the result deterministic.
//
// Error handling:
//   - a criteria field outside the closed enumeration → [ErrInvalidAttribute].
//   - empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserBy(ctx context.Context, criteria Criteria) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := criteria.validate(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("rejected criteria outside the allowed field set")
		return models.User{}, err
	}

	builder := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName())
	for _, cond := range criteria {
		builder = builder.Where(sq.Eq{string(cond.Field): cond.Value})
	}

	query, args, err := builder.OrderBy("id ASC").Limit(1).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logRetryability(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUser applies all assignments to the row with the given id in a
// single UPDATE statement, so concurrent readers observe either none or all
// of the changes.
//
// Error handling:
//   - an assignment field outside the closed enumeration → [ErrInvalidAttribute].
//   - zero rows affected (nonexistent id) → [ErrUserNotFound]; callers are
//     expected to resolve the user before updating, so this signals a defect
//     rather than a routine miss.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update Update) error {
	log := logger.FromContext(ctx)

	if err := update.validate(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("rejected update outside the allowed field set")
		return err
	}

	builder := r.db.builder.Update(models.User{}.TableName())
	for _, a := range update {
		builder = builder.Set(string(a.Field), a.Value)
	}

	query, args, err := builder.Where(sq.Eq{string(FieldID): userID}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logRetryability(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Int64("id", userID).Msg("update targeted a nonexistent user")
		return ErrUserNotFound
	}

	return nil
}

// scanUser reads one users row, mapping nullable token columns onto the
// model's pointer fields.
func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	var (
		user       models.User
		sessionID  sql.NullString
		resetToken sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &sessionID, &resetToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if sessionID.Valid {
		user.SessionID = &sessionID.String
	}
	if resetToken.Valid {
		user.ResetToken = &resetToken.String
	}

	return user, nil
}

// logRetryability records whether the classifier considers err transient.
// Retry policy itself belongs to callers.
func (r *userRepository) logRetryability(log *logger.Logger, err error) {
	if r.db.errorClassificator == nil {
		return
	}

	if r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Msg("storage error classified as retryable")
	}
}

// isUniqueViolation reports whether err is a unique-constraint failure of
// either supported engine.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	return sqliteUniqueViolation(err)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user accounts in the "users" table and their liked/shared sets
// in "user_video_memberships".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned CreatedAt. The caller supplies UserID and PasswordHash.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Transient driver failures → [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.wrapError("create user", err)
	}

	user.LikedVideos = models.MembershipSet{}
	user.SharedVideos = models.MembershipSet{}
	return user, nil
}

// FindUserByEmail retrieves the user whose e-mail matches exactly.
// Membership sets are not loaded.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, r.db.wrapError("find user by email", err)
	}

	return user, nil
}

// FindUserByID retrieves the user together with both membership sets.
// An identifier that is not a UUID can never match and yields
// [ErrNoUserWasFound] without touching the database.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)
	if !utils.IsValidID(userID) {
		return models.User{}, ErrNoUserWasFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user by id")
		return models.User{}, r.db.wrapError("find user by id", err)
	}

	rows, err := r.db.QueryContext(ctx, findAllMemberships, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error querying memberships")
		return models.User{}, r.db.wrapError("find memberships", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	user.LikedVideos = models.MembershipSet{}
	user.SharedVideos = models.MembershipSet{}
	for rows.Next() {
		var kind, videoID string
		if err = rows.Scan(&kind, &videoID); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		switch models.MembershipKind(kind) {
		case models.MembershipLiked:
			user.LikedVideos = append(user.LikedVideos, videoID)
		case models.MembershipShared:
			user.SharedVideos = append(user.SharedVideos, videoID)
		}
	}
	if err = rows.Err(); err != nil {
		return models.User{}, r.db.wrapError("find memberships", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return user, nil
}

// GetMembership returns the ordered set of the given kind.
// A missing user yields [ErrNoUserWasFound]; a user with an empty set yields
// an empty, non-nil set.
func (r *userRepository) GetMembership(ctx context.Context, userID string, kind models.MembershipKind) (models.MembershipSet, error) {
	log := logger.FromContext(ctx)
	if !kind.Valid() {
		return nil, ErrUnknownMembershipKind
	}
	if !utils.IsValidID(userID) {
		return nil, ErrNoUserWasFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, getMembership, userID, string(kind))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetMembership").Msg("error querying membership")
		return nil, r.db.wrapError("get membership", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	found := false
	set := models.MembershipSet{}
	for rows.Next() {
		var owner string
		var videoID sql.NullString
		if err = rows.Scan(&owner, &videoID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found = true
		if videoID.Valid {
			set = append(set, videoID.String)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError("get membership", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	if !found {
		return nil, ErrNoUserWasFound
	}

	return set, nil
}

// ToggleMembership flips videoID in the user's set of the given kind.
//
// The user row is locked with SELECT ... FOR UPDATE for the duration of the
// transaction, so concurrent toggles of the same user are applied one after
// another while other users proceed in parallel. The returned set reflects
// the state committed by this call.
func (r *userRepository) ToggleMembership(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error) {
	log := logger.FromContext(ctx)
	if !kind.Valid() {
		return nil, ErrUnknownMembershipKind
	}
	if !utils.IsValidID(userID) {
		return nil, ErrNoUserWasFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var updated models.MembershipSet
	err := r.db.withTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		var locked string
		if err := tx.QueryRowContext(ctx, lockUser, userID).Scan(&locked); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoUserWasFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		current, err := queryMembership(ctx, tx, userID, kind)
		if err != nil {
			return err
		}

		next, added := current.Toggle(videoID)
		if err = next.Validate(); err != nil {
			return err
		}
		query := deleteMembership
		if added {
			query = insertMembership
		}
		if _, err = tx.ExecContext(ctx, query, userID, string(kind), models.NormalizeVideoID(videoID)); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		updated = next
		return nil
	})
	if errors.Is(err, ErrNoUserWasFound) {
		return nil, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ToggleMembership").
			Str("kind", string(kind)).
			Msg("error toggling membership")
		return nil, r.db.wrapError("toggle membership", err)
	}

	return updated, nil
}

func queryMembership(ctx context.Context, tx DBTX, userID string, kind models.MembershipKind) (models.MembershipSet, error) {
	rows, err := tx.QueryContext(ctx, selectMembershipForUpdate, userID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	set := models.MembershipSet{}
	for rows.Next() {
		var videoID string
		if err = rows.Scan(&videoID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		set = append(set, videoID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return set, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-directory/internal/domain/repository"
	"clinic-directory/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// isDuplicateKeyError reports a unique-constraint violation. GORM's
// translated error covers every dialect; the pgconn branch additionally
// matches the PostgreSQL constraint name when one is given.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code != "23505" {
			return false
		}
		if constraintName == "" {
			return true
		}
		return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// issueSession signs a token with the role-scoped lifetime and records the
// token ID in the session store so the bearer can be revoked before its
// cryptographic expiry.
func issueSession(
	ctx context.Context,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	sessionStore repository.SessionStore,
	role string,
	subjectID uuid.UUID,
) (string, error) {
	token, tokenID, err := jwtService.GenerateToken(subjectID, role)
	if err != nil {
		log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}
	if err := sessionStore.Put(ctx, role, subjectID.String(), tokenID, jwtService.ExpiryFor(role)); err != nil {
		log.Warnf("Failed to store session: %+v", err)
		return "", err
	}
	return token, nil
}

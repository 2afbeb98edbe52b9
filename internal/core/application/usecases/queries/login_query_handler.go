package queries

import (
	"context"
	"database/sql"
	"errors"

	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler authenticates users against their stored bcrypt hash.
// An unknown email and a wrong password both come back as
// account.ErrInvalidCredentials so the response never reveals which it was.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for credential checks.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle verifies the credentials and returns the user's identity.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	var (
		id           uuid.UUID
		passwordHash string
		role         int
		kitchenID    *uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			role,
			kitchen_id
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &passwordHash, &role, &kitchenID)
	if errors.Is(err, sql.ErrNoRows) {
		return LoginResponse{}, account.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginResponse{}, err
	}

	var kitchenUUID *kernel.UUID
	if kitchenID != nil {
		parsed, idErr := kernel.UUIDFromBytes(kitchenID[:])
		if idErr != nil {
			return LoginResponse{}, idErr
		}
		kitchenUUID = &parsed
	}

	user, err := account.RestoreUser(userID, query.Email(), passwordHash, order.ActorRole(role), kitchenUUID)
	if err != nil {
		return LoginResponse{}, err
	}

	if err = user.CheckPassword(query.Password()); err != nil {
		return LoginResponse{}, err
	}

	resp := LoginResponse{
		UserID: userID.String(),
		Role:   user.Role().String(),
	}
	if kitchenUUID != nil {
		s := kitchenUUID.String()
		resp.KitchenID = &s
	}

	return resp, nil
}

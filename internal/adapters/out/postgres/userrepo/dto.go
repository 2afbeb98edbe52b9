// Package userrepo persists user accounts.
package userrepo

import (
	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	KitchenID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	var kitchenID *uuid.UUID
	if id := aggregate.KitchenID(); id != nil {
		raw := id.Bytes()
		kitchenID = &raw
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		KitchenID:    kitchenID,
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var kitchenID *kernel.UUID
	if dto.KitchenID != nil {
		kID, kitchenErr := kernel.UUIDFromBytes((*dto.KitchenID)[:])
		if kitchenErr != nil {
			return nil, kitchenErr
		}
		kitchenID = &kID
	}

	return account.RestoreUser(id, dto.Email, dto.PasswordHash, order.ActorRole(dto.Role), kitchenID)
}

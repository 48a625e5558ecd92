// Package customerrepo reads customers, their address books and the phone
// whitelist used for OTP sign-in.
package customerrepo

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/customer"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Email string    `gorm:"type:varchar(255)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(64)"`
	Line1      string    `gorm:"type:varchar(255);not null"`
	Line2      string    `gorm:"type:varchar(255)"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

type PhoneWhitelistDTO struct {
	Phone string `gorm:"type:varchar(32);primaryKey"`
}

func (PhoneWhitelistDTO) TableName() string {
	return "phone_whitelist"
}

// Models lists every table of this package for migrations.
func Models() []any {
	return []any{&CustomerDTO{}, &AddressDTO{}, &PhoneWhitelistDTO{}}
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetAddress matches on both ids so another customer's address is reported
// as missing rather than forbidden.
func (r *GormCustomerRepository) GetAddress(
	ctx context.Context,
	addressID, customerID kernel.UUID,
) (customer.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND customer_id = ?", addressID.Bytes(), customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Address{}, errs.NewObjectNotFoundError("address", addressID.String())
		}
		return customer.Address{}, err
	}

	return customer.Address{
		ID:         addressID,
		CustomerID: customerID,
		Label:      dto.Label,
		Line1:      dto.Line1,
		Line2:      dto.Line2,
	}, nil
}

func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	phone = customer.NormalizePhone(phone)

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone)
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name, dto.Phone, dto.Email)
}

func (r *GormCustomerRepository) IsPhoneWhitelisted(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PhoneWhitelistDTO{}).
		Where("phone = ?", customer.NormalizePhone(phone)).
		Count(&count).Error
	return count > 0, err
}

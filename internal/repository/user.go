package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
)

type UserRepository struct {
	*Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[model.User](db)}
}

// GetByEmail finds user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SaveResetCode stores the hashed reset code with its expiry and resets
// the verified flag.
func (r *UserRepository) SaveResetCode(ctx context.Context, userID uint, hashedCode string, expires time.Time) error {
	return r.DB().WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_reset_code":     hashedCode,
		"password_reset_expires":  expires,
		"password_reset_verified": false,
	}).Error
}

// ClearResetCode wipes all reset state from the user row.
func (r *UserRepository) ClearResetCode(ctx context.Context, userID uint) error {
	return r.DB().WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_reset_code":     nil,
		"password_reset_expires":  nil,
		"password_reset_verified": false,
	}).Error
}

// FindByValidResetCode matches the hashed code against users whose reset
// window has not closed yet.
func (r *UserRepository) FindByValidResetCode(ctx context.Context, hashedCode string) (*model.User, error) {
	var user model.User
	err := r.DB().WithContext(ctx).
		Where("password_reset_code = ? AND password_reset_expires > ?", hashedCode, time.Now().UTC()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResetCodeInvalid
		}
		return nil, err
	}
	return &user, nil
}

// MarkResetVerified flips the verified flag after a successful code check.
func (r *UserRepository) MarkResetVerified(ctx context.Context, userID uint) error {
	return r.DB().WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("password_reset_verified", true).Error
}

// UpdatePassword sets the new hash, stamps password_changed_at and clears
// any pending reset state.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error {
	result := r.DB().WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password":                hashedPassword,
		"password_changed_at":     time.Now().UTC(),
		"password_reset_code":     nil,
		"password_reset_expires":  nil,
		"password_reset_verified": false,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetActive toggles the account's active flag.
func (r *UserRepository) SetActive(ctx context.Context, userID uint, active bool) error {
	result := r.DB().WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AddToWishlist appends the product to the user's wishlist. Appending a
// product that is already present is a no-op, so the wishlist behaves as
// a set.
func (r *UserRepository) AddToWishlist(ctx context.Context, userID, productID uint) error {
	user := model.User{Model: gorm.Model{ID: userID}}
	product := model.Product{Model: gorm.Model{ID: productID}}
	return r.DB().WithContext(ctx).Model(&user).Association("Wishlist").Append(&product)
}

// RemoveFromWishlist detaches the product from the user's wishlist.
func (r *UserRepository) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	user := model.User{Model: gorm.Model{ID: userID}}
	product := model.Product{Model: gorm.Model{ID: productID}}
	return r.DB().WithContext(ctx).Model(&user).Association("Wishlist").Delete(&product)
}

// GetWishlist loads the user's wishlist products.
func (r *UserRepository) GetWishlist(ctx context.Context, userID uint) ([]model.Product, error) {
	var products []model.Product
	user := model.User{Model: gorm.Model{ID: userID}}
	if err := r.DB().WithContext(ctx).Model(&user).Association("Wishlist").Find(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddAddress stores a new address in the user's address book.
func (r *UserRepository) AddAddress(ctx context.Context, address *model.Address) error {
	return r.DB().WithContext(ctx).Create(address).Error
}

// GetAddresses lists the user's address book.
func (r *UserRepository) GetAddresses(ctx context.Context, userID uint) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.DB().WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// RemoveAddress deletes one address, scoped to its owner.
func (r *UserRepository) RemoveAddress(ctx context.Context, userID, addressID uint) error {
	result := r.DB().WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Address{}, addressID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("no address found for this id %d", addressID)
	}
	return nil
}

package repositories

import (
	"headless-cms/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Count() (int64, error)
	PromoteFirstAdmin(id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// PromoteFirstAdmin grants the admin role to the given account iff it is the
// oldest live account and no admin exists yet. The winner is picked by id
// inside the statement, so of two concurrent first signups that both landed
// before either promotion ran, exactly the older row is promoted; an
// existence check instead would let each see the other and neither promote.
func (r *userRepository) PromoteFirstAdmin(id uint) (bool, error) {
	res := r.db.Exec(`
		UPDATE users
		SET roles = ?
		WHERE id = ?
		  AND id = (
			SELECT MIN(other.id) FROM users other
			WHERE other.deleted_at IS NULL
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM users admins
			WHERE admins.roles @> ? AND admins.deleted_at IS NULL
		  )`,
		models.RoleList{models.RoleAdmin}, id, models.RoleList{models.RoleAdmin})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// principalRepository stores users and vendors in separate tables with identical columns.
type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

// newPrincipalRecord returns an empty model for the role's table.
func newPrincipalRecord(role entity.Role) (model.PrincipalRecord, error) {
	switch role {
	case entity.RoleUser:
		return &model.UserModel{}, nil
	case entity.RoleVendor:
		return &model.VendorModel{}, nil
	default:
		return nil, errors.Errorf("unknown principal role %q", role)
	}
}

func (repo *principalRepository) FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.Principal, error) {
	return repo.findOne(ctx, role, "email = ?", email)
}

func (repo *principalRepository) FindByID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.Principal, error) {
	return repo.findOne(ctx, role, "id = ?", id)
}

func (repo *principalRepository) findOne(ctx context.Context, role entity.Role, query string, arg any) (*entity.Principal, error) {
	record, err := newPrincipalRecord(role)
	if err != nil {
		return nil, err
	}

	if err := primary(repo.db).WithContext(ctx).Where(query, arg).Take(record).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+role.String())
	}

	return toPrincipalDomain(role, record.Columns()), nil
}

// Create inserts the principal into its role's table and fills ID and timestamps.
func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	record, err := newPrincipalRecord(principal.Role)
	if err != nil {
		return err
	}

	if principal.ID == uuid.Nil {
		principal.ID, err = uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate principal id")
		}
	}
	fromPrincipalDomain(principal, record.Columns())

	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+principal.Role.String())
	}

	principal.CreatedAt = record.Columns().CreatedAt
	principal.UpdatedAt = record.Columns().UpdatedAt

	return nil
}

func (repo *principalRepository) UpdateProfileImage(ctx context.Context, role entity.Role, id uuid.UUID, imageRef string) error {
	record, err := newPrincipalRecord(role)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(record).
		Where("id = ?", id).
		Update("profile_image", imageRef)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

func toPrincipalDomain(role entity.Role, data *model.PrincipalColumns) *entity.Principal {
	return &entity.Principal{
		ID:           data.ID,
		Role:         role,
		FullName:     data.FullName,
		Email:        data.Email,
		Mobile:       data.Mobile,
		PasswordHash: data.PasswordHash,
		ProfileImage: data.ProfileImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal, dst *model.PrincipalColumns) {
	dst.ID = data.ID
	dst.FullName = data.FullName
	dst.Email = data.Email
	dst.Mobile = data.Mobile
	dst.PasswordHash = data.PasswordHash
	dst.ProfileImage = data.ProfileImage
}

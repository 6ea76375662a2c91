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

type cafeRepository struct {
	db *gorm.DB
}

// NewCafeRepository is the constructor for cafeRepository.
func NewCafeRepository(db *gorm.DB) repository.CafeRepository {
	return &cafeRepository{db: db}
}

func (repo *cafeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	var cafeM model.CafeModel
	if err := primary(repo.db).WithContext(ctx).Where("id = ?", id).Take(&cafeM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe by id")
	}

	return toCafeDomain(&cafeM), nil
}

func (repo *cafeRepository) FindByNameAndVendor(ctx context.Context, name, vendorEmail string) (*entity.Cafe, error) {
	var cafeM model.CafeModel
	err := primary(repo.db).WithContext(ctx).
		Where("cafename = ? AND vendor_email = ?", name, vendorEmail).
		Take(&cafeM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe by name")
	}

	return toCafeDomain(&cafeM), nil
}

// ListByVendor returns the vendor's cafes, newest first.
func (repo *cafeRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]*entity.Cafe, error) {
	var cafeMs []model.CafeModel
	err := repo.db.WithContext(ctx).
		Where("vendor_email = ?", vendorEmail).
		Order("created_at DESC").
		Find(&cafeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cafes")
	}

	cafes := make([]*entity.Cafe, 0, len(cafeMs))
	for i := range cafeMs {
		cafes = append(cafes, toCafeDomain(&cafeMs[i]))
	}

	return cafes, nil
}

func (repo *cafeRepository) Create(ctx context.Context, cafe *entity.Cafe) error {
	if cafe.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cafe id")
		}
		cafe.ID = id
	}

	cafeM := fromCafeDomain(cafe)
	if err := repo.db.WithContext(ctx).Create(cafeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCafeNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cafe")
	}

	cafe.CreatedAt = cafeM.CreatedAt
	cafe.UpdatedAt = cafeM.UpdatedAt

	return nil
}

func toCafeDomain(data *model.CafeModel) *entity.Cafe {
	return &entity.Cafe{
		ID:             data.ID,
		Name:           data.Name,
		VendorEmail:    data.VendorEmail,
		VendorPhone:    data.VendorPhone,
		Address:        data.Address,
		ThumbnailImage: data.ThumbnailImage,
		Images:         data.Images,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCafeDomain(data *entity.Cafe) *model.CafeModel {
	return &model.CafeModel{
		ID:             data.ID,
		Name:           data.Name,
		VendorEmail:    data.VendorEmail,
		VendorPhone:    data.VendorPhone,
		Address:        data.Address,
		ThumbnailImage: data.ThumbnailImage,
		Images:         data.Images,
	}
}

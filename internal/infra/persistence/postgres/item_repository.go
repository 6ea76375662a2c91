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

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate item id")
		}
		item.ID = id
	}

	itemM := fromItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) ListAll(ctx context.Context) ([]*entity.Item, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *itemRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]*entity.Item, error) {
	return repo.list(repo.db.WithContext(ctx).Where("vendor_email = ?", vendorEmail))
}

func (repo *itemRepository) list(tx *gorm.DB) ([]*entity.Item, error) {
	var itemMs []model.ItemModel
	if err := tx.Order("created_at DESC").Find(&itemMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, toItemDomain(&itemMs[i]))
	}

	return items, nil
}

func toItemDomain(data *model.ItemModel) *entity.Item {
	return &entity.Item{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Image:       data.Image,
		CafeID:      data.CafeID,
		VendorEmail: data.VendorEmail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Image:       data.Image,
		CafeID:      data.CafeID,
		VendorEmail: data.VendorEmail,
	}
}

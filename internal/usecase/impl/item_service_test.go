package impl

import (
	"context"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	mockRepo "cafe/internal/mocks/repository"
	mockService "cafe/internal/mocks/service"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceFixtures struct {
	service   usecase.ItemUsecase
	itemRepo  *mockRepo.MockItemRepository
	cafeRepo  *mockRepo.MockCafeRepository
	storage   *mockService.MockImageStorage
	publisher *mockService.MockEventPublisher
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	cafeRepo := mockRepo.NewMockCafeRepository(t)
	storage := mockService.NewMockImageStorage(t)
	publisher := mockService.NewMockEventPublisher(t)

	return itemServiceFixtures{
		service: NewItemService(ItemServiceParams{
			ItemRepo:  itemRepo,
			CafeRepo:  cafeRepo,
			Storage:   storage,
			Publisher: publisher,
			Policy:    newTestImagePolicy(),
			Logger:    newDiscardLogger(),
		}),
		itemRepo:  itemRepo,
		cafeRepo:  cafeRepo,
		storage:   storage,
		publisher: publisher,
	}
}

func TestItemService_AddItem_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	cafeID := uuid.New()
	itemID := uuid.New()
	image := newPNGUpload("latte.png")

	fx.cafeRepo.EXPECT().FindByID(ctx, cafeID).Return(&entity.Cafe{ID: cafeID, VendorEmail: "v@example.com"}, nil)
	fx.storage.EXPECT().Upload(ctx, "items", image).Return("item-ref", nil)
	fx.itemRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.Name == "Latte" && item.Price == 4.5 && item.CafeID == cafeID && item.VendorEmail == "v@example.com"
		})).
		Run(func(_ context.Context, item *entity.Item) { item.ID = itemID }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.MatchedBy(func(e *service.CatalogEvent) bool {
			return e.Type == service.EventItemAdded && e.ItemID == itemID.String() && e.CafeID == cafeID.String()
		})).
		Return(nil)

	item, err := fx.service.AddItem(ctx, vendorIdentity("v@example.com"), &usecase.AddItemInput{
		CafeID: " " + cafeID.String() + " ",
		Name:   "Latte",
		Price:  "4.50",
		Image:  image,
	})

	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, "item-ref", item.Image)
}

// Ownership is decided before the payload is looked at, so an invalid body
// aimed at someone else's cafe still reports the ownership failure.
func TestItemService_AddItem_ForeignCafe(t *testing.T) {
	cafeID := uuid.New()

	tests := []struct {
		name  string
		setup func(*mockRepo.MockCafeRepository)
	}{
		{
			name: "cafe owned by another vendor",
			setup: func(repo *mockRepo.MockCafeRepository) {
				repo.EXPECT().FindByID(mock.Anything, cafeID).Return(&entity.Cafe{ID: cafeID, VendorEmail: "owner@example.com"}, nil)
			},
		},
		{
			name: "cafe does not exist",
			setup: func(repo *mockRepo.MockCafeRepository) {
				repo.EXPECT().FindByID(mock.Anything, cafeID).Return(nil, repository.ErrCafeNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestItemService(t)
			tt.setup(fx.cafeRepo)

			_, err := fx.service.AddItem(context.Background(), vendorIdentity("intruder@example.com"), &usecase.AddItemInput{
				CafeID: cafeID.String(),
				Price:  "not-a-number",
			})

			require.ErrorIs(t, err, domainerrors.ErrCafeOwnership)
			assert.Equal(t, "You can only add items to your own cafes.", err.Error())
		})
	}
}

func TestItemService_AddItem_Validation(t *testing.T) {
	cafeID := uuid.New()

	tests := []struct {
		name       string
		input      usecase.AddItemInput
		resolvesID bool
	}{
		{name: "missing cafe id", input: usecase.AddItemInput{Name: "Latte", Price: "4"}},
		{name: "malformed cafe id", input: usecase.AddItemInput{CafeID: "cafe-1", Name: "Latte", Price: "4"}},
		{name: "missing name", input: usecase.AddItemInput{CafeID: cafeID.String(), Price: "4"}, resolvesID: true},
		{name: "missing price", input: usecase.AddItemInput{CafeID: cafeID.String(), Name: "Latte"}, resolvesID: true},
		{name: "zero price", input: usecase.AddItemInput{CafeID: cafeID.String(), Name: "Latte", Price: "0"}, resolvesID: true},
		{name: "negative price", input: usecase.AddItemInput{CafeID: cafeID.String(), Name: "Latte", Price: "-2"}, resolvesID: true},
		{name: "infinite price", input: usecase.AddItemInput{CafeID: cafeID.String(), Name: "Latte", Price: "Inf"}, resolvesID: true},
		{name: "missing image", input: usecase.AddItemInput{CafeID: cafeID.String(), Name: "Latte", Price: "4"}, resolvesID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestItemService(t)
			if tt.resolvesID {
				fx.cafeRepo.EXPECT().FindByID(mock.Anything, cafeID).Return(&entity.Cafe{ID: cafeID, VendorEmail: "v@example.com"}, nil)
			}

			_, err := fx.service.AddItem(context.Background(), vendorIdentity("v@example.com"), &tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestItemService_AddItem_DiscardsImageWhenStoreFails(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	cafeID := uuid.New()
	boom := errors.New("db down")

	fx.cafeRepo.EXPECT().FindByID(ctx, cafeID).Return(&entity.Cafe{ID: cafeID, VendorEmail: "v@example.com"}, nil)
	fx.storage.EXPECT().Upload(ctx, "items", mock.Anything).Return("item-ref", nil)
	fx.itemRepo.EXPECT().Create(ctx, mock.Anything).Return(boom)
	fx.storage.EXPECT().Delete(ctx, "item-ref").Return(nil)

	_, err := fx.service.AddItem(ctx, vendorIdentity("v@example.com"), &usecase.AddItemInput{
		CafeID: cafeID.String(),
		Name:   "Latte",
		Price:  "4",
		Image:  newPNGUpload("latte.png"),
	})

	require.ErrorIs(t, err, boom)
}

func TestItemService_ListItems_Scoping(t *testing.T) {
	ctx := context.Background()
	mine := []*entity.Item{{ID: uuid.New(), VendorEmail: "v@example.com"}}
	all := append([]*entity.Item{{ID: uuid.New(), VendorEmail: "other@example.com"}}, mine...)

	t.Run("vendor sees own items", func(t *testing.T) {
		fx := createTestItemService(t)
		fx.itemRepo.EXPECT().ListByVendor(ctx, "v@example.com").Return(mine, nil)

		items, err := fx.service.ListItems(ctx, vendorIdentity("v@example.com"))

		require.NoError(t, err)
		assert.Equal(t, mine, items)
	})

	t.Run("user sees everything", func(t *testing.T) {
		fx := createTestItemService(t)
		fx.itemRepo.EXPECT().ListAll(ctx).Return(all, nil)

		items, err := fx.service.ListItems(ctx, &entity.Identity{Email: "u@example.com", Role: entity.RoleUser})

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("anonymous sees everything", func(t *testing.T) {
		fx := createTestItemService(t)
		fx.itemRepo.EXPECT().ListAll(ctx).Return(nil, nil)

		items, err := fx.service.ListItems(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, items)
	})
}

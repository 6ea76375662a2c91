package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const itemImageFolder = "items"

// itemFields is the parsed part of AddItemInput that goes through the validator.
type itemFields struct {
	Name string `json:"name" validate:"required,max=100"`
}

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo  repository.ItemRepository
	cafeRepo  repository.CafeRepository
	storage   service.ImageStorage
	publisher service.EventPublisher
	policy    ImagePolicy
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo  repository.ItemRepository
	CafeRepo  repository.CafeRepository
	Storage   service.ImageStorage
	Publisher service.EventPublisher
	Policy    ImagePolicy
	Logger    *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:  params.ItemRepo,
		cafeRepo:  params.CafeRepo,
		storage:   params.Storage,
		publisher: params.Publisher,
		policy:    params.Policy,
		logger:    params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem resolves and authorizes the target cafe before looking at any other field.
func (srv *itemService) AddItem(ctx context.Context, identity *entity.Identity, input *usecase.AddItemInput) (*entity.Item, error) {
	if !identity.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}

	cafe, err := srv.ownedCafe(ctx, identity, input.CafeID)
	if err != nil {
		return nil, err
	}

	fields := itemFields{Name: strings.TrimSpace(input.Name)}
	if err := validateInput(&fields); err != nil {
		return nil, err
	}
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	if err := srv.policy.Check("image", input.Image); err != nil {
		return nil, err
	}

	ref, err := srv.storage.Upload(ctx, itemImageFolder, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload item image")
	}

	item := &entity.Item{
		Name:        fields.Name,
		Price:       price,
		Image:       ref,
		CafeID:      cafe.ID,
		VendorEmail: identity.Email,
	}
	if err := srv.itemRepo.Create(ctx, item); err != nil {
		discardUploads(ctx, srv.storage, srv.log(ctx), []string{ref})

		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Info("Item added", slog.Any("itemID", item.ID), slog.Any("cafeID", cafe.ID))

	publishCatalogEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:        service.EventItemAdded,
		CafeID:      cafe.ID.String(),
		ItemID:      item.ID.String(),
		VendorEmail: item.VendorEmail,
		Name:        item.Name,
	})

	return item, nil
}

// ownedCafe resolves the cafe id and requires the caller to own it. A missing
// cafe is indistinguishable from someone else's.
func (srv *itemService) ownedCafe(ctx context.Context, identity *entity.Identity, rawID string) (*entity.Cafe, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, domainerrors.ErrValidation.WithDetails("cafeId is required")
	}
	cafeID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails("cafeId must be a valid id")
	}

	cafe, err := srv.cafeRepo.FindByID(ctx, cafeID)
	if errors.Is(err, repository.ErrCafeNotFound) {
		return nil, domainerrors.ErrCafeOwnership
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cafe")
	}
	if !cafe.OwnedBy(identity.Email) {
		srv.log(ctx).Warn("Rejected item for foreign cafe", slog.Any("cafeID", cafeID), slog.String("vendor", identity.Email))

		return nil, domainerrors.ErrCafeOwnership
	}

	return cafe, nil
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domainerrors.ErrValidation.WithDetails("price is required")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, domainerrors.ErrValidation.WithDetails("price must be a positive number")
	}

	return price, nil
}

// ListItems scopes the listing to the caller's items only for vendor identities.
func (srv *itemService) ListItems(ctx context.Context, identity *entity.Identity) ([]*entity.Item, error) {
	var (
		items []*entity.Item
		err   error
	)
	if identity.IsVendor() {
		items, err = srv.itemRepo.ListByVendor(ctx, identity.Email)
	} else {
		items, err = srv.itemRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	if items == nil {
		items = []*entity.Item{}
	}

	return items, nil
}

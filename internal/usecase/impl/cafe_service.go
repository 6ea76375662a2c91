package impl

import (
	"context"
	"fmt"
	"log/slog"
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

const (
	cafeThumbnailFolder = "cafes/thumbnails"
	cafeGalleryFolder   = "cafes/gallery"
)

// cafeService implements the CafeUsecase interface.
type cafeService struct {
	cafeRepo  repository.CafeRepository
	storage   service.ImageStorage
	publisher service.EventPublisher
	qrService service.QRCodeService
	policy    ImagePolicy
	logger    *slog.Logger
}

// CafeServiceParams holds dependencies for CafeService, injected by Fx.
type CafeServiceParams struct {
	fx.In

	CafeRepo  repository.CafeRepository
	Storage   service.ImageStorage
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Policy    ImagePolicy
	Logger    *slog.Logger
}

// NewCafeService is the constructor for cafeService.
func NewCafeService(params CafeServiceParams) usecase.CafeUsecase {
	return &cafeService{
		cafeRepo:  params.CafeRepo,
		storage:   params.Storage,
		publisher: params.Publisher,
		qrService: params.QRService,
		policy:    params.Policy,
		logger:    params.Logger,
	}
}

func (srv *cafeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCafe validates the submission, uploads its images and stores the cafe under the caller.
func (srv *cafeService) RegisterCafe(ctx context.Context, identity *entity.Identity, input *usecase.RegisterCafeInput) (*entity.Cafe, error) {
	if !identity.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}

	fields := *input
	fields.Name = strings.TrimSpace(input.Name)
	fields.Phone = strings.TrimSpace(input.Phone)
	fields.Address = strings.TrimSpace(input.Address)
	if err := srv.validateRegistration(&fields); err != nil {
		return nil, err
	}

	_, err := srv.cafeRepo.FindByNameAndVendor(ctx, fields.Name, identity.Email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateCafe
	}
	if !errors.Is(err, repository.ErrCafeNotFound) {
		return nil, errors.Wrap(err, "failed to check cafe name")
	}

	thumbnail, gallery, err := srv.uploadImages(ctx, fields.Thumbnail, fields.Images)
	if err != nil {
		return nil, err
	}

	cafe := &entity.Cafe{
		Name:           fields.Name,
		VendorEmail:    identity.Email,
		VendorPhone:    fields.Phone,
		Address:        fields.Address,
		ThumbnailImage: thumbnail,
		Images:         gallery,
	}
	if err := srv.cafeRepo.Create(ctx, cafe); err != nil {
		discardUploads(ctx, srv.storage, srv.log(ctx), append([]string{thumbnail}, gallery...))
		if errors.Is(err, repository.ErrCafeNameTaken) {
			return nil, domainerrors.ErrDuplicateCafe
		}

		return nil, errors.Wrap(err, "failed to create cafe")
	}

	srv.log(ctx).Info("Cafe registered", slog.Any("cafeID", cafe.ID), slog.String("vendor", identity.Email))

	publishCatalogEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:        service.EventCafeRegistered,
		CafeID:      cafe.ID.String(),
		VendorEmail: cafe.VendorEmail,
		Name:        cafe.Name,
	})

	return cafe, nil
}

func (srv *cafeService) validateRegistration(input *usecase.RegisterCafeInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	if err := srv.policy.Check("thumbnailImage", input.Thumbnail); err != nil {
		return err
	}

	if n := len(input.Images); n < entity.MinCafeImages || n > entity.MaxCafeImages {
		return domainerrors.ErrValidation.WithDetails(fmt.Sprintf(
			"cafeImages must contain between %d and %d images, got %d", entity.MinCafeImages, entity.MaxCafeImages, n))
	}
	for i, image := range input.Images {
		if err := srv.policy.Check(fmt.Sprintf("cafeImages[%d]", i), image); err != nil {
			return err
		}
	}

	return nil
}

// uploadImages stores the thumbnail and gallery. On failure nothing uploaded by this call is left behind.
func (srv *cafeService) uploadImages(ctx context.Context, thumbnail *entity.ImageUpload, images []*entity.ImageUpload) (string, []string, error) {
	thumbnailRef, err := srv.storage.Upload(ctx, cafeThumbnailFolder, thumbnail)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to upload thumbnail")
	}

	gallery := make([]string, 0, len(images))
	for _, image := range images {
		ref, err := srv.storage.Upload(ctx, cafeGalleryFolder, image)
		if err != nil {
			discardUploads(ctx, srv.storage, srv.log(ctx), append([]string{thumbnailRef}, gallery...))

			return "", nil, errors.Wrap(err, "failed to upload cafe image")
		}
		gallery = append(gallery, ref)
	}

	return thumbnailRef, gallery, nil
}

func (srv *cafeService) ListCafes(ctx context.Context, identity *entity.Identity) ([]*entity.Cafe, error) {
	if !identity.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}

	cafes, err := srv.cafeRepo.ListByVendor(ctx, identity.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cafes")
	}
	if cafes == nil {
		cafes = []*entity.Cafe{}
	}

	return cafes, nil
}

// MenuQR renders the menu QR code. A cafe the caller does not own is reported as forbidden, whether or not it exists.
func (srv *cafeService) MenuQR(ctx context.Context, identity *entity.Identity, cafeID uuid.UUID) ([]byte, error) {
	if !identity.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}

	cafe, err := srv.cafeRepo.FindByID(ctx, cafeID)
	if errors.Is(err, repository.ErrCafeNotFound) {
		return nil, domainerrors.ErrForbidden
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cafe")
	}
	if !cafe.OwnedBy(identity.Email) {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrService.GenerateMenuQR(cafe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	return png, nil
}

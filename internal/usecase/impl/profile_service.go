package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/usecase"

	"github.com/pkg/errors"
)

const profileImageFolder = "profiles/"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	principalRepo repository.PrincipalRepository
	storage       service.ImageStorage
	policy        ImagePolicy
	logger        *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	principalRepo repository.PrincipalRepository,
	storage service.ImageStorage,
	policy ImagePolicy,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		principalRepo: principalRepo,
		storage:       storage,
		policy:        policy,
		logger:        logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	principal, err := srv.findPrincipal(ctx, identity)
	if err != nil {
		return nil, err
	}

	return principal.Profile(), nil
}

// UpdateProfileImage stores the new image, points the account at it and drops the previous one.
func (srv *profileService) UpdateProfileImage(ctx context.Context, identity *entity.Identity, image *entity.ImageUpload) (string, error) {
	if err := srv.policy.Check("image", image); err != nil {
		return "", err
	}

	principal, err := srv.findPrincipal(ctx, identity)
	if err != nil {
		return "", err
	}

	ref, err := srv.storage.Upload(ctx, profileImageFolder+identity.Role.String(), image)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload profile image")
	}

	if err := srv.principalRepo.UpdateProfileImage(ctx, identity.Role, identity.SubjectID, ref); err != nil {
		discardUploads(ctx, srv.storage, srv.log(ctx), []string{ref})
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return "", domainerrors.ErrNotFound.WithDetails("account not found")
		}

		return "", errors.Wrap(err, "failed to update profile image")
	}

	if previous := principal.ProfileImage; previous != nil && *previous != "" && *previous != ref {
		discardUploads(ctx, srv.storage, srv.log(ctx), []string{*previous})
	}

	srv.log(ctx).Info("Profile image updated", slog.Any("role", identity.Role), slog.Any("id", identity.SubjectID))

	return ref, nil
}

func (srv *profileService) findPrincipal(ctx context.Context, identity *entity.Identity) (*entity.Principal, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	principal, err := srv.principalRepo.FindByID(ctx, identity.Role, identity.SubjectID)
	if errors.Is(err, repository.ErrPrincipalNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("account not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return principal, nil
}

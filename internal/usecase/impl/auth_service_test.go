package impl

import (
	"context"
	"testing"

	"cafe/config"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/infra/auth"
	mockRepo "cafe/internal/mocks/repository"
	mockService "cafe/internal/mocks/service"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authServiceFixtures struct {
	service       usecase.AuthUsecase
	principalRepo *mockRepo.MockPrincipalRepository
	hasher        *mockService.MockPasswordHasher
	tokenService  *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	principalRepo := mockRepo.NewMockPrincipalRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			PrincipalRepo: principalRepo,
			Hasher:        hasher,
			TokenService:  tokenService,
			Logger:        newDiscardLogger(),
		}),
		principalRepo: principalRepo,
		hasher:        hasher,
		tokenService:  tokenService,
	}
}

func signupInput(role entity.Role) *usecase.SignupInput {
	return &usecase.SignupInput{
		Role:     role,
		FullName: "Ada Lovelace",
		Email:    " ada@example.com ",
		Mobile:   "0912345678",
		Password: "s3cret-pass",
	}
}

func TestAuthService_Signup_UserGetsNoToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").Return(nil, repository.ErrPrincipalNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.principalRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Principal) bool {
			return p.Role == entity.RoleUser && p.Email == "ada@example.com" && p.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, p *entity.Principal) { p.ID = userID }).
		Return(nil)

	out, err := fx.service.Signup(ctx, signupInput(entity.RoleUser))

	require.NoError(t, err)
	assert.Empty(t, out.Token)
	assert.Equal(t, userID, out.Profile.ID)
	assert.Equal(t, "Ada Lovelace", out.Profile.FullName)
}

func TestAuthService_Signup_VendorIsSignedIn(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleVendor, "ada@example.com").Return(nil, repository.ErrPrincipalNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.principalRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Principal")).
		Run(func(_ context.Context, p *entity.Principal) { p.ID = vendorID }).
		Return(nil)
	fx.tokenService.EXPECT().
		Issue(service.TokenClaims{SubjectID: vendorID, Email: "ada@example.com", Role: entity.RoleVendor}).
		Return("vendor-token", nil)

	out, err := fx.service.Signup(ctx, signupInput(entity.RoleVendor))

	require.NoError(t, err)
	assert.Equal(t, "vendor-token", out.Token)
	assert.Equal(t, vendorID, out.Profile.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Run("found by lookup", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").
			Return(&entity.Principal{ID: uuid.New(), Email: "ada@example.com"}, nil)

		_, err := fx.service.Signup(ctx, signupInput(entity.RoleUser))

		require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	})

	t.Run("lost the insert race", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").Return(nil, repository.ErrPrincipalNotFound)
		fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		fx.principalRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Principal")).Return(repository.ErrEmailTaken)

		_, err := fx.service.Signup(ctx, signupInput(entity.RoleUser))

		require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	})
}

func TestAuthService_Signup_Failures(t *testing.T) {
	t.Run("unknown role", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Signup(context.Background(), signupInput(entity.Role("admin")))

		require.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		boom := errors.New("connection refused")

		fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").Return(nil, boom)

		_, err := fx.service.Signup(ctx, signupInput(entity.RoleUser))

		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").Return(nil, repository.ErrPrincipalNotFound)
		fx.hasher.EXPECT().Hash("s3cret-pass").Return("", bcrypt.ErrPasswordTooLong)

		_, err := fx.service.Signup(ctx, signupInput(entity.RoleUser))

		require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	})
}

func TestAuthService_Login_RejectionsLookTheSame(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").Return(nil, repository.ErrPrincipalNotFound)
	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Role: entity.RoleUser, Email: "ada@example.com", Password: "x"})

	wrong := createTestAuthService(t)
	wrong.principalRepo.EXPECT().FindByEmail(ctx, entity.RoleUser, "ada@example.com").
		Return(&entity.Principal{ID: uuid.New(), Role: entity.RoleUser, Email: "ada@example.com", PasswordHash: "hashed"}, nil)
	wrong.hasher.EXPECT().Check("x", "hashed").Return(false)
	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Role: entity.RoleUser, Email: "ada@example.com", Password: "x"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, "Invalid email or password", wrongErr.Error())
}

func TestAuthService_Login_IssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	cfg.SecretKey.Token = "login-test-secret"

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	vendor := &entity.Principal{
		ID:           uuid.New(),
		Role:         entity.RoleVendor,
		FullName:     "Vera Vendor",
		Email:        "vera@example.com",
		PasswordHash: hash,
	}
	principalRepo := mockRepo.NewMockPrincipalRepository(t)
	principalRepo.EXPECT().FindByEmail(ctx, entity.RoleVendor, "vera@example.com").Return(vendor, nil)

	svc := NewAuthService(AuthServiceParams{
		PrincipalRepo: principalRepo,
		Hasher:        hasher,
		TokenService:  tokens,
		Logger:        newDiscardLogger(),
	})

	out, err := svc.Login(ctx, &usecase.LoginInput{Role: entity.RoleVendor, Email: "vera@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, out.Profile.ID)

	claims, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, claims.SubjectID)
	assert.Equal(t, "vera@example.com", claims.Email)
	assert.Equal(t, entity.RoleVendor, claims.Role)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	mockRepo "fitfamily/internal/mocks/repository"
	mockSvc "fitfamily/internal/mocks/service"
	"fitfamily/internal/usecase"
	"fitfamily/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// familyServiceFixtures holds all test dependencies for family service tests.
type familyServiceFixtures struct {
	service    usecase.FamilyUsecase
	txManager  *mockRepo.MockTransactionManager
	familyRepo *mockRepo.MockFamilyRepository
	qrService  *mockSvc.MockQRCodeService
}

func createTestFamilyService(t *testing.T) familyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFamilyService(FamilyServiceParams{
		TxManager:  txManager,
		FamilyRepo: familyRepo,
		QRService:  qrService,
		Logger:     logger,
	})

	return familyServiceFixtures{
		service:    service,
		txManager:  txManager,
		familyRepo: familyRepo,
		qrService:  qrService,
	}
}

// expectSavepointPassthrough makes the factory run each savepoint-wrapped
// insert directly, the way a live savepoint would on success or contained
// failure.
func expectSavepointPassthrough(factory *mockRepo.MockRepositoryFactory) {
	factory.EXPECT().
		WithSavepoint(mock.AnythingOfType("func() error")).
		RunAndReturn(func(fn func() error) error {
			return fn()
		})
}

func memberWithoutFamily() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  entity.RoleMember,
	}
}

func memberWithFamily() *entity.User {
	familyID := uuid.New()

	return &entity.User{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Role:     entity.RoleMember,
		FamilyID: &familyID,
	}
}

func TestFamilyService_CreateFamily_Success(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	requester := memberWithoutFamily()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectSavepointPassthrough(factory)
	expectTransaction(ctx, fx.txManager, factory)

	familyID := uuid.New()
	txFamilyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Family")).
		Run(func(_ context.Context, family *entity.Family) {
			family.ID = familyID
		}).
		Return(nil)
	txUserRepo.EXPECT().Update(ctx, requester).Return(nil)

	output, err := fx.service.CreateFamily(ctx, "Doe Family", requester)
	require.NoError(t, err)
	assert.Equal(t, familyID.String(), output.ID)
	assert.Equal(t, "Doe Family", output.Name)
	assert.Regexp(t, util.JoinCodePattern, output.JoinCode)

	// The creator is promoted to ADMIN of the new family.
	assert.Equal(t, entity.RoleAdmin, requester.Role)
	require.NotNil(t, requester.FamilyID)
	assert.Equal(t, familyID, *requester.FamilyID)
}

func TestFamilyService_CreateFamily_AlreadyInFamily(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	output, err := fx.service.CreateFamily(ctx, "Another Family", memberWithFamily())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInFamily)
}

func TestFamilyService_CreateFamily_RedrawsOnCollision(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	requester := memberWithoutFamily()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(ctx, fx.txManager, factory)

	// Every draw runs behind its own savepoint, so a conflicting insert
	// cannot abort the surrounding transaction before the redraw.
	factory.EXPECT().
		WithSavepoint(mock.AnythingOfType("func() error")).
		RunAndReturn(func(fn func() error) error {
			return fn()
		}).
		Times(2)

	// First draw collides on the unique constraint, second succeeds.
	txFamilyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Family")).
		Return(repository.ErrJoinCodeTaken).
		Once()
	txFamilyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Family")).
		Run(func(_ context.Context, family *entity.Family) {
			family.ID = uuid.New()
		}).
		Return(nil).
		Once()
	txUserRepo.EXPECT().Update(ctx, requester).Return(nil)

	output, err := fx.service.CreateFamily(ctx, "Doe Family", requester)
	require.NoError(t, err)
	assert.Regexp(t, util.JoinCodePattern, output.JoinCode)
}

func TestFamilyService_CreateFamily_JoinCodeExhausted(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	expectSavepointPassthrough(factory)
	expectTransaction(ctx, fx.txManager, factory)

	txFamilyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Family")).
		Return(repository.ErrJoinCodeTaken).
		Times(maxJoinCodeAttempts)

	output, err := fx.service.CreateFamily(ctx, "Doe Family", memberWithoutFamily())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrJoinCodeExhausted)
}

func TestFamilyService_JoinFamily_Success(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	requester := memberWithoutFamily()

	family := &entity.Family{
		ID:       uuid.New(),
		Name:     "Doe Family",
		JoinCode: "FIT-A1B2",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(ctx, fx.txManager, factory)

	txFamilyRepo.EXPECT().FindByJoinCode(ctx, "FIT-A1B2").Return(family, nil)
	txUserRepo.EXPECT().Update(ctx, requester).Return(nil)

	output, err := fx.service.JoinFamily(ctx, "FIT-A1B2", requester)
	require.NoError(t, err)
	assert.Equal(t, family.ID.String(), output.FamilyID)
	assert.Equal(t, "Doe Family", output.FamilyName)
	assert.Equal(t, "MEMBER", output.Role)
	assert.Equal(t, entity.RoleMember, requester.Role)
}

func TestFamilyService_JoinFamily_InvalidCode(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	expectTransaction(ctx, fx.txManager, factory)

	txFamilyRepo.EXPECT().FindByJoinCode(ctx, "FIT-ZZZZ").Return(nil, repository.ErrFamilyNotFound)

	output, err := fx.service.JoinFamily(ctx, "FIT-ZZZZ", memberWithoutFamily())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidJoinCode)
}

func TestFamilyService_JoinFamily_FamilyDeletedDuringJoin(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()
	requester := memberWithoutFamily()

	family := &entity.Family{
		ID:       uuid.New(),
		Name:     "Doe Family",
		JoinCode: "FIT-A1B2",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFamilyRepo := mockRepo.NewMockFamilyRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().FamilyRepo().Return(txFamilyRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(ctx, fx.txManager, factory)

	txFamilyRepo.EXPECT().FindByJoinCode(ctx, "FIT-A1B2").Return(family, nil)
	// The family vanishes between lookup and assignment; the foreign key
	// reports it as not found.
	txUserRepo.EXPECT().Update(ctx, requester).Return(repository.ErrFamilyNotFound)

	output, err := fx.service.JoinFamily(ctx, "FIT-A1B2", requester)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidJoinCode)
}

func TestFamilyService_JoinFamily_AlreadyInFamily(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	output, err := fx.service.JoinFamily(ctx, "FIT-A1B2", memberWithFamily())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInFamily)
}

func TestFamilyService_GetMyFamily_Success(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	family := &entity.Family{
		ID:       uuid.New(),
		Name:     "Doe Family",
		JoinCode: "FIT-A1B2",
	}
	requester := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleAdmin,
		FamilyID: &family.ID,
	}

	// Family not preloaded on the requester, so it is fetched by id.
	fx.familyRepo.EXPECT().FindByID(ctx, family.ID).Return(family, nil)

	output, err := fx.service.GetMyFamily(ctx, requester)
	require.NoError(t, err)
	assert.Equal(t, family.ID.String(), output.ID)
	assert.Equal(t, "Doe Family", output.Name)
	assert.Equal(t, "FIT-A1B2", output.JoinCode)
	assert.Equal(t, "ADMIN", output.MyRole)
}

func TestFamilyService_GetMyFamily_NoFamily(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	output, err := fx.service.GetMyFamily(ctx, memberWithoutFamily())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrFamilyNotFound)
}

func TestFamilyService_JoinCodeQR_Success(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	family := &entity.Family{
		ID:       uuid.New(),
		Name:     "Doe Family",
		JoinCode: "FIT-A1B2",
	}
	requester := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleMember,
		FamilyID: &family.ID,
		Family:   family,
	}

	fx.qrService.EXPECT().Generate("FIT-A1B2").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.JoinCodeQR(ctx, requester)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestFamilyService_JoinCodeQR_NoFamily(t *testing.T) {
	fx := createTestFamilyService(t)
	ctx := context.Background()

	png, err := fx.service.JoinCodeQR(ctx, memberWithoutFamily())
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrFamilyNotFound)
}

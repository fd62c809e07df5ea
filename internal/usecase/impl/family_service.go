package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitfamily/internal/delivery/context"
	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/domain/service"
	"fitfamily/internal/usecase"
	"fitfamily/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxJoinCodeAttempts bounds the join code redraw loop. The code space holds
// 36^4 combinations, so hitting the bound means something is badly wrong.
const maxJoinCodeAttempts = 10

// familyService implements the FamilyUsecase interface.
type familyService struct {
	txManager  repository.TransactionManager
	familyRepo repository.FamilyRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// FamilyServiceParams holds dependencies for familyService, injected by Fx.
type FamilyServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FamilyRepo repository.FamilyRepository
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewFamilyService is the constructor for familyService.
func NewFamilyService(params FamilyServiceParams) usecase.FamilyUsecase {
	return &familyService{
		txManager:  params.TxManager,
		familyRepo: params.FamilyRepo,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *familyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFamily creates a family with a fresh join code and promotes the
// requester to ADMIN of it.
func (srv *familyService) CreateFamily(ctx context.Context, name string, requester *entity.User) (*usecase.FamilyOutput, error) {
	if requester.HasFamily() {
		return nil, domainerrors.ErrAlreadyInFamily
	}

	var created *entity.Family
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		family, err := srv.createWithFreshCode(ctx, repoFactory, name)
		if err != nil {
			return err
		}

		requester.FamilyID = &family.ID
		requester.Role = entity.RoleAdmin
		if err := repoFactory.UserRepo().Update(ctx, requester); err != nil {
			return errors.Wrap(err, "failed to assign family to creator")
		}

		created = family

		return nil
	})
	if err != nil {
		return nil, err
	}

	requester.Family = created
	srv.log(ctx).Info("Family created",
		slog.String("familyID", created.ID.String()),
		slog.String("joinCode", created.JoinCode),
	)

	return &usecase.FamilyOutput{
		ID:       created.ID.String(),
		Name:     created.Name,
		JoinCode: created.JoinCode,
	}, nil
}

// createWithFreshCode inserts the family with a random join code, redrawing
// on a unique-constraint conflict. The constraint is the arbiter, so two
// concurrent creations can never end up sharing a code. Each insert runs
// behind a savepoint; on PostgreSQL a conflicting insert aborts the
// surrounding transaction, and the savepoint keeps it usable for the redraw.
func (srv *familyService) createWithFreshCode(ctx context.Context, repoFactory repository.RepositoryFactory, name string) (*entity.Family, error) {
	familyRepo := repoFactory.FamilyRepo()
	for attempt := 1; attempt <= maxJoinCodeAttempts; attempt++ {
		family := &entity.Family{
			Name:     name,
			JoinCode: util.GenerateJoinCode(),
		}

		err := repoFactory.WithSavepoint(func() error {
			return familyRepo.Create(ctx, family)
		})
		if err == nil {
			return family, nil
		}
		if errors.Is(err, repository.ErrJoinCodeTaken) {
			srv.log(ctx).Warn("Join code collision, redrawing",
				slog.String("joinCode", family.JoinCode),
				slog.Int("attempt", attempt),
			)

			continue
		}

		return nil, errors.Wrap(err, "failed to create family")
	}

	return nil, domainerrors.ErrJoinCodeExhausted
}

// JoinFamily adds the requester to the family matching the join code, as MEMBER.
func (srv *familyService) JoinFamily(ctx context.Context, joinCode string, requester *entity.User) (*usecase.JoinFamilyOutput, error) {
	if requester.HasFamily() {
		return nil, domainerrors.ErrAlreadyInFamily
	}

	var joined *entity.Family
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		family, err := repoFactory.FamilyRepo().FindByJoinCode(ctx, joinCode)
		if err != nil {
			if errors.Is(err, repository.ErrFamilyNotFound) {
				return domainerrors.ErrInvalidJoinCode
			}

			return errors.Wrap(err, "failed to find family by join code")
		}

		requester.FamilyID = &family.ID
		requester.Role = entity.RoleMember
		if err := repoFactory.UserRepo().Update(ctx, requester); err != nil {
			// The family can be deleted between the code lookup and the
			// assignment; the foreign key reports it as not found.
			if errors.Is(err, repository.ErrFamilyNotFound) {
				return domainerrors.ErrInvalidJoinCode
			}

			return errors.Wrap(err, "failed to assign family to joiner")
		}

		joined = family

		return nil
	})
	if err != nil {
		return nil, err
	}

	requester.Family = joined
	srv.log(ctx).Info("User joined family",
		slog.String("userID", requester.ID.String()),
		slog.String("familyID", joined.ID.String()),
	)

	return &usecase.JoinFamilyOutput{
		FamilyID:   joined.ID.String(),
		FamilyName: joined.Name,
		Role:       requester.Role.String(),
	}, nil
}

// GetMyFamily returns the requester's current family details.
func (srv *familyService) GetMyFamily(ctx context.Context, requester *entity.User) (*usecase.MyFamilyOutput, error) {
	family, err := srv.requesterFamily(ctx, requester)
	if err != nil {
		return nil, err
	}

	return &usecase.MyFamilyOutput{
		ID:       family.ID.String(),
		Name:     family.Name,
		JoinCode: family.JoinCode,
		MyRole:   requester.Role.String(),
	}, nil
}

// JoinCodeQR renders the requester's family join code as a PNG QR image.
func (srv *familyService) JoinCodeQR(ctx context.Context, requester *entity.User) ([]byte, error) {
	family, err := srv.requesterFamily(ctx, requester)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.Generate(family.JoinCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render join code qr")
	}

	return png, nil
}

func (srv *familyService) requesterFamily(ctx context.Context, requester *entity.User) (*entity.Family, error) {
	if !requester.HasFamily() {
		return nil, domainerrors.ErrFamilyNotFound
	}
	if requester.Family != nil {
		return requester.Family, nil
	}

	family, err := srv.familyRepo.FindByID(ctx, *requester.FamilyID)
	if err != nil {
		if errors.Is(err, repository.ErrFamilyNotFound) {
			return nil, domainerrors.ErrFamilyNotFound
		}

		return nil, errors.Wrap(err, "failed to find family by id")
	}

	return family, nil
}

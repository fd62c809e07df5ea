package postgres

import (
	"context"
	"fmt"

	"fitfamily/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx    *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	spSeq int      // Sequence for unique savepoint names within the transaction.
}

// UserRepo creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// FamilyRepo creates a new family repository instance bound to the transaction.
func (f *gormRepositoryFactory) FamilyRepo() repository.FamilyRepository {
	return NewFamilyRepository(f.tx)
}

// WithSavepoint runs fn behind a savepoint so a failed statement rolls back
// to the savepoint instead of aborting the surrounding transaction.
func (f *gormRepositoryFactory) WithSavepoint(fn func() error) error {
	f.spSeq++
	name := fmt.Sprintf("sp_%d", f.spSeq)

	if err := f.tx.SavePoint(name).Error; err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := fn(); err != nil {
		if rbErr := f.tx.RollbackTo(name).Error; rbErr != nil {
			return fmt.Errorf("savepoint rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	return nil
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If a panic occurs within the callback, the transaction must be rolled
	// back before the panic continues up the stack.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Report the rollback failure, but keep the original business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

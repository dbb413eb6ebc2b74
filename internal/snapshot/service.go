package snapshot

import (
	"context"
	"fmt"

	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/security"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service covers whole-database backup, restore and reset operations.
type Service interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snap *Snapshot) (*ImportSummary, error)
	Seed(ctx context.Context) error
	ClearOrders(ctx context.Context) error
	ClearAllData(ctx context.Context) error
}

type service struct {
	repo    Repository
	tx      txRunner
	passCfg config.PasswordConfig
}

// NewService builds a snapshot service with the required dependencies.
func NewService(repo Repository, tx txRunner, passCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("snapshot repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, passCfg: passCfg}, nil
}

// Export reads every table into one backup document. Password hashes are
// included so a restored file keeps accounts working; the endpoint behind
// this is admin-only.
func (s *service) Export(ctx context.Context) (*Snapshot, error) {
	snap, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "export snapshot")
	}
	return snap, nil
}

// Import replaces the entire database with the snapshot contents. IDs and
// invoice numbers are preserved; orders missing an invoice number get one
// derived from their id. The whole replace runs in a single transaction.
func (s *service) Import(ctx context.Context, snap *Snapshot) (*ImportSummary, error) {
	if snap == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot payload required")
	}
	for i := range snap.Orders {
		if snap.Orders[i].ID <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("order %d: id required", i+1))
		}
		if snap.Orders[i].InvoiceNumber == "" {
			snap.Orders[i].InvoiceNumber = orders.InvoiceNumber(snap.Orders[i].ID)
		}
	}

	summary := &ImportSummary{
		Categories:     len(snap.Categories),
		Positions:      len(snap.Positions),
		WorkCategories: len(snap.WorkCategories),
		WorkPositions:  len(snap.WorkPositions),
		CargoStatuses:  len(snap.CargoStatuses),
		Orders:         len(snap.Orders),
		Users:          len(snap.Users),
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearOrders(ctx); err != nil {
			return err
		}
		if err := repo.ClearCatalog(ctx); err != nil {
			return err
		}
		if err := repo.ClearUsers(ctx); err != nil {
			return err
		}
		if err := repo.InsertCategories(ctx, snap.Categories); err != nil {
			return err
		}
		if err := repo.InsertPositions(ctx, snap.Positions); err != nil {
			return err
		}
		if err := repo.InsertWorkCategories(ctx, snap.WorkCategories); err != nil {
			return err
		}
		if err := repo.InsertWorkPositions(ctx, snap.WorkPositions); err != nil {
			return err
		}
		if err := repo.InsertCargoStatuses(ctx, snap.CargoStatuses); err != nil {
			return err
		}
		if err := repo.InsertOrders(ctx, snap.Orders); err != nil {
			return err
		}
		return repo.InsertUsers(ctx, snap.Users)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "import snapshot")
	}
	return summary, nil
}

// Seed installs the default catalog and admin account on an empty database.
// It never touches tables that already hold rows.
func (s *service) Seed(ctx context.Context) error {
	categories, err := s.repo.CountCategories(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count categories")
	}
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count users")
	}
	if categories > 0 && users > 0 {
		return nil
	}

	var admin *models.User
	if users == 0 {
		hash, err := security.HashPassword(DefaultAdminPassword, s.passCfg)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash seed password")
		}
		admin = &models.User{
			Username:     DefaultAdminUsername,
			PasswordHash: hash,
			Role:         enums.UserRoleAdmin,
			Permissions:  defaultAdminPermissions(),
		}
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if categories == 0 {
			if err := repo.InsertCategories(ctx, defaultCategories()); err != nil {
				return err
			}
			if err := repo.InsertWorkCategories(ctx, defaultWorkCategories()); err != nil {
				return err
			}
			if err := repo.InsertWorkPositions(ctx, defaultWorkPositions()); err != nil {
				return err
			}
			if err := repo.InsertCargoStatuses(ctx, defaultCargoStatuses()); err != nil {
				return err
			}
		}
		if admin != nil {
			return repo.InsertUsers(ctx, []models.User{*admin})
		}
		return nil
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed defaults")
	}
	return nil
}

// ClearOrders wipes orders and their items. Catalog and users stay.
func (s *service) ClearOrders(ctx context.Context) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).ClearOrders(ctx)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear orders")
	}
	return nil
}

// ClearAllData wipes orders, items and catalog positions. Categories, work
// catalog, cargo statuses and users survive.
func (s *service) ClearAllData(ctx context.Context) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearOrders(ctx); err != nil {
			return err
		}
		return repo.ClearPositions(ctx)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear all data")
	}
	return nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/money"
	"gorm.io/gorm"
)

// Service defines catalog operations for products, labor, and statuses.
type Service interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListPositions(ctx context.Context, filters PositionFilters) ([]models.Position, error)
	GetPosition(ctx context.Context, id int64) (*models.Position, error)
	CreatePosition(ctx context.Context, input PositionInput) (*models.Position, error)
	UpdatePosition(ctx context.Context, id int64, input PositionInput) (*models.Position, error)
	DeletePosition(ctx context.Context, id int64) error
	ImportPositions(ctx context.Context, inputs []ImportPositionInput) (*ImportPositionsSummary, error)

	ListWorkCategories(ctx context.Context) ([]models.WorkCategory, error)
	CreateWorkCategory(ctx context.Context, input WorkCategoryInput) (*models.WorkCategory, error)
	UpdateWorkCategory(ctx context.Context, id int64, input WorkCategoryInput) (*models.WorkCategory, error)
	DeleteWorkCategory(ctx context.Context, id int64) error

	ListWorkPositions(ctx context.Context, categoryID *int64) ([]models.WorkPosition, error)
	CreateWorkPosition(ctx context.Context, input WorkPositionInput) (*models.WorkPosition, error)
	UpdateWorkPosition(ctx context.Context, id int64, input WorkPositionInput) (*models.WorkPosition, error)
	DeleteWorkPosition(ctx context.Context, id int64) error

	ListCargoStatuses(ctx context.Context) ([]models.CargoStatus, error)
	CreateCargoStatus(ctx context.Context, input CargoStatusInput) (*models.CargoStatus, error)
	UpdateCargoStatus(ctx context.Context, id int64, input CargoStatusInput) (*models.CargoStatus, error)
	DeleteCargoStatus(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService wires a catalog service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, what+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+what)
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return rows, nil
}

func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name required")
	}
	category := &models.Category{
		Name:         input.Name,
		DisplayOrder: input.DisplayOrder,
		Color:        input.Color,
	}
	if _, err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return category, nil
}

func (s *service) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name required")
	}
	if _, err := s.repo.FindCategory(ctx, id); err != nil {
		return nil, notFoundOr(err, "category")
	}
	updates := map[string]any{
		"name":          input.Name,
		"display_order": input.DisplayOrder,
		"color":         input.Color,
	}
	if err := s.repo.UpdateCategory(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update category")
	}
	return s.repo.FindCategory(ctx, id)
}

// DeleteCategory removes the category only. Positions and historical order
// lines keep their denormalized category labels.
func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.FindCategory(ctx, id); err != nil {
		return notFoundOr(err, "category")
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

func (s *service) ListPositions(ctx context.Context, filters PositionFilters) ([]models.Position, error) {
	rows, err := s.repo.ListPositions(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list positions")
	}
	return rows, nil
}

func (s *service) GetPosition(ctx context.Context, id int64) (*models.Position, error) {
	row, err := s.repo.FindPosition(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "position")
	}
	return row, nil
}

func (s *service) CreatePosition(ctx context.Context, input PositionInput) (*models.Position, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "position name required")
	}
	if input.CategoryID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category required")
	}
	if _, err := s.repo.FindCategory(ctx, input.CategoryID); err != nil {
		return nil, notFoundOr(err, "category")
	}
	position := &models.Position{
		Brand:         input.Brand,
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		Price:         money.Format(money.Parse(input.Price)),
		Unit:          input.Unit,
		StockQuantity: input.StockQuantity,
		ExternalID:    input.ExternalID,
	}
	if _, err := s.repo.CreatePosition(ctx, position); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create position")
	}
	return position, nil
}

func (s *service) UpdatePosition(ctx context.Context, id int64, input PositionInput) (*models.Position, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "position name required")
	}
	if _, err := s.repo.FindPosition(ctx, id); err != nil {
		return nil, notFoundOr(err, "position")
	}
	if input.CategoryID > 0 {
		if _, err := s.repo.FindCategory(ctx, input.CategoryID); err != nil {
			return nil, notFoundOr(err, "category")
		}
	}
	updates := map[string]any{
		"brand":          input.Brand,
		"name":           input.Name,
		"category_id":    input.CategoryID,
		"price":          money.Format(money.Parse(input.Price)),
		"unit":           input.Unit,
		"stock_quantity": input.StockQuantity,
		"external_id":    input.ExternalID,
	}
	if err := s.repo.UpdatePosition(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update position")
	}
	return s.repo.FindPosition(ctx, id)
}

// ImportPositions loads a price list row by row. Categories are matched by
// name and created when missing; rows with an external id update the matching
// position's price and stock instead of creating a duplicate.
func (s *service) ImportPositions(ctx context.Context, inputs []ImportPositionInput) (*ImportPositionsSummary, error) {
	summary := &ImportPositionsSummary{}
	categoryIDs := map[string]int64{}

	for i, in := range inputs {
		if in.Name == "" || in.CategoryName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("row %d: name and category required", i+1))
		}

		categoryID, ok := categoryIDs[in.CategoryName]
		if !ok {
			category, err := s.repo.FindCategoryByName(ctx, in.CategoryName)
			switch {
			case err == nil:
				categoryID = category.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				created, createErr := s.repo.CreateCategory(ctx, &models.Category{Name: in.CategoryName})
				if createErr != nil {
					return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, createErr, "create imported category")
				}
				categoryID = created.ID
				summary.CategoriesCreated++
			default:
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up imported category")
			}
			categoryIDs[in.CategoryName] = categoryID
		}

		if in.ExternalID != nil && *in.ExternalID != "" {
			existing, err := s.repo.FindPositionByExternalID(ctx, *in.ExternalID)
			if err == nil {
				updates := map[string]any{
					"brand":          in.Brand,
					"name":           in.Name,
					"category_id":    categoryID,
					"price":          money.Format(money.Parse(in.Price)),
					"unit":           in.Unit,
					"stock_quantity": in.StockQuantity,
				}
				if err := s.repo.UpdatePosition(ctx, existing.ID, updates); err != nil {
					return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update imported position")
				}
				summary.Updated++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up imported position")
			}
		}

		position := &models.Position{
			Brand:         in.Brand,
			Name:          in.Name,
			CategoryID:    categoryID,
			Price:         money.Format(money.Parse(in.Price)),
			Unit:          in.Unit,
			StockQuantity: in.StockQuantity,
			ExternalID:    in.ExternalID,
		}
		if _, err := s.repo.CreatePosition(ctx, position); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create imported position")
		}
		summary.Created++
	}
	return summary, nil
}

func (s *service) DeletePosition(ctx context.Context, id int64) error {
	if _, err := s.repo.FindPosition(ctx, id); err != nil {
		return notFoundOr(err, "position")
	}
	if err := s.repo.DeletePosition(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete position")
	}
	return nil
}

func (s *service) ListWorkCategories(ctx context.Context) ([]models.WorkCategory, error) {
	rows, err := s.repo.ListWorkCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list work categories")
	}
	return rows, nil
}

func (s *service) CreateWorkCategory(ctx context.Context, input WorkCategoryInput) (*models.WorkCategory, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work category name required")
	}
	category := &models.WorkCategory{Name: input.Name}
	if _, err := s.repo.CreateWorkCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create work category")
	}
	return category, nil
}

func (s *service) UpdateWorkCategory(ctx context.Context, id int64, input WorkCategoryInput) (*models.WorkCategory, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work category name required")
	}
	if err := s.repo.UpdateWorkCategory(ctx, id, map[string]any{"name": input.Name}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update work category")
	}
	return &models.WorkCategory{ID: id, Name: input.Name}, nil
}

func (s *service) DeleteWorkCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWorkCategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete work category")
	}
	return nil
}

func (s *service) ListWorkPositions(ctx context.Context, categoryID *int64) ([]models.WorkPosition, error) {
	rows, err := s.repo.ListWorkPositions(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list work positions")
	}
	return rows, nil
}

func (s *service) CreateWorkPosition(ctx context.Context, input WorkPositionInput) (*models.WorkPosition, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work position name required")
	}
	if input.CategoryID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work category required")
	}
	position := &models.WorkPosition{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Price:      money.Format(money.Parse(input.Price)),
		Unit:       input.Unit,
	}
	if _, err := s.repo.CreateWorkPosition(ctx, position); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create work position")
	}
	return position, nil
}

func (s *service) UpdateWorkPosition(ctx context.Context, id int64, input WorkPositionInput) (*models.WorkPosition, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work position name required")
	}
	updates := map[string]any{
		"category_id": input.CategoryID,
		"name":        input.Name,
		"price":       money.Format(money.Parse(input.Price)),
		"unit":        input.Unit,
	}
	if err := s.repo.UpdateWorkPosition(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update work position")
	}
	return &models.WorkPosition{
		ID:         id,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Price:      updates["price"].(string),
		Unit:       input.Unit,
	}, nil
}

func (s *service) DeleteWorkPosition(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWorkPosition(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete work position")
	}
	return nil
}

func (s *service) ListCargoStatuses(ctx context.Context) ([]models.CargoStatus, error) {
	rows, err := s.repo.ListCargoStatuses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cargo statuses")
	}
	return rows, nil
}

func (s *service) CreateCargoStatus(ctx context.Context, input CargoStatusInput) (*models.CargoStatus, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status name required")
	}
	status := &models.CargoStatus{
		Name:         input.Name,
		DisplayOrder: input.DisplayOrder,
		Color:        input.Color,
		TextColor:    input.TextColor,
	}
	if _, err := s.repo.CreateCargoStatus(ctx, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cargo status")
	}
	return status, nil
}

func (s *service) UpdateCargoStatus(ctx context.Context, id int64, input CargoStatusInput) (*models.CargoStatus, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status name required")
	}
	if _, err := s.repo.FindCargoStatus(ctx, id); err != nil {
		return nil, notFoundOr(err, "cargo status")
	}
	updates := map[string]any{
		"name":          input.Name,
		"display_order": input.DisplayOrder,
		"color":         input.Color,
		"text_color":    input.TextColor,
	}
	if err := s.repo.UpdateCargoStatus(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cargo status")
	}
	return s.repo.FindCargoStatus(ctx, id)
}

// DeleteCargoStatus refuses to drop the reserved preorder status, whose id
// carries hardcoded debt-exclusion semantics.
func (s *service) DeleteCargoStatus(ctx context.Context, id int64) error {
	if id == ledger.PreorderStatusID {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "the preorder status is reserved and cannot be deleted")
	}
	if _, err := s.repo.FindCargoStatus(ctx, id); err != nil {
		return notFoundOr(err, "cargo status")
	}
	if err := s.repo.DeleteCargoStatus(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cargo status")
	}
	return nil
}

package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
	"finpace/internal/hierarchy"
	"finpace/internal/models"
	"finpace/internal/pagination"
)

// categoryStore is the gorm-backed hierarchy.Store.
type categoryStore struct {
	db *gorm.DB
}

// NewCategoryStore returns a hierarchy.Store reading from db.
func NewCategoryStore(db *gorm.DB) hierarchy.Store {
	return &categoryStore{db: db}
}

func (s *categoryStore) ListCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ?", userID).Order("name, id").Find(&categories).Error
	return categories, err
}

func (s *categoryStore) CountChildren(userID, categoryID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND parent_id = ?", userID, categoryID).
		Count(&count).Error
	return count, err
}

func (s *categoryStore) CountTransactions(userID, categoryID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count, err
}

// categoryService handles category-related business logic.
type categoryService struct {
	db        *gorm.DB
	hierarchy *hierarchy.Manager
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db, hierarchy: hierarchy.NewManager(NewCategoryStore(db))}
}

// CreateCategory creates a new category. Sibling names must be unique.
func (s *categoryService) CreateCategory(userID, name string, parentID *string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if parentID != nil {
		if _, err := s.GetCategoryByID(userID, *parentID); err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil, errParentNotFound
			}
			return nil, err
		}
	}

	if err := checkSiblingName(s.db, userID, name, parentID, ""); err != nil {
		return nil, err
	}

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		ParentID: parentID,
	}
	if err := s.db.Create(category).Error; err != nil {
		// The parent was deleted after the lookup above.
		if isForeignKeyViolation(err) {
			return nil, errParentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

var errParentNotFound = apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")

// checkSiblingName rejects name when another category under the same parent
// already uses it. excludeID skips the category being renamed.
func checkSiblingName(db *gorm.DB, userID, name string, parentID *string, excludeID string) error {
	q := db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists at this level")
	}
	return nil
}

// GetUserCategories retrieves a paginated, name-ordered list of categories for a user.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	q := s.db.Model(&models.Category{}).Where("user_id = ?", userID).Order("name, id")
	result, err := pagination.Find[models.Category](q, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetCategoryTree returns the user's categories as a forest.
func (s *categoryService) GetCategoryTree(userID string) ([]*hierarchy.Node, error) {
	return s.hierarchy.BuildTree(userID)
}

// GetCategoryByID retrieves a category by ID for a specific user
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := findOwned(s.db, &category, userID, categoryID, apperrors.ErrCategoryNotFound); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames and/or reparents a category. The user's categories
// stay locked from validation until the update commits, so two concurrent
// reparents cannot together store a cycle.
func (s *categoryService) UpdateCategory(userID, categoryID string, update CategoryUpdate) (*models.Category, error) {
	if update.ClearParent && update.ParentID != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "parent_id and clear_parent cannot be combined")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockUserCategories(tx, userID); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var category models.Category
		if err := findOwned(tx, &category, userID, categoryID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}

		newParent := category.ParentID
		parentChanged := false
		switch {
		case update.ClearParent:
			newParent = nil
			parentChanged = category.ParentID != nil
		case update.ParentID != nil:
			tree := hierarchy.NewManager(NewCategoryStore(tx))
			if err := tree.ValidateReparent(categoryID, *update.ParentID, userID); err != nil {
				return err
			}
			newParent = update.ParentID
			parentChanged = category.ParentID == nil || *category.ParentID != *update.ParentID
		}

		newName := category.Name
		if update.Name != nil {
			newName = strings.TrimSpace(*update.Name)
			if newName == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "category name cannot be empty")
			}
		}

		if newName != category.Name || parentChanged {
			if err := checkSiblingName(tx, userID, newName, newParent, categoryID); err != nil {
				return err
			}
		}

		updates := make(map[string]interface{})
		if newName != category.Name {
			updates["name"] = newName
		}
		if parentChanged {
			updates["parent_id"] = newParent
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&category).Updates(updates).Error; err != nil {
			if isForeignKeyViolation(err) {
				return errParentNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCategoryByID(userID, categoryID)
}

// DeleteCategory deletes a category that has no children and no transactions.
// Budgets for the category are removed with it. A child or transaction that
// lands between the check and the delete trips the foreign key and is
// reported as CATEGORY_IN_USE.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockUserCategories(tx, userID); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var category models.Category
		if err := findOwned(tx, &category, userID, categoryID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}

		tree := hierarchy.NewManager(NewCategoryStore(tx))
		if err := tree.ValidateDeletable(categoryID, userID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND category_id = ?", userID, categoryID).Delete(&models.Budget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			if isForeignKeyViolation(err) {
				return apperrors.ErrCategoryInUse
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

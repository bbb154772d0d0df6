// Package hierarchy builds and guards the per-user category forest.
//
// All checks run against one bulk fetch of the user's categories: the tree is
// linked in memory through an id index, and ancestor walks are bounded by the
// number of categories so corrupted parent links surface as
// ErrCategoryStructureCorrupt instead of looping.
package hierarchy

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	apperrors "finpace/internal/errors"
	"finpace/internal/logger"
	"finpace/internal/models"
)

// Store is the data access the hierarchy needs. Every call is scoped by user.
type Store interface {
	ListCategories(userID string) ([]models.Category, error)
	CountChildren(userID, categoryID string) (int64, error)
	CountTransactions(userID, categoryID string) (int64, error)
}

// Node is a category with its subtree.
type Node struct {
	models.Category
	Children []*Node `json:"children"`
}

// Manager answers tree, reparent and delete questions for one store.
type Manager struct {
	store Store
	log   *zap.SugaredLogger
}

// NewManager creates a Manager backed by store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, log: logger.Get()}
}

// BuildTree returns the user's categories as a forest, roots and children
// ordered by name then id.
func (m *Manager) BuildTree(userID string) ([]*Node, error) {
	categories, err := m.store.ListCategories(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	roots, err := Build(categories)
	if err != nil {
		return nil, m.corrupt(userID, err)
	}
	return roots, nil
}

// ValidateReparent reports whether categoryID may be moved under
// proposedParentID. Checks run in order: self parent, parent existence and
// ownership, then an ancestor walk from the proposed parent looking for
// categoryID.
func (m *Manager) ValidateReparent(categoryID, proposedParentID, userID string) error {
	if proposedParentID == categoryID {
		return apperrors.ErrSelfParentCategory
	}

	categories, err := m.store.ListCategories(userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	byID := index(categories)

	if _, ok := byID[proposedParentID]; !ok {
		return apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
	}

	limit := len(categories)
	current := proposedParentID
	for steps := 0; current != ""; steps++ {
		if current == categoryID {
			return apperrors.ErrCategoryCycle
		}
		if steps >= limit {
			return m.corrupt(userID, fmt.Errorf("ancestor walk from %s exceeded %d steps", proposedParentID, limit))
		}
		node, ok := byID[current]
		if !ok {
			return m.corrupt(userID, fmt.Errorf("category %s references missing parent %s", categoryID, current))
		}
		current = parentOf(node)
	}
	return nil
}

// ValidateDeletable reports whether categoryID may be deleted. Both blocking
// counts are always computed; children take precedence in the result.
func (m *Manager) ValidateDeletable(categoryID, userID string) error {
	children, err := m.store.CountChildren(userID, categoryID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	transactions, err := m.store.CountTransactions(userID, categoryID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	switch {
	case children > 0:
		return apperrors.WithMessage(apperrors.ErrCategoryHasChildren,
			fmt.Sprintf("Category has %d child categories and %d transactions", children, transactions))
	case transactions > 0:
		return apperrors.WithMessage(apperrors.ErrCategoryInUse,
			fmt.Sprintf("Category is used by %d transactions", transactions))
	}
	return nil
}

func (m *Manager) corrupt(userID string, cause error) error {
	m.log.Errorw("category hierarchy corrupted",
		"user_id", userID,
		"error", cause.Error(),
	)
	return apperrors.Wrap(apperrors.ErrCategoryStructureCorrupt, cause)
}

// Build links a flat category list into a forest. A parent id that is not in
// the list, or a cycle (nodes unreachable from any root), is an error.
func Build(categories []models.Category) ([]*Node, error) {
	nodes := make(map[string]*Node, len(categories))
	for i := range categories {
		nodes[categories[i].ID] = &Node{Category: categories[i], Children: []*Node{}}
	}

	var roots []*Node
	for i := range categories {
		node := nodes[categories[i].ID]
		parentID := parentOf(&categories[i])
		if parentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[parentID]
		if !ok {
			return nil, fmt.Errorf("category %s references missing parent %s", node.ID, parentID)
		}
		parent.Children = append(parent.Children, node)
	}

	reached := 0
	stack := append([]*Node(nil), roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		sortNodes(n.Children)
		stack = append(stack, n.Children...)
	}
	if reached != len(nodes) {
		return nil, fmt.Errorf("%d categories are part of a parent cycle", len(nodes)-reached)
	}

	sortNodes(roots)
	if roots == nil {
		roots = []*Node{}
	}
	return roots, nil
}

func sortNodes(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Name != nodes[j].Name {
			return nodes[i].Name < nodes[j].Name
		}
		return nodes[i].ID < nodes[j].ID
	})
}

func index(categories []models.Category) map[string]*models.Category {
	byID := make(map[string]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	return byID
}

func parentOf(c *models.Category) string {
	if c.ParentID == nil {
		return ""
	}
	return *c.ParentID
}

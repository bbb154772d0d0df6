package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/hierarchy"
	"finpace/internal/models"
	"finpace/internal/pagination"
	"finpace/internal/services"
)

const (
	testCategoryID = "01920000-0000-7000-8000-0000000000c1"
	testParentID   = "01920000-0000-7000-8000-0000000000c2"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn    func(userID, name string, parentID *string) (*models.Category, error)
	getUserCategoriesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryTreeFn   func(userID string) ([]*hierarchy.Node, error)
	getCategoryByIDFn   func(userID, categoryID string) (*models.Category, error)
	updateCategoryFn    func(userID, categoryID string, update services.CategoryUpdate) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(userID, name string, parentID *string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, parentID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCategoryService) GetCategoryTree(userID string) ([]*hierarchy.Node, error) {
	if m.getCategoryTreeFn != nil {
		return m.getCategoryTreeFn(userID)
	}
	return []*hierarchy.Node{}, nil
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID string, update services.CategoryUpdate) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, update)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/categories", handler.CreateCategory)
	auth.GET("/categories", handler.GetUserCategories)
	auth.GET("/categories/tree", handler.GetCategoryTree)
	auth.GET("/categories/:id", handler.GetCategory)
	auth.PUT("/categories/:id", handler.UpdateCategory)
	auth.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotParent *string
		catSvc := &mockCategoryService{
			createCategoryFn: func(userID, name string, parentID *string) (*models.Category, error) {
				gotParent = parentID
				return &models.Category{Base: models.Base{ID: testCategoryID}, UserID: userID, Name: name, ParentID: parentID}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, audit))

		rec := doRequest(r, "POST", "/categories", `{"name":"Groceries","parent_id":"`+testParentID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		cat := parseJSON(t, rec)["category"].(map[string]interface{})
		if cat["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", cat["name"])
		}
		if gotParent == nil || *gotParent != testParentID {
			t.Errorf("expected parent %s, got %v", testParentID, gotParent)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "CREATE_CATEGORY" {
			t.Errorf("expected CREATE_CATEGORY audit entry, got %v", audit.actions)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed parent id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","parent_id":"42"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when parent is not owned", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(string, string, *string) (*models.Category, error) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","parent_id":"`+testParentID+`"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestCategoryHandler_GetUserCategories(t *testing.T) {
	t.Run("returns the page from the service", func(t *testing.T) {
		var gotPage pagination.PageRequest
		catSvc := &mockCategoryService{
			getUserCategoriesFn: func(_ string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
				gotPage = page
				resp := pagination.NewPageResponse([]models.Category{{Name: "A"}, {Name: "B"}}, 2, 2, 4)
				return &resp, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories?page=2&page_size=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if data := result["data"].([]interface{}); len(data) != 2 {
			t.Errorf("expected 2 items, got %d", len(data))
		}
		if gotPage.Page != 2 || gotPage.PageSize != 2 {
			t.Errorf("expected page 2 size 2, got %+v", gotPage)
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories?page_size=1000", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetCategoryTree(t *testing.T) {
	t.Run("returns nested nodes", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryTreeFn: func(string) ([]*hierarchy.Node, error) {
				child := &hierarchy.Node{Category: models.Category{Base: models.Base{ID: testCategoryID}, Name: "Groceries"}, Children: []*hierarchy.Node{}}
				root := &hierarchy.Node{Category: models.Category{Base: models.Base{ID: testParentID}, Name: "Food"}, Children: []*hierarchy.Node{child}}
				return []*hierarchy.Node{root}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/tree", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		roots := parseJSON(t, rec)["categories"].([]interface{})
		if len(roots) != 1 {
			t.Fatalf("expected 1 root, got %d", len(roots))
		}
		children := roots[0].(map[string]interface{})["children"].([]interface{})
		if len(children) != 1 || children[0].(map[string]interface{})["name"] != "Groceries" {
			t.Errorf("unexpected children: %v", children)
		}
	})

	t.Run("returns 500 on corrupt hierarchy", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryTreeFn: func(string) ([]*hierarchy.Node, error) {
				return nil, apperrors.ErrCategoryStructureCorrupt
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/tree", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_STRUCTURE_CORRUPT")
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryByIDFn: func(_, id string) (*models.Category, error) {
				return &models.Category{Base: models.Base{ID: id}, Name: "Rent"}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		cat := parseJSON(t, rec)["category"].(map[string]interface{})
		if cat["id"] != testCategoryID {
			t.Errorf("expected id %s, got %v", testCategoryID, cat["id"])
		}
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryByIDFn: func(_, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/"+testOtherID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("passes clear_parent through", func(t *testing.T) {
		var got services.CategoryUpdate
		catSvc := &mockCategoryService{
			updateCategoryFn: func(_, id string, update services.CategoryUpdate) (*models.Category, error) {
				got = update
				return &models.Category{Base: models.Base{ID: id}, Name: "Food"}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"clear_parent":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.ClearParent {
			t.Error("expected ClearParent to be true")
		}
		if got.Name != nil || got.ParentID != nil {
			t.Error("expected unset fields to stay nil")
		}
	})

	t.Run("returns 400 on self parent", func(t *testing.T) {
		catSvc := &mockCategoryService{
			updateCategoryFn: func(string, string, services.CategoryUpdate) (*models.Category, error) {
				return nil, apperrors.ErrSelfParentCategory
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"parent_id":"`+testCategoryID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SELF_PARENT_CATEGORY")
	})

	t.Run("returns 400 on cycle", func(t *testing.T) {
		catSvc := &mockCategoryService{
			updateCategoryFn: func(string, string, services.CategoryUpdate) (*models.Category, error) {
				return nil, apperrors.ErrCategoryCycle
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"parent_id":"`+testParentID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_CYCLE")
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, audit))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "DELETE_CATEGORY" {
			t.Errorf("expected DELETE_CATEGORY audit entry, got %v", audit.actions)
		}
	})

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"has children", apperrors.ErrCategoryHasChildren, "CATEGORY_HAS_CHILDREN"},
		{"has transactions", apperrors.ErrCategoryInUse, "CATEGORY_IN_USE"},
	}
	for _, tt := range tests {
		t.Run("returns 409 when category "+tt.name, func(t *testing.T) {
			catSvc := &mockCategoryService{
				deleteCategoryFn: func(string, string) error { return tt.err },
			}
			audit := &mockAuditService{}
			r := setupCategoryRouter(NewCategoryHandler(catSvc, audit))

			rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

			if rec.Code != http.StatusConflict {
				t.Fatalf("expected 409, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
			if len(audit.actions) != 0 {
				t.Errorf("expected no audit entry on failure, got %v", audit.actions)
			}
		})
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	categoryHTTP "lifedesk/internal/category/delivery/http"
	categoryRepo "lifedesk/internal/category/repository/postgre"
	categoryUC "lifedesk/internal/category/usecase"
	"lifedesk/internal/middleware"
)

// setupCategoryDomain initializes the category domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupCategoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := categoryRepo.New(srv.postgresDB, srv.l)
	uc := categoryUC.New(repo, srv.l)
	h := categoryHTTP.New(srv.l, uc)

	// Registers /api/v1/categories
	categoryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Category domain registered")
	return nil
}

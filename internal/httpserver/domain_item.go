package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	categoryRepo "lifedesk/internal/category/repository/postgre"
	itemHTTP "lifedesk/internal/item/delivery/http"
	itemRepo "lifedesk/internal/item/repository/postgre"
	itemUC "lifedesk/internal/item/usecase"
	"lifedesk/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes,
// including the quick-add endpoints.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := itemRepo.New(srv.postgresDB, srv.l)
	catRepo := categoryRepo.New(srv.postgresDB, srv.l)
	uc := itemUC.New(srv.l, repo, catRepo, srv.dateMath, srv.calendar, srv.calendarID, srv.timezone)
	h := itemHTTP.New(srv.l, uc)

	// Registers /api/v1/items and /api/v1/quickadd
	itemHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Item domain registered with calendar mirroring")
	} else {
		srv.l.Infof(ctx, "Item domain registered")
	}
	return nil
}

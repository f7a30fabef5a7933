package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifedesk/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a task, event, note or idea with explicit fields.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns a paginated list of items. The due filter accepts
// @Description relative expressions such as "today" or "friday".
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       kind        query string false "Filter by kind (task/event/note/idea)"
// @Param       category_id query string false "Filter by category"
// @Param       status      query string false "Filter by status (open/done/archived)"
// @Param       due         query string false "Filter by due day, e.g. today, tomorrow, friday"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Updates an existing item. All fields are optional (partial update).
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Mark an item done
// @Description Sets the item status to done.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// QuickAdd godoc
// @Summary     Quick-add an item from natural language
// @Description Parses free text ("Buy milk tomorrow #shopping") and persists
// @Description the resulting item. Events are mirrored to Google Calendar
// @Description when a calendar is configured.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Quick-add text"
// @Success     200 {object} quickAddResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quickadd [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// Preview godoc
// @Summary     Preview a quick-add parse
// @Description Parses free text and returns the structured interpretation
// @Description without persisting. Intended to be called per keystroke;
// @Description rate-limited per client IP.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Quick-add text"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quickadd/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, req.toPreviewInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/stowr/backend/api/transport"
	"github.com/stowr/backend/domain"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/pkg/httpcontext"
	locationUC "github.com/stowr/backend/usecase/location"
)

type LocationHandler struct {
	baseHandler
	uc *locationUC.UseCase
}

func NewLocationHandler(uc *locationUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create location
// @Tags locations
// @Router /api/v1/locations [post]
func (h *LocationHandler) CreateLocation(ctx *fasthttp.RequestCtx) {
	var req transport.LocationCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	if req.Name == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "location name is required"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateLocation(stdCtx, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get location by id
// @Tags locations
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) GetLocation(ctx *fasthttp.RequestCtx) {
	id, ok := h.locationID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	l, err := h.uc.GetLocation(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, l)
}

// @Summary Rename location
// @Tags locations
// @Router /api/v1/locations/{id}/rename [post]
func (h *LocationHandler) RenameLocation(ctx *fasthttp.RequestCtx) {
	id, ok := h.locationID(ctx)
	if !ok {
		return
	}

	var req transport.RenameRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	if req.NewName == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "new name is required"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	l, err := h.uc.RenameLocation(stdCtx, id, req.NewName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, l)
}

func (h *LocationHandler) locationID(ctx *fasthttp.RequestCtx) (domainlocation.LocationId, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := domain.ParseId[domainlocation.LocationTag](raw)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed location id", err))
		return domainlocation.LocationId{}, false
	}
	return id, true
}

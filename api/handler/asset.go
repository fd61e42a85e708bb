package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/stowr/backend/api/transport"
	"github.com/stowr/backend/domain"
	domainasset "github.com/stowr/backend/domain/asset"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/pkg/httpcontext"
	assetUC "github.com/stowr/backend/usecase/asset"
)

type AssetHandler struct {
	baseHandler
	uc *assetUC.UseCase
}

func NewAssetHandler(uc *assetUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Stow a new asset
// @Tags assets
// @Router /api/v1/assets [post]
func (h *AssetHandler) CreateAsset(ctx *fasthttp.RequestCtx) {
	var req transport.AssetCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	if req.Name == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "asset name is required"))
		return
	}
	locID, err := domain.ParseId[domainlocation.LocationTag](req.Location)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed location id", err))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateAsset(stdCtx, req.Name, locID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get asset by id
// @Tags assets
// @Router /api/v1/assets/{id} [get]
func (h *AssetHandler) GetAsset(ctx *fasthttp.RequestCtx) {
	id, ok := h.assetID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	a, err := h.uc.GetAsset(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, a)
}

// @Summary Rename asset
// @Tags assets
// @Router /api/v1/assets/{id}/rename [post]
func (h *AssetHandler) RenameAsset(ctx *fasthttp.RequestCtx) {
	id, ok := h.assetID(ctx)
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

	a, err := h.uc.RenameAsset(stdCtx, id, req.NewName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, a)
}

// @Summary Relocate asset
// @Tags assets
// @Router /api/v1/assets/{id}/relocate [post]
func (h *AssetHandler) RelocateAsset(ctx *fasthttp.RequestCtx) {
	id, ok := h.assetID(ctx)
	if !ok {
		return
	}

	var req transport.RelocateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	locID, err := domain.ParseId[domainlocation.LocationTag](req.Location)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed location id", err))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	a, err := h.uc.RelocateAsset(stdCtx, id, locID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, a)
}

func (h *AssetHandler) assetID(ctx *fasthttp.RequestCtx) (domainasset.AssetId, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := domain.ParseId[domainasset.AssetTag](raw)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed asset id", err))
		return domainasset.AssetId{}, false
	}
	return id, true
}

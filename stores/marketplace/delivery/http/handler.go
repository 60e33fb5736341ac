package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/delivery"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/marketplace"
	authMiddleware "github.com/nftvault/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New mounts the marketplace settings and admin endpoints. Mutations are
// authorized against the stored marketplace owner, not the api admin list.
func New(e *echo.Echo, marketplace marketplace.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.GET("/settings", h.getSettings)

	g.POST("/pause", h.pause, authMiddleware.Auth())

	g.POST("/unpause", h.unpause, authMiddleware.Auth())

	g.POST("/fee-rate", h.setFeeRate, authMiddleware.Auth())

	g.POST("/transfer-ownership", h.transferOwnership, authMiddleware.Auth())

	g.POST("/withdraw-fees", h.withdrawFees, authMiddleware.Auth())
}

func (h *handler) getSettings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.marketplace.Get(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) pause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	if err := h.marketplace.Pause(ctx, caller); err != nil {
		return makeAdminResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) unpause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	if err := h.marketplace.Unpause(ctx, caller); err != nil {
		return makeAdminResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setFeeRate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		FeeRateBps int64 `json:"feeRateBps"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetFeeRate(ctx, caller, p.FeeRateBps); err != nil {
		return makeAdminResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transferOwnership(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		NewOwner domain.Address `json:"newOwner"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.TransferOwnership(ctx, caller, p.NewOwner); err != nil {
		return makeAdminResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdrawFees(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		To     domain.Address `json:"to"`
		Amount domain.Amount  `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.WithdrawFees(ctx, caller, p.To, p.Amount); err != nil {
		return makeAdminResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func makeAdminResp(c echo.Context, err error) error {
	switch err {
	case domain.ErrNotMarketplaceOwner:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrBadParamInput, domain.ErrInvalidAddress, domain.ErrWrongAmount, domain.ErrInvalidNumberFormat:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInsufficientFunds:
		return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/delivery"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/escrow"
	authMiddleware "github.com/nftvault/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	ledger escrow.Ledger
}

// New mounts the escrow ledger endpoints. Deposits and withdrawals act on
// the balance the marketplace keeps for the authenticated address.
func New(e *echo.Echo, ledger escrow.Ledger, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{ledger}

	g := e.Group("/escrow")

	g.GET("/balance", h.balance, authMiddleware.Auth())

	g.POST("/deposit", h.deposit, authMiddleware.Auth())

	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())
}

func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if res, err := h.ledger.BalanceOf(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.ledger.Deposit(ctx, address, p.Amount); err != nil {
		switch err {
		case domain.ErrInvalidNumberFormat, domain.ErrWrongAmount:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		default:
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.ledger.Withdraw(ctx, address, p.Amount); err != nil {
		switch err {
		case domain.ErrInvalidNumberFormat, domain.ErrWrongAmount:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		case domain.ErrInsufficientFunds:
			return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
		default:
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

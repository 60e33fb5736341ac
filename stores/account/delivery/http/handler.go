package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/delivery"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
)

type handler struct {
	account         account.Usecase
	activityHistory account.ActivityHistoryRepo
}

func New(e *echo.Echo, account account.Usecase, activityHistory account.ActivityHistoryRepo) {
	h := &handler{account, activityHistory}

	g := e.Group("/account/:address")

	g.GET("", h.get)

	g.GET("/nonce", h.getNonce)

	g.GET("/activities", h.getActivities)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.account.Get(ctx, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// getNonce issues a fresh nonce the wallet has to sign to obtain an access
// token from /auth/sign.
func (h *handler) getNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.account.GenerateNonce(ctx, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address                `param:"address"`
		ChainId *domain.ChainId               `query:"chainId"`
		Types   []account.ActivityHistoryType `query:"types"`
		Offset  int32                         `query:"offset"`
		Limit   int32                         `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []account.ActivityHistoryFindAllOptionsFunc{
		account.ActivityHistoryWithAccount(p.Address),
	}

	if p.ChainId != nil {
		opts = append(opts, account.ActivityHistoryWithChainId(*p.ChainId))
	}

	if len(p.Types) > 0 {
		opts = append(opts, account.ActivityHistoryWithTypes(p.Types...))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, account.ActivityHistoryWithPagination(p.Offset, p.Limit))
	}

	res, err := h.activityHistory.FindActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	cnt, err := h.activityHistory.CountActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Items []*account.ActivityHistory `json:"items"`
		Count int                        `json:"count"`
	}{res, cnt})
}

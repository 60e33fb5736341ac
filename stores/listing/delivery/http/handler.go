package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/delivery"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/listing"
	"github.com/nftvault/marketapi/middleware"
	authMiddleware "github.com/nftvault/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listing}

	gs := e.Group("/listings")

	gs.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	g := e.Group("/listing/:chainId/:contract/:tokenId")

	g.GET("", h.get, middleware.CacheHttp(10*time.Second))

	g.POST("/fixed-price", h.listFixedPrice, authMiddleware.Auth())

	g.POST("/auction", h.listAuction, authMiddleware.Auth())

	g.POST("/buy", h.buy, authMiddleware.Auth())

	g.POST("/bid", h.placeBid, authMiddleware.Auth())

	g.POST("/buy-now", h.buyNow, authMiddleware.Auth())

	g.POST("/end", h.endAuction, authMiddleware.Auth())
}

type listingId struct {
	ChainId  domain.ChainId `param:"chainId"`
	Contract domain.Address `param:"contract"`
	TokenId  domain.TokenId `param:"tokenId"`
}

func (p *listingId) toId() listing.Id {
	return listing.Id{
		ChainId:         p.ChainId,
		ContractAddress: p.Contract.ToLower(),
		TokenId:         p.TokenId,
	}
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId  *domain.ChainId   `query:"chainId"`
		Contract *domain.Address   `query:"contract"`
		Seller   *domain.Address   `query:"seller"`
		Mode     *listing.SaleMode `query:"mode"`
		Offset   int32             `query:"offset"`
		Limit    int32             `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.ChainId != nil {
		opts = append(opts, listing.WithChainId(*p.ChainId))
	}

	if p.Contract != nil {
		opts = append(opts, listing.WithContractAddress(*p.Contract))
	}

	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}

	if p.Mode != nil {
		if !p.Mode.IsValid() {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid mode")
		}
		opts = append(opts, listing.WithMode(*p.Mode))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listingId{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.listing.Get(ctx, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) listFixedPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("address").(domain.Address)

	type params struct {
		listingId
		Price domain.Amount `json:"price"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.listing.ListFixedPrice(ctx, seller, p.toId(), p.Price); err != nil {
		return makeTransitionResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) listAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("address").(domain.Address)

	type params struct {
		listingId
		StartingBid     domain.Amount `json:"startingBid"`
		BuyoutPrice     domain.Amount `json:"buyoutPrice"`
		DurationSeconds int64         `json:"durationSeconds"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	duration := time.Duration(p.DurationSeconds) * time.Second

	if res, err := h.listing.ListAuction(ctx, seller, p.toId(), p.StartingBid, p.BuyoutPrice, duration); err != nil {
		return makeTransitionResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	type params struct {
		listingId
		Paid domain.Amount `json:"paid"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.Buy(ctx, buyer, p.toId(), p.Paid); err != nil {
		return makeTransitionResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder := c.Get("address").(domain.Address)

	type params struct {
		listingId
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.PlaceBid(ctx, bidder, p.toId(), p.Amount); err != nil {
		return makeTransitionResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) buyNow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder := c.Get("address").(domain.Address)

	p := &listingId{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.BuyNow(ctx, bidder, p.toId()); err != nil {
		return makeTransitionResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := &listingId{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.EndAuction(ctx, caller, p.toId()); err != nil {
		return makeTransitionResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// makeTransitionResp maps state machine errors to http statuses
func makeTransitionResp(c echo.Context, err error) error {
	switch err {
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrConflict:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidPrice,
		domain.ErrInvalidAuctionBounds,
		domain.ErrInvalidDuration,
		domain.ErrInvalidNumberFormat,
		domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrWrongAmount,
		domain.ErrWrongSaleMode,
		domain.ErrAuctionClosed,
		domain.ErrAuctionStillOpen,
		domain.ErrBidTooLow,
		domain.ErrMarketplacePaused,
		domain.ErrInsufficientFunds,
		domain.ErrTransferRejected:
		return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
	case domain.ErrNotTokenOwner, domain.ErrNotApproved, domain.ErrNotMarketplaceOwner:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

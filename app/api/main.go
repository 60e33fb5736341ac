package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/database/mongoclient"
	"github.com/nftvault/marketapi/base/database/redisclient"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/base/metrics"
	bValidator "github.com/nftvault/marketapi/base/validator"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/marketplace"
	mmiddleware "github.com/nftvault/marketapi/middleware"
	"github.com/nftvault/marketapi/service/chain"
	"github.com/nftvault/marketapi/service/chain/contract"
	"github.com/nftvault/marketapi/service/query"
	"github.com/nftvault/marketapi/service/redis"
	account_delivery "github.com/nftvault/marketapi/stores/account/delivery/http"
	account_repository "github.com/nftvault/marketapi/stores/account/repository"
	account_usecase "github.com/nftvault/marketapi/stores/account/usecase"
	auth_delivery "github.com/nftvault/marketapi/stores/auth/delivery/http"
	auth_middleware "github.com/nftvault/marketapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/nftvault/marketapi/stores/auth/usecase"
	escrow_delivery "github.com/nftvault/marketapi/stores/escrow/delivery/http"
	escrow_repository "github.com/nftvault/marketapi/stores/escrow/repository"
	escrow_usecase "github.com/nftvault/marketapi/stores/escrow/usecase"
	hc_delivery "github.com/nftvault/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/nftvault/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/nftvault/marketapi/stores/healthcheck/usecase"
	listing_delivery "github.com/nftvault/marketapi/stores/listing/delivery/http"
	listing_repository "github.com/nftvault/marketapi/stores/listing/repository"
	listing_usecase "github.com/nftvault/marketapi/stores/listing/usecase"
	marketplace_delivery "github.com/nftvault/marketapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/nftvault/marketapi/stores/marketplace/repository"
	marketplace_usecase "github.com/nftvault/marketapi/stores/marketplace/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(k + ".chainId")
		rpcUrl := networks.GetString(k + ".rpcUrl")
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("custody.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	registry := contract.NewErc721(chainService)

	custodyAddress := domain.Address(viper.GetString("custody.address"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	activityRepo := account_repository.NewActivityHistoryRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)
	ledgerRepo := escrow_repository.NewLedgerRepo(q)
	settingsRepo := marketplace_repository.New(q, redisCache, marketplace.Settings{
		Owner:      domain.Address(viper.GetString("marketplace.owner")).ToLower(),
		FeeRateBps: viper.GetInt64("marketplace.feeRateBps"),
	})

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	ledger := escrow_usecase.New(&escrow_usecase.LedgerUseCaseCfg{
		LedgerRepo: ledgerRepo,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:         listingRepo,
		Ledger:              ledger,
		Registry:            registry,
		SettingsRepo:        settingsRepo,
		ActivityHistoryRepo: activityRepo,
		Q:                   q,
		CustodyAddress:      custodyAddress,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		SettingsRepo: settingsRepo,
		Ledger:       ledger,
		Q:            q,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, account, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account, activityRepo)
	listing_delivery.New(e, listing, authMiddleware)
	escrow_delivery.New(e, ledger, authMiddleware)
	marketplace_delivery.New(e, marketplaceUC, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// Command sweeper closes expired auctions. It periodically scans the listing
// registry for auctions past their end time and settles each one through the
// same transition the API exposes.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/database/mongoclient"
	"github.com/nftvault/marketapi/base/database/redisclient"
	"github.com/nftvault/marketapi/base/goroutine"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/base/metrics"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/listing"
	"github.com/nftvault/marketapi/domain/marketplace"
	"github.com/nftvault/marketapi/service/chain"
	"github.com/nftvault/marketapi/service/chain/contract"
	"github.com/nftvault/marketapi/service/query"
	"github.com/nftvault/marketapi/service/redis"
	account_repository "github.com/nftvault/marketapi/stores/account/repository"
	escrow_repository "github.com/nftvault/marketapi/stores/escrow/repository"
	escrow_usecase "github.com/nftvault/marketapi/stores/escrow/usecase"
	listing_repository "github.com/nftvault/marketapi/stores/listing/repository"
	listing_usecase "github.com/nftvault/marketapi/stores/listing/usecase"
	marketplace_repository "github.com/nftvault/marketapi/stores/marketplace/repository"
)

var (
	configFile = pflag.String("config", "infra/configs/config.yaml", "config file path")
	interval   = pflag.Duration("interval", time.Minute, "sweep interval")
	batchSize  = pflag.Int32("batch", 100, "max auctions settled per sweep")
	workers    = pflag.Int("workers", 8, "concurrent settlements")
)

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func main() {
	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, false)

	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	for k := range networks.AllSettings() {
		rpcs[networks.GetInt32(k+".chainId")] = networks.GetString(k + ".rpcUrl")
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("custody.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	registry := contract.NewErc721(chainService)

	listingRepo := listing_repository.NewListingRepo(q)
	ledgerRepo := escrow_repository.NewLedgerRepo(q)
	activityRepo := account_repository.NewActivityHistoryRepo(q)
	settingsRepo := marketplace_repository.New(q, redisCache, marketplace.Settings{
		Owner:      domain.Address(viper.GetString("marketplace.owner")).ToLower(),
		FeeRateBps: viper.GetInt64("marketplace.feeRateBps"),
	})
	ledger := escrow_usecase.New(&escrow_usecase.LedgerUseCaseCfg{
		LedgerRepo: ledgerRepo,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:         listingRepo,
		Ledger:              ledger,
		Registry:            registry,
		SettingsRepo:        settingsRepo,
		ActivityHistoryRepo: activityRepo,
		Q:                   q,
		CustodyAddress:      domain.Address(viper.GetString("custody.address")),
	})

	pool := goroutines.NewPool(*workers, goroutines.WithTaskQueueLength(int(*batchSize)))
	defer pool.Release()

	done := goroutine.RecoverableGo(func() {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for {
			sweep(context, listingRepo, listingUC, pool)
			select {
			case <-ticker.C:
			case <-context.Done():
				return
			}
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
		cancel()
	case <-done:
		log.Log().Error("sweeper loop exited")
	}
}

// sweep settles every auction past its end time. Each settlement runs in its
// own mongo transaction so one failure does not block the rest.
func sweep(context ctx.Ctx, repo listing.Repo, uc listing.UseCase, pool *goroutines.Pool) {
	expired, err := repo.FindAll(context,
		listing.WithMode(listing.SaleModeAuction),
		listing.WithEndTimeLT(time.Now()),
		listing.WithPagination(0, *batchSize),
	)
	if err != nil {
		context.WithField("err", err).Error("failed to listingRepo.FindAll")
		return
	}
	if len(expired) == 0 {
		return
	}

	context.WithField("count", len(expired)).Info("settling expired auctions")

	for _, l := range expired {
		l := l
		if err := pool.Schedule(func() {
			id := l.ToId()
			err := uc.EndAuction(context, l.Seller, id)
			if err == domain.ErrNotFound || err == domain.ErrAuctionStillOpen {
				// someone else settled it first
				return
			}
			if err != nil {
				context.WithFields(log.Fields{
					"err": err,
					"id":  id,
				}).Error("failed to EndAuction")
			}
		}); err != nil {
			context.WithField("err", err).Error("failed to schedule settlement")
			return
		}
	}
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/database/mongoclient"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
	"github.com/nftvault/marketapi/service/cache"
	"github.com/nftvault/marketapi/service/cache/provider"
	"github.com/nftvault/marketapi/service/cache/provider/compound"
	"github.com/nftvault/marketapi/service/cache/provider/primitive"
	redisCache "github.com/nftvault/marketapi/service/cache/provider/redis"
	"github.com/nftvault/marketapi/service/query"
	"github.com/nftvault/marketapi/service/redis"
)

type impl struct {
	query        query.Mongo
	accountCache cache.Service
}

// New creates new account repo
func New(query query.Mongo, redis redis.Service) account.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("account", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		accountCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "account",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	res := &account.Account{}

	if err := im.accountCache.GetByFunc(c, address.ToLowerStr(), res, func() (interface{}, error) {
		return im.get(c, address)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("accountCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *impl) get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	a := &account.Account{}
	err := im.query.FindOne(c, domain.TableAccounts, bson.M{"address": address.ToLowerStr()}, a)
	if err == query.ErrNotFound {
		return a, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find account failed")
	}
	return a, err
}

func (im *impl) Insert(c ctx.Ctx, a *account.Account) error {
	a.Address = a.Address.ToLower()
	err := im.query.Insert(c, domain.TableAccounts, a)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": *a,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, address domain.Address, updater *account.Updater) error {
	selector := bson.M{"address": address.ToLowerStr()}

	update, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"updater": updater,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.query.Patch(c, domain.TableAccounts, selector, update)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"update":   update,
		}).Error("failed to query.Patch")
		return err
	}

	if err := im.accountCache.Del(c, address.ToLowerStr()); err != nil && err != cache.ErrNotFound {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("accountCache.Del failed")
	}

	return nil
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/marketplace"
	"github.com/nftvault/marketapi/service/cache"
	"github.com/nftvault/marketapi/service/cache/provider"
	"github.com/nftvault/marketapi/service/cache/provider/compound"
	"github.com/nftvault/marketapi/service/cache/provider/primitive"
	redisCache "github.com/nftvault/marketapi/service/cache/provider/redis"
	"github.com/nftvault/marketapi/service/query"
	"github.com/nftvault/marketapi/service/redis"
)

// the settings collection holds a single document under this key
const settingsKey = "marketplace"

// Del after Update only reaches this process's local layer, and settings
// gate every state transition, so another process may serve a stale Paused
// flag for up to one ttl. Keep that window tight.
const settingsCacheTtl = 10 * time.Second

type impl struct {
	query         query.Mongo
	defaults      marketplace.Settings
	settingsCache cache.Service
}

// New creates new marketplace settings repo. `defaults` is returned and used
// as the patch base until the first update is persisted.
func New(query query.Mongo, redis redis.Service, defaults marketplace.Settings) marketplace.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("marketplaceSettings", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query:    query,
		defaults: defaults,
		settingsCache: cache.New(cache.ServiceConfig{
			Ttl:   settingsCacheTtl,
			Pfx:   "marketplaceSettings",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Settings, error) {
	res := &marketplace.Settings{}

	if err := im.settingsCache.GetByFunc(c, settingsKey, res, func() (interface{}, error) {
		return im.get(c)
	}); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("settingsCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

type settingsDoc struct {
	Key string `bson:"key"`
	marketplace.Settings `bson:",inline"`
}

func (im *impl) get(c ctx.Ctx) (*marketplace.Settings, error) {
	doc := settingsDoc{}
	err := im.query.FindOne(c, domain.TableMarketplaceSettings, bson.M{"key": settingsKey}, &doc)
	if err == query.ErrNotFound {
		defaults := im.defaults
		return &defaults, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("find settings failed")
		return nil, err
	}
	return &doc.Settings, nil
}

func (im *impl) Update(c ctx.Ctx, patchable marketplace.Patchable) error {
	cur, err := im.get(c)
	if err != nil {
		return err
	}

	if patchable.Owner != nil {
		cur.Owner = patchable.Owner.ToLower()
	}
	if patchable.Paused != nil {
		cur.Paused = *patchable.Paused
	}
	if patchable.FeeRateBps != nil {
		cur.FeeRateBps = *patchable.FeeRateBps
	}
	cur.UpdatedAt = time.Now()

	doc := settingsDoc{Key: settingsKey, Settings: *cur}
	if err := im.query.Upsert(c, domain.TableMarketplaceSettings, bson.M{"key": settingsKey}, &doc); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"settings": *cur,
		}).Error("failed to query.Upsert")
		return err
	}

	if err := im.settingsCache.Del(c, settingsKey); err != nil && err != cache.ErrNotFound {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("settingsCache.Del failed")
	}

	return nil
}

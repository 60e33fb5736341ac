package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
	"github.com/nftvault/marketapi/service/query"
)

func makeActivitiesQuery(optFns ...account.ActivityHistoryFindAllOptionsFunc) (bson.M, error) {
	opts, err := account.GetActivityHistoryFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"to": *opts.Account},
		}
	}

	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}

	if opts.ContractAddress != nil {
		qry["contractAddress"] = *opts.ContractAddress
	}

	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	return qry, nil
}

type activityHistoryRepo struct {
	q query.Mongo
}

func NewActivityHistoryRepo(q query.Mongo) account.ActivityHistoryRepo {
	return &activityHistoryRepo{q: q}
}

func (r *activityHistoryRepo) Insert(ctx ctx.Ctx, a *account.ActivityHistory) error {
	if err := r.q.Insert(ctx, domain.TableActivities, a); err != nil {
		ctx.WithFields(log.Fields{
			"activityHistory": a,
			"err":             err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityHistoryRepo) FindActivities(c ctx.Ctx, optFns ...account.ActivityHistoryFindAllOptionsFunc) ([]*account.ActivityHistory, error) {
	opts, err := account.GetActivityHistoryFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("account.GetActivityHistoryFindAllOptions failed")
		return nil, err
	}

	qry, err := makeActivitiesQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeActivitiesQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	res := []*account.ActivityHistory{}

	err = r.q.Search(c, domain.TableActivities, offset, limit, "-time", qry, &res)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityHistoryRepo) CountActivities(c ctx.Ctx, optFns ...account.ActivityHistoryFindAllOptionsFunc) (int, error) {
	qry, err := makeActivitiesQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeActivitiesQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableActivities, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package payment

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/event"
	"github.com/youjin-ai/youjin/internal/payment/internal/job"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository/cache"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository/dao"
	"github.com/youjin-ai/youjin/internal/payment/internal/service"
	"github.com/youjin-ai/youjin/internal/payment/internal/service/wechat"
	"github.com/youjin-ai/youjin/internal/payment/internal/web"
	"github.com/youjin-ai/youjin/internal/pkg/sngenerator"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	cfg Config,
	wcfg wechat.Config,
	h wechat.NotifyHandler) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewOrderCache,
		repository.NewOrderRepository,
		event.NewOrderPaidEventProducer,
		initPrepayer,
		initService,
		wechat.NewNotifyParser,
		web.NewHandler,
		initCloseExpiredOrdersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

const (
	defaultOrderNoPrefix  = "YJ"
	defaultCloseBatchSize = 100
	defaultCloseGrace     = time.Minute
)

var (
	daoOnce  = &sync.Once{}
	orderDAO dao.OrderDAO
)

func initDAO(db *egorm.Component) dao.OrderDAO {
	daoOnce.Do(func() {
		_ = dao.InitTables(db)
		orderDAO = dao.NewOrderGORMDAO(db)
	})
	return orderDAO
}

// initPrepayer 商户配置不完整时允许启动, 下单请求会在发起网络调用之前被拒绝
// 配置完整但私钥无法解析时启动失败
func initPrepayer(wcfg wechat.Config) (service.Prepayer, error) {
	if wcfg.Validate() != nil {
		return nil, nil
	}
	signer, err := wechat.NewSigner(wcfg.MchID, wcfg.MchSerialNum, wcfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	return wechat.NewPrepayer(wechat.NewClient(wcfg, signer), wcfg), nil
}

func initService(repo repository.OrderRepository,
	prepayer service.Prepayer,
	producer event.OrderPaidEventProducer,
	cfg Config,
	wcfg wechat.Config) service.Service {
	prefix := cfg.OrderNoPrefix
	if prefix == "" {
		prefix = defaultOrderNoPrefix
	}
	return service.NewService(repo, prepayer,
		sngenerator.NewGenerator(prefix, domain.Location),
		producer, wcfg.Validate, cfg.OrderTTL)
}

func initCloseExpiredOrdersJob(svc service.Service, cfg Config) *job.CloseExpiredOrdersJob {
	limit := cfg.CloseBatchSize
	if limit <= 0 {
		limit = defaultCloseBatchSize
	}
	grace := cfg.CloseGrace
	if grace <= 0 {
		grace = defaultCloseGrace
	}
	return job.NewCloseExpiredOrdersJob(svc, limit, grace)
}

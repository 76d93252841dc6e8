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

package quota

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/youjin-ai/youjin/internal/quota/internal/event"
	"github.com/youjin-ai/youjin/internal/quota/internal/repository"
	"github.com/youjin-ai/youjin/internal/quota/internal/repository/dao"
	"github.com/youjin-ai/youjin/internal/quota/internal/service"
	"github.com/youjin-ai/youjin/internal/quota/internal/web"
)

// InitModule 消费者需要调用方在启动时 Start
func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitService,
		event.NewOrderPaidConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		svc = service.NewService(repository.NewQuotaRepository(dao.NewQuotaGORMDAO(db)))
	})
	return svc
}

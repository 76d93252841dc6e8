//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/youjin-ai/youjin/internal/payment"
	"github.com/youjin-ai/youjin/internal/quota"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitPaymentConfig,
		InitWechatConfig,
		InitWechatNotifyHandler,
		payment.InitModule,
		quota.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl", "CloseExpiredOrdersJob"),
		wire.FieldsOf(new(*quota.Module), "Hdl"),
		initGinxServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}

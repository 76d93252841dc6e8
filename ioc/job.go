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

package ioc

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/youjin-ai/youjin/internal/payment"
)

func initCronJobs(closeJob *payment.CloseExpiredOrdersJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.closeExpiredOrders").Build(ecron.WithJob(funcJobWrapper(closeJob))),
	}
}

// funcJobWrapper 统一记录定时任务的耗时与失败
func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			elog.DefaultLogger.Error("定时任务执行失败",
				elog.String("cronjob", name),
				elog.FieldCost(time.Since(start)),
				elog.FieldErr(err))
			return err
		}
		elog.DefaultLogger.Debug("定时任务执行完成",
			elog.String("cronjob", name),
			elog.FieldCost(time.Since(start)))
		return nil
	}
}

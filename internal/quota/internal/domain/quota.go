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

package domain

// Unlimited 合伙人套餐不限次数, 用一个足够大的值表示
const Unlimited int64 = 9999999

var packageQuotas = map[string]int64{
	"basic":     50,
	"member365": 1000,
	"partner":   Unlimited,
}

// QuotaOf 套餐对应的额度, 未知套餐返回 false
func QuotaOf(packageKey string) (int64, bool) {
	q, ok := packageQuotas[packageKey]
	return q, ok
}

type Quota struct {
	UserID string
	Total  int64
	Used   int64
}

func (q Quota) Remaining() int64 {
	if q.Used >= q.Total {
		return 0
	}
	return q.Total - q.Used
}

// Grant 一笔订单发放的额度, 同一订单号只会发放一次
type Grant struct {
	OrderNo    string
	UserID     string
	PackageKey string
	Amount     int64
}

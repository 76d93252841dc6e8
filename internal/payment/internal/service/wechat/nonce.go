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

package wechat

import (
	"time"

	"github.com/youjin-ai/youjin/internal/pkg/sngenerator"
)

const nonceLength = 32

// Nonce 32 位随机串, 字符集为大小写字母和数字
func Nonce() (string, error) {
	return sngenerator.RandomString(nonceLength, sngenerator.Alphanumeric)
}

// Timestamp 秒级时间戳
func Timestamp(now time.Time) int64 {
	return now.Unix()
}

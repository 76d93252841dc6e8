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

package sngenerator

import (
	"time"
)

const suffixLength = 6

// RandomGenerateFunc 定义生成随机后缀的函数类型
type RandomGenerateFunc func() (string, error)

// Generator 生成订单号, 格式为 前缀 + yyyyMMdd + HHmmss + 6 位大写字母数字
type Generator struct {
	prefix        string
	loc           *time.Location
	randomGenFunc RandomGenerateFunc
}

// NewGeneratorWith 创建一个 Generator 实例, 随机后缀由调用方提供
func NewGeneratorWith(prefix string, loc *time.Location, randomGen RandomGenerateFunc) *Generator {
	return &Generator{
		prefix:        prefix,
		loc:           loc,
		randomGenFunc: randomGen,
	}
}

// NewGenerator 创建一个 Generator 实例
func NewGenerator(prefix string, loc *time.Location) *Generator {
	return NewGeneratorWith(prefix, loc, func() (string, error) {
		return RandomString(suffixLength, UpperAlphanumeric)
	})
}

// Generate 根据 now 生成订单号, 日期和时间按照 loc 渲染
func (g *Generator) Generate(now time.Time) (string, error) {
	suffix, err := g.randomGenFunc()
	if err != nil {
		return "", err
	}
	return g.prefix + now.In(g.loc).Format("20060102150405") + suffix, nil
}

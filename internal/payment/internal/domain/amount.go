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

import "github.com/shopspring/decimal"

// ToFen 元转分, 金额必须大于 0 且恰好是整数分
func ToFen(amount decimal.Decimal) (int64, bool) {
	if !amount.IsPositive() {
		return 0, false
	}
	fen := amount.Shift(2)
	if !fen.IsInteger() {
		return 0, false
	}
	return fen.IntPart(), true
}

// FromFen 分转元
func FromFen(fen int64) decimal.Decimal {
	return decimal.New(fen, -2)
}

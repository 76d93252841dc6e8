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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youjin-ai/youjin/internal/pkg/sngenerator"
)

func validConfig() Config {
	return Config{
		AppID:        "wx123",
		MchID:        "1900000001",
		MchKey:       "apiv3key",
		MchSerialNum: "SERIAL",
		PrivateKey:   "KEY",
		NotifyURL:    "https://example.com/pay/callback",
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "配置完整",
			modify: func(c *Config) {},
		},
		{
			name:    "缺少商户号",
			modify:  func(c *Config) { c.MchID = "" },
			wantErr: ErrConfigIncomplete,
		},
		{
			name:    "缺少AppID",
			modify:  func(c *Config) { c.AppID = "" },
			wantErr: ErrConfigIncomplete,
		},
		{
			name:    "缺少证书序列号",
			modify:  func(c *Config) { c.MchSerialNum = "" },
			wantErr: ErrConfigIncomplete,
		},
		{
			name:    "私钥只有空白",
			modify:  func(c *Config) { c.PrivateKey = " \n " },
			wantErr: ErrConfigIncomplete,
		},
		{
			name:    "缺少APIv3密钥",
			modify:  func(c *Config) { c.MchKey = "" },
			wantErr: ErrConfigIncomplete,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.modify(&cfg)
			assert.Equal(t, tc.wantErr, cfg.Validate())
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.UseRelay())
	assert.Equal(t, DefaultBaseURL, cfg.baseURL())
	assert.Equal(t, DefaultTimeout, cfg.timeout())
	assert.Equal(t, "Wap", cfg.h5Type())

	cfg.RelayURL = "https://relay.example.com"
	assert.False(t, cfg.UseRelay())
	cfg.RelayToken = "token"
	assert.True(t, cfg.UseRelay())

	cfg.BaseURL = "http://127.0.0.1:8080/"
	cfg.Timeout = time.Second
	assert.Equal(t, "http://127.0.0.1:8080", cfg.baseURL())
	assert.Equal(t, time.Second, cfg.timeout())
}

func TestNonce(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		n, err := Nonce()
		require.NoError(t, err)
		require.Len(t, n, 32)
		for _, c := range n {
			require.True(t, strings.ContainsRune(sngenerator.Alphanumeric, c))
		}
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, int64(1700000000), Timestamp(time.Unix(1700000000, 999)))
}

package testioc

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/youjin-ai/youjin/ioc"
	"gopkg.in/yaml.v3"
)

var db *egorm.Component

// InitDB 使用 config/local.yaml 中的 mysql 配置, 要求测试位于 internal/<module>/internal/integration 下
func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	if err := ioc.WaitForDBSetup(econf.GetString("mysql.dsn")); err != nil {
		panic(err)
	}
	db = egorm.Load("mysql").Build()
	return db
}

func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(dir, "../../../../config/local.yaml"))
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}

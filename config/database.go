package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Database 数据库配置, driver 为 mysql 或 sqlite
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	// Path is the sqlite file, ":memory:" for an in-process database.
	Path string `json:"path" yaml:"path"`
}

func (d *Database) applyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverMySQL
	}
	if d.Charset == "" {
		d.Charset = "utf8mb4"
	}
	if d.Port == 0 {
		d.Port = 3306
	}
	if d.Path == "" {
		d.Path = "agora.db"
	}
}

func (d *Database) Dsn() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database, d.Charset)
}

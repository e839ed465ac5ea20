package database

import (
	"Agora/config"
	"Agora/models"
	"Agora/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Dsn())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers; a single connection also keeps ":memory:" shared.
	if conf.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Message{},
	)
}

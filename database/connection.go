package database

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Migrator func(db *gorm.DB) error

type Configuration struct {
	path       string
	migrations []Migrator
}

type ConfigOption func(c *Configuration)

func SetPath(path string) ConfigOption {
	return func(c *Configuration) {
		c.path = path
	}
}

func SetMigrations(migrations ...Migrator) ConfigOption {
	return func(c *Configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

func Connect(l logrus.FieldLogger, configurators ...ConfigOption) *gorm.DB {
	c := &Configuration{path: os.Getenv("DB_PATH")}
	for _, configurator := range configurators {
		configurator(c)
	}
	if c.path == "" {
		c.path = "atlas-sorter.db"
	}

	db, err := gorm.Open(sqlite.Open(c.path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database [%s].", c.path)
	}

	for _, m := range c.migrations {
		if err = m(db); err != nil {
			l.WithError(err).Fatalf("Unable to migrate database.")
		}
	}
	l.Infof("Connected to database [%s].", c.path)
	return db
}

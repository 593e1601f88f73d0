package config

import "time"

// DBConfig carries the MySQL connection settings together with the pool
// sizing, tunable per deployment without a rebuild.
type DBConfig struct {
	User string
	Pass string
	Host string
	Port string
	Name string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB assembles the database settings from the loaded configuration plus
// the optional pool variables.
func (c Config) DB() DBConfig {
	return DBConfig{
		User: c.DBUser,
		Pass: c.DBPass,
		Host: c.DBHost,
		Port: c.DBPort,
		Name: c.DBName,

		MaxOpenConns:    atoi(getenv("DB_MAX_OPEN_CONNS", "25")),
		MaxIdleConns:    atoi(getenv("DB_MAX_IDLE_CONNS", "25")),
		ConnMaxLifetime: parseDur(getenv("DB_CONN_MAX_LIFETIME", "30m")),
	}
}

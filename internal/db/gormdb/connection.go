package gormdb

import (
	"context"
	"github.com/oggyb/restaurant-dbcheck/internal/db"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	conn *gorm.DB
}

// New prepares a MySQL handle for the given DSN. Opening performs no
// network I/O: the automatic ping and the version handshake are both
// off, so the server is first contacted by Ping and the caller's
// context bounds every touch of the network.
func New(dsn string) (*GormDB, error) {
	return NewWithDialector(mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	}))
}

// NewWithDialector opens a connection through a caller-supplied
// dialector. Tests use it to run a mocked driver underneath GORM.
func NewWithDialector(dial gorm.Dialector) (*GormDB, error) {
	conn, err := gorm.Open(dial, &gorm.Config{
		SkipDefaultTransaction: true,
		// The server is first contacted by Ping, under the caller's
		// context; opening stays free of network I/O.
		DisableAutomaticPing: true,
		// Stdout carries the rendered result, so gorm's tracer stays off it.
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &GormDB{conn: conn}, nil
}

func (g *GormDB) Conn() any {
	return g.conn
}

// Ping verifies the server answers over the open handle.
func (g *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := g.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection handle.
func (g *GormDB) Close() error {
	sqlDB, err := g.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// verify it satisfies db.DB
var _ db.DB = (*GormDB)(nil)

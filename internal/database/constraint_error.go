package database

import (
	"errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
	"strings"
)

type constraintKind int

const (
	noViolation constraintKind = iota
	uniqueViolation
	foreignKeyViolation
	checkViolation
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	mysqlDuplicateEntry      = 1062
	mysqlRowIsReferenced     = 1451
	mysqlNoReferencedRow     = 1452
	mysqlRowIsReferencedOld  = 1217
	mysqlNoReferencedRowOld  = 1216
	mysqlCheckConstraintFail = 3819
)

// classifyConstraint 识别各数据库驱动返回的约束冲突错误
func classifyConstraint(err error) constraintKind {
	if err == nil {
		return noViolation
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return checkViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return uniqueViolation
		case pgForeignKeyViolation:
			return foreignKeyViolation
		case pgCheckViolation:
			return checkViolation
		}
		return noViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return uniqueViolation
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlRowIsReferencedOld, mysqlNoReferencedRowOld:
			return foreignKeyViolation
		case mysqlCheckConstraintFail:
			return checkViolation
		}
		return noViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyViolation
		case sqlite3.ErrConstraintCheck:
			return checkViolation
		}
		return noViolation
	}

	var pureErr *sqlite.Error
	if errors.As(err, &pureErr) {
		switch pureErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return uniqueViolation
		case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return foreignKeyViolation
		case sqlitelib.SQLITE_CONSTRAINT_CHECK:
			return checkViolation
		}
	}
	return noViolation
}

// violates 判断错误是否由指定名称的约束引起
func violates(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), constraint)
}

// mapConstraintError 将约束冲突转换为调用方给出的领域错误, 其余错误原样返回
func mapConstraintError(err error, mapping map[constraintKind]error) error {
	if kind := classifyConstraint(err); kind != noViolation {
		if mapped, ok := mapping[kind]; ok {
			return mapped
		}
	}
	return err
}

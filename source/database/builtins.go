package database

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/values"
)

// Namespace gives the built-ins for databases and credentials.
//
// A database, once opened, is a map of closures over the connection:
//
//	(def! db (sql-open "SQLite" ":memory:"))
//	((get db :exec) "CREATE TABLE t (x INTEGER)")
//	((get db :query) "SELECT * FROM t WHERE x > ?" 1)
func Namespace() map[string]values.NativeFn {
	return map[string]values.NativeFn{
		"check-password": btCheckPassword,
		"derive-key":     btDeriveKey,
		"hash-password":  btHashPassword,
		"sql-drivers":    btSqlDrivers,
		"sql-dsn":        btSqlDsn,
		"sql-open":       btSqlOpen,
	}
}

func arity(name string, args []values.Value, n int) error {
	if len(args) != n {
		return err.CreateErr("built/arity", nil, name, text.Plural(n, "argument"), len(args))
	}
	return nil
}

func stringArgs(name string, args []values.Value) ([]string, error) {
	result := make([]string, 0, len(args))
	for i, arg := range args {
		if arg.T != values.STRING {
			return nil, err.CreateErr("built/type", nil, name, "a string", i+1, arg.T.String())
		}
		result = append(result, arg.V.(string))
	}
	return result, nil
}

func btSqlDrivers(args ...values.Value) (values.Value, error) {
	if e := arity("sql-drivers", args, 0); e != nil {
		return values.NIL, e
	}
	result := []values.Value{}
	for _, name := range GetSortedDrivers() {
		result = append(result, values.MakeString(name))
	}
	return values.MakeVector(result...), nil
}

// (sql-dsn {:host "localhost" :port 5432 :dbname "x" :user "u" :password "p"}). Missing keys are
// left empty.
func btSqlDsn(args ...values.Value) (values.Value, error) {
	if e := arity("sql-dsn", args, 1); e != nil {
		return values.NIL, e
	}
	if args[0].T != values.MAP {
		return values.NIL, err.CreateErr("built/type", nil, "sql-dsn", "a map", 1, args[0].T.String())
	}
	m := args[0].V.(*values.Map)
	field := func(name string) string {
		v, ok := m.Lookup(values.MakeKeyword(name))
		if !ok || v.IsNil() {
			return ""
		}
		return printer.Print(v, false)
	}
	return values.MakeString(Dsn(field("host"), field("port"), field("dbname"), field("user"), field("password"))), nil
}

func btSqlOpen(args ...values.Value) (values.Value, error) {
	if e := arity("sql-open", args, 2); e != nil {
		return values.NIL, e
	}
	strs, e := stringArgs("sql-open", args)
	if e != nil {
		return values.NIL, e
	}
	driver, ok := DriverName(strs[0])
	if !ok {
		return values.NIL, err.CreateErr("sql/driver", nil, strs[0], GetSortedDrivers())
	}
	db, e := GetdB(driver, strs[1])
	if e != nil {
		settings.Log.WithError(e).WithField("driver", driver).Warn("can't open database")
		return values.NIL, err.CreateErr("sql/open", nil, e.Error())
	}
	settings.Log.WithField("driver", driver).Info("opened database")
	return connection(driver, db), nil
}

func connection(driver string, db *sql.DB) values.Value {
	m := values.NewMap()
	m.Assoc(values.MakeKeyword("driver"), values.MakeString(driver))
	m.Assoc(values.MakeKeyword("query"), values.MakeNative(func(args ...values.Value) (values.Value, error) {
		query, rest, e := queryArgs("query", args)
		if e != nil {
			return values.NIL, e
		}
		result, e := Query(db, query, rest)
		if e != nil {
			return values.NIL, sqlError(e)
		}
		return result, nil
	}))
	m.Assoc(values.MakeKeyword("exec"), values.MakeNative(func(args ...values.Value) (values.Value, error) {
		query, rest, e := queryArgs("exec", args)
		if e != nil {
			return values.NIL, e
		}
		n, e := Exec(db, query, rest)
		if e != nil {
			return values.NIL, sqlError(e)
		}
		return values.MakeNumber(float64(n)), nil
	}))
	m.Assoc(values.MakeKeyword("close"), values.MakeNative(func(args ...values.Value) (values.Value, error) {
		if e := db.Close(); e != nil {
			return values.NIL, sqlError(e)
		}
		settings.Log.WithField("driver", driver).Info("closed database")
		return values.NIL, nil
	}))
	return values.Value{T: values.MAP, V: m}
}

func queryArgs(name string, args []values.Value) (string, []values.Value, error) {
	if len(args) == 0 || args[0].T != values.STRING {
		got := "nothing"
		if len(args) > 0 {
			got = args[0].T.String()
		}
		return "", nil, err.CreateErr("built/type", nil, name, "a string", 1, got)
	}
	return args[0].V.(string), args[1:], nil
}

func sqlError(e error) error {
	if ve, ok := errors.Cause(e).(*valueError); ok {
		return err.CreateErr("sql/value", nil, ve.kind)
	}
	return err.CreateErr("sql/query", nil, e.Error())
}

func btHashPassword(args ...values.Value) (values.Value, error) {
	if e := arity("hash-password", args, 1); e != nil {
		return values.NIL, e
	}
	strs, e := stringArgs("hash-password", args)
	if e != nil {
		return values.NIL, e
	}
	hash, e := HashPassword(strs[0])
	if e != nil {
		return values.NIL, err.CreateErr("built/hash", nil, e.Error())
	}
	return values.MakeString(hash), nil
}

func btCheckPassword(args ...values.Value) (values.Value, error) {
	if e := arity("check-password", args, 2); e != nil {
		return values.NIL, e
	}
	strs, e := stringArgs("check-password", args)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeBool(CheckPassword(strs[0], strs[1])), nil
}

func btDeriveKey(args ...values.Value) (values.Value, error) {
	if e := arity("derive-key", args, 2); e != nil {
		return values.NIL, e
	}
	strs, e := stringArgs("derive-key", args)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeString(DeriveKey(strs[0], strs[1])), nil
}

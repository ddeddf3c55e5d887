package database

// This contains the means for Ensemble scripts to talk to SQL databases: the table of drivers, opening
// connections, and converting between the language's values and what database/sql wants.

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ensemble-lang/ensemble/source/values"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// List of SQL drivers for when I want to import more: https://zchee.github.io/golang-wiki/SQLDrivers/

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// DriverName accepts either the name of a database or the name of its Go driver.
func DriverName(name string) (string, bool) {
	if driver, ok := drivers[name]; ok {
		return driver, true
	}
	for _, driver := range drivers {
		if strings.EqualFold(driver, name) {
			return driver, true
		}
	}
	return "", false
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// GetdB opens a connection and checks that it works. The pool is kept to one connection so that
// everything a script does sees the same session, which matters for in-memory SQLite.
func GetdB(driver, dataSource string) (*sql.DB, error) {
	sqlObj, connectionError := sql.Open(driver, dataSource)
	if connectionError != nil {
		return nil, errors.Wrapf(connectionError, "opening %s", driver)
	}
	sqlObj.SetMaxOpenConns(1)
	if e := sqlObj.Ping(); e != nil {
		sqlObj.Close()
		return nil, errors.Wrapf(e, "pinging %s", driver)
	}
	return sqlObj, nil
}

// Dsn builds a key=value connection string of the kind Postgres understands.
func Dsn(host, port, db, user, password string) string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=disable",
		host, port, db, user, password)
}

// Exec runs a statement and returns the number of rows it affected.
func Exec(db *sql.DB, query string, args []values.Value) (int64, error) {
	goArgs, e := toGoValues(args)
	if e != nil {
		return 0, e
	}
	result, e := db.Exec(query, goArgs...)
	if e != nil {
		return 0, errors.Wrap(e, "exec")
	}
	n, e := result.RowsAffected()
	if e != nil {
		return 0, nil // Not every driver can say.
	}
	return n, nil
}

// Query runs a query and returns the rows as a vector of maps from keywords named after the
// columns to the values in them.
func Query(db *sql.DB, query string, args []values.Value) (values.Value, error) {
	goArgs, e := toGoValues(args)
	if e != nil {
		return values.NIL, e
	}
	rows, e := db.Query(query, goArgs...)
	if e != nil {
		return values.NIL, errors.Wrap(e, "query")
	}
	defer rows.Close()
	columns, e := rows.Columns()
	if e != nil {
		return values.NIL, errors.Wrap(e, "reading columns")
	}
	result := []values.Value{}
	for rows.Next() {
		fields := make([]any, len(columns))
		pointerList := make([]any, len(columns))
		for i := range fields {
			pointerList[i] = &fields[i]
		}
		if e := rows.Scan(pointerList...); e != nil {
			return values.NIL, errors.Wrap(e, "scanning row")
		}
		row := values.NewMap()
		for i, col := range columns {
			row.Assoc(values.MakeKeyword(col), toValue(fields[i]))
		}
		result = append(result, values.Value{T: values.MAP, V: row})
	}
	if e := rows.Err(); e != nil {
		return values.NIL, errors.Wrap(e, "reading rows")
	}
	return values.MakeVector(result...), nil
}

type valueError struct {
	kind string
}

func (e *valueError) Error() string {
	return "can't pass value of type " + e.kind + " to the database"
}

// Whole numbers are passed as integers so that databases with integer columns are happy.
func toGoValues(vals []values.Value) ([]any, error) {
	goValues := make([]any, 0, len(vals))
	for _, v := range vals {
		switch v.T {
		case values.NULL:
			goValues = append(goValues, nil)
		case values.STRING:
			goValues = append(goValues, v.V.(string))
		case values.BOOL:
			goValues = append(goValues, v.V.(bool))
		case values.NUMBER:
			f := v.V.(float64)
			if f == float64(int64(f)) {
				goValues = append(goValues, int64(f))
			} else {
				goValues = append(goValues, f)
			}
		default:
			return nil, &valueError{v.T.String()}
		}
	}
	return goValues, nil
}

func toValue(goValue any) values.Value {
	switch goValue := goValue.(type) {
	case nil:
		return values.NIL
	case int64:
		return values.MakeNumber(float64(goValue))
	case int32:
		return values.MakeNumber(float64(goValue))
	case float64:
		return values.MakeNumber(goValue)
	case float32:
		return values.MakeNumber(float64(goValue))
	case bool:
		return values.MakeBool(goValue)
	case string:
		return values.MakeString(goValue)
	case []byte:
		return values.MakeString(string(goValue))
	case time.Time:
		return values.MakeString(goValue.Format(time.RFC3339))
	}
	return values.MakeString(fmt.Sprint(goValue))
}

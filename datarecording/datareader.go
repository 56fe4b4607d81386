package datarecording

import (
	"database/sql"
	"fmt"
	"reflect"
)

// DataReader reads recorded data back from a database. It exists mostly so
// tests and post-run analysis can query what a recorder wrote.
type DataReader interface {
	// MapTable establishes a mapping between a database table and a Go
	// struct type. The mapping is required before querying a table.
	MapTable(tableName string, sampleEntry any)

	// Query returns all rows of a table as instances of the mapped struct.
	Query(tableName string) ([]any, error)

	// Close closes the reader.
	Close() error
}

// NewReader creates a DataReader on an existing SQLite file.
func NewReader(dbFilename string) DataReader {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		panic(err)
	}

	return &sqliteReader{
		DB:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

type sqliteReader struct {
	*sql.DB

	typeMap map[string]reflect.Type
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) Query(tableName string) ([]any, error) {
	structType, ok := r.typeMap[tableName]
	if !ok {
		return nil, fmt.Errorf("no mapping found for table: %s", tableName)
	}

	//nolint:gosec // table names come from MapTable callers, not users.
	rows, err := r.DB.Query("SELECT * FROM " + tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []any

	for rows.Next() {
		entry := reflect.New(structType).Elem()

		fields := make([]any, structType.NumField())
		for i := range fields {
			fields[i] = entry.Field(i).Addr().Interface()
		}

		if err := rows.Scan(fields...); err != nil {
			return nil, err
		}

		results = append(results, entry.Interface())
	}

	return results, rows.Err()
}

func (r *sqliteReader) Close() error {
	return r.DB.Close()
}

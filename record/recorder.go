// Package record stores the outcome of a harness clock elaboration in a
// SQLite database, so that the negotiated clock plan can be queried after
// the generator run.
package record

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// SQLite driver for the report database.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Recorder is a backend that stores flat report rows in named tables.
type Recorder interface {
	// CreateTable creates a table whose columns are the field names of the
	// sample entry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one entry for a table created earlier.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered entries to the database.
	Flush()
}

// New creates a Recorder backed by a new SQLite file. If path is empty, a
// unique name is generated. Buffered rows are flushed at process exit.
func New(path string) Recorder {
	w := &sqliteWriter{
		dbName:    path,
		batchSize: 4096,
		tables:    make(map[string]*reportTable),
	}

	w.open()

	atexit.Register(func() { w.Flush() })

	return w
}

// NewWithDB creates a Recorder writing into an existing database handle.
func NewWithDB(db *sql.DB) Recorder {
	w := &sqliteWriter{
		db:        db,
		batchSize: 4096,
		tables:    make(map[string]*reportTable),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type reportTable struct {
	structType reflect.Type
	pending    []any
}

type sqliteWriter struct {
	db *sql.DB

	dbName       string
	tables       map[string]*reportTable
	batchSize    int
	pendingCount int
}

func (w *sqliteWriter) open() {
	if w.dbName == "" {
		w.dbName = "harness_clock_plan_" + xid.New().String()
	}

	filename := w.dbName
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("record: file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Clock plan recorded in: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.db = db
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	if err := checkEntryFields(sampleEntry); err != nil {
		panic(err)
	}

	columns := strings.Join(structs.Names(sampleEntry), ", \n\t")
	w.mustExecute(`CREATE TABLE ` + tableName + ` (` + "\n\t" + columns + "\n" + `);`)

	w.tables[tableName] = &reportTable{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	table, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("record: table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.structType {
		panic(fmt.Sprintf("record: entry type %T does not match table %s",
			entry, tableName))
	}

	table.pending = append(table.pending, entry)

	w.pendingCount++
	if w.pendingCount >= w.batchSize {
		w.Flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	names := make([]string, 0, len(w.tables))
	for name := range w.tables {
		names = append(names, name)
	}

	return names
}

func (w *sqliteWriter) Flush() {
	if w.pendingCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range w.tables {
		if len(table.pending) == 0 {
			continue
		}

		stmt := w.prepareInsert(tableName, table.pending[0])

		for _, entry := range table.pending {
			fields := reflect.ValueOf(entry)

			values := make([]any, 0, fields.NumField())
			for i := 0; i < fields.NumField(); i++ {
				values = append(values, fields.Field(i).Interface())
			}

			if _, err := stmt.Exec(values...); err != nil {
				panic(err)
			}
		}

		table.pending = nil
		stmt.Close()
	}

	w.pendingCount = 0
}

func (w *sqliteWriter) prepareInsert(tableName string, sample any) *sql.Stmt {
	placeholders := structs.Names(sample)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.db.Prepare("INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}

	return stmt
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.db.Exec(query)
	if err != nil {
		panic(fmt.Errorf("record: executing %q: %w", query, err))
	}

	return res
}

func checkEntryFields(entry any) error {
	entryType := reflect.TypeOf(entry)

	for i := 0; i < entryType.NumField(); i++ {
		switch entryType.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
			continue
		default:
			return fmt.Errorf("record: field %s has unsupported kind %s",
				entryType.Field(i).Name, entryType.Field(i).Type.Kind())
		}
	}

	return nil
}

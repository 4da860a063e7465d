package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/haguru/oak/internal/interfaces"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewPostgresDatabaseClient builds an unconnected client. Non-positive
// pool settings fall back to the package defaults.
func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) interfaces.DBClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}
	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single document into a PostgreSQL table.
// 'document' is expected to be a map[string]interface{}; the INSERT is
// built dynamically from its keys. A missing 'id' key is filled with a
// fresh UUID.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (interface{}, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]interface{}")
	}

	if _, exists := docMap["id"]; !exists {
		docMap["id"] = uuid.New().String()
	}

	columns := make([]string, 0, len(docMap))
	for col := range docMap {
		columns = append(columns, col)
	}
	sort.Strings(columns) // deterministic statement text

	placeholders := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		values = append(values, docMap[col])
	}

	// Table and column names come from repository constants, not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	var insertedID interface{}
	if err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID); err != nil {
		return nil, err
	}
	if b, ok := insertedID.([]byte); ok {
		insertedID = string(b)
	}
	return insertedID, nil
}

// FindOne retrieves a single row matching the filter as a column map and
// decodes nothing itself; the 'result' must be a *map[string]interface{}.
// A missing row leaves the map empty and returns no error.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne expects filter to be map[string]interface{}")
	}
	if len(filterMap) == 0 {
		return fmt.Errorf("PostgreSQL FindOne requires a non-empty filter")
	}
	resultMap, ok := result.(*map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne expects result to be *map[string]interface{}")
	}

	whereString, whereValues := buildWhere(filterMap, 1)

	// Table name comes from repository constants, not user input.
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s LIMIT 1", tableName, whereString) // #nosec G201

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return err
	}
	defer closeRows(rows)

	if !rows.Next() {
		return rows.Err()
	}
	rowMap, err := scanRowMap(rows)
	if err != nil {
		return err
	}
	*resultMap = rowMap
	return rows.Err()
}

// FindMany retrieves the rows matching the filter as a slice of column
// maps, ordered by the sort document (column -> 1 ascending, -1
// descending). An empty filter selects the whole table.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document, sortDoc interfaces.Document) ([]interfaces.Document, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL FindMany expects filter to be map[string]interface{}")
	}

	whereString := ""
	var whereValues []interface{}
	if len(filterMap) > 0 {
		clause, values := buildWhere(filterMap, 1)
		whereString = " WHERE " + clause
		whereValues = values
	}

	orderString, err := buildOrderBy(sortDoc)
	if err != nil {
		return nil, err
	}

	// Table name comes from repository constants, not user input.
	query := fmt.Sprintf("SELECT * FROM %s%s%s", tableName, whereString, orderString) // #nosec G201

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var results []interfaces.Document
	for rows.Next() {
		rowMap, err := scanRowMap(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rowMap)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// EnsureSchema executes a schema statement (CREATE TABLE / CREATE INDEX)
// against the database. 'schema' must be the statement string.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	stmt, ok := schema.(string)
	if !ok {
		return fmt.Errorf("EnsureSchema expects schema to be a statement string")
	}
	_, err := p.db.ExecContext(ctx, stmt)
	return err
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// buildWhere renders "col = $n AND ..." with deterministic column order.
func buildWhere(filterMap map[string]interface{}, firstParam int) (string, []interface{}) {
	columns := make([]string, 0, len(filterMap))
	for col := range filterMap {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	clauses := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, firstParam+i))
		values = append(values, filterMap[col])
	}
	return strings.Join(clauses, " AND "), values
}

// buildOrderBy renders " ORDER BY col ASC/DESC, ..." from a
// map[string]int sort document. A nil sort document yields no clause.
func buildOrderBy(sortDoc interfaces.Document) (string, error) {
	if sortDoc == nil {
		return "", nil
	}
	sortMap, ok := sortDoc.(map[string]int)
	if !ok {
		return "", fmt.Errorf("PostgreSQL FindMany expects sort to be map[string]int")
	}
	if len(sortMap) == 0 {
		return "", nil
	}

	columns := make([]string, 0, len(sortMap))
	for col := range sortMap {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	clauses := make([]string, 0, len(columns))
	for _, col := range columns {
		direction := "ASC"
		if sortMap[col] < 0 {
			direction = "DESC"
		}
		clauses = append(clauses, col+" "+direction)
	}
	return " ORDER BY " + strings.Join(clauses, ", "), nil
}

// scanRowMap scans the current row into a column-name keyed map,
// converting byte slices to strings.
func scanRowMap(rows *sql.Rows) (map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	columnPointers := make([]interface{}, len(columns))
	columnValues := make([]interface{}, len(columns))
	for i := range columns {
		columnPointers[i] = &columnValues[i]
	}
	if err := rows.Scan(columnPointers...); err != nil {
		return nil, err
	}

	rowMap := make(map[string]interface{}, len(columns))
	for i, colName := range columns {
		val := columnValues[i]
		if b, ok := val.([]byte); ok {
			rowMap[colName] = string(b)
		} else {
			rowMap[colName] = val
		}
	}
	return rowMap, nil
}

func closeRows(rows *sql.Rows) {
	_ = rows.Close()
}

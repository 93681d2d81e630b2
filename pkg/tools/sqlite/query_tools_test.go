package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReadQueryPolicy(t *testing.T) {
	Convey("Given a read_query tool over a store that has never been opened", t, func() {
		dbPath := filepath.Join(t.TempDir(), "untouched.db")
		tool := NewReadQueryTool(store.New(dbPath, ""))
		ctx := context.Background()

		Convey("When the query is not a SELECT", func() {
			request := newMockRequest("read_query", map[string]interface{}{
				"query": "DELETE FROM items",
			})
			result, err := tool.Handler(ctx, request)

			Convey("It should be rejected with a policy error", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(resultText(result), ShouldEqual, "Error: Only SELECT queries are allowed for read_query")
			})

			Convey("The store should never have been touched", func() {
				_, statErr := os.Stat(dbPath)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})

		Convey("When the query argument is missing", func() {
			result, err := tool.Handler(ctx, newMockRequest("read_query", nil))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldEqual, "Error: missing argument: query")
		})
	})

	Convey("Given a read_query tool over a seeded store", t, func() {
		db := newTestStore(t)
		ctx := context.Background()

		_, err := db.Execute(ctx, "CREATE TABLE items (name TEXT)")
		So(err, ShouldBeNil)
		_, err = db.Execute(ctx, "INSERT INTO items VALUES (?)", "widget")
		So(err, ShouldBeNil)

		tool := NewReadQueryTool(db)

		Convey("A SELECT in any casing or padding should execute", func() {
			request := newMockRequest("read_query", map[string]interface{}{
				"query": "  select name from items  ",
			})
			result, err := tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)
			So(resultText(result), ShouldEqual, `[{"name": "widget"}]`)
		})

		Convey("A malformed query should surface the engine message as a database error", func() {
			request := newMockRequest("read_query", map[string]interface{}{
				"query": "SELECT * FROM no_such_table",
			})
			result, err := tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldStartWith, "Database error: ")

			Convey("And the tool should keep serving subsequent calls", func() {
				request := newMockRequest("read_query", map[string]interface{}{
					"query": "SELECT name FROM items",
				})
				result, err := tool.Handler(ctx, request)
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
			})
		})
	})
}

func TestWriteQueryPolicy(t *testing.T) {
	Convey("Given a write_query tool", t, func() {
		db := newTestStore(t)
		tool := NewWriteQueryTool(db)
		ctx := context.Background()

		Convey("A SELECT should be rejected", func() {
			request := newMockRequest("write_query", map[string]interface{}{
				"query": "SELECT * FROM items",
			})
			result, err := tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldEqual, "Error: SELECT queries are not allowed for write_query")
		})

		Convey("A lower-cased padded SELECT should also be rejected", func() {
			request := newMockRequest("write_query", map[string]interface{}{
				"query": "   select 1",
			})
			result, err := tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
		})

		Convey("A mutating statement should report the affected-row count", func() {
			request := newMockRequest("write_query", map[string]interface{}{
				"query": "CREATE TABLE items (name TEXT)",
			})
			result, err := tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)

			request = newMockRequest("write_query", map[string]interface{}{
				"query": "INSERT INTO items VALUES ('widget')",
			})
			result, err = tool.Handler(ctx, request)

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)
			So(resultText(result), ShouldEqual, `[{"affected_rows": 1}]`)
		})
	})
}

package sqlite

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/invopop/jsonschema"
)

/*
ToolsetSchema renders the JSON schema of every tool request type as a single
document. It backs the server's -describe mode so the toolset contract can be
inspected without speaking the protocol.
*/
func ToolsetSchema() string {
	schemas := map[string]*jsonschema.Schema{
		"upload_csv":     jsonschema.Reflect(&UploadCSVRequest{}),
		"read_query":     jsonschema.Reflect(&ReadQueryRequest{}),
		"write_query":    jsonschema.Reflect(&WriteQueryRequest{}),
		"list_tables":    jsonschema.Reflect(&ListTablesRequest{}),
		"describe_table": jsonschema.Reflect(&DescribeTableRequest{}),
	}

	buf, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		log.Error(err)
		return "Error marshalling schema"
	}

	return string(buf)
}

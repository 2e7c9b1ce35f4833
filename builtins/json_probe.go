package builtins

import (
	"encoding/json"
	"strconv"

	"github.com/jmespath/go-jmespath"
)

// probeDocument is a small static catalog a running IMP program can
// query by index, standing in for the document store a real embedding
// of this language would connect to a query primitive like this.
const probeDocument = `{
	"catalog": [
		{"id": 0, "stock": 12},
		{"id": 1, "stock": 48},
		{"id": 2, "stock": 0},
		{"id": 3, "stock": 7}
	]
}`

// jsonProbePrimitive backs `json_probe(id)`: runs a JMESPath query
// against an embedded JSON document and returns the matched stock count
// as an int64, or -1 if no entry matches. Grounded on the pack's use of
// jmespath for declarative lookups over decoded JSON.
var jsonProbePrimitive = Primitive{
	Name:  "json_probe",
	Arity: 1,
	Call: func(args []int64) (int64, error) {
		var doc any
		if err := json.Unmarshal([]byte(probeDocument), &doc); err != nil {
			return 0, errFault("json_probe: decode document: %v", err)
		}
		query := "catalog[?id == `" + strconv.FormatInt(args[0], 10) + "`].stock | [0]"
		expr, err := jmespath.Compile(query)
		if err != nil {
			return 0, errFault("json_probe: compile query: %v", err)
		}
		result, err := expr.Search(doc)
		if err != nil {
			return 0, errFault("json_probe: search: %v", err)
		}
		stock, ok := result.(float64)
		if !ok {
			return -1, nil
		}
		return int64(stock), nil
	},
}

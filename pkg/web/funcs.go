package web

import (
	"encoding/json"
	"html/template"
)

var funcs = template.FuncMap{
	"json": toJSON,
}

// toJSON marshals v for embedding in a <script type="application/json"> block.
func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

package mockdata

// Field types understood by the generator.
const (
	TypeText    = "text"
	TypeNumber  = "number"
	TypeDate    = "date"
	TypeBoolean = "boolean"
	TypeName    = "name"
	TypeEmail   = "email"
	TypePhone   = "phone"
	TypeAddress = "address"
	TypeSelect  = "select"
)

const (
	// DefaultRowCount is used when a request omits rowCount.
	DefaultRowCount = 10
	// MaxRowCount bounds a single generation.
	MaxRowCount = 1000
	// uniqueAttempts is how many times a repeated unique value is regenerated.
	uniqueAttempts = 10
)

// Field describes one generated column.
type Field struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Unique  bool           `json:"unique"`
	Options map[string]any `json:"options,omitempty"`
}

// key identifies the field for uniqueness tracking.
func (f Field) key() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// Request is a generation request.
type Request struct {
	Fields []Field `json:"fields"`
	// RowCount defaults to DefaultRowCount when absent.
	RowCount *int `json:"rowCount,omitempty"`
}

// Dataset is a generated table.
type Dataset struct {
	// Columns holds the field names in schema order.
	Columns []string
	// Rows maps field names to values.
	Rows []map[string]any
}

// Options accessors. JSON numbers arrive as float64.

func optFloat(opts map[string]any, key string, def float64) float64 {
	switch v := opts[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

func optInt(opts map[string]any, key string, def int) int {
	return int(optFloat(opts, key, float64(def)))
}

func optBool(opts map[string]any, key string) bool {
	v, _ := opts[key].(bool)
	return v
}

func optString(opts map[string]any, key, def string) string {
	if v, ok := opts[key].(string); ok && v != "" {
		return v
	}
	return def
}

func optStrings(opts map[string]any, key string) []string {
	var out []string
	switch v := opts[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

package mockdata

import (
	"fmt"
	"math"
	"time"

	"datadiff/core/failure"
)

const dateLayout = "2006-01-02"

// Generator builds datasets from a schema.
type Generator struct {
	provider DataProvider
}

// NewGenerator creates a generator drawing values from provider.
func NewGenerator(provider DataProvider) *Generator {
	return &Generator{provider: provider}
}

// Validate checks the request and returns the effective row count.
func Validate(req Request) (int, error) {
	if len(req.Fields) == 0 {
		return 0, failure.New(failure.KindEmptyInput, "no fields provided")
	}

	count := DefaultRowCount
	if req.RowCount != nil {
		count = *req.RowCount
	}
	if count <= 0 || count > MaxRowCount {
		return 0, failure.New(failure.KindInvalidInput, "invalid row count %d, must be between 1 and %d", count, MaxRowCount)
	}

	for i, f := range req.Fields {
		if f.Name == "" {
			return 0, failure.New(failure.KindInvalidInput, "field %d has no name", i+1)
		}
		if !knownType(f.Type) {
			return 0, failure.New(failure.KindInvalidInput, "field %q has unsupported type %q", f.Name, f.Type)
		}
		if f.Type == TypeDate {
			if _, _, err := dateBounds(f.Options); err != nil {
				return 0, err
			}
		}
	}
	return count, nil
}

// Generate validates req and produces its rows.
func (g *Generator) Generate(req Request) (*Dataset, error) {
	count, err := Validate(req)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Columns: make([]string, 0, len(req.Fields)),
		Rows:    make([]map[string]any, 0, count),
	}
	for _, f := range req.Fields {
		ds.Columns = append(ds.Columns, f.Name)
	}

	seen := make(map[string]map[string]bool)
	for _, f := range req.Fields {
		if f.Unique {
			seen[f.key()] = make(map[string]bool)
		}
	}

	for i := 0; i < count; i++ {
		row := make(map[string]any, len(req.Fields))
		for _, f := range req.Fields {
			value := g.value(f)
			if f.Unique {
				used := seen[f.key()]
				for attempt := 0; used[fmt.Sprint(value)] && attempt < uniqueAttempts; attempt++ {
					value = g.value(f)
				}
				used[fmt.Sprint(value)] = true
			}
			row[f.Name] = value
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

func knownType(t string) bool {
	switch t {
	case TypeText, TypeNumber, TypeDate, TypeBoolean, TypeName,
		TypeEmail, TypePhone, TypeAddress, TypeSelect:
		return true
	}
	return false
}

// value draws one value for f. The type was checked by Validate.
func (g *Generator) value(f Field) any {
	p := g.provider
	switch f.Type {
	case TypeText:
		return p.Text(optInt(f.Options, "maxLength", 20))
	case TypeNumber:
		lo := optFloat(f.Options, "min", 0)
		hi := optFloat(f.Options, "max", 100)
		if hi < lo {
			lo, hi = hi, lo
		}
		if optBool(f.Options, "decimal") {
			return math.Round(p.Float(lo, hi)*100) / 100
		}
		return p.Int(int(lo), int(hi))
	case TypeDate:
		start, end, _ := dateBounds(f.Options)
		return p.Date(start, end).Format(dateLayout)
	case TypeBoolean:
		return p.Bool()
	case TypeName:
		return p.Name()
	case TypeEmail:
		return p.Email()
	case TypePhone:
		return p.Phone()
	case TypeAddress:
		return p.Address()
	case TypeSelect:
		values := optStrings(f.Options, "values")
		if len(values) == 0 {
			return "No options available"
		}
		return p.Pick(values)
	default:
		return nil
	}
}

// dateBounds reads startDate and endDate (yyyy-mm-dd), defaulting to 2020-01-01 and 2025-12-31.
func dateBounds(opts map[string]any) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, optString(opts, "startDate", "2020-01-01"))
	if err != nil {
		return time.Time{}, time.Time{}, failure.Wrap(failure.KindInvalidInput, err, "invalid startDate")
	}
	end, err := time.Parse(dateLayout, optString(opts, "endDate", "2025-12-31"))
	if err != nil {
		return time.Time{}, time.Time{}, failure.Wrap(failure.KindInvalidInput, err, "invalid endDate")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, failure.New(failure.KindInvalidInput, "endDate is before startDate")
	}
	return start, end, nil
}

package mockdata

import (
	"fmt"
	"testing"
	"time"

	"datadiff/core/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns fixed values. Ints are served from a queue, repeating the last one.
type stubProvider struct {
	ints     []int
	intCalls int
}

func (p *stubProvider) Text(maxChars int) string {
	s := "lorem ipsum dolor sit amet"
	if len(s) > maxChars {
		s = s[:maxChars]
	}
	return s
}

func (p *stubProvider) Int(min, max int) int {
	p.intCalls++
	if len(p.ints) == 0 {
		return min
	}
	v := p.ints[0]
	if len(p.ints) > 1 {
		p.ints = p.ints[1:]
	}
	return v
}

func (p *stubProvider) Float(min, max float64) float64 { return min + 0.123456 }
func (p *stubProvider) Date(start, end time.Time) time.Time { return start.AddDate(0, 0, 1) }
func (p *stubProvider) Bool() bool { return true }
func (p *stubProvider) Name() string { return "Ada Lovelace" }
func (p *stubProvider) Email() string { return "ada@example.com" }
func (p *stubProvider) Phone() string { return "555-0100" }
func (p *stubProvider) Address() string { return "1 Main St, Springfield" }
func (p *stubProvider) Pick(values []string) string { return values[len(values)-1] }

func intPtr(n int) *int { return &n }

func TestValidate(t *testing.T) {
	field := Field{ID: "1", Name: "n", Type: TypeName}

	tests := []struct {
		name string
		req  Request
		want int
		err  error
	}{
		{"NoFields", Request{}, 0, failure.ErrEmptyInput},
		{"DefaultCount", Request{Fields: []Field{field}}, DefaultRowCount, nil},
		{"ExplicitCount", Request{Fields: []Field{field}, RowCount: intPtr(1000)}, 1000, nil},
		{"ZeroCount", Request{Fields: []Field{field}, RowCount: intPtr(0)}, 0, failure.ErrInvalidInput},
		{"TooMany", Request{Fields: []Field{field}, RowCount: intPtr(1001)}, 0, failure.ErrInvalidInput},
		{"UnknownType", Request{Fields: []Field{{Name: "x", Type: "uuid"}}}, 0, failure.ErrInvalidInput},
		{"NoName", Request{Fields: []Field{{Type: TypeText}}}, 0, failure.ErrInvalidInput},
		{
			"BadDate",
			Request{Fields: []Field{{Name: "d", Type: TypeDate, Options: map[string]any{"startDate": "01/02/2020"}}}},
			0, failure.ErrInvalidInput,
		},
		{
			"ReversedDates",
			Request{Fields: []Field{{Name: "d", Type: TypeDate, Options: map[string]any{"startDate": "2024-01-01", "endDate": "2023-01-01"}}}},
			0, failure.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.req)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_Types(t *testing.T) {
	g := NewGenerator(&stubProvider{ints: []int{42}})

	ds, err := g.Generate(Request{
		RowCount: intPtr(1),
		Fields: []Field{
			{ID: "1", Name: "bio", Type: TypeText, Options: map[string]any{"maxLength": float64(5)}},
			{ID: "2", Name: "age", Type: TypeNumber},
			{ID: "3", Name: "price", Type: TypeNumber, Options: map[string]any{"min": float64(1), "max": float64(2), "decimal": true}},
			{ID: "4", Name: "born", Type: TypeDate},
			{ID: "5", Name: "active", Type: TypeBoolean},
			{ID: "6", Name: "name", Type: TypeName},
			{ID: "7", Name: "email", Type: TypeEmail},
			{ID: "8", Name: "phone", Type: TypePhone},
			{ID: "9", Name: "address", Type: TypeAddress},
			{ID: "10", Name: "tier", Type: TypeSelect, Options: map[string]any{"values": []any{"gold", "silver"}}},
			{ID: "11", Name: "empty", Type: TypeSelect},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bio", "age", "price", "born", "active", "name", "email", "phone", "address", "tier", "empty"}, ds.Columns)
	require.Len(t, ds.Rows, 1)

	row := ds.Rows[0]
	assert.Equal(t, "lorem", row["bio"])
	assert.Equal(t, 42, row["age"])
	assert.Equal(t, 1.12, row["price"])
	assert.Equal(t, "2020-01-02", row["born"])
	assert.Equal(t, true, row["active"])
	assert.Equal(t, "Ada Lovelace", row["name"])
	assert.Equal(t, "ada@example.com", row["email"])
	assert.Equal(t, "555-0100", row["phone"])
	assert.Equal(t, "1 Main St, Springfield", row["address"])
	assert.Equal(t, "silver", row["tier"])
	assert.Equal(t, "No options available", row["empty"])
}

func TestGenerator_Unique(t *testing.T) {
	t.Run("RetriesRepeats", func(t *testing.T) {
		p := &stubProvider{ints: []int{1, 1, 1, 2}}
		g := NewGenerator(p)

		ds, err := g.Generate(Request{
			RowCount: intPtr(2),
			Fields:   []Field{{ID: "id", Name: "id", Type: TypeNumber, Unique: true}},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, ds.Rows[0]["id"])
		assert.Equal(t, 2, ds.Rows[1]["id"])
		assert.Equal(t, 4, p.intCalls)
	})

	t.Run("GivesUpAfterTenAttempts", func(t *testing.T) {
		p := &stubProvider{ints: []int{5}}
		g := NewGenerator(p)

		ds, err := g.Generate(Request{
			RowCount: intPtr(2),
			Fields:   []Field{{ID: "id", Name: "id", Type: TypeNumber, Unique: true}},
		})
		require.NoError(t, err)

		assert.Equal(t, 5, ds.Rows[1]["id"])
		assert.Equal(t, 1+1+uniqueAttempts, p.intCalls)
	})
}

func TestFakeProvider(t *testing.T) {
	p := NewFakeProvider(42)

	for _, n := range []int{0, 5, 20, 200} {
		t.Run(fmt.Sprintf("Text%d", n), func(t *testing.T) {
			assert.LessOrEqual(t, len([]rune(p.Text(n))), n)
		})
	}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	d := p.Date(start, end)
	assert.False(t, d.Before(start))
	assert.False(t, d.After(end))

	n := p.Int(3, 7)
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 7)

	assert.Contains(t, []string{"a", "b"}, p.Pick([]string{"a", "b"}))
	assert.NotEmpty(t, p.Name())
	assert.Contains(t, p.Email(), "@")
	assert.NotEmpty(t, p.Address())
}

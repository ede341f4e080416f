package mockdata

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// DataProvider supplies random and fake values.
type DataProvider interface {
	Text(maxChars int) string
	Int(min, max int) int
	Float(min, max float64) float64
	Date(start, end time.Time) time.Time
	Bool() bool
	Name() string
	Email() string
	Phone() string
	Address() string
	Pick(values []string) string
}

// FakeProvider is the gofakeit backed DataProvider.
type FakeProvider struct {
	faker *gofakeit.Faker
}

// NewFakeProvider creates a provider. A zero seed picks a random one.
func NewFakeProvider(seed int64) *FakeProvider {
	return &FakeProvider{faker: gofakeit.New(seed)}
}

// Text returns sentences cut to at most maxChars runes.
func (p *FakeProvider) Text(maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	var b strings.Builder
	for b.Len() < maxChars {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.faker.Sentence(8))
	}
	runes := []rune(b.String())
	if len(runes) > maxChars {
		runes = runes[:maxChars]
	}
	return strings.TrimSpace(string(runes))
}

func (p *FakeProvider) Int(min, max int) int { return p.faker.IntRange(min, max) }

func (p *FakeProvider) Float(min, max float64) float64 { return p.faker.Float64Range(min, max) }

func (p *FakeProvider) Date(start, end time.Time) time.Time { return p.faker.DateRange(start, end) }

func (p *FakeProvider) Bool() bool { return p.faker.Bool() }

func (p *FakeProvider) Name() string { return p.faker.Name() }

func (p *FakeProvider) Email() string { return p.faker.Email() }

func (p *FakeProvider) Phone() string { return p.faker.PhoneFormatted() }

func (p *FakeProvider) Address() string { return p.faker.Address().Address }

func (p *FakeProvider) Pick(values []string) string { return p.faker.RandomString(values) }

package server_test

import (
	"testing"

	"datadiff/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 5, 5 * 1024 * 1024},
		{"Zero", 0, 32 * 1024 * 1024},
		{"Negative", -1, 32 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    string
	}{
		{"Any", "*", "*"},
		{"Empty", "", "*"},
		{"List", " http://a.test , http://b.test,", "http://a.test,http://b.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CORSOrigins: tt.origins}
			assert.Equal(t, tt.want, c.Origins())
		})
	}
}

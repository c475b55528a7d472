package server_test

import (
	"testing"

	"stocktake-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Default", 32, 32 * 1024 * 1024},
		{"Custom", 8, 8 * 1024 * 1024},
		{"Zero", 0, 32 * 1024 * 1024},
		{"Negative", -1, 32 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}

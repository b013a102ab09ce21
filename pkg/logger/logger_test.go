package logger

import (
	"testing"

	"github.com/janisar-hyder/backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "info level", logLvl: "info", expectErr: false},
		{name: "debug level", logLvl: "debug", expectErr: false},
		{name: "error level", logLvl: "error", expectErr: false},
		{name: "unsupported level", logLvl: "verbose", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

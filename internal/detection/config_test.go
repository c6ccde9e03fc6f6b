package detection

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Threshold != 128 {
		t.Errorf("Threshold: got %d, want 128", cfg.Threshold)
	}
	if cfg.MinArea != 28 {
		t.Errorf("MinArea: got %d, want 28", cfg.MinArea)
	}
	if cfg.DouglasPeuckerRatio != 0.02 {
		t.Errorf("DouglasPeuckerRatio: got %v, want 0.02", cfg.DouglasPeuckerRatio)
	}
	if cfg.ColinearToleranceDeg != 6 {
		t.Errorf("ColinearToleranceDeg: got %v, want 6", cfg.ColinearToleranceDeg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"threshold zero", func(c *Config) { c.Threshold = 0 }, false},
		{"threshold max", func(c *Config) { c.Threshold = 255 }, false},
		{"threshold negative", func(c *Config) { c.Threshold = -1 }, true},
		{"threshold too large", func(c *Config) { c.Threshold = 256 }, true},
		{"min area one", func(c *Config) { c.MinArea = 1 }, false},
		{"min area zero", func(c *Config) { c.MinArea = 0 }, true},
		{"ratio zero", func(c *Config) { c.DouglasPeuckerRatio = 0 }, false},
		{"ratio negative", func(c *Config) { c.DouglasPeuckerRatio = -0.1 }, true},
		{"tolerance zero", func(c *Config) { c.ColinearToleranceDeg = 0 }, false},
		{"tolerance negative", func(c *Config) { c.ColinearToleranceDeg = -1 }, true},
		{"tolerance 180", func(c *Config) { c.ColinearToleranceDeg = 180 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPixelBuffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		buf     PixelBuffer
		wantErr error
	}{
		{"valid", PixelBuffer{Width: 2, Height: 3, Pix: make([]byte, 24)}, nil},
		{"zero width", PixelBuffer{Width: 0, Height: 3, Pix: nil}, ErrInvalidDimensions},
		{"negative height", PixelBuffer{Width: 2, Height: -1, Pix: nil}, ErrInvalidDimensions},
		{"short buffer", PixelBuffer{Width: 2, Height: 3, Pix: make([]byte, 23)}, ErrBufferSize},
		{"long buffer", PixelBuffer{Width: 2, Height: 3, Pix: make([]byte, 25)}, ErrBufferSize},
		{"RGB not RGBA", PixelBuffer{Width: 2, Height: 3, Pix: make([]byte, 18)}, ErrBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

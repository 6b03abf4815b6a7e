package config_test

import (
	"testing"
	"time"

	"github.com/ja-he/todo/internal/config"
)

func TestNormalize(t *testing.T) {

	t.Run("default is already normal", func(t *testing.T) {
		c, err := config.Default().Normalize()
		if err != nil {
			t.Fatal("default config rejected:", err)
		}
		if c != config.Default() {
			t.Error("default config changed by normalization:", c)
		}
	})

	t.Run("trailing slash added", func(t *testing.T) {
		in := config.Default()
		in.BaseURL = "https://plans.example.com/api/v1"
		c, err := in.Normalize()
		if err != nil {
			t.Fatal(err)
		}
		if c.BaseURL != "https://plans.example.com/api/v1/" {
			t.Error("unexpected base URL:", c.BaseURL)
		}
	})

	t.Run("empty format and color fall back", func(t *testing.T) {
		in := config.Config{BaseURL: "http://localhost:8000"}
		c, err := in.Normalize()
		if err != nil {
			t.Fatal(err)
		}
		if c.Format != config.FormatText || c.Color != config.ColorAuto {
			t.Error("unexpected fallbacks:", c.Format, c.Color)
		}
		if c.BaseURL != "http://localhost:8000/" {
			t.Error("unexpected base URL:", c.BaseURL)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		bad := []config.Config{
			{BaseURL: "127.0.0.1:8000"},
			{BaseURL: "ftp://127.0.0.1/"},
			{BaseURL: "http://"},
			{BaseURL: "http://localhost/", Timeout: -time.Second},
			{BaseURL: "http://localhost/", Format: "xml"},
			{BaseURL: "http://localhost/", Color: "sometimes"},
		}
		for _, c := range bad {
			if _, err := c.Normalize(); err == nil {
				t.Errorf("expected %+v to be rejected", c)
			}
		}
	})
}

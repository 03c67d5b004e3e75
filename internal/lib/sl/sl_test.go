package sl

import (
	"errors"
	"testing"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != "error" || attr.Value.String() != "boom" {
		t.Errorf("unexpected attr %v", attr)
	}
}

func TestSecret(t *testing.T) {
	attr := Secret("token", "shpat_1234567890abcdef")
	masked := attr.Value.String()
	if masked == "shpat_1234567890abcdef" {
		t.Fatal("secret logged in the clear")
	}
	if masked != "shpa****cdef" {
		t.Errorf("mask = %q", masked)
	}

	if short := Secret("token", "abc").Value.String(); short != "****" {
		t.Errorf("short secrets must be fully masked, got %q", short)
	}
}

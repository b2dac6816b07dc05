package core

import "testing"

func TestRGBHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{RGB{}, "#000000"},
		{RGB{R: 1, G: 1, B: 1}, "#ffffff"},
		{RGB{R: 2, G: -1, B: 0.5}, "#ff0080"},
	}

	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.Premultiplied()
	if got != (RGB{R: 0.5, G: 0.25, B: 0}) {
		t.Errorf("Premultiplied = %+v", got)
	}

	faded := RGBA{R: 1, G: 1, B: 1, A: -0.3}.Premultiplied()
	if faded != (RGB{}) {
		t.Errorf("negative alpha should clamp to black, got %+v", faded)
	}
}

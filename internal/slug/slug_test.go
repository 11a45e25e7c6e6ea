package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"GitHub Copilot", "github-copilot"},
		{"ChatGPT", "chatgpt"},
		{"Midjourney", "midjourney"},
		{"  Stable   Diffusion  ", "stable-diffusion"},
		{"C++ Helper!", "c-helper"},
		{"---", ""},
		{"", ""},
		{"Đed Überëtte", "ed-ber-tte"},
		{"v2.0 (beta)", "v2-0-beta"},
	}
	for _, c := range cases {
		if got := Make(c.name); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	if Make("Some Tool Name") != Make("Some Tool Name") {
		t.Error("slug derivation must be deterministic")
	}
}

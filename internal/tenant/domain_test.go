package tenant

import "testing"

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com", "example.com"},
		{"WWW.Example.com/path", "example.com"},
		{"http://www.example.com/", "example.com"},
		{"shop.example.com", "shop.example.com"},
		{"https://shop.example.com/any/path", "shop.example.com"},
		{"example-com", "example-com"},
		{"", ""},
		{"  https://Example.COM  ", "example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDomainsRelated(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		target    string
		want      bool
	}{
		{"exact", "example.com", "example.com", true},
		{"hyphen folded to dot", "example-com", "example.com", true},
		{"candidate leading label in target", "shop.example.com", "shop.example.com", true},
		{"target label contained", "myshop.example.com", "shop.other.com", true},
		{"unrelated", "alpha.com", "beta.org", false},
		{"empty candidate", "", "example.com", false},
		{"empty target", "example.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domainsRelated(tt.candidate, tt.target); got != tt.want {
				t.Errorf("domainsRelated(%q, %q) = %v, want %v", tt.candidate, tt.target, got, tt.want)
			}
		})
	}
}

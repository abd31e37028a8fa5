package crisis

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"explicit phrase", "I want to kill myself", true},
		{"benign message", "I had a great day", false},
		{"case insensitive", "sometimes I think about CUTTING", true},
		{"phrase inside sentence", "everything feels hopeless lately", true},
		{"apostrophe phrase", "I can't go on like this", true},
		{"empty message", "", false},
		{"substring false positive is accepted", "cutting the cake at the shower", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

package errors

import (
	"testing"
)

func TestValidateIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   uint64
		supply  uint64
		wantErr bool
	}{
		{"first", 0, 3333, false},
		{"last", 3332, 3333, false},
		{"at supply", 3333, 3333, true},
		{"far past supply", 1 << 40, 3333, true},
		{"empty collection", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndex(tt.index, tt.supply)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIndex(%d, %d) error = %v, wantErr %v", tt.index, tt.supply, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeIndexOutOfRange) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeIndexOutOfRange)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"007", 7, false},
		{"18446744073709551615", 18446744073709551615, false},

		{"", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"0x10", 0, true},
		{" 1", 0, true},
		{"1.5", 0, true},
		{"18446744073709551616", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseIndex(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseIndex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIndex(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint64
		code       Code
	}{
		{"valid", 0, 10, ""},
		{"whole supply", 0, 100, ""},
		{"empty", 5, 5, ErrCodeInvalidInput},
		{"reversed", 6, 5, ErrCodeInvalidInput},
		{"past supply", 90, 101, ErrCodeIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end, 100)
			if got := GetCode(err); got != tt.code {
				t.Errorf("ValidateRange(%d, %d) code = %q, want %q", tt.start, tt.end, got, tt.code)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Alkane RoyaltyNFT", false},
		{"valid dash", "alkane-royalty-nft", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURI(t *testing.T) {
	if err := ValidateURI("redis://localhost:6379/0", "redis", "rediss"); err != nil {
		t.Errorf("redis URI should pass: %v", err)
	}
	if err := ValidateURI("mongodb+srv://cluster.example", "mongodb", "mongodb+srv"); err != nil {
		t.Errorf("mongodb+srv URI should pass: %v", err)
	}
	if err := ValidateURI("http://localhost", "redis"); err == nil {
		t.Error("wrong scheme should fail")
	}
	if err := ValidateURI("", "redis"); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("empty URI code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}
}

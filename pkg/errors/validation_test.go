package errors

import "testing"

func TestValidateParamKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple", "lines.linewidth", false},
		{"deep", "figure.subplot.top", false},
		{"single segment", "backend", false},
		{"empty", "", true},
		{"space", "axes. edgecolor", true},
		{"tab", "axes\tedgecolor", true},
		{"empty segment", "axes..edgecolor", true},
		{"trailing dot", "axes.", true},
		{"too long", string(make([]byte, 129)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParamKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateParamKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStyle) {
				t.Errorf("ValidateParamKey(%q) code = %v, want %v", tt.key, GetCode(err), ErrCodeInvalidStyle)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	supported := []string{"svg", "png", "pdf"}
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid multiple", []string{"svg", "pdf", "png"}, false},
		{"invalid format", []string{"jpeg"}, true},
		{"mixed valid invalid", []string{"svg", "jpeg"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats, supported...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

package model

import "testing"

func TestParseColors(t *testing.T) {
	tests := []struct {
		input   string
		want    []Color
		wantErr bool
	}{
		{"|217,177,118|59,40,27|135,128,114|", []Color{{217, 177, 118}, {59, 40, 27}, {135, 128, 114}}, false},
		{"1,2,3|4,5,6", []Color{{1, 2, 3}, {4, 5, 6}}, false},
		{" | 0, 0, 255 | ", []Color{{0, 0, 255}}, false},
		{"", nil, false},
		{"||", nil, false},
		{"|1,2|", nil, true},
		{"|1,2,256|", nil, true},
		{"|a,b,c|", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColors(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColors(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColors(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseColors(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("color %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	if got := (Color{R: 217, G: 7, B: 255}).Hex(); got != "#d907ff" {
		t.Errorf("Hex() = %q, want %q", got, "#d907ff")
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input   string
		want    Resolution
		wantErr bool
	}{
		{"1920x1080", Resolution{1920, 1080}, false},
		{"1280X720", Resolution{1280, 720}, false},
		{"1920", Resolution{}, true},
		{"x720", Resolution{}, true},
		{"0x0", Resolution{}, true},
		{"", Resolution{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResolution(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseResolution(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if s := (Resolution{1280, 720}).String(); s != "1280x720" {
		t.Errorf("String() = %q", s)
	}
}

func TestLanguageByAbbreviation(t *testing.T) {
	de, ok := LanguageByAbbreviation("DE")
	if !ok || de.ID != 14 {
		t.Errorf("LanguageByAbbreviation(DE) = %v, %v", de, ok)
	}

	xx, ok := LanguageByAbbreviation("xx")
	if ok {
		t.Error("LanguageByAbbreviation(xx) should not be found")
	}
	if xx.Abbreviation != "xx" || xx.ID != 0 {
		t.Errorf("unknown language = %+v", xx)
	}
}

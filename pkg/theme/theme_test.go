package theme

import (
	"testing"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/rendering"
)

func TestDefault_Values(t *testing.T) {
	th := Default()
	if !th.DismissOnTap {
		t.Error("expected DismissOnTap to default to true")
	}
	if th.ActionHeight != 57 {
		t.Errorf("ActionHeight = %v, want 57", th.ActionHeight)
	}
	if th.RoundCorners.Mode != rendering.CornerAll {
		t.Errorf("RoundCorners.Mode = %v, want all", th.RoundCorners.Mode)
	}
	if th.ButtonFont.Size != 18 {
		t.Errorf("ButtonFont.Size = %v, want 18", th.ButtonFont.Size)
	}
	if th.TitleFont.Weight != rendering.FontWeightBold {
		t.Errorf("TitleFont.Weight = %v, want bold", th.TitleFont.Weight)
	}
}

func TestSetCurrent_ReturnsPrevious(t *testing.T) {
	custom := Default()
	custom.ActionHeight = 44

	prev := SetCurrent(custom)
	defer SetCurrent(prev)

	if Current().ActionHeight != 44 {
		t.Errorf("Current().ActionHeight = %v, want 44", Current().ActionHeight)
	}
}

func TestSetCurrent_NilRestoresDefault(t *testing.T) {
	custom := Default()
	custom.ActionHeight = 44
	prev := SetCurrent(custom)
	defer SetCurrent(prev)

	SetCurrent(nil)
	if Current().ActionHeight != 57 {
		t.Errorf("Current().ActionHeight = %v, want default 57", Current().ActionHeight)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    rendering.Color
		wantErr bool
	}{
		{"#FF3B30", rendering.RGB(0xFF, 0x3B, 0x30), false},
		{"#66000000", rendering.RGBA(0, 0, 0, 0x66), false},
		{"#FFFFFF", rendering.ColorWhite, false},
		{"FF3B30", 0, true},
		{"#FF3B", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	th, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if th.ActionHeight != Default().ActionHeight {
		t.Errorf("ActionHeight = %v, want default %v", th.ActionHeight, Default().ActionHeight)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	doc := []byte(`
actionHeight: 48
destructiveButtonColor: "#CC0000"
dismissOnTap: false
`)
	th, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if th.ActionHeight != 48 {
		t.Errorf("ActionHeight = %v, want 48", th.ActionHeight)
	}
	if th.DestructiveButtonColor != rendering.RGB(0xCC, 0, 0) {
		t.Errorf("DestructiveButtonColor = %08X, want FFCC0000", uint32(th.DestructiveButtonColor))
	}
	if th.DismissOnTap {
		t.Error("expected DismissOnTap false")
	}
	// Untouched fields keep defaults.
	if th.ButtonColor != Default().ButtonColor {
		t.Errorf("ButtonColor = %08X, want default", uint32(th.ButtonColor))
	}
}

func TestLoad_FontOverride(t *testing.T) {
	doc := []byte(`
buttonFont:
  size: 20
titleFont:
  weight: regular
  family: Avenir
`)
	th, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if th.ButtonFont.Size != 20 {
		t.Errorf("ButtonFont.Size = %v, want 20", th.ButtonFont.Size)
	}
	if th.ButtonFont.Weight != rendering.FontWeightNormal {
		t.Errorf("ButtonFont.Weight = %v, want normal", th.ButtonFont.Weight)
	}
	if th.TitleFont.Weight != rendering.FontWeightNormal {
		t.Errorf("TitleFont.Weight = %v, want normal", th.TitleFont.Weight)
	}
	if th.TitleFont.Family != "Avenir" {
		t.Errorf("TitleFont.Family = %q, want Avenir", th.TitleFont.Family)
	}
	if th.TitleFont.Size != Default().TitleFont.Size {
		t.Errorf("TitleFont.Size = %v, want default %v", th.TitleFont.Size, Default().TitleFont.Size)
	}
}

func TestLoad_CornerOverride(t *testing.T) {
	doc := []byte(`
roundCorners:
  mode: top
  radius: 20
`)
	th, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if th.RoundCorners.Mode != rendering.CornerTop {
		t.Errorf("RoundCorners.Mode = %v, want top", th.RoundCorners.Mode)
	}
	if th.RoundCorners.Radius != 20 {
		t.Errorf("RoundCorners.Radius = %v, want 20", th.RoundCorners.Radius)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load([]byte("noSuchOption: 12\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	se, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if se.Kind != errors.KindConfig {
		t.Errorf("Kind = %v, want config", se.Kind)
	}
}

func TestLoad_BadColor(t *testing.T) {
	_, err := Load([]byte("maskColor: \"66000000\"\n"))
	if err == nil {
		t.Fatal("expected error for color without '#'")
	}
}

func TestLoad_BadCornerMode(t *testing.T) {
	_, err := Load([]byte("roundCorners:\n  mode: diagonal\n"))
	if err == nil {
		t.Fatal("expected error for unknown corner mode")
	}
}

func TestLoad_BadFontWeight(t *testing.T) {
	_, err := Load([]byte("buttonFont:\n  weight: heavy\n"))
	if err == nil {
		t.Fatal("expected error for unknown font weight")
	}
}

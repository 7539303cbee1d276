package tui

import (
	"testing"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

func TestFieldsForEveryTab(t *testing.T) {
	for _, tab := range Tabs {
		t.Run(tab.String(), func(t *testing.T) {
			fields := FieldsFor(tab)
			if len(fields) == 0 {
				t.Fatal("no fields")
			}
			cfg := ocrconfig.Default()
			for _, f := range fields {
				switch f.Kind {
				case KindToggle:
					if f.GetBool == nil || f.Toggle == nil {
						t.Errorf("%s: toggle accessors missing", f.Label)
					}
				case KindChoice:
					if len(f.Choices) == 0 || f.GetString == nil || f.SetString == nil {
						t.Errorf("%s: choice accessors missing", f.Label)
					}
				case KindText:
					if f.GetString == nil || f.SetString == nil {
						t.Errorf("%s: text accessors missing", f.Label)
					}
				}
				_ = f.Value(cfg)
			}
		})
	}
}

func TestToggleFieldsRoundTrip(t *testing.T) {
	for _, tab := range Tabs {
		for _, f := range FieldsFor(tab) {
			if f.Kind != KindToggle {
				continue
			}
			t.Run(f.Label, func(t *testing.T) {
				cfg := ocrconfig.Default()
				before := f.GetBool(cfg)
				f.Toggle(&cfg)
				if f.GetBool(cfg) == before {
					t.Error("toggle did not flip the value")
				}
				f.Toggle(&cfg)
				if f.GetBool(cfg) != before {
					t.Error("second toggle did not restore the value")
				}
			})
		}
	}
}

func TestChoiceNext(t *testing.T) {
	var optimize Field
	for _, f := range FieldsFor(TabBasic) {
		if f.Label == "Optimization" {
			optimize = f
		}
	}
	if optimize.Kind != KindChoice {
		t.Fatal("Optimization field not found")
	}

	tests := []struct {
		current  string
		wantNext string
	}{
		{ocrconfig.OptimizeNone, ocrconfig.OptimizeSafe},
		{ocrconfig.OptimizeAggressive, ocrconfig.OptimizeNone},
		{"unknown", ocrconfig.OptimizeNone},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			cfg := ocrconfig.Default()
			cfg.Optimize = tt.current
			if got := optimize.Next(cfg); got != tt.wantNext {
				t.Errorf("Next() = %q, want %q", got, tt.wantNext)
			}
		})
	}
}

func TestFieldValue(t *testing.T) {
	cfg := ocrconfig.Default()
	fields := FieldsFor(TabBasic)

	if got := fields[0].Value(cfg); got != "[x]" {
		t.Errorf("default language row = %q, want [x]", got)
	}
	if got := fields[1].Value(cfg); got != "[ ]" {
		t.Errorf("English row = %q, want [ ]", got)
	}
}

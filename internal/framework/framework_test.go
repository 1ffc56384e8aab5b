package framework

import "testing"

func TestAll_LoadsBothFrameworks(t *testing.T) {
	frameworks, err := All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(frameworks) != 2 {
		t.Fatalf("framework count = %d, want 2", len(frameworks))
	}
}

func TestByType_Danielson(t *testing.T) {
	f, err := ByType("danielson")
	if err != nil {
		t.Fatalf("ByType: %v", err)
	}
	if len(f.Domains) != 4 {
		t.Fatalf("danielson domain count = %d, want 4", len(f.Domains))
	}
	if got := len(f.ElementIDs()); got != 22 {
		t.Fatalf("danielson element count = %d, want 22", got)
	}
	if name := f.ElementName("d2d"); name != "Managing Student Behavior" {
		t.Fatalf("element name = %q", name)
	}
	if name := f.ElementName("zz"); name != "zz" {
		t.Fatalf("unknown element should fall back to id, got %q", name)
	}
}

func TestByType_Marshall(t *testing.T) {
	f, err := ByType("marshall")
	if err != nil {
		t.Fatalf("ByType: %v", err)
	}
	if len(f.Domains) != 6 {
		t.Fatalf("marshall domain count = %d, want 6", len(f.Domains))
	}
	if got := len(f.ElementIDs()); got != 31 {
		t.Fatalf("marshall element count = %d, want 31", got)
	}
}

func TestByType_Unknown(t *testing.T) {
	if _, err := ByType("custom"); err == nil {
		t.Fatalf("expected error for unregistered framework type")
	}
}

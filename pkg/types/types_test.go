package types

import "testing"

func TestArchetypeStringRoundTrip(t *testing.T) {
	for _, a := range append(SpawnableArchetypes(), ArchetypeColossus, ArchetypeTempest) {
		if got := ArchetypeFromString(a.String()); got != a {
			t.Errorf("ArchetypeFromString(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if ArchetypeFromString("dragon") != ArchetypeUnknown {
		t.Error("unknown archetype string should map to ArchetypeUnknown")
	}
}

func TestArchetypeUnlockOrder(t *testing.T) {
	prev := 0
	for _, a := range SpawnableArchetypes() {
		if a.UnlockStage() < prev {
			t.Errorf("%s unlocks at %d, before previous tier %d", a, a.UnlockStage(), prev)
		}
		prev = a.UnlockStage()
	}
	if ArchetypeColossus.UnlockStage() != 0 || !ArchetypeColossus.IsBoss() {
		t.Error("bosses must not be part of the random unlock table")
	}
}

func TestThemeContactStatus(t *testing.T) {
	tests := []struct {
		theme Theme
		want  StatusKind
	}{
		{ThemeForest, StatusNone},
		{ThemeSwamp, StatusPoison},
		{ThemeVolcano, StatusBurn},
		{ThemeGlacier, StatusFreeze},
		{ThemeCrypt, StatusWeb},
	}
	for _, tt := range tests {
		if got := tt.theme.ContactStatus(); got != tt.want {
			t.Errorf("%s.ContactStatus() = %s, want %s", tt.theme, got, tt.want)
		}
	}
	if ThemeFromString("glacier") != ThemeGlacier || ThemeFromString("") != ThemeUnknown {
		t.Error("ThemeFromString mismatch")
	}
}

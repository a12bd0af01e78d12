package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current, latest string
		want            int
		wantErr         bool
	}{
		{"1.0.0", "1.1.0", -1, false},
		{"1.1.0", "1.0.0", 1, false},
		{"1.0.0", "1.0.0", 0, false},
		{"v1.0.0", "1.0.1", -1, false},
		{"1.0.0", "v1.0.0", 0, false},
		{"2.0.0-rc.1", "2.0.0", -1, false},
		{"garbage", "1.0.0", 0, true},
		{"1.0.0", "garbage", 0, true},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.current, tt.latest)
		if (err != nil) != tt.wantErr {
			t.Errorf("CompareVersions(%q, %q) error = %v, wantErr %v", tt.current, tt.latest, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("1.0.0", "1.2.0")
	if err != nil {
		t.Fatal(err)
	}
	if !available {
		t.Error("1.2.0 should be an update over 1.0.0")
	}

	available, err = IsUpdateAvailable("1.2.0", "1.2.0")
	if err != nil {
		t.Fatal(err)
	}
	if available {
		t.Error("equal versions should not report an update")
	}
}

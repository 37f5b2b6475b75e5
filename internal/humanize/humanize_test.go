package humanize

import "testing"

func TestBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{999, "999 bytes"},
		{1000, "1.00 KB"},
		{1010, "1.01 KB"},
		{999_999, "1000.00 KB"},
		{1_000_000, "1.00 MB"},
		{3_730, "3.73 KB"},
		{999_999_999, "1000.00 MB"},
		{1_000_000_000, "1.00 GB"},
		{2_500_000_000, "2.50 GB"},
	}
	for _, c := range cases {
		if got := Bytes(c.n); got != c.want {
			t.Errorf("Bytes(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

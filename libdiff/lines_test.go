package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{
			name: "equal",
			a:    "a = 1\nb = 2\n",
			b:    "a = 1\nb = 2\n",
			want: "",
		},
		{
			name: "change",
			a:    "a = 1\nb = 2\nc = 3\n",
			b:    "a = 1\nb = 5\nc = 3\n",
			want: "--- x\n+++ y\n@@ -1,3 +1,3 @@\n a = 1\n-b = 2\n+b = 5\n c = 3\n",
		},
		{
			name: "append",
			a:    "a = 1\n",
			b:    "a = 1\nb = 2\n",
			want: "--- x\n+++ y\n@@ -1,1 +1,2 @@\n a = 1\n+b = 2\n",
		},
		{
			name: "from empty",
			a:    "",
			b:    "a = 1\n",
			want: "--- x\n+++ y\n@@ -0,0 +1,1 @@\n+a = 1\n",
		},
		{
			name: "two hunks",
			a:    "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n",
			b:    "0\n2\n3\n4\n5\n6\n7\n8\n9\n11\n",
			want: "--- x\n+++ y\n" +
				"@@ -1,4 +1,4 @@\n-1\n+0\n 2\n 3\n 4\n" +
				"@@ -7,4 +7,4 @@\n 7\n 8\n 9\n-10\n+11\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines("x", "y", tc.a, tc.b)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

package scan

import (
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []Line
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "lines with trailing newline",
			in:   "warning: unused x\nerror: nil deref\n",
			want: []Line{{1, "warning: unused x"}, {2, "error: nil deref"}},
		},
		{
			name: "final line without newline",
			in:   "one\ntwo",
			want: []Line{{1, "one"}, {2, "two"}},
		},
		{
			name: "blank lines are ordinary lines",
			in:   "a\n\nb\n",
			want: []Line{{1, "a"}, {2, ""}, {3, "b"}},
		},
		{
			name: "single blank line",
			in:   "\n",
			want: []Line{{1, ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadLines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadLines_longLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 200*1024)
	got, err := ReadLines(strings.NewReader(long + "\n"))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(got) != 1 || got[0].Text != long {
		t.Errorf("long line not preserved (len %d)", len(got))
	}
}

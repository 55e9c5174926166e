// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderRows(t *testing.T) {
	const in = "a,b\n1,x\n2,y\n"
	r := NewReader(strings.NewReader(in), "in.csv")

	hdr, err := r.Header()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, hdr); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	var got []Row
	var lines []int
	for r.Scan() {
		got = append(got, r.Row())
		lines = append(lines, r.Line())
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	want := []Row{{"a": "1", "b": "x"}, {"a": "2", "b": "y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	// Exhausted readers stay exhausted.
	if r.Scan() {
		t.Errorf("Scan after EOF returned true")
	}
}

func TestReaderErrors(t *testing.T) {
	for _, test := range []struct {
		name, in, want string
	}{
		{"empty", "", "in.csv: missing header line"},
		{"ragged", "a,b\n1\n", "in.csv:2: wrong number of fields"},
		{"quote", "a,b\n1,x\"y\n", "in.csv:2: bare \" in non-quoted-field"},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(test.in), "in.csv")
			for r.Scan() {
			}
			err := r.Err()
			if err == nil {
				t.Fatalf("want error %q, got success", test.want)
			}
			if err.Error() != test.want {
				t.Errorf("got error %q, want %q", err, test.want)
			}
		})
	}
}

func TestRowGet(t *testing.T) {
	row := Row{"Speedup Rayon": "1.0"}
	if v, err := row.Get("Speedup Rayon"); err != nil || v != "1.0" {
		t.Errorf("Get = %q, %v; want 1.0, nil", v, err)
	}
	_, err := row.Get("Speedup Tokio")
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Column != "Speedup Tokio" {
		t.Errorf("Get of missing column: got %v, want *ColumnError", err)
	}
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open("testdata/does_not_exist.csv")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-novelsite/internal/yamlutil"
)

type siteDoc struct {
	Name string `yaml:"name"`
	Year int    `yaml:"year"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid document",
			data: []byte("name: 先凑合\nyear: 2026"),
			dest: &siteDoc{},
			check: func(t *testing.T, v any) {
				doc := v.(*siteDoc)
				if doc.Name != "先凑合" {
					t.Errorf("Name = %q, want %q", doc.Name, "先凑合")
				}
				if doc.Year != 2026 {
					t.Errorf("Year = %d, want 2026", doc.Year)
				}
			},
		},
		{name: "nil data", data: nil, dest: &siteDoc{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &siteDoc{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: a"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("name: [unclosed"), &siteDoc{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("name: a\nyaer: 2026"), &siteDoc{})
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestUnmarshalStrict_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.UnmarshalStrict(data, &siteDoc{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(siteDoc{Name: "风", Year: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back siteDoc
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("decoding marshaled output: %v", err)
	}
	if back.Name != "风" || back.Year != 7 {
		t.Errorf("round trip = %+v, want {风 7}", back)
	}
}

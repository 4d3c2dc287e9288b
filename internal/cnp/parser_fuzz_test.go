package cnp

import (
	"testing"

	dErrors "normalro/pkg/domain-errors"
)

// FuzzParse checks that Parse never panics, that every rejection carries the
// single public error code, and that accepted identifiers re-encode to
// themselves.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("1850715130013")
	f.Add("1850715990013")
	f.Add("9991231520001")
	f.Add(" 2000229400010 ")
	f.Add("'; DROP TABLE people;--")
	f.Add(string([]byte{0x00, 0x31, 0xff}))

	f.Fuzz(func(t *testing.T, input string) {
		rec, err := Parse(input)
		if err != nil {
			if !dErrors.HasCode(err, dErrors.CodeInvalidIdentifier) {
				t.Fatalf("unexpected error code: %v", err)
			}
			if ReasonOf(err) == "" {
				t.Fatalf("rejection without reason: %v", err)
			}
			return
		}

		if len(rec.Identifier) != Length {
			t.Fatalf("accepted identifier with length %d", len(rec.Identifier))
		}
		if checksumOf(rec.Identifier[:12]) != rec.CheckDigit {
			t.Fatalf("accepted identifier with wrong check digit: %s", rec.Identifier)
		}
		again, err := Parse(rec.Identifier)
		if err != nil || again != rec {
			t.Fatalf("re-parse changed the record: %v", err)
		}
		if _, ok := LookupRegion(rec.RegionCode); !ok {
			t.Fatalf("accepted unknown region %q", rec.RegionCode)
		}
	})
}

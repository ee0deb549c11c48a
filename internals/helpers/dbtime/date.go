// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date menyimpan tanggal kalender tanpa komponen jam (kolom DATE di Postgres,
// wire format "YYYY-MM-DD").
type Date struct{ time.Time }

// FromTime: buang jam & zona, simpan tanggalnya saja.
func FromTime(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Today() Date { return FromTime(time.Now()) }

func ParseDate(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan: terima time.Time atau string "YYYY-MM-DD" (sqlite menyimpan DATE sebagai teks).
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = FromTime(x)
		return nil
	case []byte:
		return d.scanString(string(x))
	case string:
		return d.scanString(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T", v)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		// driver bisa mengirim timestamp penuh; ambil bagian tanggalnya
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			*d = FromTime(t)
			return nil
		}
		s = s[:len(dateLayout)]
	}
	return d.parse(s)
}

func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (Date) GormDataType() string { return "date" }

// internals/apperr/apperr.go
package apperr

import "fmt"

// Kind adalah enumerasi tertutup jenis error aplikasi.
// Service hanya boleh mengembalikan error dengan salah satu kind ini;
// layer HTTP memetakan kind → status code lewat satu switch.
type Kind int

const (
	KindValidation Kind = iota // payload/query tidak valid → 400
	KindNotFound               // record tidak ditemukan → 404
	KindConflict               // pelanggaran keunikan (nik/email/kode) → 409
	KindDependency             // penghapusan terblokir oleh data terkait → 400
	KindStore                  // kegagalan query/koneksi yang tidak dikenali → 500
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError // terisi hanya untuk KindValidation
	Err     error        // penyebab asli (store error), tidak diserialisasi
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func Dependency(message string) *Error { return New(KindDependency, message) }

func Validation(message string, fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Store(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: cause}
}

// From mengembalikan *Error bila err memang error aplikasi.
func From(err error) (*Error, bool) {
	ae, ok := err.(*Error)
	return ae, ok
}

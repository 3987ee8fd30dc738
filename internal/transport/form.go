package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
)

// Form builds a multipart request body from enumerated text fields and at
// most one binary attachment. Each resource kind lists its exact fields via
// the typed setters instead of iterating over an untyped data bag.
type Form struct {
	fields []formField
	file   *filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func (f *Form) Text(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f *Form) Float(name string, v float64) {
	f.fields = append(f.fields, formField{name: name, value: strconv.FormatFloat(v, 'f', -1, 64)})
}

func (f *Form) Int(name string, v int) {
	f.fields = append(f.fields, formField{name: name, value: strconv.Itoa(v)})
}

// File attaches the single binary part. Calling it again replaces the
// previous attachment.
func (f *Form) File(field, filename, contentType string, data []byte) {
	f.file = &filePart{field: field, filename: filename, contentType: contentType, data: data}
}

// Encode renders the form and returns the body together with the boundary
// content type.
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fl := range f.fields {
		if err := w.WriteField(fl.name, fl.value); err != nil {
			return nil, "", err
		}
	}
	if f.file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.file.field, f.file.filename))
		if f.file.contentType != "" {
			h.Set("Content-Type", f.file.contentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.file.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

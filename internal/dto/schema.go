package dto

import (
	"reflect"
	"sort"
	"strings"
	"time"
)

// FieldDoc is the documentation metadata of one wire field.
type FieldDoc struct {
	Name        string   `json:"name" example:"questionText"`
	Type        string   `json:"type" example:"string"`
	Format      string   `json:"format,omitempty" example:"uri"`
	Description string   `json:"description,omitempty" example:"Text of the question; must not be blank"`
	Example     string   `json:"example,omitempty" example:"What is this?"`
	Nullable    bool     `json:"nullable"`
	Required    bool     `json:"required"`
	Constraints []string `json:"constraints,omitempty"`
}

// Schema lists the fields of a shape in wire order.
type Schema struct {
	Name   string     `json:"name" example:"QuestionInput"`
	Fields []FieldDoc `json:"fields"`
}

// Field looks a field up by its wire name.
func (s Schema) Field(name string) (FieldDoc, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDoc{}, false
}

var timeType = reflect.TypeOf(time.Time{})

// Describe reads the documentation metadata attached to the fields of v, which
// must be a struct or a pointer to one.
func Describe(v any) Schema {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return Schema{}
	}

	s := Schema{Name: t.Name(), Fields: make([]FieldDoc, 0, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}

		ft := sf.Type
		fd := FieldDoc{
			Name:        name,
			Description: sf.Tag.Get("doc"),
			Example:     sf.Tag.Get("example"),
			Format:      sf.Tag.Get("format"),
		}
		if ft.Kind() == reflect.Pointer {
			fd.Nullable = true
			ft = ft.Elem()
		}
		fd.Type, fd.Format = typeName(ft, fd.Format)

		if rules := sf.Tag.Get("validate"); rules != "" {
			fd.Constraints = strings.Split(rules, ",")
			for _, r := range fd.Constraints {
				if r == "required" {
					fd.Required = true
				}
			}
		}
		s.Fields = append(s.Fields, fd)
	}
	return s
}

func typeName(t reflect.Type, format string) (string, string) {
	if t == timeType {
		if format == "" {
			format = "date-time"
		}
		return "string", format
	}
	switch t.Kind() {
	case reflect.Int64, reflect.Uint64:
		if format == "" {
			format = "int64"
		}
		return "integer", format
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "integer", format
	case reflect.Float32, reflect.Float64:
		return "number", format
	case reflect.Bool:
		return "boolean", format
	case reflect.String:
		return "string", format
	case reflect.Slice, reflect.Array:
		return "array", format
	default:
		return "object", format
	}
}

// schemas holds the metadata of every shape exchanged with clients.
var schemas = buildSchemas(
	QuestionInput{},
	ArchivedSummary{},
	ImageUploadResult{},
	ContentAccessRecord{},
)

func buildSchemas(shapes ...any) map[string]Schema {
	out := make(map[string]Schema, len(shapes))
	for _, v := range shapes {
		s := Describe(v)
		out[s.Name] = s
	}
	return out
}

// Schemas returns the metadata of all shapes, sorted by name.
func Schemas() []Schema {
	out := make([]Schema, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, copySchema(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the metadata of the named shape.
func Lookup(name string) (Schema, bool) {
	s, ok := schemas[name]
	if !ok {
		return Schema{}, false
	}
	return copySchema(s), true
}

func copySchema(s Schema) Schema {
	fields := make([]FieldDoc, len(s.Fields))
	for i, f := range s.Fields {
		if f.Constraints != nil {
			f.Constraints = append([]string(nil), f.Constraints...)
		}
		fields[i] = f
	}
	return Schema{Name: s.Name, Fields: fields}
}

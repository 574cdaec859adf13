// Package dto contains the request and response shapes exchanged with API clients.
//
// Every shape is a plain value struct. Values are passed and returned by copy,
// never by pointer, so a shape cannot change once it has been built.
// Shapes holding a pointer or a time.Time define Equal, which is their
// equality contract; == only agrees with it for normalised values.
//
// Three kinds of struct tags are carried by each field:
//   - json: the wire name; fields are encoded in declaration order
//   - validate: constraint descriptors evaluated by go-playground/validator
//     at decode time (input shapes only)
//   - doc / example / format: documentation metadata exposed through Describe;
//     each field's doc comment repeats its doc tag for swag, and nullable
//     fields carry extensions:"x-nullable"
//
// # Usage
//
//	in, err := dto.DecodeQuestionInput(body)
//	if err != nil {
//	    // err is a dto.ValidationErrors listing the failing fields
//	}
//
//	b, err := dto.Encode(summary)
//	if err != nil {
//	    // err is a *dto.SerializationError
//	}
package dto

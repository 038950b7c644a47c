package jikan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode parses body and validates it against the schema type T. It returns
// a fully conforming value or a *ParseError / *ValidationError, never a
// partially filled T.
func decode[T any](body []byte) (T, error) {
	var zero T

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return zero, &ParseError{Err: err}
	}
	if dec.More() {
		return zero, &ParseError{Err: errors.New("trailing data after JSON value")}
	}

	if err := checkShape(reflect.TypeOf(zero), raw, ""); err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return zero, &ValidationError{Path: typeErr.Field, Expected: typeErr.Type.String(), Actual: typeErr.Value}
		}
		return zero, &ParseError{Err: err}
	}
	if err := checkValues(&out); err != nil {
		return zero, err
	}
	return out, nil
}

// checkShape walks raw alongside the Go type t and reports the first
// structural mismatch.
func checkShape(t reflect.Type, raw any, path string) error {
	switch t.Kind() {
	case reflect.Pointer:
		if raw == nil {
			return nil
		}
		return checkShape(t.Elem(), raw, path)

	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return mismatch(path, t, raw)
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, optional := jsonName(f)
			if name == "" {
				continue
			}
			child := joinPath(path, name)
			v, present := obj[name]
			if !present || v == nil {
				if optional || f.Type.Kind() == reflect.Pointer {
					continue
				}
				actual := "null"
				if !present {
					actual = "missing"
				}
				return &ValidationError{Path: child, Expected: describe(f.Type), Actual: actual}
			}
			if err := checkShape(f.Type, v, child); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok {
			return mismatch(path, t, raw)
		}
		for i, el := range arr {
			if err := checkShape(t.Elem(), el, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		if _, ok := raw.(string); !ok {
			return mismatch(path, t, raw)
		}
		return nil

	case reflect.Bool:
		if _, ok := raw.(bool); !ok {
			return mismatch(path, t, raw)
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		if _, err := strconv.ParseInt(n.String(), 10, t.Bits()); err != nil {
			return &ValidationError{Path: path, Expected: describe(t), Actual: "number " + n.String()}
		}
		return nil

	case reflect.Float32, reflect.Float64:
		if _, ok := raw.(json.Number); !ok {
			return mismatch(path, t, raw)
		}
		return nil

	default:
		return fmt.Errorf("jikan: unsupported schema kind %s at %s", t.Kind(), path)
	}
}

// checkValues applies the validate tags of the decoded value.
func checkValues(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		expected := fe.Tag()
		if fe.Param() != "" {
			expected += "=" + fe.Param()
		}
		return &ValidationError{
			Path:     namespacePath(fe.Namespace()),
			Expected: expected,
			Actual:   fmt.Sprintf("%v", reflect.Indirect(reflect.ValueOf(fe.Value()))),
		}
	}
	return &ValidationError{Expected: "valid value", Actual: err.Error()}
}

func jsonName(f reflect.StructField) (name string, optional bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" {
			optional = true
		}
	}
	return name, optional
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// namespacePath drops the root type name from a validator namespace,
// "AnimePage.data[0].mal_id" -> "data[0].mal_id".
func namespacePath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func mismatch(path string, t reflect.Type, raw any) error {
	return &ValidationError{Path: path, Expected: describe(t), Actual: jsonKind(raw)}
}

func describe(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return describe(t.Elem()) + " or null"
	case reflect.Struct:
		return "object"
	case reflect.Slice:
		return "array of " + describe(t.Elem())
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

func jsonKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

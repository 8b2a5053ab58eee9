package store

import (
	"reflect"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownField is returned when a section or key does not exist.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldType is returned when a value cannot be stored in a field.
	ErrFieldType = errors.New("field type mismatch")
)

// Item is a list entry with a stable id.
type Item interface {
	ItemID() string
}

// setSection replaces one top-level field of doc, addressed by its data file
// name. doc is left untouched on error.
func setSection(doc any, section string, value any) (err error) {
	field, err := lookupField(reflect.ValueOf(doc).Elem(), section)
	if err != nil {
		return err
	}

	err = assign(field, value)
	if err != nil {
		err = errors.Wrapf(err, "section %q", section)
		return err
	}

	return err
}

// setNested replaces one key within a top-level section of doc.
func setNested(doc any, section string, key string, value any) (err error) {
	parent, err := lookupField(reflect.ValueOf(doc).Elem(), section)
	if err != nil {
		return err
	}

	if parent.Kind() != reflect.Struct {
		err = errors.Wrapf(ErrFieldType, "section %q has no nested fields", section)
		return err
	}

	field, err := lookupField(parent, key)
	if err != nil {
		err = errors.Wrapf(err, "section %q", section)
		return err
	}

	err = assign(field, value)
	if err != nil {
		err = errors.Wrapf(err, "%s.%s", section, key)
		return err
	}

	return err
}

// lookupField finds an exported struct field by yaml tag name or, failing
// that, by case-insensitive Go field name.
func lookupField(v reflect.Value, name string) (field reflect.Value, err error) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if tag == name || strings.EqualFold(f.Name, name) {
			field = v.Field(i)
			return field, err
		}
	}

	err = errors.Wrapf(ErrUnknownField, "%q", name)
	return field, err
}

func assign(dst reflect.Value, value any) (err error) {
	converted, err := convert(reflect.ValueOf(value), dst.Type())
	if err != nil {
		return err
	}

	dst.Set(converted)
	return err
}

// convert accepts assignable values, same-kind scalar conversions such as
// string to a named string type, and slices whose elements convert.
func convert(src reflect.Value, want reflect.Type) (result reflect.Value, err error) {
	if !src.IsValid() {
		switch want.Kind() {
		case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
			result = reflect.Zero(want)
			return result, err
		default:
			err = errors.Wrapf(ErrFieldType, "nil is not a %s", want)
			return result, err
		}
	}

	if src.Type().AssignableTo(want) {
		result = deepCopy(src)
		return result, err
	}

	if src.Kind() == want.Kind() && isScalar(want.Kind()) && src.Type().ConvertibleTo(want) {
		result = src.Convert(want)
		return result, err
	}

	if src.Kind() == reflect.Interface && !src.IsNil() {
		result, err = convert(src.Elem(), want)
		return result, err
	}

	if src.Kind() == reflect.Slice && want.Kind() == reflect.Slice {
		result = reflect.MakeSlice(want, src.Len(), src.Len())
		for i := range src.Len() {
			elem, elemErr := convert(src.Index(i), want.Elem())
			if elemErr != nil {
				err = errors.Wrapf(elemErr, "element %d", i)
				return reflect.Value{}, err
			}
			result.Index(i).Set(elem)
		}
		return result, err
	}

	err = errors.Wrapf(ErrFieldType, "cannot use %s as %s", src.Type(), want)
	return result, err
}

// deepCopy copies v so the result shares no slice, map or pointer with it.
// The store keeps the copy, so later edits by the caller cannot reach it.
func deepCopy(v reflect.Value) (result reflect.Value) {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			result = reflect.Zero(v.Type())
			return result
		}
		result = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			result.Index(i).Set(deepCopy(v.Index(i)))
		}

	case reflect.Map:
		if v.IsNil() {
			result = reflect.Zero(v.Type())
			return result
		}
		result = reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			result.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}

	case reflect.Pointer:
		if v.IsNil() {
			result = reflect.Zero(v.Type())
			return result
		}
		result = reflect.New(v.Type().Elem())
		result.Elem().Set(deepCopy(v.Elem()))

	case reflect.Interface:
		result = reflect.New(v.Type()).Elem()
		if !v.IsNil() {
			result.Set(deepCopy(v.Elem()))
		}

	case reflect.Struct:
		result = reflect.New(v.Type()).Elem()
		result.Set(v)
		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() {
				result.Field(i).Set(deepCopy(v.Field(i)))
			}
		}

	default:
		result = v
	}

	return result
}

func isScalar(k reflect.Kind) (scalar bool) {
	scalar = slices.Contains([]reflect.Kind{
		reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
	}, k)
	return scalar
}

func indexOf[I Item](items []I, id string) (idx int) {
	idx = slices.IndexFunc(items, func(it I) bool {
		return it.ItemID() == id
	})
	return idx
}

func removeItem[I Item](items *[]I, id string) (removed bool) {
	idx := indexOf(*items, id)
	if idx < 0 {
		return removed
	}

	*items = slices.Delete(*items, idx, idx+1)
	removed = true
	return removed
}

// updateItem merges fn's edits into the item with the given id. Edits that
// change the id are discarded.
func updateItem[I Item](items []I, id string, fn func(*I)) (updated bool) {
	idx := indexOf(items, id)
	if idx < 0 {
		return updated
	}

	edited := items[idx]
	fn(&edited)
	if edited.ItemID() != id {
		return updated
	}

	items[idx] = edited
	updated = true
	return updated
}

func addValue(values *[]string, value string) (added bool) {
	if value == "" || slices.Contains(*values, value) {
		return added
	}

	*values = append(*values, value)
	added = true
	return added
}

func removeValue(values *[]string, value string) (removed bool) {
	idx := slices.Index(*values, value)
	if idx < 0 {
		return removed
	}

	*values = slices.Delete(*values, idx, idx+1)
	removed = true
	return removed
}

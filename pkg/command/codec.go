package command

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Button state is packed into custom IDs with a small positional encoding:
// ints as int32, bools as one byte, strings length-prefixed, pointers behind a
// presence flag and structs field by field.

var ErrEncodeOptions = errors.New("error while encoding options")

type encoder struct {
	Writer io.Writer
}

func (e *encoder) encode(structure any) error {
	value := reflect.ValueOf(structure)
	switch value.Kind() {
	case reflect.Int:
		err := binary.Write(e.Writer, binary.BigEndian, int32(value.Int()))
		if err != nil {
			return fmt.Errorf("failed to write int value: %w", err)
		}
	case reflect.Bool:
		err := binary.Write(e.Writer, binary.BigEndian, value.Bool())
		if err != nil {
			return fmt.Errorf("failed to write boolean value: %w", err)
		}
	case reflect.String:
		b := []byte(value.String())
		if len(b) > 255 {
			return fmt.Errorf("string of %d bytes does not fit: %w", len(b), ErrEncodeOptions)
		}
		err := binary.Write(e.Writer, binary.BigEndian, uint8(len(b)))
		if err != nil {
			return fmt.Errorf("failed to write length for string value: %w", err)
		}

		_, err = e.Writer.Write(b)
		if err != nil {
			return fmt.Errorf("failed to write string value: %w", err)
		}
	case reflect.Pointer:
		if value.IsNil() {
			err := binary.Write(e.Writer, binary.BigEndian, false)
			if err != nil {
				return fmt.Errorf("failed to write nil marker for pointer: %w", err)
			}
		} else {
			err := binary.Write(e.Writer, binary.BigEndian, true)
			if err != nil {
				return fmt.Errorf("failed to write non-nil marker for pointer: %w", err)
			}

			err = e.encode(value.Elem().Interface())
			if err != nil {
				return fmt.Errorf("error while encoding element for pointer: %w", err)
			}
		}
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := e.encode(value.Field(i).Interface())
			if err != nil {
				return fmt.Errorf("error while encoding field for struct: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported kind %q in options: %w", value.Kind(), ErrEncodeOptions)
	}

	return nil
}

func marshal(structure any) (string, error) {
	var buf bytes.Buffer
	enc := encoder{&buf}
	err := enc.encode(structure)
	if err != nil {
		return "", fmt.Errorf("failed to marshal structure: %w", err)
	}

	return buf.String(), nil
}

type decoder struct {
	Reader io.Reader
}

func (d *decoder) decodeValue(value reflect.Value) error {
	if !value.CanSet() {
		return fmt.Errorf("cannot set fields for value of type %q: %w", value.Type().String(), ErrDecodeOption)
	}

	switch value.Kind() {
	case reflect.Int:
		var v int32
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read int value: %w", err)
		}

		value.SetInt(int64(v))
	case reflect.Bool:
		var v bool
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read boolean value: %w", err)
		}

		value.SetBool(v)
	case reflect.String:
		var l uint8
		err := binary.Read(d.Reader, binary.BigEndian, &l)
		if err != nil {
			return fmt.Errorf("failed to read length for string value: %w", err)
		}

		buf := make([]byte, l)
		_, err = io.ReadFull(d.Reader, buf)
		if err != nil {
			return fmt.Errorf("failed to read string value: %w", err)
		}

		value.SetString(string(buf))
	case reflect.Pointer:
		var present bool
		err := binary.Read(d.Reader, binary.BigEndian, &present)
		if err != nil {
			return fmt.Errorf("failed to check if pointer is nil: %w", err)
		}

		if present {
			ptr := reflect.New(value.Type().Elem())
			value.Set(ptr)
			err := d.decodeValue(ptr.Elem())
			if err != nil {
				return fmt.Errorf("error while decoding options for pointer element: %w", err)
			}
		} else {
			value.Set(reflect.Zero(value.Type()))
		}
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := d.decodeValue(value.Field(i))
			if err != nil {
				return fmt.Errorf("error while decoding options for struct field: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported kind %q in options: %w", value.Kind(), ErrDecodeOption)
	}

	return nil
}

func unmarshal[T any](reader io.Reader) (*T, error) {
	var structure T
	dec := decoder{Reader: reader}
	err := dec.decodeValue(reflect.ValueOf(&structure).Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return &structure, nil
}

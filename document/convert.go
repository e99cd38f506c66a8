package document

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inikit/inikit/errs"
)

// Typed accessors. Each one retrieves the raw value through Value or
// SectionValue and converts it; lookup failures pass through unchanged and
// conversion failures land in the error slot like any other. Numeric
// parsing accepts whatever strconv does with base detection enabled, so
// "0x1F", "0o17", "0b101" and "1_000" all convert.

// Int64 converts the value of keyName to a signed 64-bit integer.
func (d *Document) Int64(keyName string) (int64, error) {
	value, err := d.Value(keyName)
	if err != nil {
		return 0, err
	}

	return d.toInt64(value)
}

// SectionInt64 converts the value of keyName within sectionName to a signed
// 64-bit integer.
func (d *Document) SectionInt64(sectionName, keyName string) (int64, error) {
	value, err := d.SectionValue(sectionName, keyName)
	if err != nil {
		return 0, err
	}

	return d.toInt64(value)
}

// Uint64 converts the value of keyName to an unsigned 64-bit integer.
func (d *Document) Uint64(keyName string) (uint64, error) {
	value, err := d.Value(keyName)
	if err != nil {
		return 0, err
	}

	return d.toUint64(value)
}

// SectionUint64 converts the value of keyName within sectionName to an
// unsigned 64-bit integer.
func (d *Document) SectionUint64(sectionName, keyName string) (uint64, error) {
	value, err := d.SectionValue(sectionName, keyName)
	if err != nil {
		return 0, err
	}

	return d.toUint64(value)
}

// Float64 converts the value of keyName to a 64-bit float.
func (d *Document) Float64(keyName string) (float64, error) {
	value, err := d.Value(keyName)
	if err != nil {
		return 0, err
	}

	return d.toFloat64(value)
}

// SectionFloat64 converts the value of keyName within sectionName to a
// 64-bit float.
func (d *Document) SectionFloat64(sectionName, keyName string) (float64, error) {
	value, err := d.SectionValue(sectionName, keyName)
	if err != nil {
		return 0, err
	}

	return d.toFloat64(value)
}

// Bool converts the value of keyName to a boolean. Any integer literal
// converts (non-zero is true), as do the words "true" and "false" in any
// letter case.
func (d *Document) Bool(keyName string) (bool, error) {
	value, err := d.Value(keyName)
	if err != nil {
		return false, err
	}

	return d.toBool(value)
}

// SectionBool converts the value of keyName within sectionName to a boolean
// under the same rules as Bool.
func (d *Document) SectionBool(sectionName, keyName string) (bool, error) {
	value, err := d.SectionValue(sectionName, keyName)
	if err != nil {
		return false, err
	}

	return d.toBool(value)
}

// CSV splits the value of keyName on commas and trims surrounding
// whitespace from every field. A value without commas yields one field; the
// result always has at least one element. The slice is freshly allocated.
func (d *Document) CSV(keyName string) ([]string, error) {
	value, err := d.Value(keyName)
	if err != nil {
		return nil, err
	}

	return splitCSV(value), nil
}

// SectionCSV splits the value of keyName within sectionName under the same
// rules as CSV.
func (d *Document) SectionCSV(sectionName, keyName string) ([]string, error) {
	value, err := d.SectionValue(sectionName, keyName)
	if err != nil {
		return nil, err
	}

	return splitCSV(value), nil
}

func (d *Document) toInt64(value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)
	if err == nil {
		return v, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		if v == math.MaxInt64 {
			return 0, d.setErr(fmt.Errorf("%w: %q overflows int64", errs.ErrValueTooLarge, value))
		}

		return 0, d.setErr(fmt.Errorf("%w: %q underflows int64", errs.ErrValueTooSmall, value))
	}

	return 0, d.setErr(fmt.Errorf("%w: could not parse %q as an integer", errs.ErrNotConvertible, value))
}

func (d *Document) toUint64(value string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
	if err == nil {
		return v, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, d.setErr(fmt.Errorf("%w: %q overflows uint64", errs.ErrValueTooLarge, value))
	}

	return 0, d.setErr(fmt.Errorf("%w: could not parse %q as an unsigned integer", errs.ErrNotConvertible, value))
}

func (d *Document) toFloat64(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err == nil {
		return v, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		// ParseFloat reports range errors for both overflow (returning
		// ±Inf) and underflow toward zero.
		if math.IsInf(v, 1) {
			return 0, d.setErr(fmt.Errorf("%w: %q overflows float64", errs.ErrValueTooLarge, value))
		}

		return 0, d.setErr(fmt.Errorf("%w: %q underflows float64", errs.ErrValueTooSmall, value))
	}

	return 0, d.setErr(fmt.Errorf("%w: could not parse %q as a float", errs.ErrNotConvertible, value))
}

func (d *Document) toBool(value string) (bool, error) {
	trim := strings.TrimSpace(value)

	if v, err := strconv.ParseInt(trim, 0, 64); err == nil {
		return v != 0, nil
	}

	if strings.EqualFold(trim, "true") {
		return true, nil
	}
	if strings.EqualFold(trim, "false") {
		return false, nil
	}

	return false, d.setErr(fmt.Errorf("%w: could not parse %q as a bool", errs.ErrNotConvertible, value))
}

func splitCSV(value string) []string {
	fields := strings.Split(value, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

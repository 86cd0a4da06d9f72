package tabletok

import (
	"errors"
	"fmt"

	"github.com/shapestone/tabletok/internal/tokenizer"
)

// Sentinel errors matching the tokenizer error taxonomy, comparable with
// errors.Is, in the style of pkg/csv/errors.go's ErrQuote/ErrFieldCount vars.
var (
	ErrInvalidLine   = errors.New("tabletok: invalid line")
	ErrTooManyCols   = errors.New("tabletok: too many columns")
	ErrNotEnoughCols = errors.New("tabletok: not enough columns")
	ErrConversion    = errors.New("tabletok: conversion error")
	ErrOverflow      = errors.New("tabletok: overflow error")
)

func sentinelFor(code tokenizer.ErrCode) error {
	switch code {
	case tokenizer.InvalidLine:
		return ErrInvalidLine
	case tokenizer.TooManyCols:
		return ErrTooManyCols
	case tokenizer.NotEnoughCols:
		return ErrNotEnoughCols
	case tokenizer.ConversionError:
		return ErrConversion
	case tokenizer.OverflowError:
		return ErrOverflow
	default:
		return nil
	}
}

// TokenizeError wraps a tokenization failure with row/column position
// context, mirroring pkg/csv/errors.go's ParseError.
type TokenizeError struct {
	Row int
	Col int
	Err error
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tabletok: %v at row %d, column %d", e.Err, e.Row, e.Col)
}

func (e *TokenizeError) Unwrap() error {
	return e.Err
}

// wrapTokenizeErr translates an *internal/tokenizer.TokenizeError into a
// public *TokenizeError wrapping the matching sentinel, so callers can use
// errors.Is(err, tabletok.ErrNotEnoughCols) without importing internal types.
func wrapTokenizeErr(err error) error {
	if err == nil {
		return nil
	}
	tErr, ok := err.(*tokenizer.TokenizeError)
	if !ok {
		return err
	}
	return &TokenizeError{Row: tErr.Row, Col: tErr.Col, Err: sentinelFor(tErr.Code)}
}

// ConvertError wraps a numeric conversion failure, mirroring the position-free
// shape of internal/tokenizer.ConvertError but surfaced through the public
// sentinel taxonomy.
type ConvertError struct {
	Field string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("tabletok: %v converting %q", e.Err, e.Field)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

func wrapConvertErr(err error) error {
	if err == nil {
		return nil
	}
	cErr, ok := err.(*tokenizer.ConvertError)
	if !ok {
		return err
	}
	return &ConvertError{Field: cErr.Field, Err: sentinelFor(cErr.Code)}
}

// Package reader converts raw input lines into typed values.
//
// A Reader wraps the engine's line source and parses each line into the
// domain.Kind a caller requests. Parse failures are not errors: they are
// reported through the logger and surface as the none value, so menu
// handlers can prompt again instead of tearing the loop down.
package reader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/ports"
	"github.com/shopspring/decimal"
)

// Reader performs typed reads against a single line source.
type Reader struct {
	source ports.LineSource
	writer io.Writer
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithWriter sets the writer prompts are emitted to (default os.Stdout).
// Sources that draw their own prompt (ports.Prompter) bypass the writer.
func WithWriter(w io.Writer) Option {
	return func(r *Reader) {
		r.writer = w
	}
}

// WithLogger sets the logger parse failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// New creates a Reader on the given line source.
func New(source ports.LineSource, opts ...Option) *Reader {
	r := &Reader{
		source: source,
		writer: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read emits prompt (when non-empty), blocks for one line and converts it
// to the requested kind. The line is trimmed of surrounding whitespace
// before parsing.
//
// A failed or unsupported conversion returns the none value and a nil
// error; the failure is logged, never raised. The error return carries I/O
// failures only (io.EOF, ports.ErrInterrupted, a broken source), with the
// none value alongside.
func (r *Reader) Read(ctx context.Context, kind domain.Kind, prompt string) (domain.Value, error) {
	if prompt != "" {
		if p, ok := r.source.(ports.Prompter); ok {
			p.SetPrompt(prompt)
		} else {
			fmt.Fprint(r.writer, prompt)
		}
	}

	line, err := r.source.ReadLine(ctx)
	if err != nil {
		return domain.None(), err
	}

	value, err := Parse(kind, strings.TrimSpace(line))
	if err != nil {
		r.logger.Warn("could not convert input", "kind", kind, "error", err)
		return domain.None(), nil
	}
	return value, nil
}

// Parse converts text to the requested kind using the kind's canonical
// textual parse rule. It is the pure half of Read: no I/O, no logging.
// Booleans accept exactly "true" or "false", case-insensitively (stricter
// than strconv.ParseBool); numerics parse in base 10. An unparseable text
// or an unsupported kind returns the none value and a describing error.
func Parse(kind domain.Kind, text string) (domain.Value, error) {
	switch kind {
	case domain.KindText:
		return domain.TextValue(text), nil

	case domain.KindInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return domain.None(), fmt.Errorf("read int: %w", err)
		}
		return domain.IntValue(n), nil

	case domain.KindInt64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return domain.None(), fmt.Errorf("read int64: %w", err)
		}
		return domain.Int64Value(n), nil

	case domain.KindInt16:
		n, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return domain.None(), fmt.Errorf("read int16: %w", err)
		}
		return domain.Int16Value(int16(n)), nil

	case domain.KindBigInt:
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return domain.None(), fmt.Errorf("read bigint: %q is not a base-10 integer", text)
		}
		return domain.BigIntValue(n), nil

	case domain.KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return domain.None(), fmt.Errorf("read float64: %w", err)
		}
		return domain.Float64Value(f), nil

	case domain.KindFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return domain.None(), fmt.Errorf("read float32: %w", err)
		}
		return domain.Float32Value(float32(f)), nil

	case domain.KindDecimal:
		d, err := decimal.NewFromString(text)
		if err != nil {
			return domain.None(), fmt.Errorf("read decimal: %w", err)
		}
		return domain.DecimalValue(d), nil

	case domain.KindBool:
		switch strings.ToLower(text) {
		case "true":
			return domain.BoolValue(true), nil
		case "false":
			return domain.BoolValue(false), nil
		default:
			return domain.None(), fmt.Errorf("read bool: %q is not true or false", text)
		}

	case domain.KindByte:
		n, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return domain.None(), fmt.Errorf("read byte: %w", err)
		}
		return domain.ByteValue(byte(n)), nil

	default:
		return domain.None(), fmt.Errorf("unsupported kind %q", kind)
	}
}

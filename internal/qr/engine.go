// Package qr turns a payload string into a terminal-drawable QR code.
//
// An Engine is built once with a fixed visual configuration and is then fed
// new payloads through Update; the attached Target always holds the frame for
// the latest payload.
package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DotStyle selects how modules are drawn with terminal glyphs
type DotStyle string

const (
	DotsAuto      DotStyle = "auto"       // full-block when it fits, half-block otherwise
	DotsHalfBlock DotStyle = "half-block" // two module rows per text row
	DotsFullBlock DotStyle = "full-block" // two columns per module, one row per module
)

// Options is the fixed configuration of an engine
type Options struct {
	Payload     string
	Width       int // output bounds in cells
	Height      int // output bounds in rows
	Margin      int // quiet zone in modules
	Level       qrcode.RecoveryLevel
	Dots        DotStyle
	Foreground  string
	Background  string
	CornerColor string // finder patterns; empty draws them in Foreground
}

// DefaultOptions mirrors a printed business card: highest error correction and a small margin
func DefaultOptions() Options {
	return Options{
		Width:      60,
		Height:     30,
		Margin:     2,
		Level:      qrcode.Highest,
		Dots:       DotsAuto,
		Foreground: "#000000",
		Background: "#ffffff",
	}
}

// Target receives rendered frames
type Target interface {
	SetContent(frame string)
}

// ErrNoTarget is returned when attaching a nil target
var ErrNoTarget = errors.New("qr: nil render target")

// Engine encodes a payload and keeps its rendering up to date
type Engine struct {
	opts   Options
	code   *qrcode.QRCode
	frame  string
	target Target
}

// New builds an engine for opts.Payload
func New(opts Options) (*Engine, error) {
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Dots == "" {
		opts.Dots = DotsAuto
	}

	e := &Engine{opts: opts}
	if err := e.encode(opts.Payload); err != nil {
		return nil, err
	}
	return e, nil
}

// Update re-encodes the engine with a new payload and redraws the attached target
func (e *Engine) Update(payload string) error {
	if err := e.encode(payload); err != nil {
		return err
	}
	if e.target != nil {
		e.target.SetContent(e.frame)
	}
	return nil
}

// Attach binds the output target and draws the current frame into it
func (e *Engine) Attach(target Target) error {
	if target == nil {
		return ErrNoTarget
	}
	e.target = target
	target.SetContent(e.frame)
	return nil
}

// Payload returns the currently encoded payload
func (e *Engine) Payload() string {
	return e.opts.Payload
}

// Frame returns the rendering of the current payload
func (e *Engine) Frame() string {
	return e.frame
}

// Options returns the engine configuration, including the current payload
func (e *Engine) Options() Options {
	return e.opts
}

// Bitmap returns a copy of the module matrix without the quiet zone
func (e *Engine) Bitmap() [][]bool {
	src := e.code.Bitmap()
	out := make([][]bool, len(src))
	for i, row := range src {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// PNG renders the current payload as a PNG image of the given side length
func (e *Engine) PNG(size int) ([]byte, error) {
	return e.code.PNG(size)
}

func (e *Engine) encode(payload string) error {
	if strings.TrimSpace(payload) == "" {
		return errors.New("qr: empty payload")
	}
	code, err := qrcode.New(payload, e.opts.Level)
	if err != nil {
		return fmt.Errorf("qr: failed to encode payload: %w", err)
	}
	code.DisableBorder = true

	e.code = code
	e.opts.Payload = payload
	e.frame = Render(code.Bitmap(), e.opts)
	return nil
}

// ParseRecovery maps a config name to an error-correction level
func ParseRecovery(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low", "l":
		return qrcode.Low, nil
	case "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h", "":
		return qrcode.Highest, nil
	}
	return qrcode.Highest, fmt.Errorf("unknown recovery level %q", name)
}

// ParseDots maps a config name to a dot style
func ParseDots(name string) (DotStyle, error) {
	switch DotStyle(strings.ToLower(strings.TrimSpace(name))) {
	case DotsAuto, "":
		return DotsAuto, nil
	case DotsHalfBlock:
		return DotsHalfBlock, nil
	case DotsFullBlock:
		return DotsFullBlock, nil
	}
	return DotsAuto, fmt.Errorf("unknown dot style %q", name)
}

// Package ui renders command results as styled terminal output, plain text,
// JSON, YAML or TOML.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gearbox/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a TransitionList, a DispatchView or any value the
	// structured encoders accept
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output when
// it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{output: output, styles: newStyles(true)}, nil
	case FormatText:
		return &textRenderer{output: output, styles: newStyles(false)}, nil
	case FormatJSON:
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return &structuredRenderer{encode: enc.Encode}, nil
	case FormatYAML:
		return &structuredRenderer{encode: func(v interface{}) error {
			enc := yaml.NewEncoder(output)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}}, nil
	case FormatTOML:
		return &structuredRenderer{encode: toml.NewEncoder(output).Encode}, nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format)
	}
}

// structuredRenderer serializes results with a machine-readable encoder
type structuredRenderer struct {
	encode func(v interface{}) error
}

func (r *structuredRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *structuredRenderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

func (r *structuredRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

type styles struct {
	header lipgloss.Style
	name   lipgloss.Style
	kind   lipgloss.Style
	phase  lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{header: plain, name: plain, kind: plain, phase: plain, muted: plain, err: plain}
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true).Underline(true),
		name:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}),
		kind:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5F8700", Dark: "#AFD75F"}),
		phase:  lipgloss.NewStyle().Bold(true).Width(7),
		muted:  lipgloss.NewStyle().Faint(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}),
	}
}

// textRenderer writes human-oriented output, styled or plain
type textRenderer struct {
	output io.Writer
	styles styles
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case TransitionList:
		return r.renderList(v)
	case DispatchView:
		return r.renderDispatch(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *textRenderer) renderList(list TransitionList) error {
	s := r.styles
	if len(list.Transitions) == 0 {
		_, err := fmt.Fprintln(r.output, s.muted.Render("no transitions registered"))
		return err
	}

	header := fmt.Sprintf("Transitions (%d)", len(list.Transitions))
	if _, err := fmt.Fprintln(r.output, s.header.Render(header)); err != nil {
		return err
	}
	for _, row := range list.Transitions {
		if _, err := fmt.Fprintf(r.output, "  %s %s\n", s.name.Render(row.Name), s.kind.Render("["+row.Kind+"]")); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) renderDispatch(v DispatchView) error {
	s := r.styles
	if _, err := fmt.Fprintf(r.output, "%s %s\n", s.name.Render(v.Transition), s.kind.Render("["+v.Kind+"]")); err != nil {
		return err
	}
	if len(v.Phases) == 0 {
		_, err := fmt.Fprintln(r.output, "  "+s.muted.Render("no sub-events"))
		return err
	}
	for _, p := range v.Phases {
		if _, err := fmt.Fprintf(r.output, "  %s %s %s\n", s.phase.Render(p.Phase), p.Value, s.muted.Render("("+p.Type+")")); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styles.err.Render("Error: "+err.Error()))
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// EchoRenderer lets handlers render templ components through c.Render, so
// echo buffers the output and writes the status code only once rendering
// succeeded. The component is passed as data; name only labels errors.
type EchoRenderer struct{}

// Render implements echo.Renderer
func (EchoRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(templ.Component)
	if !ok {
		return fmt.Errorf("render %s: %T is not a component", name, data)
	}
	return component.Render(c.Request().Context(), w)
}

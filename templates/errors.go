package templates

import (
	"github.com/a-h/templ"
)

func NotFound() templ.Component {
	return Layout("No encontrado", nil,
		"<h1>404</h1><p>El recurso solicitado no existe.</p><p><a href=\"/\">Volver al inicio</a></p>")
}

func ServerError() templ.Component {
	return Layout("Error", nil,
		"<h1>500</h1><p>Ocurrió un error inesperado. Intente nuevamente.</p><p><a href=\"/\">Volver al inicio</a></p>")
}

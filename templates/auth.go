package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

func Login(appName, errMsg string) templ.Component {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(appName))
	b.WriteString(errorBox(errMsg))
	b.WriteString("<form method=\"post\" action=\"/auth/login\">")
	b.WriteString(textField("username", "Usuario", ""))
	b.WriteString("<p><label>Contraseña <input type=\"password\" name=\"password\"></label></p>")
	b.WriteString(submit("Ingresar"))
	b.WriteString("</form>")
	return Layout("Ingreso", nil, b.String())
}

package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/tokeninfo"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "login", "register", "dashboard"}

// pageData is the model every page template renders.
type pageData struct {
	User     *models.UserProfile
	Token    *tokeninfo.Info
	Since    time.Time
	Notice   string
	Error    string
	Email    string
	FullName string
}

// parsePages builds one template set per page, each on top of the layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

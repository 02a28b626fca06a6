package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"index",
	"group_list",
	"profile",
	"post_detail",
	"create_post",
	"follow",
	"login",
	"signup",
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(
			templatesFS,
			"templates/base.html",
			"templates/"+name+".html",
		))
	}
}

// renderToBytes рендерит страницу в память, чтобы её можно было
// положить в кэш или отдать целиком
func renderToBytes(name string, data interface{}) ([]byte, error) {
	tmpl, ok := pages[name]
	if !ok {
		return nil, fmt.Errorf("шаблон %s не найден", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("ошибка рендеринга шаблона %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

func render(w http.ResponseWriter, statusCode int, name string, data interface{}) {
	body, err := renderToBytes(name, data)
	if err != nil {
		log.Printf("Ошибка рендеринга: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(body)
}

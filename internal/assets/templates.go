package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"inc": func(i int) int {
		return i + 1
	},
}

// parseTemplateWithFallback parses templatePath, or the embedded fallback when the path is empty,
// missing or broken.
func parseTemplateWithFallback(
	logger *slog.Logger,
	templatePath string,
	fallbackName string,
	fallbackTemplate string,
) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			logger.Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

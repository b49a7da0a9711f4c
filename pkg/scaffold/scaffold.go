// Package scaffold writes skeleton template, stylesheet and script files for
// discovered components. Existing component folders are never touched.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amelkic/fe-init/pkg/naming"
	"github.com/amelkic/fe-init/pkg/tokens"
)

// Component creates the folder and skeleton files for one component under
// baseDir. Returns false without touching anything if the folder already
// exists.
func Component(baseDir string, c tokens.Component) (created bool, err error) {
	folder := naming.FolderName(c.Name)
	asset := naming.Kebab(c.Name)
	dir := filepath.Join(baseDir, folder)

	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("create component folder %s: %w", dir, err)
	}

	files := map[string]string{
		asset + ".njk":  template(c, asset),
		asset + ".scss": stylesheet(c, asset),
		asset + ".js":   script(c, asset),
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return false, fmt.Errorf("write %s: %w", path, err)
		}
	}

	return true, nil
}

func template(c tokens.Component, asset string) string {
	desc := c.Description
	if desc == "" {
		desc = c.Name
	}
	return fmt.Sprintf(`{# %s #}
<div class="%s">
  {# TODO: markup for %s #}
</div>
`, desc, asset, c.Name)
}

func stylesheet(c tokens.Component, asset string) string {
	return fmt.Sprintf(`// %s
.%s {
}
`, c.Name, asset)
}

func script(c tokens.Component, asset string) string {
	return fmt.Sprintf(`// %s
export function init() {
  const root = document.querySelector('.%s');
  if (!root) {
    return;
  }
}
`, c.Name, asset)
}

// internal/site/site.go
// Package site writes the charts as a static set of HTML pages, one chart per
// page, linked in navigation order.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/logging"
	"github.com/mwiater/fightsongs/internal/nav"
	"github.com/mwiater/fightsongs/internal/render"
	"github.com/mwiater/fightsongs/internal/util"
)

// IndexFile is the entry page; it shows the first chart.
const IndexFile = "index.html"

// PageData is the view model of one chart page.
type PageData struct {
	Title    string
	Caption  string
	Position int
	Total    int
	Chart    string
	PrevHref string
	NextHref string
}

// PageName returns the file name of the chart page at index i.
func PageName(i int, kind charts.Kind) string {
	return fmt.Sprintf("chart-%d-%s.html", i+1, kind)
}

// Write renders every descriptor with backend into outDir and returns the
// written paths, index page first. Pages are produced by walking a
// navigation controller forward from the first chart, so the previous/next
// links follow the same cyclic order as interactive browsing.
func Write(ctx context.Context, outDir string, descriptors []charts.Descriptor, backend render.Backend) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var container bytes.Buffer
	ctrl, err := nav.New(descriptors, render.Func(backend, &container))
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}

	var paths []string
	for i := 0; i < ctrl.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if i > 0 {
			if err := ctrl.Next(); err != nil {
				return paths, err
			}
		}

		page, err := renderPage(ctrl, descriptors, container.String())
		if err != nil {
			return paths, err
		}

		name := PageName(ctrl.Index(), ctrl.Current().Kind)
		path := filepath.Join(outDir, name)
		if err := util.WriteFile(path, page); err != nil {
			return paths, fmt.Errorf("write %s: %w", name, err)
		}
		logging.LogEvent("[SITE] wrote %s (%s)", path, ctrl.Current().Title)

		if ctrl.Index() == 0 {
			index := filepath.Join(outDir, IndexFile)
			if err := util.WriteFile(index, page); err != nil {
				return paths, fmt.Errorf("write %s: %w", IndexFile, err)
			}
			paths = append(paths, index)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func renderPage(ctrl *nav.Controller, descriptors []charts.Descriptor, chart string) ([]byte, error) {
	current := ctrl.Current()
	prev, next := ctrl.PeekPrevious(), ctrl.PeekNext()
	data := PageData{
		Title:    current.Title,
		Caption:  current.Caption,
		Position: ctrl.Index() + 1,
		Total:    ctrl.Len(),
		Chart:    chart,
		PrevHref: PageName(prev, descriptors[prev].Kind),
		NextHref: PageName(next, descriptors[next].Kind),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("chart-page").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link href="https://fonts.googleapis.com/css2?family=Archivo+Black&family=Oswald:wght@500&display=swap" rel="stylesheet">
  <style>
    :root {
      --primary: #1f4fd8;
      --accent: #d62828;
      --light: #f6f3ea;
      --text: #1b1b1b;
      --border: #dcd6c8;
    }
    body {
      margin: 0;
      background-color: var(--light);
      color: var(--text);
      font-family: "Archivo Black", sans-serif;
    }
    header {
      padding: 1rem 2rem;
      background: var(--primary);
      color: var(--light);
      font-family: "Oswald", sans-serif;
      font-size: 1.5rem;
    }
    main {
      max-width: 960px;
      margin: 1.5rem auto;
    }
    #graph-container {
      background: #fff;
      border: 1px solid var(--border);
      border-radius: 16px;
      padding: 1rem;
    }
    #graph-container iframe {
      width: 100%;
      height: 600px;
      border: 0;
    }
    .caption {
      font-family: Georgia, serif;
      line-height: 1.5;
      margin-top: 1rem;
    }
    nav {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-top: 1rem;
    }
    nav a {
      padding: 0.5rem 1.25rem;
      border-radius: 8px;
      background: var(--accent);
      color: #fff;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <header>College Fight Songs</header>
  <main>
    <div id="graph-container">
      <iframe title="{{ .Title }}" srcdoc="{{ .Chart }}"></iframe>
    </div>
    {{ if .Caption }}<p class="caption">{{ .Caption }}</p>{{ end }}
    <nav>
      <a id="prev-graph" href="{{ .PrevHref }}">&larr; Previous</a>
      <span>{{ .Position }} / {{ .Total }}</span>
      <a id="next-graph" href="{{ .NextHref }}">Next &rarr;</a>
    </nav>
  </main>
</body>
</html>
`

package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// endpoint describes one route for both the OpenAPI document and /docs.
type endpoint struct {
	Method      string
	Path        string
	Summary     string
	Body        string
	ContentType string
}

var endpoints = []endpoint{
	{"GET", "/health", "Liveness probe", "", ""},
	{"POST", "/render", "Line plot of a JSON array of numbers, titled with n/mean/median/sd", "[1, 2.5, 3]", "application/json"},
	{"POST", "/render-csv", "Line plot of every numeric token in a CSV body", "a,b\n1,2\n3,x", "text/csv"},
	{"POST", "/render-xlsx", "Line plot of every numeric cell on the first worksheet", "(xlsx workbook)", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"POST", "/plot/summary", "Summary statistics text panel", `{"count": 5, "mean": 1.5}`, "application/json"},
	{"POST", "/plot/distribution", "Pre-binned histogram with shape annotations", `{"counts": [1, 3], "edges": [0, 1, 2], "quantiles": [[0.5, 1.1]]}`, "application/json"},
	{"POST", "/plot/ecdf", "Empirical CDF step plot", `{"xs": [1, 2], "ps": [0.5, 1]}`, "application/json"},
	{"POST", "/plot/qq", "Normal QQ plot with identity reference line", `{"sample_quantiles": [0, 1], "theoretical_quantiles": [-0.5, 0.5], "mu_hat": 0.5, "sigma_hat": 0.7}`, "application/json"},
	{"POST", "/plot/corr-heatmap", "Correlation matrix heatmap", `{"size": 2, "names": ["a", "b"], "matrix": [1, 0.3, 0.3, 1]}`, "application/json"},
	{"POST", "/plot/series", "Series with highlighted outliers", `{"values": [1, 9, 2], "outliers": {"indices": [1], "values": [9]}}`, "application/json"},
}

// docs holds the API documents, built on first request and immutable after.
type docs struct {
	once    sync.Once
	openapi gin.H
	page    []byte
}

func newDocs() *docs {
	return &docs{}
}

func (d *docs) load() {
	d.once.Do(func() {
		d.openapi = buildOpenAPI(endpoints)
		d.page = renderDocsPage(endpoints)
	})
}

func (s *Server) handleOpenAPI(c *gin.Context) {
	s.docs.load()
	c.JSON(http.StatusOK, s.docs.openapi)
}

func (s *Server) handleDocs(c *gin.Context) {
	s.docs.load()
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.docs.page)
}

func buildOpenAPI(eps []endpoint) gin.H {
	paths := gin.H{}
	for _, ep := range eps {
		op := gin.H{
			"summary": ep.Summary,
			"parameters": []gin.H{
				{"name": "title", "in": "query", "required": false, "schema": gin.H{"type": "string"}},
			},
			"responses": gin.H{
				"200": gin.H{"description": "PNG image", "content": gin.H{"image/png": gin.H{}}},
				"400": gin.H{"description": "Invalid payload", "content": gin.H{"application/json": gin.H{
					"schema": gin.H{"type": "object", "properties": gin.H{"detail": gin.H{"type": "string"}}},
				}}},
			},
		}
		if ep.Method == "GET" {
			op = gin.H{"summary": ep.Summary, "responses": gin.H{"200": gin.H{"description": "OK"}}}
		} else {
			op["requestBody"] = gin.H{"required": true, "content": gin.H{ep.ContentType: gin.H{}}}
		}
		paths[ep.Path] = gin.H{strings.ToLower(ep.Method): op}
	}
	return gin.H{
		"openapi": "3.0.3",
		"info":    gin.H{"title": "goplots", "version": "1.0.0"},
		"paths":   paths,
	}
}

func renderDocsPage(eps []endpoint) []byte {
	var md strings.Builder
	md.WriteString("# goplots\n\nStateless chart rendering. Every POST route returns `image/png`; ")
	md.WriteString("failures return `{\"detail\": \"...\"}` with status 400. ")
	md.WriteString("All plot routes accept an optional `title` query parameter.\n\n")
	md.WriteString("| Method | Path | Description |\n|---|---|---|\n")
	for _, ep := range eps {
		fmt.Fprintf(&md, "| %s | `%s` | %s |\n", ep.Method, ep.Path, ep.Summary)
	}
	for _, ep := range eps {
		if ep.Body == "" {
			continue
		}
		fmt.Fprintf(&md, "\n## %s %s\n\n%s\n\n```\n%s\n```\n", ep.Method, ep.Path, ep.Summary, ep.Body)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage, Title: "goplots API"})
	return markdown.ToHTML([]byte(md.String()), p, renderer)
}

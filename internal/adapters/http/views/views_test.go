package views

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/project-blog/internal/domain"
)

var testSite = Site{Title: "AI Project Blog", Footer: "© 2025 Deepika's AI Blog. All rights reserved."}

func newEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := New(testSite)
	require.NoError(t, err)

	return e
}

func render(t *testing.T, name string, page Page) string {
	t.Helper()

	out, err := newEngine(t).Render(context.Background(), name, page)
	require.NoError(t, err)

	return string(out)
}

func TestRender_Home(t *testing.T) {
	out := render(t, PageHome, Page{Projects: []domain.Project{
		{ID: "a", Title: "A", Date: "Jan 1", Tags: []string{"x"}},
		{ID: "b", Title: "B", Date: "Jan 2", Tags: []string{"y", "z"}},
	}})

	assert.Contains(t, out, "Latest AI Projects")
	assert.Equal(t, 2, strings.Count(out, `class="project-card"`))
	assert.Contains(t, out, `href="/project/a"`)
	assert.Contains(t, out, `href="/project/b"`)
	assert.Less(t, strings.Index(out, `href="/project/a"`), strings.Index(out, `href="/project/b"`))
	assert.Contains(t, out, `<span class="tag">z</span>`)
	assert.Contains(t, out, `<a href="/" class="home-link">Home</a>`)
	assert.Contains(t, out, "AI Project Blog")
	assert.Contains(t, out, "Deepika&#39;s AI Blog")
}

func TestRender_HomeEmpty(t *testing.T) {
	out := render(t, PageHome, Page{})

	assert.Contains(t, out, "Latest AI Projects")
	assert.NotContains(t, out, "project-card")
}

func TestRender_Project(t *testing.T) {
	project := domain.Project{
		ID:          "a",
		Title:       "A <Title>",
		Date:        "Jan 1",
		Description: "line1\nline2\n\nsecond paragraph",
		Tags:        []string{"x"},
	}

	out := render(t, PageProject, Page{Heading: project.Title, Project: &project})

	assert.Contains(t, out, `<h1 class="project-heading">A &lt;Title&gt;</h1>`)
	assert.Contains(t, out, `<p class="project-date">Jan 1</p>`)
	assert.Contains(t, out, "line1<br>\nline2<br>\n<br>\nsecond paragraph")
	assert.Contains(t, out, `<span class="tag">x</span>`)
	assert.Contains(t, out, "<title>A &lt;Title&gt; · AI Project Blog</title>")
}

func TestRender_ProjectNotFound(t *testing.T) {
	out := render(t, PageProjectNotFound, Page{})

	assert.Contains(t, out, `<p class="not-found">Project not found</p>`)
	assert.NotContains(t, out, "home-link")
	assert.NotContains(t, out, "project-date")
	assert.NotContains(t, out, `class="tag"`)
	assert.NotContains(t, out, testSite.Title)
}

func TestRender_NotFound(t *testing.T) {
	out := render(t, PageNotFound, Page{Heading: "Page not found", Path: "/foo<script>"})

	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, "/foo&lt;script&gt;")
	assert.Contains(t, out, "home-link")
}

func TestRender_Error(t *testing.T) {
	out := render(t, PageError, Page{RequestID: "req-1"})

	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, "req-1")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := newEngine(t).Render(context.Background(), "missing.html", Page{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "missing.html" not found`)
}

func TestEngine_Site(t *testing.T) {
	assert.Equal(t, testSite, newEngine(t).Site())
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		excludes []string
	}{
		{
			name:  "newline becomes break",
			input: "line1\nline2",
			want:  "line1<br>\nline2",
		},
		{
			name:  "blank lines kept",
			input: "line1\n\n\n\nline2",
			want:  "line1<br>\n<br>\n<br>\n<br>\nline2",
		},
		{
			name:  "crlf treated as newline",
			input: "one\r\ntwo",
			want:  "one<br>\ntwo",
		},
		{
			name:     "angle brackets escaped",
			input:    "Use <br> and <b>bold</b> tags in JSX",
			want:     "Use &lt;br&gt; and &lt;b&gt;bold&lt;/b&gt; tags in JSX",
			excludes: []string{"<b>"},
		},
		{
			name:     "script escaped",
			input:    "<script>alert(1)</script>",
			want:     "&lt;script&gt;alert(1)&lt;/script&gt;",
			excludes: []string{"<script>"},
		},
		{
			name:     "markdown syntax stays literal",
			input:    "- not a list\n# not a heading\n1. not ordered",
			want:     "- not a list<br>\n# not a heading<br>\n1. not ordered",
			excludes: []string{"<ul>", "<h1>", "<ol>"},
		},
		{
			name:     "indented line is not code",
			input:    "    indented four spaces",
			want:     "    indented four spaces",
			excludes: []string{"<pre>", "<code>"},
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(Description(tt.input))

			assert.Equal(t, tt.want, out)
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "/project/rag-gpt", ProjectPath("rag-gpt"))
	assert.Equal(t, "/project/a~b.c_d", ProjectPath("a~b.c_d"))
	assert.Equal(t, "/project/a%2Fb", ProjectPath("a/b"))
}

func TestStatic(t *testing.T) {
	css, err := fs.ReadFile(Static(), "css/site.css")
	require.NoError(t, err)

	assert.Contains(t, string(css), ".project-card")
}

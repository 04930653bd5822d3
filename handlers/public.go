package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tigerwc/clubsite/internal/render"
)

// PublicHandler serves the assembled club page.
type PublicHandler struct {
	renderer  *render.Renderer
	siteTitle string
	tmpl      *template.Template
}

func NewPublicHandler(r *render.Renderer, siteTitle string) *PublicHandler {
	return &PublicHandler{
		renderer:  r,
		siteTitle: siteTitle,
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (h *PublicHandler) Register(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/static/site.css", func(c *gin.Context) {
		c.Header("Content-Type", "text/css; charset=utf-8")
		c.String(http.StatusOK, siteCSS)
	})
}

// Home renders the whole site in one response. Section fragments are built
// concurrently and any failed section falls back to its placeholder, so the
// visitor always gets a complete page.
func (h *PublicHandler) Home(c *gin.Context) {
	page := h.renderer.BuildPage(c.Request.Context(), h.siteTitle)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, page); err != nil {
		// headers already sent; nothing left to do but log via gin
		_ = c.Error(err)
	}
}

// pageTemplate is the outer shell. Section fields are template.HTML: they
// were escaped during rendering and must not be escaped twice.
const pageTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.SiteTitle}}</title>
    <link rel="stylesheet" href="/static/site.css" />
  </head>
  <body>
    <header class="site-header">
      <h1>{{.SiteTitle}}</h1>
    </header>
    <main>
      <section id="schedule">
        <h2>Practice Schedule</h2>
        {{.Schedule}}
      </section>
      <section id="news">
        <h2>News</h2>
        {{.News}}
      </section>
      <section id="flyers">
        <h2>Flyers</h2>
        {{.Flyers}}
      </section>
      <section id="competitions">
        <h2>Competitions</h2>
        {{.Competitions}}
      </section>
      <section id="sponsors">
        <h2>Our Sponsors</h2>
        {{.Sponsors}}
      </section>
    </main>
    <footer class="site-footer">
      <p>{{.SiteTitle}}</p>
    </footer>
  </body>
</html>`

const siteCSS = `body{font-family:system-ui,sans-serif;margin:0;color:#222}
.site-header{background:#1a1a2e;color:#f5a623;padding:1.5rem 2rem}
main{max-width:960px;margin:0 auto;padding:0 1rem}
section{margin:2.5rem 0}
.placeholder{color:#777;font-style:italic}
.schedule-grid,.news-list,.flyer-gallery{display:grid;gap:1rem;grid-template-columns:repeat(auto-fill,minmax(240px,1fr))}
.schedule-card,.news-card,.event-card{border:1px solid #ddd;border-radius:6px;padding:1rem}
.schedule-card.featured{border-color:#f5a623}
.schedule-card span{display:block}
.event-card{display:flex;gap:1rem;margin-bottom:1rem}
.event-card.travel{border-left:4px solid #1a1a2e}
.event-date{text-align:center;min-width:3.5rem}
.event-date .month{display:block;text-transform:uppercase;font-size:.8rem}
.event-date .day{display:block;font-size:1.6rem;font-weight:700}
.events.past{opacity:.65}
.flyer img,.news-card img{max-width:100%;border-radius:4px}
.sponsor-strip{display:flex;flex-wrap:wrap;gap:2rem;align-items:center}
.sponsor img{max-height:60px}
.site-footer{background:#1a1a2e;color:#eee;padding:1rem 2rem;margin-top:3rem}`

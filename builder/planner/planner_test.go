package planner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/site"
	"github.com/Kush-Singh-26/agora/builder/testutil"
)

type gate map[string]bool

func (g gate) ShouldRender(path string, _ []byte) bool { return !g[path] }

func threePosts() []*models.Record {
	return []*models.Record{
		testutil.Post("January", testutil.Day(2021, 1, 1), "Notes"),
		testutil.Post("February", testutil.Day(2021, 2, 1), "Notes", "Go"),
		testutil.Post("March", testutil.Day(2021, 3, 1)),
	}
}

func mustPlan(t *testing.T, p *Planner) *Plan {
	t.Helper()
	plan, err := p.Plan()
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	return plan
}

func findPage(plan *Plan, p string) *Page {
	for i := range plan.Pages {
		if plan.Pages[i].Path == p {
			return &plan.Pages[i]
		}
	}
	return nil
}

func postTitles(page *Page) []string {
	out := make([]string, 0, len(page.Posts))
	for _, r := range page.Posts {
		out = append(out, r.Title)
	}
	return out
}

func TestPlan_ThreePostScenario(t *testing.T) {
	cfg := config.New("/site")
	cfg.PostsPerPage = 2
	idx := site.Aggregate(threePosts(), nil, false)
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("CET", 3600))

	plan := mustPlan(t, New(cfg, idx, nil, now))

	index := findPage(plan, "index.html")
	if index == nil {
		t.Fatal("index.html not planned")
	}
	if got := strings.Join(postTitles(index), ","); got != "March,February" {
		t.Errorf("index posts = %s", got)
	}
	if index.Context["extra"] != true {
		t.Errorf("extra = %v, want true", index.Context["extra"])
	}

	paged := findPage(plan, "page/1/index.html")
	if paged == nil {
		t.Fatal("page/1/index.html not planned")
	}
	if got := strings.Join(postTitles(paged), ","); got != "January" {
		t.Errorf("page 1 posts = %s", got)
	}
	if paged.Context["prev"] != "/" || paged.Context["next"] != nil {
		t.Errorf("prev/next = %v/%v", paged.Context["prev"], paged.Context["next"])
	}
	if paged.Context["page"] != 2 || paged.Context["total"] != 2 {
		t.Errorf("page/total = %v/%v", paged.Context["page"], paged.Context["total"])
	}
	if plan.Count(KindPaged) != 1 {
		t.Errorf("paged count = %d, want 1", plan.Count(KindPaged))
	}

	archive := findPage(plan, "archive/2021/index.html")
	if archive == nil {
		t.Fatal("archive/2021/index.html not planned")
	}
	if got := strings.Join(postTitles(archive), ","); got != "March,February,January" {
		t.Errorf("archive posts = %s", got)
	}

	feed := findPage(plan, "atom.xml")
	if feed == nil || feed.Context["now"] != "2024-05-06T06:08:09Z" {
		t.Errorf("feed now = %v", feed.Context["now"])
	}

	for _, want := range []string{
		"sitemap.xml",
		"category/notes/index.html",
		"category/go/index.html",
		"category/uncategorized/index.html",
		"2021/01/january.html",
		"2021/03/march.html",
	} {
		if findPage(plan, want) == nil {
			t.Errorf("%s not planned", want)
		}
	}
}

func TestPlan_PageValuesWinOverSettings(t *testing.T) {
	cfg := config.New("/site")
	cfg.Settings["posts"] = "from settings"
	cfg.Settings["site_name"] = "Agora"
	idx := site.Aggregate(threePosts(), nil, false)

	plan := mustPlan(t, New(cfg, idx, nil, time.Now()))
	index := findPage(plan, "index.html")

	if _, ok := index.Context["posts"].([]map[string]interface{}); !ok {
		t.Errorf("posts = %T, want page value", index.Context["posts"])
	}
	if index.Context["site_name"] != "Agora" {
		t.Errorf("site_name = %v", index.Context["site_name"])
	}
	if _, ok := index.Context["categories"]; !ok {
		t.Error("categories missing from context")
	}
	if _, ok := index.Context["years"]; !ok {
		t.Error("years missing from context")
	}
}

func TestPlan_Toggles(t *testing.T) {
	cfg := config.New("/site")
	cfg.SkipIndex = true
	cfg.SkipFeed = true
	cfg.SkipSitemap = true
	cfg.SkipCategories = true
	cfg.SkipArchives = true
	cfg.SkipPagination = true
	cfg.SkipPages = true
	cfg.PostsPerPage = 1

	page := &models.Record{Kind: models.KindPage, Title: "About", Slug: "about", OutputPath: "about.html"}
	idx := site.Aggregate(threePosts(), []*models.Record{page}, false)

	plan := mustPlan(t, New(cfg, idx, nil, time.Now()))
	if len(plan.Pages) != 3 || plan.Count(KindPost) != 3 {
		t.Errorf("expected only the 3 post pages, got %d pages", len(plan.Pages))
	}
}

func TestPlan_CacheGateSkipsPosts(t *testing.T) {
	cfg := config.New("/site")
	posts := threePosts()
	idx := site.Aggregate(posts, nil, false)

	plan := mustPlan(t, New(cfg, idx, gate{posts[0].SourcePath: true}, time.Now()))

	if plan.Count(KindPost) != 2 {
		t.Errorf("post pages = %d, want 2", plan.Count(KindPost))
	}
	if len(plan.Skipped) != 1 || plan.Skipped[0] != posts[0] {
		t.Errorf("Skipped = %v", plan.Skipped)
	}
	if findPage(plan, "index.html") == nil {
		t.Error("index must still be planned")
	}
}

func TestPlan_TemplateOverride(t *testing.T) {
	cfg := config.New("/site")
	posts := threePosts()
	posts[1].Template = "special.html"
	about := &models.Record{Kind: models.KindPage, Title: "About", Slug: "about", OutputPath: "about.html", Template: "wide.html"}
	idx := site.Aggregate(posts, []*models.Record{about}, false)

	plan := mustPlan(t, New(cfg, idx, nil, time.Now()))

	if p := findPage(plan, posts[1].OutputPath); p == nil || p.Template != "special.html" {
		t.Errorf("override not applied: %+v", p)
	}
	if p := findPage(plan, posts[0].OutputPath); p == nil || p.Template != TemplateSingle {
		t.Errorf("default template not used: %+v", p)
	}
	if p := findPage(plan, "about.html"); p == nil || p.Template != "wide.html" {
		t.Errorf("page override not applied: %+v", p)
	}
}

func TestPlan_UnlimitedIndex(t *testing.T) {
	cfg := config.New("/site")
	cfg.PostsPerPage = 0
	idx := site.Aggregate(threePosts(), nil, false)

	plan := mustPlan(t, New(cfg, idx, nil, time.Now()))
	index := findPage(plan, "index.html")
	if len(index.Posts) != 3 || index.Context["extra"] != false {
		t.Errorf("index = %d posts, extra=%v", len(index.Posts), index.Context["extra"])
	}
	if plan.Count(KindPaged) != 0 {
		t.Error("no pagination expected when posts_per_page is 0")
	}
}

func TestWindows(t *testing.T) {
	tests := []struct {
		total, per int
		want       []Window
	}{
		{3, 2, []Window{{Number: 1, Start: 2, End: 3, Prev: "/"}}},
		{7, 2, []Window{
			{Number: 1, Start: 2, End: 4, Prev: "/", Next: "/page/2/"},
			{Number: 2, Start: 4, End: 6, Prev: "/page/2/", Next: "/page/3/"},
			{Number: 3, Start: 6, End: 7, Prev: "/page/3/"},
		}},
		{2, 2, nil},
		{5, 0, nil},
	}

	for _, tt := range tests {
		got := Windows(tt.total, tt.per)
		if len(got) != len(tt.want) {
			t.Errorf("Windows(%d, %d) = %+v", tt.total, tt.per, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Windows(%d, %d)[%d] = %+v, want %+v", tt.total, tt.per, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPlan_DuplicateOutputPath(t *testing.T) {
	cfg := config.New("/site")

	sameSlug := testutil.Post("Hello", testutil.Day(2021, 1, 1))
	twin := testutil.Post("Hello", testutil.Day(2021, 1, 20))
	twin.SourcePath = "/site/posts/hello-again.md"

	indexPage := &models.Record{Kind: models.KindPage, Title: "Index", Slug: "index",
		SourcePath: "/site/pages/index.md", OutputPath: "index.html"}

	tests := []struct {
		name  string
		posts []*models.Record
		pages []*models.Record
		gate  Gate
		want  []string
	}{
		{
			name:  "posts with the same slug in one month",
			posts: []*models.Record{sameSlug, twin},
			want:  []string{"2021/01/hello.html", sameSlug.SourcePath, twin.SourcePath},
		},
		{
			name:  "skipped post still claims its path",
			posts: []*models.Record{sameSlug, twin},
			gate:  gate{twin.SourcePath: true},
			want:  []string{"2021/01/hello.html", twin.SourcePath},
		},
		{
			name:  "page slugged index",
			posts: threePosts(),
			pages: []*models.Record{indexPage},
			want:  []string{"index.html", "index page", indexPage.SourcePath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := site.Aggregate(tt.posts, tt.pages, false)
			_, err := New(cfg, idx, tt.gate, time.Now()).Plan()

			var cerr *errs.ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Plan() error = %v, want ConfigurationError", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestPlan_CategoriesDifferingInCaseShareOnePage(t *testing.T) {
	cfg := config.New("/site")
	posts := []*models.Record{
		testutil.Post("One", testutil.Day(2021, 1, 1), "go"),
		testutil.Post("Two", testutil.Day(2021, 2, 1), "Go"),
	}
	plan := mustPlan(t, New(cfg, site.Aggregate(posts, nil, false), nil, time.Now()))

	if plan.Count(KindCategory) != 1 {
		t.Fatalf("category pages = %d, want 1", plan.Count(KindCategory))
	}
	page := findPage(plan, "category/go/index.html")
	if page == nil {
		t.Fatal("category/go/index.html not planned")
	}
	if got := strings.Join(postTitles(page), ","); got != "Two,One" {
		t.Errorf("posts = %s", got)
	}
}

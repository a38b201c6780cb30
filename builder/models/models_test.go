package models

import (
	"reflect"
	"testing"
)

func TestDecodeFrontMatterKeepsOrder(t *testing.T) {
	fm, err := DecodeFrontMatter([]byte("title: Hello\ndate: 2021-01-01 10:00\nzeta: 1\nalpha: [a, b]\n"))
	if err != nil {
		t.Fatalf("DecodeFrontMatter() error = %v", err)
	}

	want := []string{"title", "date", "zeta", "alpha"}
	if got := fm.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := fm.String("title"); got != "Hello" {
		t.Errorf("String(title) = %q", got)
	}
	if got := fm.String("zeta"); got != "1" {
		t.Errorf("String(zeta) = %q", got)
	}
}

func TestDecodeFrontMatterRejectsNonMapping(t *testing.T) {
	if _, err := DecodeFrontMatter([]byte("- a\n- b\n")); err == nil {
		t.Error("expected error for a sequence document")
	}
}

func TestDecodeFrontMatterEmpty(t *testing.T) {
	fm, err := DecodeFrontMatter(nil)
	if err != nil {
		t.Fatalf("DecodeFrontMatter(nil) error = %v", err)
	}
	if fm.Len() != 0 || fm.Has("title") {
		t.Error("expected empty front matter")
	}
}

func TestFrontMatterStrings(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{"sequence", []interface{}{"go", " web ", ""}, []string{"go", "web"}},
		{"comma string", "python, web,  ", []string{"python", "web"}},
		{"single", "python", []string{"python"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := NewFrontMatter()
			fm.Set("categories", tt.value)
			if got := fm.Strings("categories"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Strings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContextMergeIsPure(t *testing.T) {
	base := Context{"site_name": "Blog", "title": "site"}
	merged := base.Merge(map[string]interface{}{"title": "page", "extra": true})

	if merged["title"] != "page" || merged["site_name"] != "Blog" || merged["extra"] != true {
		t.Errorf("Merge() = %v", merged)
	}
	if base["title"] != "site" {
		t.Error("Merge() modified the base context")
	}
	if _, ok := base["extra"]; ok {
		t.Error("Merge() leaked overlay keys into the base context")
	}
}

func TestRecordView(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("title", "Raw Title")
	fm.Set("custom", "x")

	r := &Record{
		Kind:        KindPost,
		FrontMatter: fm,
		Title:       "Hello",
		Slug:        "hello",
		Categories:  []Category{{Name: "Go", Slug: "go"}},
		DisplayDate: "March 05, 2011",
		Year:        "2011",
	}

	view := r.View()
	if view["title"] != "Hello" {
		t.Errorf("derived title should win, got %v", view["title"])
	}
	if view["custom"] != "x" {
		t.Error("front-matter keys should be visible")
	}
	if view["date"] != "March 05, 2011" || view["year"] != "2011" {
		t.Errorf("post date fields missing: %v", view)
	}
	if !r.InCategory("go") || r.InCategory("python") {
		t.Error("InCategory() mismatch")
	}

	page := &Record{Kind: KindPage, Title: "About"}
	if _, ok := page.View()["year"]; ok {
		t.Error("pages carry no date fields")
	}
}

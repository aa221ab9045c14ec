package scrape

import "testing"

func TestExtractImageHeuristicPriority(t *testing.T) {
	// og:image must win over a <figure> image present in the same page.
	html := `<html><head>
		<meta property="og:image" content="https://cdn.example.com/og.png">
	</head><body>
		<figure><img src="https://cdn.example.com/fig.png"></figure>
	</body></html>`

	got, ok := HeuristicExtractor{}.ExtractImage(html, "https://example.com/p")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "https://cdn.example.com/og.png" {
		t.Errorf("got %q, want og:image value", got)
	}
}

func TestExtractImageAttributeOrder(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"og content before property",
			`<meta content="https://a.com/1.png" property="og:image">`,
			"https://a.com/1.png",
		},
		{
			"twitter single quotes",
			`<meta name='twitter:image' content='https://a.com/2.png'>`,
			"https://a.com/2.png",
		},
		{
			"og uppercase tag",
			`<META PROPERTY="og:image" CONTENT="https://a.com/3.png">`,
			"https://a.com/3.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HeuristicExtractor{}.ExtractImage(tt.html, "https://example.com")
			if !ok || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, true)", got, ok, tt.want)
			}
		})
	}
}

func TestExtractImageFigureBlock(t *testing.T) {
	html := `<body>
		<figure>
			<img alt="panel A" src="/figures/fig1.png">
			<figcaption>Figure 1</figcaption>
		</figure>
		<img src="/banner.png">
	</body>`

	got, ok := HeuristicExtractor{}.ExtractImage(html, "https://journal.example.com/article/42")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "https://journal.example.com/figures/fig1.png" {
		t.Errorf("got %q, want resolved figure image", got)
	}
}

func TestExtractImageRejectsDataURI(t *testing.T) {
	html := `<img src="data:image/png;base64,iVBORw0KGgo=">`
	if _, ok := (HeuristicExtractor{}).ExtractImage(html, "https://example.com"); ok {
		t.Error("data: URI should not be extracted")
	}
}

func TestExtractImageNoImages(t *testing.T) {
	if _, ok := (HeuristicExtractor{}).ExtractImage("<html><body><p>text</p></body></html>", "https://example.com"); ok {
		t.Error("expected no match")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, src, want string
	}{
		{"https://example.com/a/b", "/img.png", "https://example.com/img.png"},
		{"https://example.com/a/b", "img.png", "https://example.com/a/img.png"},
		{"https://example.com/a/b", "https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
		{"://bad base", "rel.png", "rel.png"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.src); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.src, got, tt.want)
		}
	}
}

// internal/dom/document_test.go
package dom

import "testing"

const fixtureHTML = `<html><body>
	<ul class="list">
		<li class="row"><a href="/one">One</a></li>
		<li class="row"><a href="/two">Two</a></li>
	</ul>
	<p class="footer">done</p>
</body></html>`

func TestDocument_QueryAll(t *testing.T) {
	doc, err := NewDocument(fixtureHTML)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	rows := doc.QueryAll(".list .row", nil)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if missing := doc.QueryAll(".absent", nil); len(missing) != 0 {
		t.Fatalf("Expected 0 matches for absent selector, got %d", len(missing))
	}

	if empty := doc.QueryAll("  ", nil); len(empty) != 0 {
		t.Fatalf("Expected 0 matches for blank selector, got %d", len(empty))
	}
}

func TestDocument_QueryAllScoped(t *testing.T) {
	doc, err := NewDocument(fixtureHTML)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	rows := doc.QueryAll(".row", nil)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	links := doc.QueryAll("a", rows[0])
	if len(links) != 1 {
		t.Fatalf("Expected 1 link inside first row, got %d", len(links))
	}

	text, ok := links[0].Property(PropertyText)
	if !ok || text != "One" {
		t.Fatalf("Expected text 'One', got %q (ok=%v)", text, ok)
	}
}

func TestDocumentElement_Property(t *testing.T) {
	doc, err := NewDocument(fixtureHTML)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	links := doc.QueryAll(".row a", nil)
	if len(links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(links))
	}

	href, ok := links[1].Property("href")
	if !ok || href != "/two" {
		t.Fatalf("Expected href '/two', got %q (ok=%v)", href, ok)
	}

	if _, ok := links[1].Property("data-missing"); ok {
		t.Fatal("Expected absent attribute to report ok=false")
	}

	// Empty property name reads text content.
	text, ok := links[1].Property("")
	if !ok || text != "Two" {
		t.Fatalf("Expected text 'Two' for empty property name, got %q", text)
	}
}

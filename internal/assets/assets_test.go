package assets

import (
	"strings"
	"testing"

	"folio/internal/content"
)

func TestBannerAndPortraitLoad(t *testing.T) {
	for name, art := range map[string]string{
		"banner":   Banner(),
		"portrait": Portrait(),
	} {
		if art == placeholder {
			t.Errorf("%s art fell back to the placeholder", name)
		}
		if !strings.Contains(art, "\n") {
			t.Errorf("%s art is a single line", name)
		}
		if strings.HasSuffix(art, "\n") {
			t.Errorf("%s art keeps a trailing newline", name)
		}
		if strings.Contains(art, "\t") {
			t.Errorf("%s art contains tabs, which break terminal alignment", name)
		}
	}
}

func TestThumbnailsForShippedServices(t *testing.T) {
	for _, svc := range content.Site.Services {
		art := Thumbnail(svc.Art)
		if art == placeholder {
			t.Errorf("service %q: no thumbnail art for %q", svc.Name, svc.Art)
		}
	}
}

func TestUnknownThumbnailFallsBack(t *testing.T) {
	if got := Thumbnail("definitely-not-shipped"); got != placeholder {
		t.Errorf("unknown thumbnail = %q, want the placeholder", got)
	}
}

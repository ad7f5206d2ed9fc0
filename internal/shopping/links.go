// Package shopping builds search links on Korean fashion retail platforms.
package shopping

import (
	"net/url"
	"strings"
)

// Platforms lists the retail platforms in a stable order.
var Platforms = []string{"musinsa", "zigzag", "kream", "ably"}

var searchTemplates = map[string]string{
	"musinsa": "https://www.musinsa.com/search/goods?keyword=%s&keywordType=keyword&gf=A",
	"zigzag":  "https://zigzag.kr/search?q=%s",
	"kream":   "https://kream.co.kr/search?keyword=%s",
	"ably":    "https://a-bly.com/search?query=%s",
}

// SearchLinks maps each platform to its search URL for keyword. The keyword
// is percent-encoded with %20 for spaces so every platform receives the
// same query.
func SearchLinks(keyword string) map[string]string {
	encoded := strings.ReplaceAll(url.QueryEscape(keyword), "+", "%20")
	links := make(map[string]string, len(Platforms))
	for _, platform := range Platforms {
		links[platform] = strings.Replace(searchTemplates[platform], "%s", encoded, 1)
	}
	return links
}

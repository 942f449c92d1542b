package dom

// https://html.spec.whatwg.org/multipage/links.html#linkTypes
var linkRelTokens = []string{
	"alternate", "dns-prefetch", "expect", "icon", "manifest", "modulepreload",
	"next", "pingback", "preconnect", "prefetch", "preload", "search", "stylesheet",
}

var hyperlinkRelTokens = []string{"noopener", "noreferrer", "opener"}

// https://html.spec.whatwg.org/multipage/iframe-embed-object.html#attr-iframe-sandbox
var iframeSandboxTokens = []string{
	"allow-downloads", "allow-forms", "allow-modals", "allow-orientation-lock",
	"allow-pointer-lock", "allow-popups", "allow-popups-to-escape-sandbox",
	"allow-presentation", "allow-same-origin", "allow-scripts",
	"allow-top-navigation", "allow-top-navigation-by-user-activation",
	"allow-top-navigation-to-custom-protocols",
}

var supportedTokenTable = map[string]map[string][]string{
	"link":   {"rel": linkRelTokens},
	"a":      {"rel": hyperlinkRelTokens},
	"area":   {"rel": hyperlinkRelTokens},
	"form":   {"rel": hyperlinkRelTokens},
	"iframe": {"sandbox": iframeSandboxTokens},
}

func supportedTokens(element, attr string) map[string]struct{} {
	tokens, ok := supportedTokenTable[element][attr]
	if !ok {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

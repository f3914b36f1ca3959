package domaincheck

import "strings"

// Allow-list of extensions the checker will query. Covers the common
// gTLD/ccTLD namespaces the agency actually resells.
var validTLDs = map[string]struct{}{
	".com": {}, ".org": {}, ".net": {}, ".edu": {}, ".gov": {}, ".mil": {},
	".int": {}, ".info": {}, ".biz": {}, ".name": {}, ".pro": {}, ".app": {},
	".dev": {}, ".io": {}, ".co": {}, ".me": {}, ".tv": {}, ".cc": {},
	".ai": {}, ".xyz": {}, ".online": {}, ".site": {}, ".store": {},
	".shop": {}, ".tech": {}, ".cloud": {}, ".agency": {}, ".digital": {},
	".design": {}, ".studio": {}, ".media": {}, ".news": {}, ".blog": {},
	".live": {}, ".life": {}, ".world": {}, ".today": {}, ".solutions": {},
	".services": {}, ".company": {}, ".business": {}, ".network": {},
	".systems": {}, ".center": {}, ".group": {}, ".team": {}, ".works": {},
	".expert": {}, ".consulting": {}, ".marketing": {}, ".software": {},
	".email": {}, ".host": {}, ".hosting": {}, ".website": {}, ".space": {},
	".fun": {}, ".club": {}, ".vip": {}, ".top": {}, ".one": {}, ".pw": {},
	".so": {}, ".ke": {}, ".et": {}, ".dj": {}, ".ug": {}, ".tz": {},
	".za": {}, ".ng": {}, ".eg": {}, ".ma": {}, ".ae": {}, ".sa": {},
	".qa": {}, ".om": {}, ".kw": {}, ".bh": {}, ".tr": {}, ".uk": {},
	".de": {}, ".fr": {}, ".it": {}, ".es": {}, ".nl": {}, ".se": {},
	".no": {}, ".fi": {}, ".dk": {}, ".pl": {}, ".ru": {}, ".in": {},
	".cn": {}, ".jp": {}, ".kr": {}, ".au": {}, ".nz": {}, ".ca": {},
	".us": {}, ".mx": {}, ".br": {}, ".ar": {},
}

// ValidTLD reports whether ext (with leading dot, any case) is allowed.
func ValidTLD(ext string) bool {
	_, ok := validTLDs[strings.ToLower(ext)]
	return ok
}

package ccf

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupPrefixes are stripped from symbolic group names, in this order.
var groupPrefixes = []string{
	"GROUP_CCF_EUCD_",
	"GROUP_EUCD_CCF_",
	"GROUP_CCF_",
}

// CleanName turns a symbolic group name into a display name:
//
//	GROUP_CCF_EUCD_DOORS      -> Doors
//	GROUP_CCF_REAR_FOG_LAMPS  -> Rear Fog Lamps
func CleanName(group string) string {
	n := group
	for _, p := range groupPrefixes {
		n = strings.TrimPrefix(n, p)
	}
	n = strings.ReplaceAll(n, "_", " ")
	return cases.Title(language.English).String(n)
}

// tmText returns the label carried by a tm element: its text, or its id
// attribute when the text is empty. A nil element yields "".
func tmText(tm *Node) string {
	if tm == nil {
		return ""
	}
	if tm.Text != "" {
		return strings.TrimSpace(tm.Text)
	}
	id, _ := tm.Attr("id")
	return strings.TrimSpace(id)
}

// resolved reports whether a tm label is usable. Labels starting with '@' are
// localisation keys that were never translated.
func resolved(label string) bool {
	return label != "" && !strings.HasPrefix(label, "@")
}

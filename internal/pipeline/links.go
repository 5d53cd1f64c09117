package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkOptions controls how links in a rendered problem statement are resolved.
type LinkOptions struct {
	// BaseDir is the directory of the statement file. Relative image and
	// link targets are resolved against it. Empty leaves them untouched.
	BaseDir string

	// ExternalNewTab opens http(s) links in a new browsing context.
	ExternalNewTab bool
}

// ResolveLinks rewrites links in an HTML fragment produced from a problem
// statement.
//
// Relative img[src] and a[href] targets become absolute file:// URLs so the
// report renders the same from a temp file; targets escaping BaseDir are left
// as they are. External anchors get rel="noopener noreferrer".
func ResolveLinks(fragment string, opts LinkOptions) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return fragment, nil
	}

	baseDir := opts.BaseDir
	if baseDir != "" {
		abs, err := filepath.Abs(baseDir)
		if err != nil {
			return "", err
		}
		baseDir = abs
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		resolveNode(n, baseDir, opts.ExternalNewTab)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func resolveNode(n *html.Node, baseDir string, newTab bool) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", baseDir)
		case atom.A:
			rewriteAttr(n, "href", baseDir)
			if isExternalURL(attrValue(n, "href")) {
				setAttr(n, "rel", "noopener noreferrer")
				if newTab {
					setAttr(n, "target", "_blank")
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, baseDir, newTab)
	}
}

// rewriteAttr rewrites a single attribute if it holds a relative path.
func rewriteAttr(n *html.Node, key, baseDir string) {
	if baseDir == "" {
		return
	}
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(baseDir, attr.Val)
		if !isPathUnderDir(absPath, baseDir) {
			continue
		}
		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func isExternalURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// isRelativePath reports whether path is a local relative target.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks that absPath stays inside dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}

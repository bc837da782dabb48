//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for pages and options
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "ezslider-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// WritePage writes an HTML page whose #slides element holds one section per title
func (tf *TUITestFramework) WritePage(name string, titles ...string) (string, error) {
	var b strings.Builder
	b.WriteString("<html><body>\n<div id=\"slides\">\n")
	for i, title := range titles {
		fmt.Fprintf(&b, "  <section><h2>%s</h2><p>body of slide %d</p></section>\n", title, i+1)
	}
	b.WriteString("</div>\n</body></html>\n")

	path := filepath.Join(tf.workspace, name)
	return path, os.WriteFile(path, []byte(b.String()), 0644)
}

// WriteOptions writes a .ezslider.toml next to the pages
func (tf *TUITestFramework) WriteOptions(content string) (string, error) {
	path := filepath.Join(tf.workspace, ".ezslider.toml")
	return path, os.WriteFile(path, []byte(content), 0644)
}
